package upload

import (
	"github.com/gin-gonic/gin"
)

func (m *ModuleUpload) InitRouter(r *gin.RouterGroup) {
	r.POST("/upload", m.Upload)
	r.POST("/upload/presign", m.Presign)
}
