package score

import (
	"github.com/gin-gonic/gin"
)

func (m *ModuleScore) InitRouter(r *gin.RouterGroup) {
	r.GET("/score/list", m.List)
	r.GET("/defense/score/list", m.List)
	r.GET("/defense/record/list", m.List)
}
