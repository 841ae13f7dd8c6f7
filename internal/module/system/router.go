package system

import (
	"github.com/gin-gonic/gin"
)

func (m *ModuleSystem) InitRouter(r *gin.RouterGroup) {
	r.GET("/ping", m.Ping)
	r.GET("/db-status", m.DBStatus)
	r.POST("/generate-sample-data", m.GenerateSampleData)
}
