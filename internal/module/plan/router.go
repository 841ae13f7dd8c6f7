package plan

import (
	"github.com/gin-gonic/gin"
)

func (m *ModulePlan) InitRouter(r *gin.RouterGroup) {
	// 旧版前端使用的列表地址
	r.GET("/defense/list", m.LegacyList)

	planGroup := r.Group("/defense/plan")
	{
		planGroup.GET("/list", m.List)
		planGroup.GET("/export", m.Export)
		planGroup.GET("/:id", m.Detail)
		planGroup.POST("", m.Create)
		planGroup.PUT("/audit/:id", m.Audit)
		planGroup.PUT("/publish/:id", m.Publish)
		planGroup.PUT("/:id", m.Update)
		planGroup.DELETE("/:id", m.Delete)
	}
}
