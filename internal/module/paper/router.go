package paper

import (
	"github.com/gin-gonic/gin"
)

func (m *ModulePaper) InitRouter(r *gin.RouterGroup) {
	paperGroup := r.Group("/paper")
	{
		paperGroup.GET("/list", m.List)
		paperGroup.GET("/:id", m.Detail)
		paperGroup.POST("", m.Create)
		paperGroup.POST("/:id/file", m.AttachFile)
		paperGroup.PUT("/:id", m.Update)
		paperGroup.DELETE("/:id", m.Delete)
	}
}
