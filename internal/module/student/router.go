package student

import (
	"github.com/gin-gonic/gin"
)

func (m *ModuleStudent) InitRouter(r *gin.RouterGroup) {
	studentGroup := r.Group("/student")
	{
		studentGroup.GET("/list", m.List)
		studentGroup.GET("/export", m.Export)
		studentGroup.GET("/user/:userId", m.DetailByUser)
		studentGroup.GET("/:id", m.Detail)
		studentGroup.POST("", m.Create)
		studentGroup.PUT("/:id", m.Update)
		studentGroup.DELETE("/:id", m.Delete)
	}
}
