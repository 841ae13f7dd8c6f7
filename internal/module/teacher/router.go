package teacher

import (
	"github.com/gin-gonic/gin"
)

func (m *ModuleTeacher) InitRouter(r *gin.RouterGroup) {
	teacherGroup := r.Group("/teacher")
	{
		teacherGroup.GET("/list", m.List)
		teacherGroup.GET("/export", m.Export)
		teacherGroup.GET("/:id", m.Detail)
		teacherGroup.POST("", m.Create)
		teacherGroup.PUT("/:id", m.Update)
		teacherGroup.DELETE("/:id", m.Delete)
	}
}
