package group

import (
	"github.com/gin-gonic/gin"
)

func (m *ModuleGroup) InitRouter(r *gin.RouterGroup) {
	groupGroup := r.Group("/defense/group")
	{
		groupGroup.GET("/list", m.List)
		groupGroup.GET("/:id", m.Detail)
		groupGroup.GET("/:id/export", m.Export)
		groupGroup.POST("", m.Create)
		groupGroup.PUT("/:id", m.Update)
		groupGroup.DELETE("/:id", m.Delete)

		groupGroup.GET("/members/:groupId", m.ListMembers)
		groupGroup.POST("/member", m.AddMember)
		groupGroup.POST("/members/batch", m.BatchAddMembers)
		groupGroup.DELETE("/member/:id", m.DeleteMember)

		groupGroup.GET("/students/:groupId", m.ListStudents)
		groupGroup.POST("/student", m.AddStudent)
		groupGroup.POST("/students/batch", m.BatchAddStudents)
		groupGroup.PUT("/student/order", m.UpdateOrder)
		groupGroup.DELETE("/student/:id", m.DeleteStudent)
	}
}
