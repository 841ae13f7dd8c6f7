package notice

import (
	"github.com/gin-gonic/gin"
)

func (m *ModuleNotice) InitRouter(r *gin.RouterGroup) {
	noticeGroup := r.Group("/notice")
	{
		noticeGroup.GET("/list", m.List)
		noticeGroup.GET("/:id", m.Detail)
		noticeGroup.POST("", m.Create)
		noticeGroup.PUT("/:id", m.Update)
		noticeGroup.PUT("/:id/read", m.Read)
		noticeGroup.DELETE("/:id", m.Delete)
	}
}
