package user

import (
	"github.com/gin-gonic/gin"

	"defense-management-system/internal/global/middleware"
)

// InitRouter 初始化用户模块的路由
// 登录、登出与个人信息为账号相关端点，其余为账号管理
func (u *ModuleUser) InitRouter(r *gin.RouterGroup) {
	userGroup := r.Group("/user")

	// 账号
	userGroup.POST("/login", u.Login)
	userGroup.POST("/logout", u.Logout)
	userGroup.POST("/register", u.Create)
	userGroup.GET("/info", middleware.Token(), u.Info)
	userGroup.PUT("/info", middleware.Token(), u.UpdateInfo)

	// 管理
	userGroup.GET("/list", u.List)
	userGroup.GET("/:id", u.Detail)
	userGroup.POST("", u.Create)
	userGroup.PUT("/:id", u.Update)
	userGroup.DELETE("/:id", u.Delete)
}
