package system

import (
	"github.com/gin-gonic/gin"

	"defense-management-system/internal/global/database"
	"defense-management-system/internal/global/response"
	"defense-management-system/internal/model"
)

var (
	errStatusCheck = &response.Error{Code: 500, Message: "数据库状态检查失败"}
	errSampleData  = &response.Error{Code: 500, Message: "生成示例数据失败"}
)

// Root 服务根路径的运行提示
func Root(c *gin.Context) {
	c.JSON(200, gin.H{"message": "答辩管理系统后端服务运行中"})
}

func (m *ModuleSystem) Ping(c *gin.Context) {
	status := "ok"
	if m.d.DB == nil {
		status = "unavailable"
	} else if err := database.Ping(c.Request.Context(), m.d.DB); err != nil {
		log.Warn("数据库连接测试失败", "error", err)
		status = "unavailable"
	}
	response.Success(c, gin.H{
		"message":  "pong",
		"version":  Version,
		"database": status,
	})
}

// DBStatus 运维排查用，失败时在 details 中带回驱动错误
func (m *ModuleSystem) DBStatus(c *gin.Context) {
	if m.d.DB == nil {
		response.Fail(c, response.ErrDBUnavailable)
		return
	}
	db := m.d.DB.WithContext(c.Request.Context())

	var tables []string
	if err := db.Raw("SHOW TABLES").Scan(&tables).Error; err != nil {
		log.Error("数据库状态检查失败", "error", err)
		response.Fail(c, errStatusCheck.WithDetails(err.Error()))
		return
	}
	var plans []model.DefensePlan
	if err := db.Find(&plans).Error; err != nil {
		log.Error("数据库状态检查失败", "error", err)
		response.Fail(c, errStatusCheck.WithDetails(err.Error()))
		return
	}

	if tables == nil {
		tables = []string{}
	}
	if plans == nil {
		plans = []model.DefensePlan{}
	}
	response.Success(c, gin.H{
		"database":            m.d.Config.Mysql.Name,
		"tables":              tables,
		"defense_plans_count": len(plans),
		"defense_plans":       plans,
	})
}

func (m *ModuleSystem) GenerateSampleData(c *gin.Context) {
	if m.d.DB == nil {
		response.Fail(c, response.ErrDBUnavailable)
		return
	}
	summary, err := database.GenerateSampleData(c.Request.Context(), m.d.DB)
	if err != nil {
		log.Error("生成示例数据失败", "error", err)
		response.Fail(c, errSampleData.WithDetails(err.Error()))
		return
	}
	log.Info("示例数据生成成功", "users", summary.Users, "groups", summary.DefenseGroups)
	response.Success(c, gin.H{
		"message": "示例数据生成成功！",
		"data":    summary,
	})
}
