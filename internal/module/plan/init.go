package plan

import (
	"log/slog"

	"gorm.io/gorm"

	"defense-management-system/internal/global/deps"
	"defense-management-system/internal/global/logger"
)

var log *slog.Logger

// ModulePlan 答辩计划：增删改查、审核、发布与导出
type ModulePlan struct {
	db *gorm.DB
}

func (m *ModulePlan) GetName() string {
	return "Plan"
}

func (m *ModulePlan) Init(d *deps.Deps) {
	log = logger.New("Plan")
	m.db = d.DB
}
