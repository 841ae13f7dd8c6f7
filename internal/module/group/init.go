package group

import (
	"log/slog"

	"gorm.io/gorm"

	"defense-management-system/internal/global/deps"
	"defense-management-system/internal/global/logger"
)

var log *slog.Logger

// ModuleGroup 答辩分组及其教师、学生名单
type ModuleGroup struct {
	db *gorm.DB
}

func (m *ModuleGroup) GetName() string {
	return "Group"
}

func (m *ModuleGroup) Init(d *deps.Deps) {
	log = logger.New("Group")
	m.db = d.DB
}
