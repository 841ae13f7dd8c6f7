package teacher

import (
	"log/slog"

	"gorm.io/gorm"

	"defense-management-system/internal/global/deps"
	"defense-management-system/internal/global/logger"
)

var log *slog.Logger

type ModuleTeacher struct {
	db *gorm.DB
}

func (m *ModuleTeacher) GetName() string {
	return "Teacher"
}

func (m *ModuleTeacher) Init(d *deps.Deps) {
	log = logger.New("Teacher")
	m.db = d.DB
}
