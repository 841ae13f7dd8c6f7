package student

import (
	"log/slog"

	"gorm.io/gorm"

	"defense-management-system/internal/global/deps"
	"defense-management-system/internal/global/logger"
)

var log *slog.Logger

type ModuleStudent struct {
	db *gorm.DB
}

func (m *ModuleStudent) GetName() string {
	return "Student"
}

func (m *ModuleStudent) Init(d *deps.Deps) {
	log = logger.New("Student")
	m.db = d.DB
}
