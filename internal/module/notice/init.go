package notice

import (
	"log/slog"

	"gorm.io/gorm"

	"defense-management-system/internal/global/deps"
	"defense-management-system/internal/global/logger"
)

var log *slog.Logger

type ModuleNotice struct {
	db *gorm.DB
}

func (m *ModuleNotice) GetName() string {
	return "Notice"
}

func (m *ModuleNotice) Init(d *deps.Deps) {
	log = logger.New("Notice")
	m.db = d.DB
}
