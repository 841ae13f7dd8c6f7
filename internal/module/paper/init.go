package paper

import (
	"log/slog"

	"gorm.io/gorm"

	"defense-management-system/internal/global/deps"
	"defense-management-system/internal/global/logger"
	"defense-management-system/internal/global/storage"
)

var log *slog.Logger

type ModulePaper struct {
	db    *gorm.DB
	files storage.Store
}

func (m *ModulePaper) GetName() string {
	return "Paper"
}

func (m *ModulePaper) Init(d *deps.Deps) {
	log = logger.New("Paper")
	m.db = d.DB
	m.files = d.Files
}
