package upload

import (
	"log/slog"

	"defense-management-system/internal/global/deps"
	"defense-management-system/internal/global/logger"
	"defense-management-system/internal/global/storage"
)

var log *slog.Logger

type ModuleUpload struct {
	files storage.Store
}

func (m *ModuleUpload) GetName() string {
	return "Upload"
}

func (m *ModuleUpload) Init(d *deps.Deps) {
	log = logger.New("Upload")
	m.files = d.Files
}
