package system

import (
	"log/slog"

	"defense-management-system/internal/global/deps"
	"defense-management-system/internal/global/logger"
)

const Version = "1.0.0"

var log *slog.Logger

// ModuleSystem 健康检查、数据库诊断与示例数据
type ModuleSystem struct {
	d *deps.Deps
}

func (m *ModuleSystem) GetName() string {
	return "System"
}

func (m *ModuleSystem) Init(d *deps.Deps) {
	log = logger.New("System")
	m.d = d
}
