package deps

import (
	"gorm.io/gorm"

	"defense-management-system/config"
	"defense-management-system/internal/global/session"
	"defense-management-system/internal/global/storage"
)

// Deps 启动时构造一次、注入到各模块的共享资源
type Deps struct {
	Config   *config.Config
	DB       *gorm.DB
	Sessions session.Store
	Files    storage.Store
}
