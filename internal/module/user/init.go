package user

import (
	"log/slog"

	"gorm.io/gorm"

	"defense-management-system/internal/global/deps"
	"defense-management-system/internal/global/logger"
	"defense-management-system/internal/global/session"
)

var log *slog.Logger

type ModuleUser struct {
	db       *gorm.DB
	sessions session.Store
}

func (u *ModuleUser) GetName() string {
	return "User"
}

func (u *ModuleUser) Init(d *deps.Deps) {
	log = logger.New("User")
	u.db = d.DB
	u.sessions = d.Sessions
}
