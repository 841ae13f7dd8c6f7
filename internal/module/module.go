package module

import (
	"github.com/gin-gonic/gin"

	"defense-management-system/internal/global/deps"
	"defense-management-system/internal/module/group"
	"defense-management-system/internal/module/notice"
	"defense-management-system/internal/module/paper"
	"defense-management-system/internal/module/plan"
	"defense-management-system/internal/module/score"
	"defense-management-system/internal/module/student"
	"defense-management-system/internal/module/system"
	"defense-management-system/internal/module/teacher"
	"defense-management-system/internal/module/upload"
	"defense-management-system/internal/module/user"
)

type Module interface {
	GetName() string
	Init(d *deps.Deps)
	InitRouter(r *gin.RouterGroup)
}

var Modules []Module

func registerModule(m []Module) {
	Modules = append(Modules, m...)
}

func init() {
	// Register your module here
	registerModule([]Module{
		&system.ModuleSystem{},
		&user.ModuleUser{},
		&student.ModuleStudent{},
		&teacher.ModuleTeacher{},
		&plan.ModulePlan{},
		&group.ModuleGroup{},
		&paper.ModulePaper{},
		&notice.ModuleNotice{},
		&score.ModuleScore{},
		&upload.ModuleUpload{},
	})
}
