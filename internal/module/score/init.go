package score

import (
	"defense-management-system/internal/global/deps"
)

// ModuleScore 评分与答辩记录尚无数据表，接口只返回空分页
type ModuleScore struct{}

func (m *ModuleScore) GetName() string {
	return "Score"
}

func (m *ModuleScore) Init(*deps.Deps) {}
