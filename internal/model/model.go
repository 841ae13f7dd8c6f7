package model

import (
	"time"
)

// Timestamps 由数据库维护的创建/更新时间，只读
type Timestamps struct {
	CreateTime *time.Time `gorm:"column:create_time;->" json:"create_time"`
	UpdateTime *time.Time `gorm:"column:update_time;->" json:"update_time"`
}

// State 账号/档案启用状态
type State int8

const (
	StateDisabled State = 0
	StateEnabled  State = 1
)

// PlanStatus 答辩计划状态，线上传输保持整数编码
type PlanStatus int8

const (
	PlanDraft     PlanStatus = 0
	PlanPending   PlanStatus = 1
	PlanApproved  PlanStatus = 2
	PlanPublished PlanStatus = 3
	PlanRejected  PlanStatus = 4
)

// Auditable 审核只能给出通过或驳回
func (s PlanStatus) Auditable() bool {
	return s == PlanApproved || s == PlanRejected
}

// GroupStatus 答辩分组状态
type GroupStatus int8

const (
	GroupPending   GroupStatus = 0
	GroupScheduled GroupStatus = 1
	GroupFinished  GroupStatus = 2
)

// DefenseStatus 小组学生答辩状态
type DefenseStatus int8

const (
	DefenseWaiting DefenseStatus = 0
	DefenseDone    DefenseStatus = 1
	DefenseAbsent  DefenseStatus = 2
)

// PaperStatus 论文状态
type PaperStatus int8

const (
	PaperDraft     PaperStatus = 0
	PaperSubmitted PaperStatus = 1
	PaperApproved  PaperStatus = 2
	PaperRejected  PaperStatus = 3
)
