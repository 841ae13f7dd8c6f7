package model

import "time"

type DefenseGroup struct {
	GroupID     uint        `gorm:"column:group_id;primaryKey" json:"group_id"`
	PlanID      uint        `gorm:"column:plan_id" json:"plan_id"`
	GroupName   string      `gorm:"column:group_name" json:"group_name"`
	GroupLeader uint        `gorm:"column:group_leader" json:"group_leader"`
	VenueID     *uint       `gorm:"column:venue_id" json:"venue_id"`
	DefenseTime *time.Time  `gorm:"column:defense_time" json:"defense_time"`
	Status      GroupStatus `gorm:"column:status" json:"status"`
	Timestamps
}

func (DefenseGroup) TableName() string {
	return "defense_groups"
}

// DefenseGroupRow 分组连带计划名称、组长姓名与场地名称
type DefenseGroupRow struct {
	DefenseGroup
	PlanName        *string `gorm:"column:plan_name" json:"plan_name"`
	GroupLeaderName *string `gorm:"column:group_leader_name" json:"group_leader_name"`
	VenueName       *string `gorm:"column:venue_name" json:"venue_name"`
}

type DefenseGroupMember struct {
	GtID      uint   `gorm:"column:gt_id;primaryKey" json:"gt_id" excel:"记录ID"`
	GroupID   uint   `gorm:"column:group_id" json:"group_id" excel:"分组ID"`
	TeacherID uint   `gorm:"column:teacher_id" json:"teacher_id" excel:"教师ID"`
	Role      string `gorm:"column:role" json:"role" excel:"角色"`
	Timestamps
}

func (DefenseGroupMember) TableName() string {
	return "defense_group_members"
}

type DefenseGroupMemberRow struct {
	DefenseGroupMember
	TeacherName *string `gorm:"column:teacher_name" json:"teacher_name" excel:"教师姓名"`
}

type GroupStudent struct {
	GsID        uint          `gorm:"column:gs_id;primaryKey" json:"gs_id" excel:"记录ID"`
	GroupID     uint          `gorm:"column:group_id" json:"group_id" excel:"分组ID"`
	StudentID   uint          `gorm:"column:student_id" json:"student_id" excel:"学生ID"`
	ThesisTitle string        `gorm:"column:thesis_title" json:"thesis_title" excel:"论文题目"`
	OrderNum    int           `gorm:"column:order_num" json:"order_num" excel:"答辩顺序"`
	Status      DefenseStatus `gorm:"column:status" json:"status" excel:"状态"`
	Timestamps
}

func (GroupStudent) TableName() string {
	return "group_students"
}

type GroupStudentRow struct {
	GroupStudent
	StudentName *string `gorm:"column:student_name" json:"student_name" excel:"学生姓名"`
}
