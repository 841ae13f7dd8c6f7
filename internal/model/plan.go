package model

import "time"

type DefensePlan struct {
	PlanID      uint       `gorm:"column:plan_id;primaryKey" json:"plan_id" excel:"计划ID"`
	PlanName    string     `gorm:"column:plan_name" json:"plan_name" excel:"计划名称"`
	PlanDesc    *string    `gorm:"column:plan_desc" json:"plan_desc" excel:"说明"`
	DefenseType string     `gorm:"column:defense_type" json:"defense_type" excel:"答辩类型"`
	StartTime   *time.Time `gorm:"column:start_time" json:"start_time" excel:"开始时间"`
	EndTime     *time.Time `gorm:"column:end_time" json:"end_time" excel:"结束时间"`
	Status      PlanStatus `gorm:"column:status" json:"status" excel:"状态"`
	Timestamps
}

func (DefensePlan) TableName() string {
	return "defense_plans"
}
