package plan

import (
	"context"
	"net/url"

	"gorm.io/gorm"

	"defense-management-system/internal/model"
	"defense-management-system/tools"
)

// planWrite 写入用的计划记录，时间字段已规范化为数据库文本格式
type planWrite struct {
	PlanID      uint             `gorm:"column:plan_id;primaryKey" json:"plan_id"`
	PlanName    string           `gorm:"column:plan_name" json:"plan_name"`
	PlanDesc    *string          `gorm:"column:plan_desc" json:"plan_desc"`
	DefenseType string           `gorm:"column:defense_type" json:"defense_type"`
	StartTime   *string          `gorm:"column:start_time" json:"start_time"`
	EndTime     *string          `gorm:"column:end_time" json:"end_time"`
	Status      model.PlanStatus `gorm:"column:status" json:"status"`
}

func (planWrite) TableName() string {
	return model.DefensePlan{}.TableName()
}

type filter struct {
	PlanName    string
	DefenseType string
	Status      *int64
}

func newFilter(q url.Values) filter {
	f := filter{
		PlanName:    q.Get("plan_name"),
		DefenseType: q.Get("defense_type"),
	}
	if n, ok := tools.ParseIntFilter(q.Get("status")); ok {
		f.Status = &n
	}
	return f
}

func withFilter(db *gorm.DB, f filter) *gorm.DB {
	q := db.Model(&model.DefensePlan{})
	if f.PlanName != "" {
		q = q.Where("plan_name LIKE ?", tools.Like(f.PlanName))
	}
	if f.DefenseType != "" {
		q = q.Where("defense_type LIKE ?", tools.Like(f.DefenseType))
	}
	if f.Status != nil {
		q = q.Where("status = ?", *f.Status)
	}
	return q
}

func selectPlans(ctx context.Context, db *gorm.DB, f filter, offset, limit int) ([]model.DefensePlan, error) {
	var plans []model.DefensePlan
	q := withFilter(db.WithContext(ctx), f).Order("create_time DESC")
	if limit > 0 {
		q = q.Offset(offset).Limit(limit)
	}
	return plans, q.Find(&plans).Error
}

func countPlans(ctx context.Context, db *gorm.DB, f filter) (total int64, err error) {
	err = withFilter(db.WithContext(ctx), f).Count(&total).Error
	return
}

func takePlan(ctx context.Context, db *gorm.DB, id uint) (*model.DefensePlan, error) {
	var p model.DefensePlan
	if err := db.WithContext(ctx).Where("plan_id = ?", id).Take(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func updateStatus(ctx context.Context, db *gorm.DB, id uint, status model.PlanStatus) error {
	return db.WithContext(ctx).Model(&model.DefensePlan{}).Where("plan_id = ?", id).Update("status", status).Error
}
