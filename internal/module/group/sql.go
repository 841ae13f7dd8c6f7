package group

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"gorm.io/gorm"

	"defense-management-system/internal/model"
	"defense-management-system/tools"
)

// 固定编号的答辩场地，其余编号显示为“地点<n>”
var venues = []string{"学术楼101", "学术楼102", "学术楼201", "学术楼202", "学术楼301"}

var groupColumns = "g.*, p.plan_name, t.teacher_name AS group_leader_name, " + venueCase() + " AS venue_name"

func venueCase() string {
	var b strings.Builder
	b.WriteString("CASE g.venue_id")
	for i, name := range venues {
		fmt.Fprintf(&b, " WHEN %d THEN '%s'", i+1, name)
	}
	b.WriteString(" ELSE CONCAT('地点', g.venue_id) END")
	return b.String()
}

// groupWrite 写入用的分组记录，defense_time 已规范化
type groupWrite struct {
	GroupID     uint              `gorm:"column:group_id;primaryKey" json:"group_id"`
	PlanID      uint              `gorm:"column:plan_id" json:"plan_id"`
	GroupName   string            `gorm:"column:group_name" json:"group_name"`
	GroupLeader uint              `gorm:"column:group_leader" json:"group_leader"`
	VenueID     uint              `gorm:"column:venue_id" json:"venue_id"`
	DefenseTime *string           `gorm:"column:defense_time" json:"defense_time"`
	Status      model.GroupStatus `gorm:"column:status" json:"status"`
}

func (groupWrite) TableName() string {
	return model.DefenseGroup{}.TableName()
}

type filter struct {
	GroupName string
	PlanID    *int64
	Status    *int64
}

func newFilter(q url.Values) filter {
	f := filter{GroupName: q.Get("group_name")}
	if n, ok := tools.ParseIntFilter(q.Get("plan_id")); ok {
		f.PlanID = &n
	}
	if n, ok := tools.ParseIntFilter(q.Get("status")); ok {
		f.Status = &n
	}
	return f
}

func joined(db *gorm.DB) *gorm.DB {
	return db.Table("defense_groups g").
		Joins("LEFT JOIN defense_plans p ON g.plan_id = p.plan_id").
		Joins("LEFT JOIN teachers t ON g.group_leader = t.teacher_id")
}

func withFilter(db *gorm.DB, f filter) *gorm.DB {
	q := joined(db)
	if f.PlanID != nil {
		q = q.Where("g.plan_id = ?", *f.PlanID)
	}
	if f.GroupName != "" {
		q = q.Where("g.group_name LIKE ?", tools.Like(f.GroupName))
	}
	if f.Status != nil {
		q = q.Where("g.status = ?", *f.Status)
	}
	return q
}

func selectGroups(ctx context.Context, db *gorm.DB, f filter, offset, limit int) (rows []model.DefenseGroupRow, total int64, err error) {
	err = withFilter(db.WithContext(ctx), f).
		Select(groupColumns).
		Order("g.create_time DESC").
		Offset(offset).
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	err = withFilter(db.WithContext(ctx), f).Count(&total).Error
	return rows, total, err
}

func takeGroup(ctx context.Context, db *gorm.DB, id uint) (*model.DefenseGroupRow, error) {
	var row model.DefenseGroupRow
	if err := joined(db.WithContext(ctx)).Select(groupColumns).Where("g.group_id = ?", id).Take(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func selectMembers(ctx context.Context, db *gorm.DB, groupID uint) ([]model.DefenseGroupMemberRow, error) {
	var rows []model.DefenseGroupMemberRow
	err := db.WithContext(ctx).
		Table("defense_group_members gm").
		Select("gm.*, t.teacher_name").
		Joins("LEFT JOIN teachers t ON gm.teacher_id = t.teacher_id").
		Where("gm.group_id = ?", groupID).
		Scan(&rows).Error
	return rows, err
}

func selectStudents(ctx context.Context, db *gorm.DB, groupID uint) ([]model.GroupStudentRow, error) {
	var rows []model.GroupStudentRow
	err := db.WithContext(ctx).
		Table("group_students gs").
		Select("gs.*, s.student_name").
		Joins("LEFT JOIN students s ON gs.student_id = s.student_id").
		Where("gs.group_id = ?", groupID).
		Order("gs.order_num ASC").
		Scan(&rows).Error
	return rows, err
}

// deleteCascade 先删成员与学生，再删分组，须在事务内调用
func deleteCascade(tx *gorm.DB, id uint) error {
	if err := tx.Where("group_id = ?", id).Delete(&model.DefenseGroupMember{}).Error; err != nil {
		return err
	}
	if err := tx.Where("group_id = ?", id).Delete(&model.GroupStudent{}).Error; err != nil {
		return err
	}
	return tx.Where("group_id = ?", id).Delete(&model.DefenseGroup{}).Error
}
