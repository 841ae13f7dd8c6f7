package student

import (
	"context"
	"net/url"

	"gorm.io/gorm"

	"defense-management-system/internal/model"
	"defense-management-system/tools"
)

const studentColumns = "s.student_id, s.user_id, s.student_name, s.student_no, s.student_gender, s.student_age, " +
	"s.class_name, s.major_name, s.grade, s.state, s.create_time, s.update_time, u.phone, u.email"

type filter struct {
	StudentName string
	StudentNo   string
	ClassName   string
	MajorName   string
	Grade       string
	State       *int64
}

func newFilter(q url.Values) filter {
	f := filter{
		StudentName: q.Get("student_name"),
		StudentNo:   q.Get("student_no"),
		ClassName:   q.Get("class_name"),
		MajorName:   q.Get("major_name"),
		Grade:       q.Get("grade"),
	}
	if n, ok := tools.ParseIntFilter(q.Get("state")); ok {
		f.State = &n
	}
	return f
}

func withFilter(db *gorm.DB, f filter) *gorm.DB {
	q := db.Table("students s").Joins("LEFT JOIN users u ON s.user_id = u.user_id")
	if f.StudentName != "" {
		q = q.Where("s.student_name LIKE ?", tools.Like(f.StudentName))
	}
	if f.StudentNo != "" {
		q = q.Where("s.student_no LIKE ?", tools.Like(f.StudentNo))
	}
	if f.ClassName != "" {
		q = q.Where("s.class_name LIKE ?", tools.Like(f.ClassName))
	}
	if f.MajorName != "" {
		q = q.Where("s.major_name LIKE ?", tools.Like(f.MajorName))
	}
	if f.Grade != "" {
		q = q.Where("s.grade LIKE ?", tools.Like(f.Grade))
	}
	if f.State != nil {
		q = q.Where("s.state = ?", *f.State)
	}
	return q
}

func countStudents(ctx context.Context, db *gorm.DB, f filter) (int64, error) {
	var total int64
	err := withFilter(db.WithContext(ctx), f).Count(&total).Error
	return total, err
}

// selectStudents limit 为 0 时不分页
func selectStudents(ctx context.Context, db *gorm.DB, f filter, offset, limit int) ([]model.StudentRow, error) {
	var rows []model.StudentRow
	q := withFilter(db.WithContext(ctx), f).Select(studentColumns).Order("s.create_time DESC")
	if limit > 0 {
		q = q.Offset(offset).Limit(limit)
	}
	err := q.Scan(&rows).Error
	return rows, err
}

func takeStudent(ctx context.Context, db *gorm.DB, where string, arg any) (*model.StudentRow, error) {
	var row model.StudentRow
	err := db.WithContext(ctx).
		Table("students s").
		Select(studentColumns).
		Joins("LEFT JOIN users u ON s.user_id = u.user_id").
		Where(where, arg).
		Take(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}
