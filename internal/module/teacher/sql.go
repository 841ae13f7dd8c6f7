package teacher

import (
	"context"
	"net/url"

	"gorm.io/gorm"

	"defense-management-system/internal/model"
	"defense-management-system/tools"
)

const teacherColumns = "t.teacher_id, t.user_id, t.teacher_name, t.teacher_no, t.teacher_gender, t.teacher_age, " +
	"t.department_name, t.professional_title, t.state, t.create_time, t.update_time, u.phone, u.email"

type filter struct {
	TeacherName       string
	TeacherNo         string
	DepartmentName    string
	ProfessionalTitle string
	State             *int64
}

func newFilter(q url.Values) filter {
	f := filter{
		TeacherName:       q.Get("teacher_name"),
		TeacherNo:         q.Get("teacher_no"),
		DepartmentName:    q.Get("department_name"),
		ProfessionalTitle: q.Get("professional_title"),
	}
	if n, ok := tools.ParseIntFilter(q.Get("state")); ok {
		f.State = &n
	}
	return f
}

func base(db *gorm.DB) *gorm.DB {
	return db.Table("teachers t").Joins("LEFT JOIN users u ON t.user_id = u.user_id")
}

func withFilter(db *gorm.DB, f filter) *gorm.DB {
	q := base(db)
	likes := []struct {
		column string
		value  string
	}{
		{"t.teacher_name", f.TeacherName},
		{"t.teacher_no", f.TeacherNo},
		{"t.department_name", f.DepartmentName},
		{"t.professional_title", f.ProfessionalTitle},
	}
	for _, l := range likes {
		if l.value != "" {
			q = q.Where(l.column+" LIKE ?", tools.Like(l.value))
		}
	}
	if f.State != nil {
		q = q.Where("t.state = ?", *f.State)
	}
	return q
}

// selectTeachers limit 为 0 时返回全部，用于导出
func selectTeachers(ctx context.Context, db *gorm.DB, f filter, offset, limit int) ([]model.TeacherRow, int64, error) {
	var (
		rows  []model.TeacherRow
		total int64
	)
	q := withFilter(db.WithContext(ctx), f).Select(teacherColumns).Order("t.create_time DESC")
	if limit > 0 {
		q = q.Offset(offset).Limit(limit)
	}
	if err := q.Scan(&rows).Error; err != nil {
		return nil, 0, err
	}
	if limit == 0 {
		return rows, int64(len(rows)), nil
	}
	if err := withFilter(db.WithContext(ctx), f).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func takeTeacher(ctx context.Context, db *gorm.DB, id uint) (*model.TeacherRow, error) {
	var row model.TeacherRow
	if err := base(db.WithContext(ctx)).Select(teacherColumns).Where("t.teacher_id = ?", id).Take(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}
