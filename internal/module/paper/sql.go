package paper

import (
	"context"
	"math"
	"net/url"

	"gorm.io/gorm"

	"defense-management-system/internal/model"
	"defense-management-system/tools"
)

const paperColumns = "p.*, s.student_name, t.teacher_name AS advisor_name"

type filter struct {
	ThesisTitle string
	StudentName string
	Status      *int64
	AdvisorID   *int64
}

func newFilter(q url.Values) filter {
	f := filter{
		ThesisTitle: q.Get("thesis_title"),
		StudentName: q.Get("student_name"),
	}
	if n, ok := tools.ParseIntFilter(q.Get("status")); ok {
		f.Status = &n
	}
	if n, ok := tools.ParseIntFilter(q.Get("advisor_id")); ok {
		f.AdvisorID = &n
	}
	return f
}

func joined(db *gorm.DB) *gorm.DB {
	return db.Table("papers p").
		Joins("LEFT JOIN students s ON p.student_id = s.student_id").
		Joins("LEFT JOIN teachers t ON p.advisor_id = t.teacher_id")
}

func withFilter(db *gorm.DB, f filter) *gorm.DB {
	q := joined(db)
	if f.ThesisTitle != "" {
		q = q.Where("p.thesis_title LIKE ?", tools.Like(f.ThesisTitle))
	}
	if f.StudentName != "" {
		q = q.Where("s.student_name LIKE ?", tools.Like(f.StudentName))
	}
	if f.Status != nil {
		q = q.Where("p.status = ?", *f.Status)
	}
	if f.AdvisorID != nil {
		q = q.Where("p.advisor_id = ?", *f.AdvisorID)
	}
	return q
}

func selectPapers(ctx context.Context, db *gorm.DB, f filter, offset, limit int) ([]model.PaperRow, int64, error) {
	var (
		rows  []model.PaperRow
		total int64
	)
	err := withFilter(db.WithContext(ctx), f).
		Select(paperColumns).
		Order("p.create_time DESC").
		Offset(offset).
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	if err := withFilter(db.WithContext(ctx), f).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func takePaper(ctx context.Context, db *gorm.DB, id uint) (*model.PaperRow, error) {
	var row model.PaperRow
	if err := joined(db.WithContext(ctx)).Select(paperColumns).Where("p.paper_id = ?", id).Take(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// sizeInKB 文件大小换算为 KB，保留两位小数
func sizeInKB(bytes int64) float64 {
	return math.Round(float64(bytes)/1024*100) / 100
}
