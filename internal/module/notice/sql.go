package notice

import (
	"net/url"
	"time"

	"gorm.io/gorm"

	"defense-management-system/internal/model"
	"defense-management-system/tools"
)

// noticeWrite 写入用的公告记录，release_time 已规范化
type noticeWrite struct {
	NoticeID        uint    `gorm:"column:notice_id;primaryKey" json:"notice_id"`
	NoticeTitle     string  `gorm:"column:notice_title" json:"notice_title"`
	Content         string  `gorm:"column:content" json:"content"`
	NoticePublisher string  `gorm:"column:notice_publisher" json:"notice_publisher"`
	ReleaseTime     *string `gorm:"column:release_time" json:"release_time"`
	ExamineState    int8    `gorm:"column:examine_state" json:"examine_state"`
	Recommend       int8    `gorm:"column:recommend" json:"recommend"`
}

func (noticeWrite) TableName() string {
	return model.Notice{}.TableName()
}

// releaseTime 未传或无法解析时取当前时间
func releaseTime(raw string, now time.Time) *string {
	if s := tools.FormatDateTime(raw); s != nil {
		return s
	}
	s := now.UTC().Format(tools.DateTimeLayout)
	return &s
}

type filter struct {
	Title        string
	ExamineState *int64
	Recommend    *int64
}

// newFilter 标题过滤兼容 notice_title 与 title 两种参数名
func newFilter(q url.Values) filter {
	f := filter{Title: q.Get("notice_title")}
	if f.Title == "" {
		f.Title = q.Get("title")
	}
	if n, ok := tools.ParseIntFilter(q.Get("examine_state")); ok {
		f.ExamineState = &n
	}
	if n, ok := tools.ParseIntFilter(q.Get("recommend")); ok {
		f.Recommend = &n
	}
	return f
}

func withFilter(db *gorm.DB, f filter) *gorm.DB {
	q := db.Model(&model.Notice{})
	if f.Title != "" {
		q = q.Where("notice_title LIKE ?", tools.Like(f.Title))
	}
	if f.ExamineState != nil {
		q = q.Where("examine_state = ?", *f.ExamineState)
	}
	if f.Recommend != nil {
		q = q.Where("recommend = ?", *f.Recommend)
	}
	return q
}
