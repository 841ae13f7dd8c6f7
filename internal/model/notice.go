package model

import "time"

type Notice struct {
	NoticeID        uint       `gorm:"column:notice_id;primaryKey" json:"notice_id"`
	NoticeTitle     string     `gorm:"column:notice_title" json:"notice_title"`
	Content         string     `gorm:"column:content" json:"content"`
	NoticePublisher string     `gorm:"column:notice_publisher" json:"notice_publisher"`
	ReleaseTime     *time.Time `gorm:"column:release_time" json:"release_time"`
	ExamineState    int8       `gorm:"column:examine_state" json:"examine_state"`
	Recommend       int8       `gorm:"column:recommend" json:"recommend"`
	ReadCount       int        `gorm:"column:read_count" json:"read_count"`
	Timestamps
}

func (Notice) TableName() string {
	return "notices"
}
