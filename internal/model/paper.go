package model

type Paper struct {
	PaperID        uint        `gorm:"column:paper_id;primaryKey" json:"paper_id"`
	StudentID      uint        `gorm:"column:student_id" json:"student_id"`
	ThesisTitle    string      `gorm:"column:thesis_title" json:"thesis_title"`
	ThesisAbstract *string     `gorm:"column:thesis_abstract" json:"thesis_abstract"`
	Keywords       *string     `gorm:"column:keywords" json:"keywords"`
	AdvisorID      uint        `gorm:"column:advisor_id" json:"advisor_id"`
	FilePath       *string     `gorm:"column:file_path" json:"file_path"`
	FileSize       *float64    `gorm:"column:file_size" json:"file_size"`
	Status         PaperStatus `gorm:"column:status" json:"status"`
	Timestamps
}

func (Paper) TableName() string {
	return "papers"
}

type PaperRow struct {
	Paper
	StudentName *string `gorm:"column:student_name" json:"student_name"`
	AdvisorName *string `gorm:"column:advisor_name" json:"advisor_name"`
}
