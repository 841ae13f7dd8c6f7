package model

type Student struct {
	StudentID     uint    `gorm:"column:student_id;primaryKey" json:"student_id" excel:"学生ID"`
	UserID        uint    `gorm:"column:user_id" json:"user_id" excel:"用户ID"`
	StudentName   string  `gorm:"column:student_name" json:"student_name" excel:"姓名"`
	StudentNo     string  `gorm:"column:student_no" json:"student_no" excel:"学号"`
	StudentGender *string `gorm:"column:student_gender" json:"student_gender" excel:"性别"`
	StudentAge    *string `gorm:"column:student_age" json:"student_age" excel:"年龄"`
	ClassName     *string `gorm:"column:class_name" json:"class_name" excel:"班级"`
	MajorName     *string `gorm:"column:major_name" json:"major_name" excel:"专业"`
	Grade         *string `gorm:"column:grade" json:"grade" excel:"年级"`
	State         State   `gorm:"column:state" json:"state" excel:"状态"`
	Timestamps
}

func (Student) TableName() string {
	return "students"
}

// StudentRow 学生信息连带所属用户的联系方式
type StudentRow struct {
	Student
	Phone *string `gorm:"column:phone" json:"phone" excel:"电话"`
	Email *string `gorm:"column:email" json:"email" excel:"邮箱"`
}
