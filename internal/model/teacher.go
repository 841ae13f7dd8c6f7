package model

type Teacher struct {
	TeacherID         uint    `gorm:"column:teacher_id;primaryKey" json:"teacher_id" excel:"教师ID"`
	UserID            uint    `gorm:"column:user_id" json:"user_id" excel:"用户ID"`
	TeacherName       string  `gorm:"column:teacher_name" json:"teacher_name" excel:"姓名"`
	TeacherNo         string  `gorm:"column:teacher_no" json:"teacher_no" excel:"工号"`
	TeacherGender     *string `gorm:"column:teacher_gender" json:"teacher_gender" excel:"性别"`
	TeacherAge        *string `gorm:"column:teacher_age" json:"teacher_age" excel:"年龄"`
	DepartmentName    *string `gorm:"column:department_name" json:"department_name" excel:"院系"`
	ProfessionalTitle *string `gorm:"column:professional_title" json:"professional_title" excel:"职称"`
	State             State   `gorm:"column:state" json:"state" excel:"状态"`
	Timestamps
}

func (Teacher) TableName() string {
	return "teachers"
}

type TeacherRow struct {
	Teacher
	Phone *string `gorm:"column:phone" json:"phone" excel:"电话"`
	Email *string `gorm:"column:email" json:"email" excel:"邮箱"`
}
