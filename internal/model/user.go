package model

// UserGroup 用户身份
type UserGroup string

const (
	UserGroupAdmin   UserGroup = "admin"
	UserGroupTeacher UserGroup = "teacher"
	UserGroupStudent UserGroup = "student"
)

func (g UserGroup) Valid() bool {
	switch g {
	case UserGroupAdmin, UserGroupTeacher, UserGroupStudent:
		return true
	}
	return false
}

type User struct {
	UserID    uint      `gorm:"column:user_id;primaryKey" json:"user_id"`
	Username  string    `gorm:"column:username" json:"username"`
	Password  string    `gorm:"column:password" json:"-"`
	Nickname  string    `gorm:"column:nickname" json:"nickname"`
	Phone     *string   `gorm:"column:phone" json:"phone"`
	Email     *string   `gorm:"column:email" json:"email"`
	UserGroup UserGroup `gorm:"column:user_group" json:"user_group"`
	Avatar    *string   `gorm:"column:avatar" json:"avatar"`
	State     State     `gorm:"column:state" json:"state"`
	Timestamps
}

func (User) TableName() string {
	return "users"
}

// Profile 登录与个人信息接口返回的用户视图
type Profile struct {
	Token     string    `json:"token,omitempty"`
	UserID    uint      `json:"user_id"`
	Username  string    `json:"username"`
	Nickname  string    `json:"nickname"`
	Phone     *string   `json:"phone"`
	Email     *string   `json:"email"`
	UserGroup UserGroup `json:"user_group"`
	Avatar    *string   `json:"avatar"`
}

func (u *User) Profile() Profile {
	return Profile{
		UserID:    u.UserID,
		Username:  u.Username,
		Nickname:  u.Nickname,
		Phone:     u.Phone,
		Email:     u.Email,
		UserGroup: u.UserGroup,
		Avatar:    u.Avatar,
	}
}
