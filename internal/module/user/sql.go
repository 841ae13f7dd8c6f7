package user

import (
	"context"
	"net/url"

	"gorm.io/gorm"

	"defense-management-system/internal/model"
	"defense-management-system/tools"
)

type filter struct {
	Username  string
	Nickname  string
	UserGroup string
	State     *int64
}

func newFilter(q url.Values) filter {
	f := filter{
		Username:  q.Get("username"),
		Nickname:  q.Get("nickname"),
		UserGroup: q.Get("user_group"),
	}
	if n, ok := tools.ParseIntFilter(q.Get("state")); ok {
		f.State = &n
	}
	return f
}

func withFilter(db *gorm.DB, f filter) *gorm.DB {
	q := db.Model(&model.User{})
	if f.Username != "" {
		q = q.Where("username LIKE ?", tools.Like(f.Username))
	}
	if f.Nickname != "" {
		q = q.Where("nickname LIKE ?", tools.Like(f.Nickname))
	}
	if f.UserGroup != "" {
		q = q.Where("user_group = ?", f.UserGroup)
	}
	if f.State != nil {
		q = q.Where("state = ?", *f.State)
	}
	return q
}

func takeUser(ctx context.Context, db *gorm.DB, query string, arg any) (*model.User, error) {
	var user model.User
	if err := db.WithContext(ctx).Where(query, arg).Take(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// firstUser 令牌无法对应到用户时的兜底
func firstUser(ctx context.Context, db *gorm.DB) (*model.User, error) {
	var user model.User
	if err := db.WithContext(ctx).Order("user_id ASC").Take(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func usernameTaken(ctx context.Context, db *gorm.DB, username string) (bool, error) {
	var count int64
	err := db.WithContext(ctx).Model(&model.User{}).Where("username = ?", username).Count(&count).Error
	return count > 0, err
}
