package database

import (
	"context"

	"gorm.io/gorm"
)

// Dependency 删除前需要检查的引用关系
type Dependency struct {
	Table   string
	Column  string
	Message string // 存在引用时返回给调用方的提示
}

// CheckDependencies 依次统计引用行数，返回第一个阻止删除的关系提示；无引用时返回空串
func CheckDependencies(ctx context.Context, db *gorm.DB, id uint, deps ...Dependency) (string, error) {
	for _, d := range deps {
		var count int64
		if err := db.WithContext(ctx).Table(d.Table).Where(d.Column+" = ?", id).Count(&count).Error; err != nil {
			return "", err
		}
		if count > 0 {
			return d.Message, nil
		}
	}
	return "", nil
}
