package database

import (
	"context"

	"gorm.io/gorm"

	"defense-management-system/internal/global/metrics"
)

// Transaction 在同一连接上执行 fn，fn 返回错误时整体回滚
// 回滚本身的错误被忽略，调用方只看到 fn 的错误
func Transaction(ctx context.Context, db *gorm.DB, operation string, fn func(tx *gorm.DB) error) error {
	err := db.WithContext(ctx).Transaction(fn)
	metrics.RecordTransaction(operation, err)
	return err
}
