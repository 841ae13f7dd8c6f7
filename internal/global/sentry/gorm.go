package sentry

import (
	"time"

	"github.com/getsentry/sentry-go"
	"gorm.io/gorm"

	"defense-management-system/config"
)

const (
	spanKey        = "sentry:span"
	startKey       = "sentry:start"
	callbackPrefix = "sentry_tracing"
)

// GormPlugin 为每条 SQL 创建子 span，父 span 来自请求 context
type GormPlugin struct {
	slowThreshold time.Duration // 为 0 时记录全部查询
}

func NewGormPlugin() *GormPlugin {
	return &GormPlugin{
		slowThreshold: time.Duration(config.Get().Sentry.DBSlowMs) * time.Millisecond,
	}
}

func (p *GormPlugin) Name() string {
	return "SentryTracingPlugin"
}

func (p *GormPlugin) Initialize(db *gorm.DB) error {
	cb := db.Callback()
	hooks := []struct {
		op     string
		name   string
		before func(string, func(*gorm.DB)) error
		after  func(string, func(*gorm.DB)) error
	}{
		{"db.sql.create", "create", cb.Create().Before("gorm:create").Register, cb.Create().After("gorm:create").Register},
		{"db.sql.query", "query", cb.Query().Before("gorm:query").Register, cb.Query().After("gorm:query").Register},
		{"db.sql.update", "update", cb.Update().Before("gorm:update").Register, cb.Update().After("gorm:update").Register},
		{"db.sql.delete", "delete", cb.Delete().Before("gorm:delete").Register, cb.Delete().After("gorm:delete").Register},
		{"db.sql.row", "row", cb.Row().Before("gorm:row").Register, cb.Row().After("gorm:row").Register},
		{"db.sql.raw", "raw", cb.Raw().Before("gorm:raw").Register, cb.Raw().After("gorm:raw").Register},
	}
	for _, h := range hooks {
		if err := h.before(callbackPrefix+":before_"+h.name, p.before(h.op)); err != nil {
			return err
		}
		if err := h.after(callbackPrefix+":after_"+h.name, p.after); err != nil {
			return err
		}
	}
	return nil
}

func (p *GormPlugin) before(operation string) func(*gorm.DB) {
	return func(db *gorm.DB) {
		if db.Statement == nil || db.Statement.Context == nil {
			return
		}
		parent := sentry.SpanFromContext(db.Statement.Context)
		if parent == nil {
			return
		}
		span := parent.StartChild(operation)
		// 只记录表名，SQL 里可能有密码哈希
		span.Description = db.Statement.Table
		span.SetData("db.system", "mysql")
		db.InstanceSet(startKey, time.Now())
		db.InstanceSet(spanKey, span)
	}
}

func (p *GormPlugin) after(db *gorm.DB) {
	v, ok := db.InstanceGet(spanKey)
	if !ok {
		return
	}
	span, ok := v.(*sentry.Span)
	if !ok || span == nil {
		return
	}
	if s, ok := db.InstanceGet(startKey); ok {
		if start, ok := s.(time.Time); ok && p.slowThreshold > 0 && time.Since(start) < p.slowThreshold {
			span.Sampled = sentry.SampledFalse
		}
	}
	span.SetData("db.rows_affected", db.RowsAffected)
	if db.Error != nil {
		span.Status = sentry.SpanStatusInternalError
		span.SetData("db.error", db.Error.Error())
	} else {
		span.Status = sentry.SpanStatusOK
	}
	span.Finish()
}
