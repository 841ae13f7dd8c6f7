package sentry

import (
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"

	"defense-management-system/config"
)

const release = "defense-management-system@1.0.0"

// codedError 带业务码的错误，仅 5xx 需要上报
type codedError interface {
	error
	GetCode() int32
}

// Init 初始化 Sentry SDK，未配置 DSN 时跳过
func Init() error {
	cfg := config.Get()
	if cfg.Sentry.Dsn == "" {
		return nil
	}

	tracesSampleRate := cfg.Sentry.SampleRate
	if tracesSampleRate <= 0 {
		tracesSampleRate = 1.0
	}
	environment := cfg.Sentry.Environment
	if environment == "" {
		environment = string(cfg.Mode)
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              cfg.Sentry.Dsn,
		Environment:      environment,
		Release:          release,
		SampleRate:       1.0,
		EnableTracing:    true,
		TracesSampleRate: tracesSampleRate,
		EnableLogs:       true,
		BeforeSend: func(event *sentry.Event, _ *sentry.EventHint) *sentry.Event {
			// 登录请求体里有明文密码
			if event.Request != nil {
				event.Request.Data = ""
			}
			return event
		},
	})
	if err != nil {
		return fmt.Errorf("sentry initialization failed: %w", err)
	}
	return nil
}

// IsEnabled 是否已配置 Sentry
func IsEnabled() bool {
	return config.Get().Sentry.Dsn != ""
}

// Middleware 返回 Sentry Gin 中间件；未启用时为空中间件
func Middleware() gin.HandlerFunc {
	if !IsEnabled() {
		return func(c *gin.Context) {
			c.Next()
		}
	}
	return sentrygin.New(sentrygin.Options{
		Repanic:         true, // 交给 Recovery 渲染 500
		WaitForDelivery: false,
		Timeout:         2 * time.Second,
	})
}

// CaptureException 上报服务器错误，业务错误（4xx）不上报
func CaptureException(c *gin.Context, err error) {
	if !IsEnabled() || !shouldReport(err) {
		return
	}
	hub := sentrygin.GetHubFromContext(c)
	if hub == nil {
		return
	}
	hub.WithScope(func(scope *sentry.Scope) {
		scope.SetRequest(c.Request)
		scope.SetTag("path", c.FullPath())
		scope.SetTag("method", c.Request.Method)
		if rid := c.GetString("request_id"); rid != "" {
			scope.SetTag("request_id", rid)
		}
		hub.CaptureException(err)
	})
}

// CapturePanic 上报被 Recovery 拦截的 panic
func CapturePanic(c *gin.Context, r any) {
	if !IsEnabled() {
		return
	}
	hub := sentrygin.GetHubFromContext(c)
	if hub == nil {
		hub = sentry.CurrentHub().Clone()
	}
	hub.WithScope(func(scope *sentry.Scope) {
		scope.SetRequest(c.Request)
		scope.SetLevel(sentry.LevelFatal)
		hub.RecoverWithContext(c.Request.Context(), r)
	})
}

func shouldReport(err error) bool {
	if e, ok := err.(codedError); ok {
		return e.GetCode() >= 500 && e.GetCode() < 600
	}
	return true
}

// Flush 退出前调用，等待事件发送完成
func Flush(timeout time.Duration) {
	sentry.Flush(timeout)
}
