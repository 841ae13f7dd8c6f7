package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	sentryslog "github.com/getsentry/sentry-go/slog"
	"gopkg.in/natefinch/lumberjack.v2"

	"defense-management-system/config"
)

const appName = "defense-management-system"

var (
	instance *slog.Logger
	once     sync.Once
)

// fanoutHandler 将同一条记录分发给多个 handler
type fanoutHandler []slog.Handler

func (h fanoutHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range h {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (h fanoutHandler) Handle(ctx context.Context, r slog.Record) error {
	for _, handler := range h {
		if !handler.Enabled(ctx, r.Level) {
			continue
		}
		if err := handler.Handle(ctx, r.Clone()); err != nil {
			return err
		}
	}
	return nil
}

func (h fanoutHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := make(fanoutHandler, len(h))
	for i, handler := range h {
		next[i] = handler.WithAttrs(attrs)
	}
	return next
}

func (h fanoutHandler) WithGroup(name string) slog.Handler {
	next := make(fanoutHandler, len(h))
	for i, handler := range h {
		next[i] = handler.WithGroup(name)
	}
	return next
}

// output release 模式且配置了文件路径时写入轮转文件
func output(cfg *config.Config) io.Writer {
	if cfg.Mode == config.ModeRelease && cfg.Log.FilePath != "" {
		return &lumberjack.Logger{
			Filename:   cfg.Log.FilePath,
			MaxSize:    cfg.Log.MaxSize,
			MaxBackups: cfg.Log.MaxBackups,
			MaxAge:     cfg.Log.MaxAge,
			Compress:   cfg.Log.Compress,
		}
	}
	return os.Stdout
}

// Get 获取全局 Logger 实例
func Get() *slog.Logger {
	once.Do(func() {
		cfg := config.Get()
		opts := &slog.HandlerOptions{
			AddSource: cfg.Mode == config.ModeRelease,
			Level:     level(cfg.Log.Level),
		}

		var base slog.Handler
		if cfg.Mode == config.ModeRelease {
			base = slog.NewJSONHandler(output(cfg), opts)
		} else {
			base = slog.NewTextHandler(output(cfg), opts)
		}

		handler := base
		if cfg.Sentry.Dsn != "" {
			handler = fanoutHandler{base, sentryslog.Option{
				EventLevel: []slog.Level{slog.LevelError},
				LogLevel:   []slog.Level{slog.LevelWarn, slog.LevelError},
				AddSource:  cfg.Mode == config.ModeRelease,
			}.NewSentryHandler(context.Background())}
		}

		instance = slog.New(handler).With(
			"app_name", appName,
			"env", string(cfg.Mode),
		)
	})
	return instance
}

// New 创建带模块字段的 Logger
func New(module string) *slog.Logger {
	return Get().With("module", module)
}

type requestContext interface {
	ClientIP() string
	GetHeader(string) string
	GetString(string) string
}

// WithContext 附加请求相关字段：客户端 IP 与请求 ID
func WithContext(base *slog.Logger, c requestContext) *slog.Logger {
	l := base.With("client_ip", c.ClientIP())
	if rid := c.GetString("request_id"); rid != "" {
		l = l.With("request_id", rid)
	}
	if forwardedFor := c.GetHeader("X-Forwarded-For"); forwardedFor != "" {
		l = l.With("x_forwarded_for", forwardedFor)
	}
	return l
}

func level(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
