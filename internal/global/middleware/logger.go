package middleware

import (
	"bytes"
	"log/slog"
	"strings"
	"time"

	sentrylib "github.com/getsentry/sentry-go"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"

	"defense-management-system/internal/global/response"
)

// maxResponseLogSize 日志中记录的响应体最大大小（10KB）
const maxResponseLogSize = 10 * 1024

// responseBodyWriter 包装 gin.ResponseWriter 以捕获响应体内容
type responseBodyWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *responseBodyWriter) Write(b []byte) (int, error) {
	if remaining := maxResponseLogSize - w.body.Len(); remaining > 0 {
		if len(b) <= remaining {
			w.body.Write(b)
		} else {
			w.body.Write(b[:remaining])
		}
	}
	return w.ResponseWriter.Write(b)
}

func Logger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		blw := &responseBodyWriter{
			ResponseWriter: c.Writer,
			body:           bytes.NewBufferString(""),
		}
		c.Writer = blw

		c.Next()

		attrs := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"query", c.Request.URL.RawQuery,
			"status", c.Writer.Status(),
			"latency", time.Since(start).String(),
			"client_ip", c.ClientIP(),
			"request_id", c.GetString(requestIDKey),
		}
		if v, ok := c.Get(response.ErrorContextKey); ok {
			if e, ok := v.(*response.Error); ok {
				attrs = append(attrs, "code", e.Code)
			}
		}
		// 导出的 xlsx 等二进制内容不记录
		if strings.HasPrefix(c.Writer.Header().Get("Content-Type"), "application/json") {
			body := blw.body.String()
			if blw.body.Len() >= maxResponseLogSize {
				body += "...(truncated)"
			}
			attrs = append(attrs, "response_body", body)
		}
		log.Info("HTTP Request", attrs...)
	}
}

// SentryEnrichIP 将客户端 IP 与请求 ID 注入 Sentry Scope，需放在 sentry.Middleware() 之后
func SentryEnrichIP() gin.HandlerFunc {
	return func(c *gin.Context) {
		if hub := sentrygin.GetHubFromContext(c); hub != nil {
			hub.ConfigureScope(func(scope *sentrylib.Scope) {
				clientIP := c.ClientIP()
				scope.SetUser(sentrylib.User{IPAddress: clientIP})
				scope.SetTag("client_ip", clientIP)
				if rid := c.GetString(requestIDKey); rid != "" {
					scope.SetTag("request_id", rid)
				}
				if forwardedFor := c.GetHeader("X-Forwarded-For"); forwardedFor != "" {
					scope.SetTag("x_forwarded_for", forwardedFor)
				}
			})
		}
		c.Next()
	}
}
