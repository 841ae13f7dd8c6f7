package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"defense-management-system/internal/global/metrics"
	"defense-management-system/internal/global/response"
)

// Metrics 记录请求数与耗时，endpoint 使用路由模板避免高基数
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		metrics.TrackActiveRequest(true)
		defer metrics.TrackActiveRequest(false)

		c.Next()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())
		// 错误信封的 HTTP 状态恒为 200，用业务码区分
		if v, ok := c.Get(response.ErrorContextKey); ok {
			if e, ok := v.(*response.Error); ok {
				status = strconv.Itoa(int(e.Code))
			}
		}
		metrics.RecordAPIRequest(c.Request.Method, endpoint, status, time.Since(start))
	}
}
