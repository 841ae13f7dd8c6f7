package httpclient

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// New 创建访问后端接口的客户端，响应统一按 JSON 信封解析
func New(baseURL string, timeout time.Duration) *resty.Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetRetryCount(0)
}
