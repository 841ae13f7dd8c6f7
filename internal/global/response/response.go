package response

import (
	"errors"
	"net/http"
	"reflect"

	"github.com/gin-gonic/gin"

	"defense-management-system/internal/global/logger"
	"defense-management-system/internal/global/sentry"
)

// Body 统一响应信封：成功时只有 result，失败时只有 error
type Body struct {
	Result any    `json:"result,omitempty"`
	Error  *Error `json:"error,omitempty"`
}

// PageResult 分页列表
type PageResult struct {
	List  any   `json:"list"`
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Size  int   `json:"size"`
}

// ListResult 不分页的列表
type ListResult struct {
	List any `json:"list"`
}

// MessageResult 只携带提示信息的结果
type MessageResult struct {
	Message string `json:"message"`
}

func Success(c *gin.Context, result any) {
	c.JSON(http.StatusOK, Body{Result: result})
}

func Page(c *gin.Context, list any, total int64, page, size int) {
	Success(c, PageResult{List: nonNil(list), Total: total, Page: page, Size: size})
}

func List(c *gin.Context, list any) {
	Success(c, ListResult{List: nonNil(list)})
}

// nonNil 空切片输出为 []，而不是 null
func nonNil(list any) any {
	if list == nil {
		return []any{}
	}
	if v := reflect.ValueOf(list); v.Kind() == reflect.Slice && v.IsNil() {
		return []any{}
	}
	return list
}

func Message(c *gin.Context, msg string) {
	Success(c, MessageResult{Message: msg})
}

// Fail 输出错误信封，HTTP 状态码仍为 200，5xx 错误会上报 Sentry
func Fail(c *gin.Context, err error) {
	var e *Error
	if !errors.As(err, &e) {
		e = ErrServer.WithOrigin(err)
	}
	c.Set(ErrorContextKey, e)
	if e.Code >= 500 {
		if origin := e.Origin(); origin != "" {
			logger.WithContext(logger.New("Response"), c).Error("请求处理失败",
				"path", c.Request.URL.Path,
				"code", e.Code,
				"origin", origin,
			)
		}
		sentry.CaptureException(c, e)
	}
	c.JSON(http.StatusOK, Body{Error: e})
}

// Recovery 将 panic 转为 500 信封
func Recovery(c *gin.Context) {
	if r := recover(); r != nil {
		logger.New("Recovery").Error("panic recovered", "panic", r, "path", c.Request.URL.Path)
		sentry.CapturePanic(c, r)
		c.Abort()
		c.JSON(http.StatusOK, Body{Error: ErrServer})
	}
}
