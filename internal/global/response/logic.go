package response

import (
	"errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// ErrorContextKey 是用于在 gin.Context 中存储错误对象的键
const ErrorContextKey = "error"

// Error 业务错误，Code 沿用 HTTP 语义，但响应状态码恒为 200
type Error struct {
	Code    int32  `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
	// cause 保存原始错误，仅用于日志与 Sentry，不返回给调用方
	cause error
	stack pkgerrors.StackTrace
}

type stackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

func newError(code int32, msg string) *Error {
	return &Error{
		Code:    code,
		Message: msg,
	}
}

func (e *Error) Error() string {
	return fmt.Sprintf("code:%d, msg:%s", e.Code, e.Message)
}

// GetCode 实现 sentry.CodedError 接口
func (e *Error) GetCode() int32 {
	return e.Code
}

func (e *Error) Unwrap() error {
	return e.cause
}

func (e *Error) StackTrace() pkgerrors.StackTrace {
	if e.stack != nil {
		return e.stack
	}
	if st, ok := e.cause.(stackTracer); ok {
		return st.StackTrace()
	}
	return nil
}

func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code && e.Message == t.Message
}

func (e *Error) clone() *Error {
	c := *e
	return &c
}

// WithOrigin 记录原始错误（带堆栈），不会出现在响应中
func (e *Error) WithOrigin(err error) *Error {
	if err == nil {
		return e
	}
	if _, ok := err.(stackTracer); !ok {
		err = pkgerrors.WithStack(err)
	}
	n := e.clone()
	n.cause = err
	if st, ok := err.(stackTracer); ok {
		n.stack = st.StackTrace()
	}
	return n
}

// WithTips 替换为面向用户的提示信息
func (e *Error) WithTips(msg string) *Error {
	n := e.clone()
	n.Message = msg
	return n
}

// WithDetails 在响应中附带诊断信息，仅供运维排查接口使用
func (e *Error) WithDetails(details string) *Error {
	n := e.clone()
	n.Details = details
	return n
}

// Origin 返回原始错误描述，用于服务端日志
func (e *Error) Origin() string {
	if e.cause == nil {
		return ""
	}
	return e.cause.Error()
}
