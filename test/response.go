package test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"defense-management-system/internal/global/response"
)

func ErrorEqual(t *testing.T, expected *response.Error, env Envelope) {
	t.Helper()
	require.NotNil(t, env.Error, "expected error envelope, got result %s", string(env.Result))
	require.Equal(t, expected.Code, env.Error.Code)
	require.Equal(t, expected.Message, env.Error.Message)
}

// ErrorCode 只比较错误码，用于提示文案随场景变化的错误
func ErrorCode(t *testing.T, code int32, env Envelope) {
	t.Helper()
	require.NotNil(t, env.Error, "expected error envelope, got result %s", string(env.Result))
	require.Equal(t, code, env.Error.Code)
}

func NoError(t *testing.T, env Envelope) {
	t.Helper()
	require.Nil(t, env.Error, "unexpected error %+v", env.Error)
	require.NotEmpty(t, env.Result)
}

// Result 将 result 解码到 v
func Result(t *testing.T, env Envelope, v any) {
	t.Helper()
	NoError(t, env)
	require.NoError(t, json.Unmarshal(env.Result, v))
}

// Page 分页结果的解码形式
type Page[T any] struct {
	List  []T   `json:"list"`
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Size  int   `json:"size"`
}
