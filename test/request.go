package test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"defense-management-system/internal/global/response"
)

// Envelope 解码后的统一响应，result 延迟解析
type Envelope struct {
	Result json.RawMessage `json:"result"`
	Error  *response.Error `json:"error"`
}

// Do 向 handler 发送请求，body 为 nil 时不带请求体
func Do(t *testing.T, h http.Handler, method, path string, body any, headers ...string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

// DoRequest 发送请求并解码信封，响应状态码必须为 200
func DoRequest(t *testing.T, h http.Handler, method, path string, body any, headers ...string) Envelope {
	t.Helper()
	w := Do(t, h, method, path, body, headers...)
	require.Equal(t, http.StatusOK, w.Code)
	var env Envelope
	require.NoError(t, json.NewDecoder(w.Body).Decode(&env))
	return env
}
