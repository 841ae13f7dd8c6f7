package middleware

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"defense-management-system/internal/global/response"
	"defense-management-system/test"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, gin.H{"request_id": c.GetString(requestIDKey)})
	})

	w := test.Do(t, r, http.MethodGet, "/ping", nil)
	generated := w.Header().Get(RequestIDHeader)
	assert.Len(t, generated, 36)

	w = test.Do(t, r, http.MethodGet, "/ping", nil, RequestIDHeader, "abc-123")
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))

	w = test.Do(t, r, http.MethodGet, "/ping", nil, RequestIDHeader, strings.Repeat("x", 65))
	assert.Len(t, w.Header().Get(RequestIDHeader), 36)
}

func TestToken(t *testing.T) {
	r := gin.New()
	r.GET("/info", Token(), func(c *gin.Context) {
		token, _ := GetToken(c)
		response.Success(c, gin.H{"token": token})
	})

	env := test.DoRequest(t, r, http.MethodGet, "/info", nil)
	test.ErrorEqual(t, response.ErrUnauthorized, env)

	env = test.DoRequest(t, r, http.MethodGet, "/info", nil, TokenHeader, "   ")
	test.ErrorEqual(t, response.ErrUnauthorized, env)

	var got struct {
		Token string `json:"token"`
	}
	env = test.DoRequest(t, r, http.MethodGet, "/info", nil, TokenHeader, "mock_token_1715760000000")
	test.Result(t, env, &got)
	assert.Equal(t, "mock_token_1715760000000", got.Token)
}

func TestRecovery(t *testing.T) {
	r := gin.New()
	r.Use(Recovery())
	r.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})

	env := test.DoRequest(t, r, http.MethodGet, "/panic", nil)
	test.ErrorEqual(t, response.ErrServer, env)
}

func TestCors_Preflight(t *testing.T) {
	r := gin.New()
	r.Use(Cors())
	r.POST("/api/student", func(c *gin.Context) {})

	req := httptest.NewRequest(http.MethodOptions, "/api/student", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), TokenHeader)
}

func TestBodyLimit(t *testing.T) {
	r := gin.New()
	r.Use(BodyLimit(8))
	r.POST("/upload", func(c *gin.Context) {
		if _, err := io.ReadAll(c.Request.Body); err != nil {
			response.Fail(c, response.ErrInvalidParam.WithOrigin(err))
			return
		}
		response.Message(c, "ok")
	})

	req := httptest.NewRequest(http.MethodPost, "/upload", bytes.NewReader(make([]byte, 16)))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"code":400`)

	req = httptest.NewRequest(http.MethodPost, "/upload", bytes.NewReader(make([]byte, 4)))
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Contains(t, w.Body.String(), `"message":"ok"`)
}
