package main

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"defense-management-system/internal/global/httpclient"
)

func TestRun(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/ping":
			_, _ = w.Write([]byte(`{"result":{"message":"pong","version":"1.0.0","database":"ok"}}`))
		case "/api/db-status":
			_, _ = w.Write([]byte(`{"error":{"code":500,"message":"数据库状态检查失败","details":"connection refused"}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	client := httpclient.New(srv.URL+"/api", time.Second)

	r := run(client, probes[0])
	assert.True(t, r.OK)
	assert.Equal(t, "message=pong version=1.0.0 database=ok", r.Detail)

	r = run(client, probes[1])
	assert.False(t, r.OK)
	assert.Equal(t, "[500] 数据库状态检查失败 (connection refused)", r.Detail)

	r = run(client, probe{Name: "x", Path: "/missing"})
	assert.False(t, r.OK)
	assert.Contains(t, r.Detail, "404")
}
