package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
)

type probe struct {
	Name string
	Path string
}

var probes = []probe{
	{Name: "接口连通", Path: "/ping"},
	{Name: "数据库状态", Path: "/db-status"},
}

type envelope struct {
	Result json.RawMessage `json:"result"`
	Error  *struct {
		Code    int32  `json:"code"`
		Message string `json:"message"`
		Details string `json:"details"`
	} `json:"error"`
}

type report struct {
	Name   string
	OK     bool
	Detail string
}

func (r report) String() string {
	mark := "✅"
	if !r.OK {
		mark = "❌"
	}
	return fmt.Sprintf("%s %s: %s", mark, r.Name, r.Detail)
}

func run(client *resty.Client, p probe) report {
	var env envelope
	resp, err := client.R().SetResult(&env).Get(p.Path)
	if err != nil {
		return report{Name: p.Name, Detail: "请求失败: " + err.Error()}
	}
	if resp.IsError() {
		return report{Name: p.Name, Detail: "HTTP " + resp.Status()}
	}
	if env.Error != nil {
		msg := env.Error.Message
		if env.Error.Details != "" {
			msg += " (" + env.Error.Details + ")"
		}
		return report{Name: p.Name, Detail: fmt.Sprintf("[%d] %s", env.Error.Code, msg)}
	}
	return report{Name: p.Name, OK: true, Detail: summarize(env.Result)}
}

// summarize 只展示结果中的标量字段
func summarize(raw json.RawMessage) string {
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return string(raw)
	}
	var parts []string
	for _, k := range []string{"message", "version", "database", "defense_plans_count"} {
		if v, ok := m[k]; ok {
			parts = append(parts, fmt.Sprintf("%s=%v", k, v))
		}
	}
	if tables, ok := m["tables"].([]any); ok {
		parts = append(parts, fmt.Sprintf("tables=%d", len(tables)))
	}
	return strings.Join(parts, " ")
}
