package tools

import (
	"strconv"
	"strings"
	"time"
)

// DateTimeLayout 数据库 DATETIME 的文本格式
const DateTimeLayout = "2006-01-02 15:04:05"

// 不带时区的格式按 UTC 解析
var dateTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.000Z",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006/01/02 15:04:05",
	"2006/01/02 15:04",
	"2006-01-02",
	"2006/01/02",
}

// ParseDateTime 将任意常见格式的时间字符串解析为绝对时间
func ParseDateTime(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateTimeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, true
		}
	}
	// 毫秒时间戳
	if ms, err := strconv.ParseInt(s, 10, 64); err == nil && len(s) >= 10 {
		return time.UnixMilli(ms), true
	}
	return time.Time{}, false
}

// FormatDateTime 规范化为 YYYY-MM-DD HH:MM:SS（UTC），空值或无法解析时返回 nil
func FormatDateTime(s string) *string {
	t, ok := ParseDateTime(s)
	if !ok {
		return nil
	}
	formatted := t.UTC().Format(DateTimeLayout)
	return &formatted
}
