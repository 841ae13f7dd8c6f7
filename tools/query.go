package tools

import (
	"math"
	"strconv"
	"strings"
)

const (
	DefaultPage = 1
	DefaultSize = 10
	MaxSize     = 1000
)

// ParseIntFilter 解析数值过滤条件，无效值视为未传
func ParseIntFilter(raw string) (int64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// ParsePage 解析分页参数，缺省或非正数时使用默认值，size 不超过 MaxSize
func ParsePage(pageRaw, sizeRaw string) (page, size int) {
	page, size = DefaultPage, DefaultSize
	if n, ok := ParseIntFilter(pageRaw); ok && n > 0 {
		page = int(min(n, math.MaxInt32))
	}
	if n, ok := ParseIntFilter(sizeRaw); ok && n > 0 {
		size = int(min(n, MaxSize))
	}
	return page, size
}

// Offset 计算分页偏移；溢出时取 math.MaxInt，查询结果为空页而不是回到第一页
func Offset(page, size int) int {
	if page <= 1 || size <= 0 {
		return 0
	}
	if page-1 > math.MaxInt/size {
		return math.MaxInt
	}
	return (page - 1) * size
}

// Like 构造 LIKE 子串匹配参数
func Like(s string) string {
	return "%" + s + "%"
}

// ParseID 解析路径中的主键
func ParseID(raw string) (uint, bool) {
	n, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil || n == 0 {
		return 0, false
	}
	return uint(n), true
}
