package tools

import (
	"fmt"
	"math/rand/v2"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

const (
	ExcelContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

func FileExist(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// UniqueFileName 生成 字段名-毫秒时间戳-随机数.扩展名 格式的文件名
func UniqueFileName(fieldName, originalName string) string {
	return fmt.Sprintf("%s-%d-%d%s",
		fieldName,
		time.Now().UnixMilli(),
		rand.N(int64(1e9)),
		filepath.Ext(originalName),
	)
}

// SendExcel 以附件形式输出工作簿
func SendExcel(c *gin.Context, f *excelize.File, displayName string) error {
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		return err
	}

	escaped := url.QueryEscape(displayName)
	c.Header(
		"Content-Disposition",
		fmt.Sprintf(`attachment; filename="%s"; filename*=UTF-8''%s`, escaped, escaped),
	)
	c.Data(http.StatusOK, ExcelContentType, buf.Bytes())
	return nil
}
