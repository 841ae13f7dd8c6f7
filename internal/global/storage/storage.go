package storage

import (
	"context"
	"io"
)

// Object 已保存文件的描述
type Object struct {
	Filename string `json:"filename"`
	Path     string `json:"path"`
	URL      string `json:"url"`
	Size     int64  `json:"size"`
}

// Store 上传文件的落盘位置：本地目录或对象存储
type Store interface {
	Save(ctx context.Context, name string, r io.Reader, size int64, contentType string) (Object, error)
}
