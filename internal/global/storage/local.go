package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalStore 保存到本地目录，由 /uploads 静态路由对外提供
type LocalStore struct {
	Dir     string
	BaseURL string
}

func NewLocalStore(dir, baseURL string) *LocalStore {
	return &LocalStore{Dir: dir, BaseURL: strings.TrimRight(baseURL, "/")}
}

func (s *LocalStore) Save(_ context.Context, name string, r io.Reader, _ int64, _ string) (Object, error) {
	if err := os.MkdirAll(s.Dir, os.ModePerm); err != nil {
		return Object{}, err
	}
	name = filepath.Base(name)
	path := filepath.Join(s.Dir, name)

	dst, err := os.Create(path)
	if err != nil {
		return Object{}, err
	}
	defer dst.Close()

	n, err := io.Copy(dst, r)
	if err != nil {
		_ = os.Remove(path)
		return Object{}, err
	}
	return Object{
		Filename: name,
		Path:     path,
		URL:      s.BaseURL + "/" + name,
		Size:     n,
	}, nil
}
