package storage

import (
	"context"
	"mime/multipart"

	"defense-management-system/tools"
)

// SaveMultipart 以 字段名-时间戳-随机数.扩展名 命名并保存上传的文件
func SaveMultipart(ctx context.Context, store Store, field string, fh *multipart.FileHeader) (Object, error) {
	f, err := fh.Open()
	if err != nil {
		return Object{}, err
	}
	defer f.Close()

	name := tools.UniqueFileName(field, fh.Filename)
	return store.Save(ctx, name, f, fh.Size, fh.Header.Get("Content-Type"))
}
