package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const DefaultPresignExpiry = 15 * time.Minute

// PresignedUpload 前端直传对象存储所需的信息
type PresignedUpload struct {
	UploadURL string            `json:"upload_url"`
	FileKey   string            `json:"file_key"`
	FileURL   string            `json:"file_url"` // 上传完成后的访问地址
	ExpiresAt time.Time         `json:"expires_at"`
	Method    string            `json:"method"`
	Headers   map[string]string `json:"headers"` // 上传时必须携带
}

// Presigner 支持生成直传地址的存储；本地目录不支持
type Presigner interface {
	PresignUpload(ctx context.Context, name, contentType string, expires time.Duration) (PresignedUpload, error)
}

func (s *S3Store) PresignUpload(ctx context.Context, name, contentType string, expires time.Duration) (PresignedUpload, error) {
	if expires <= 0 {
		expires = DefaultPresignExpiry
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	key := s.Key(name)

	req, err := s3.NewPresignClient(s.client).PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.cfg.Bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(expires))
	if err != nil {
		return PresignedUpload{}, fmt.Errorf("生成预签名 URL 失败: %w", err)
	}

	headers := map[string]string{"Content-Type": contentType}
	for k, v := range req.SignedHeader {
		if len(v) > 0 {
			headers[k] = v[0]
		}
	}
	return PresignedUpload{
		UploadURL: req.URL,
		FileKey:   key,
		FileURL:   s.URL(key),
		ExpiresAt: time.Now().Add(expires),
		Method:    req.Method,
		Headers:   headers,
	}, nil
}
