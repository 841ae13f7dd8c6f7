package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"defense-management-system/config"
)

// S3Store 上传到兼容 S3 的对象存储，配置了 S3_BUCKET 时启用
type S3Store struct {
	cfg      config.S3
	client   *s3.Client
	uploader *manager.Uploader
}

func NewS3Store(ctx context.Context, cfg config.S3) (*S3Store, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("S3 bucket 未配置")
	}
	opts := []func(*awsconfig.LoadOptions) error{}
	if cfg.Region != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.Region))
	}
	if cfg.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("加载 S3 配置失败: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.PathStyle
	})
	return &S3Store{cfg: cfg, client: client, uploader: manager.NewUploader(client)}, nil
}

// Key 对象 key，带上配置的前缀
func (s *S3Store) Key(name string) string {
	return strings.TrimLeft(path.Join(strings.Trim(s.cfg.Prefix, "/"), name), "/")
}

// URL 对象的公开访问地址
func (s *S3Store) URL(key string) string {
	base := strings.TrimRight(s.cfg.BaseURL, "/")
	if base == "" {
		base = strings.TrimRight(s.cfg.Endpoint, "/")
	}
	if s.cfg.PathStyle {
		return base + "/" + s.cfg.Bucket + "/" + key
	}
	return base + "/" + key
}

func (s *S3Store) Save(ctx context.Context, name string, r io.Reader, size int64, contentType string) (Object, error) {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	key := s.Key(name)
	_, err := s.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.cfg.Bucket),
		Key:         aws.String(key),
		Body:        r,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return Object{}, fmt.Errorf("上传到 S3 失败: %w", err)
	}
	return Object{
		Filename: name,
		Path:     key,
		URL:      s.URL(key),
		Size:     size,
	}, nil
}
