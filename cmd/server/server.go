package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"defense-management-system/config"
	"defense-management-system/internal/global/database"
	"defense-management-system/internal/global/deps"
	"defense-management-system/internal/global/logger"
	"defense-management-system/internal/global/metrics"
	"defense-management-system/internal/global/middleware"
	"defense-management-system/internal/global/sentry"
	"defense-management-system/internal/global/session"
	"defense-management-system/internal/global/storage"
	"defense-management-system/internal/module"
	"defense-management-system/internal/module/system"
	"defense-management-system/tools"
)

var (
	log *slog.Logger
	d   *deps.Deps
)

func Init() {
	config.Init()
	cfg := config.Get()
	log = logger.New("Server")

	if err := sentry.Init(); err != nil {
		log.Warn("Sentry 初始化失败", "error", err)
	} else if sentry.IsEnabled() {
		log.Info("Sentry Enabled")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := database.Init(ctx, cfg)
	if err != nil {
		log.Error("数据库连接池创建失败", "error", err)
	}

	d = &deps.Deps{
		Config:   cfg,
		DB:       db,
		Sessions: newSessions(ctx, cfg),
		Files:    newFiles(ctx, cfg),
	}

	for _, m := range module.Modules {
		log.Info(fmt.Sprintf("Init Module: %s", m.GetName()))
		m.Init(d)
	}
}

// newSessions 配置了 Redis 时令牌登记在 Redis，否则保存在进程内
func newSessions(ctx context.Context, cfg *config.Config) session.Store {
	ttl := time.Duration(cfg.Session.TTLHours) * time.Hour
	if cfg.Redis.Host != "" {
		s, err := session.NewRedisStore(ctx, cfg.Redis, ttl)
		if err == nil {
			log.Info("会话存储：Redis", "addr", cfg.Redis.Host+":"+cfg.Redis.Port)
			return s
		}
		log.Warn("Redis 不可用，会话改为保存在内存", "error", err)
	}
	return session.NewMemoryStore(ttl)
}

// newFiles 配置了存储桶时上传到 S3，否则写入本地上传目录
func newFiles(ctx context.Context, cfg *config.Config) storage.Store {
	if cfg.S3.Bucket != "" {
		s, err := storage.NewS3Store(ctx, cfg.S3)
		if err == nil {
			log.Info("文件存储：S3", "bucket", cfg.S3.Bucket)
			return s
		}
		log.Warn("S3 初始化失败，文件改为保存到本地", "error", err)
	}
	if !tools.FileExist(cfg.Storage.Path) {
		if err := os.MkdirAll(cfg.Storage.Path, os.ModePerm); err != nil {
			log.Warn("上传目录创建失败", "path", cfg.Storage.Path, "error", err)
		}
	}
	return storage.NewLocalStore(cfg.Storage.Path, cfg.Storage.BaseURL)
}

func Run() {
	cfg := config.Get()
	defer sentry.Flush(2 * time.Second)

	gin.SetMode(string(cfg.Mode))
	r := gin.New()

	r.Use(middleware.RequestID())
	switch cfg.Mode {
	case config.ModeRelease:
		r.Use(middleware.Logger(logger.Get()))
	case config.ModeDebug:
		r.Use(gin.Logger())
	}
	if sentry.IsEnabled() {
		r.Use(sentry.Middleware())
		r.Use(middleware.SentryEnrichIP())
	}
	r.Use(middleware.Cors())
	r.Use(middleware.Recovery())
	r.Use(middleware.BodyLimit(cfg.Storage.MaxSize))
	r.Use(middleware.Metrics())

	r.GET("/", system.Root)
	r.GET("/metrics", func(c *gin.Context) {
		if stats, ok := database.Stats(d.DB); ok {
			metrics.RecordPoolStats(stats)
		}
		c.Next()
	}, metrics.Handler())
	r.Static("/uploads", cfg.Storage.Path)

	for _, m := range module.Modules {
		log.Info(fmt.Sprintf("Init Router: %s", m.GetName()))
		m.InitRouter(r.Group("/" + cfg.Prefix))
	}

	log.Info("服务启动", "addr", cfg.Host+":"+cfg.Port, "prefix", "/"+cfg.Prefix)
	err := r.Run(cfg.Host + ":" + cfg.Port)
	tools.PanicOnErr(err)
}
