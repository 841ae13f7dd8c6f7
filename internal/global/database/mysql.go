package database

import (
	"context"
	"database/sql"
	"net"
	"strings"
	"time"

	mysqldriver "github.com/go-sql-driver/mysql"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"defense-management-system/config"
	"defense-management-system/internal/global/logger"
	"defense-management-system/internal/global/sentry"
)

// DSN 构造连接串；密码为空时不写入，withDB 为 false 时只连到服务器
func DSN(cfg config.Mysql, withDB bool) string {
	mc := mysqldriver.NewConfig()
	mc.User = cfg.User
	mc.Passwd = cfg.Password
	mc.Net = "tcp"
	mc.Addr = net.JoinHostPort(cfg.Host, cfg.Port)
	if withDB {
		mc.DBName = cfg.Name
	}
	mc.ParseTime = true
	mc.Loc = time.UTC
	mc.Params = map[string]string{"charset": "utf8mb4"}
	return mc.FormatDSN()
}

// EnsureDatabase 在不指定库的连接上创建数据库
func EnsureDatabase(ctx context.Context, cfg config.Mysql) error {
	conn, err := sql.Open("mysql", DSN(cfg, false))
	if err != nil {
		return err
	}
	defer conn.Close()

	name := strings.ReplaceAll(cfg.Name, "`", "``")
	_, err = conn.ExecContext(ctx,
		"CREATE DATABASE IF NOT EXISTS `"+name+"` CHARACTER SET utf8mb4 COLLATE utf8mb4_unicode_ci")
	return err
}

// Open 创建连接池；不主动 ping，库不可达时由每个请求各自失败
func Open(cfg *config.Config) (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		SkipDefaultTransaction: true,
		DisableAutomaticPing:   true,
	}
	switch cfg.Mode {
	case config.ModeRelease:
		gormConfig.Logger = gormlogger.Discard
	default:
		gormConfig.Logger = gormlogger.Default.LogMode(gormlogger.Info)
	}

	db, err := gorm.Open(mysql.New(mysql.Config{
		DSN:                       DSN(cfg.Mysql, true),
		SkipInitializeWithVersion: true,
		DefaultStringSize:         255,
	}), gormConfig)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	maxOpen := cfg.Mysql.MaxOpenConns
	if maxOpen <= 0 {
		maxOpen = 10
	}
	sqlDB.SetMaxOpenConns(maxOpen)
	if cfg.Mysql.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.Mysql.MaxIdleConns)
	}
	sqlDB.SetConnMaxLifetime(time.Hour)

	if sentry.IsEnabled() {
		if err := db.Use(sentry.NewGormPlugin()); err != nil {
			return nil, err
		}
	}
	return db, nil
}

// Init 建库、建表、写入初始数据；失败只告警，仍返回连接池
func Init(ctx context.Context, cfg *config.Config) (*gorm.DB, error) {
	log := logger.New("Database")

	if err := EnsureDatabase(ctx, cfg.Mysql); err != nil {
		log.Warn("数据库创建失败，请检查数据库配置", "error", err)
	} else {
		log.Info("数据库已就绪", "name", cfg.Mysql.Name)
	}

	db, err := Open(cfg)
	if err != nil {
		return nil, err
	}

	if err := Migrate(ctx, db); err != nil {
		log.Warn("数据表初始化失败，依赖数据库的接口将不可用", "error", err)
		return db, nil
	}
	if err := Seed(ctx, db); err != nil {
		log.Warn("初始数据写入失败", "error", err)
		return db, nil
	}
	if err := Ping(ctx, db); err != nil {
		log.Warn("数据库连接测试失败", "error", err)
	}
	return db, nil
}

func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Stats 连接池统计，供指标采集
func Stats(db *gorm.DB) (sql.DBStats, bool) {
	if db == nil {
		return sql.DBStats{}, false
	}
	sqlDB, err := db.DB()
	if err != nil {
		return sql.DBStats{}, false
	}
	return sqlDB.Stats(), true
}
