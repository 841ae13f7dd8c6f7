package config

import (
	"errors"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"
)

var (
	cfg  *Config
	once sync.Once
)

// Init 加载配置，优先级：环境变量 > .env > config.yaml > 默认值
func Init() {
	c, err := Load()
	if err != nil {
		panic(err)
	}
	cfg = c
}

// Load 读取配置但不写入全局实例
func Load() (*Config, error) {
	// .env 不存在时忽略
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	c := &Config{}
	if err := v.Unmarshal(c); err != nil {
		return nil, err
	}
	if err := envconfig.Process("", c); err != nil {
		return nil, err
	}
	return c, nil
}

// Get 获取全局配置；未调用 Init 时返回默认配置
func Get() *Config {
	if cfg != nil {
		return cfg
	}
	once.Do(func() {
		if cfg != nil {
			return
		}
		v := viper.New()
		setDefaults(v)
		c := &Config{}
		_ = v.Unmarshal(c)
		cfg = c
	})
	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("host", "")
	v.SetDefault("port", "5000")
	v.SetDefault("prefix", "api")
	v.SetDefault("mode", string(ModeDebug))

	v.SetDefault("upload.path", "./uploads")
	v.SetDefault("upload.base_url", "/uploads")
	v.SetDefault("upload.max_size", 50*1024*1024)

	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", "3306")
	v.SetDefault("db.user", "defense_user")
	v.SetDefault("db.name", "defense_management_system")
	v.SetDefault("db.max_open_conns", 10)
	v.SetDefault("db.max_idle_conns", 10)

	v.SetDefault("redis.port", "6379")
	v.SetDefault("session.ttl_hours", 24)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.max_size", 100)
	v.SetDefault("log.max_backups", 7)
	v.SetDefault("log.max_age", 30)
}
