package config

type Mode string

const (
	ModeDebug   Mode = "debug"
	ModeRelease Mode = "release"
)

type Config struct {
	Host    string  `envconfig:"HOST" mapstructure:"host"`
	Port    string  `envconfig:"PORT" mapstructure:"port"`
	Prefix  string  `envconfig:"PREFIX" mapstructure:"prefix"`
	Mode    Mode    `envconfig:"MODE" mapstructure:"mode"`
	Storage Storage `envconfig:"UPLOAD" mapstructure:"upload"`
	Mysql   Mysql   `envconfig:"DB" mapstructure:"db"`
	Redis   Redis   `envconfig:"REDIS" mapstructure:"redis"`
	Session Session `envconfig:"SESSION" mapstructure:"session"`
	Log     Log     `envconfig:"LOG" mapstructure:"log"`
	S3      S3      `envconfig:"S3" mapstructure:"s3"`
	Sentry  Sentry  `envconfig:"SENTRY" mapstructure:"sentry"`
}

// 嵌套结构只用 split_words 推导变量名（DB_USER、UPLOAD_PATH）；
// 写了 envconfig 标签的字段在带前缀变量缺失时会回退读取 USER、PATH 这类同名变量

// Storage 上传文件的本地存储
type Storage struct {
	Path    string `split_words:"true" mapstructure:"path"`     // 上传目录，对应 UPLOAD_PATH
	BaseURL string `split_words:"true" mapstructure:"base_url"` // 文件访问前缀
	MaxSize int64  `split_words:"true" mapstructure:"max_size"` // 请求体上限（字节）
}

type S3 struct {
	Endpoint  string `split_words:"true" mapstructure:"endpoint"`
	BaseURL   string `split_words:"true" mapstructure:"base_url"`
	Bucket    string `split_words:"true" mapstructure:"bucket"`
	Region    string `split_words:"true" mapstructure:"region"`
	AccessKey string `split_words:"true" mapstructure:"access_key"`
	SecretKey string `split_words:"true" mapstructure:"secret_key"`
	Prefix    string `split_words:"true" mapstructure:"prefix"`
	PathStyle bool   `split_words:"true" mapstructure:"path_style"`
}

type Mysql struct {
	Host         string `split_words:"true" mapstructure:"host"`
	Port         string `split_words:"true" mapstructure:"port"`
	User         string `split_words:"true" mapstructure:"user"`
	Password     string `split_words:"true" mapstructure:"password"` // 为空时不写入连接配置
	Name         string `split_words:"true" mapstructure:"name"`
	MaxOpenConns int    `split_words:"true" mapstructure:"max_open_conns"`
	MaxIdleConns int    `split_words:"true" mapstructure:"max_idle_conns"`
}

type Redis struct {
	Host     string `split_words:"true" mapstructure:"host"`
	Port     string `split_words:"true" mapstructure:"port"`
	Password string `split_words:"true" mapstructure:"password"`
	DB       int    `split_words:"true" mapstructure:"db"`
}

type Session struct {
	TTLHours int `split_words:"true" mapstructure:"ttl_hours"`
}

type Sentry struct {
	Dsn         string  `split_words:"true" mapstructure:"dsn"`
	Environment string  `split_words:"true" mapstructure:"environment"`
	SampleRate  float64 `split_words:"true" mapstructure:"sample_rate"`
	DBSlowMs    int     `split_words:"true" mapstructure:"db_slow_ms"`
}

type Log struct {
	FilePath   string `split_words:"true" mapstructure:"file_path"`   // 日志文件路径
	Level      string `split_words:"true" mapstructure:"level"`       // 日志级别：debug, info, warn, error
	MaxSize    int    `split_words:"true" mapstructure:"max_size"`    // 日志文件最大大小（MB）
	MaxBackups int    `split_words:"true" mapstructure:"max_backups"` // 保留的旧日志文件数
	MaxAge     int    `split_words:"true" mapstructure:"max_age"`     // 日志文件保留天数
	Compress   bool   `split_words:"true" mapstructure:"compress"`    // 是否压缩旧日志文件
}
