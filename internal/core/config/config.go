package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type HTTP struct {
	Host            string
	Port            int
	ReadTimeoutSec  int
	WriteTimeoutSec int
	IdleTimeoutSec  int
}

type AdminHTTP struct {
	Enabled bool // cmd/api 同进程内同时启动管理端
	Host    string
	Port    int
}

type Limits struct {
	RPS          float64
	Burst        int
	Concurrency  int64
	MaxBodyBytes int64
	TimeoutSec   int
}

type App struct {
	Name        string
	Env         string
	Mode        string // gin 模式
	CORSOrigins []string
	HTTP        HTTP
	Admin       AdminHTTP
	Limits      Limits
}

type LogFile struct {
	Enable     bool
	Filename   string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

type Log struct {
	Level string
	JSON  bool
	File  LogFile
}

type JWT struct {
	Secret            string
	Issuer            string
	AccessTokenTTLMin int
	AdminEmails       []string
	BcryptCost        int
}

func (j JWT) TTL() time.Duration { return time.Duration(j.AccessTokenTTLMin) * time.Minute }

type Redis struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Prefix   string `mapstructure:"prefix"`
}

type DB struct {
	Driver             string // sqlite / mysql / postgres
	DSN                string
	Username           string
	Password           string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeMin int
	AutoMigrate        bool
	LogLevel           string
}

type FreePosts struct {
	URL         string
	Limit       int
	TimeoutSec  int
	CacheTTLSec int
}

type Config struct {
	App       App
	Log       Log
	JWT       JWT
	DB        DB
	Redis     Redis `mapstructure:"redis"`
	FreePosts FreePosts
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "gin-task-forms")
	v.SetDefault("app.env", "local")
	v.SetDefault("app.mode", "release")
	v.SetDefault("app.http.host", "0.0.0.0")
	v.SetDefault("app.http.port", 4180)
	v.SetDefault("app.http.readTimeoutSec", 5)
	v.SetDefault("app.http.writeTimeoutSec", 15)
	v.SetDefault("app.http.idleTimeoutSec", 60)
	v.SetDefault("app.admin.enabled", false)
	v.SetDefault("app.admin.host", "127.0.0.1")
	v.SetDefault("app.admin.port", 4181)
	v.SetDefault("app.limits.rps", 200)
	v.SetDefault("app.limits.burst", 400)
	v.SetDefault("app.limits.concurrency", 300)
	v.SetDefault("app.limits.maxBodyBytes", 1<<20)
	v.SetDefault("app.limits.timeoutSec", 10)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.json", false)
	v.SetDefault("log.file.enable", false)
	v.SetDefault("log.file.filename", "logs/app.log")
	v.SetDefault("log.file.maxSizeMB", 100)
	v.SetDefault("log.file.maxBackups", 7)
	v.SetDefault("log.file.maxAgeDays", 30)

	// 无默认值的 key 也要登记，AutomaticEnv 才能在 Unmarshal 时覆盖
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.adminEmails", []string{})
	v.SetDefault("jwt.issuer", "gin-task-forms")
	v.SetDefault("jwt.accessTokenTTLMin", 120)
	v.SetDefault("jwt.bcryptCost", 12)

	v.SetDefault("db.driver", "sqlite")
	v.SetDefault("db.dsn", "file:data/app.db?_busy_timeout=5000&_foreign_keys=on")
	v.SetDefault("db.maxOpenConns", 10)
	v.SetDefault("db.maxIdleConns", 5)
	v.SetDefault("db.connMaxLifetimeMin", 30)
	v.SetDefault("db.autoMigrate", true)
	v.SetDefault("db.logLevel", "warn")

	v.SetDefault("db.username", "")
	v.SetDefault("db.password", "")

	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.prefix", "gtf:")

	v.SetDefault("freePosts.url", "https://jsonplaceholder.typicode.com/posts")
	v.SetDefault("freePosts.limit", 5)
	v.SetDefault("freePosts.timeoutSec", 8)
	v.SetDefault("freePosts.cacheTTLSec", 60)
}

// Load 读取 YAML 配置；文件不存在时只用默认值 + 环境变量（APP_ 前缀）
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
		if path == "" {
			path = "./configs/config.local.yaml"
		}
	}
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) validate() error {
	if c.JWT.Secret == "" {
		return errors.New("config: jwt.secret is required (set APP_JWT_SECRET)")
	}
	switch c.DB.Driver {
	case "sqlite", "mysql", "postgres":
	default:
		return fmt.Errorf("config: unsupported db.driver %q", c.DB.Driver)
	}
	return nil
}
