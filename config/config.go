package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// DefaultConfigYAML 内置默认配置
//
//go:embed default.yaml
var DefaultConfigYAML []byte

// Config 应用配置
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Storage StorageConfig `mapstructure:"storage"`
	Cache   CacheConfig   `mapstructure:"cache"`
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
	// WriteRateLimit 每个 IP 每分钟允许的写请求数，0 表示不限制
	WriteRateLimit int `mapstructure:"write_rate_limit"`
}

// StorageConfig 存储后端配置
type StorageConfig struct {
	// Driver auto / sqlite / mysql / postgres / memory
	Driver   string         `mapstructure:"driver"`
	SQLite   SQLiteConfig   `mapstructure:"sqlite"`
	MySQL    MySQLConfig    `mapstructure:"mysql"`
	Postgres PostgresConfig `mapstructure:"postgres"`
	Memory   MemoryConfig   `mapstructure:"memory"`
}

// SQLiteConfig 本地数据库文件
type SQLiteConfig struct {
	Path string `mapstructure:"path"`
}

// MySQLConfig MySQL 连接配置
type MySQLConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	Charset  string `mapstructure:"charset"`
}

// DSN 构建 MySQL DSN 连接字符串
func (c MySQLConfig) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=%s&parseTime=True&loc=Local",
		c.Username,
		c.Password,
		c.Host,
		c.Port,
		c.DBName,
		c.Charset,
	)
}

// PostgresConfig PostgreSQL 连接配置
type PostgresConfig struct {
	DSN string `mapstructure:"dsn"`
}

// MemoryConfig 内存模式配置
type MemoryConfig struct {
	SeedSample bool `mapstructure:"seed_sample"`
}

// CacheConfig 缓存配置
type CacheConfig struct {
	Redis RedisConfig `mapstructure:"redis"`
}

// RedisConfig 列表缓存
type RedisConfig struct {
	Enabled    bool          `mapstructure:"enabled"`
	URL        string        `mapstructure:"url"`
	Prefix     string        `mapstructure:"prefix"`
	TTLSeconds int           `mapstructure:"ttl_seconds"`
	TTL        time.Duration `mapstructure:"-"`
}

var (
	// GlobalConfig 全局配置实例
	GlobalConfig *Config
)

// LoadConfig 加载配置
// 优先级: 环境变量 > 外部配置文件 > 嵌入的默认配置
// configPath: 可选的外部配置文件路径
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	// 1. 首先加载嵌入的默认配置
	if err := v.ReadConfig(bytes.NewReader(DefaultConfigYAML)); err != nil {
		return nil, fmt.Errorf("读取内置配置失败: %w", err)
	}
	log.Println("已加载内置默认配置")

	// 2. 尝试加载外部配置文件（可选，用于覆盖默认配置）
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.MergeInConfig(); err != nil {
			log.Printf("警告: 无法读取指定配置文件 %s: %v", configPath, err)
		} else {
			log.Printf("已合并外部配置文件: %s", configPath)
		}
	} else {
		externalViper := viper.New()
		externalViper.SetConfigName("config")
		externalViper.SetConfigType("yaml")
		externalViper.AddConfigPath(".")
		externalViper.AddConfigPath("./config")
		externalViper.AddConfigPath("/etc/expensebook")
		externalViper.AddConfigPath("$HOME/.expensebook")

		if err := externalViper.ReadInConfig(); err == nil {
			if err := v.MergeConfigMap(externalViper.AllSettings()); err != nil {
				log.Printf("警告: 合并外部配置失败: %v", err)
			} else {
				log.Printf("已合并外部配置文件: %s", externalViper.ConfigFileUsed())
			}
		}
	}

	// 3. 支持环境变量覆盖，如 EXPENSEBOOK_STORAGE_DRIVER=memory
	v.SetEnvPrefix("EXPENSEBOOK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("解析配置失败: %w", err)
	}

	if cfg.Storage.Driver == "" {
		cfg.Storage.Driver = "auto"
	}
	cfg.Storage.Driver = strings.ToLower(strings.TrimSpace(cfg.Storage.Driver))
	if cfg.Cache.Redis.TTLSeconds <= 0 {
		cfg.Cache.Redis.TTLSeconds = 300
	}
	cfg.Cache.Redis.TTL = time.Duration(cfg.Cache.Redis.TTLSeconds) * time.Second

	GlobalConfig = &cfg

	return &cfg, nil
}

// MustLoadConfig 加载配置，失败则 panic
func MustLoadConfig(configPath string) *Config {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		panic(fmt.Sprintf("加载配置失败: %v", err))
	}
	return cfg
}

// PrintConfig 打印当前配置（隐藏敏感信息）
func PrintConfig() {
	if GlobalConfig == nil {
		return
	}
	log.Printf("当前配置:")
	log.Printf("  服务器: %s (模式: %s)", GlobalConfig.Server.Port, GlobalConfig.Server.Mode)
	switch GlobalConfig.Storage.Driver {
	case "mysql":
		log.Printf("  存储: mysql %s@%s:%s/%s",
			GlobalConfig.Storage.MySQL.Username,
			GlobalConfig.Storage.MySQL.Host,
			GlobalConfig.Storage.MySQL.Port,
			GlobalConfig.Storage.MySQL.DBName)
	case "postgres":
		log.Printf("  存储: postgres")
	default:
		log.Printf("  存储: %s (sqlite 文件: %s)", GlobalConfig.Storage.Driver, GlobalConfig.Storage.SQLite.Path)
	}
	log.Printf("  redis 缓存: %v", GlobalConfig.Cache.Redis.Enabled)
}
