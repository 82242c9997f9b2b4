package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Cron     CronConfig     `mapstructure:"cron"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug / release / test
}

type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"` // mysql 或 sqlite
	DSN             string        `mapstructure:"dsn"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	MaxRetries      int           `mapstructure:"max_retries"`
	RetryInterval   time.Duration `mapstructure:"retry_interval"`
}

type AuthConfig struct {
	APIKey    string        `mapstructure:"api_key"`
	JWTSecret string        `mapstructure:"jwt_secret"`
	TokenTTL  time.Duration `mapstructure:"token_ttl"`
}

type CronConfig struct {
	OccupancyReport string `mapstructure:"occupancy_report"`
}

// Addr 返回 gin 監聽位址
func (s ServerConfig) Addr() string {
	return ":" + s.Port
}

// IsRelease 是否為生產環境
func (s ServerConfig) IsRelease() bool {
	return s.Mode == "release"
}

// Load 先載入 .env，再由 viper 讀取預設值與環境變數
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logrus.Infof("No .env file found, using environment variables: %v", err)
	}

	v := viper.New()
	setDefaults(v)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// setDefaults 設置預設值，AutomaticEnv 只會覆蓋已知的 key
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.mode", "release")

	v.SetDefault("database.driver", "mysql")
	v.SetDefault("database.dsn", "partner_user:partner1234@tcp(127.0.0.1:3306)/partner_db?charset=utf8mb4&parseTime=True&loc=Local")
	v.SetDefault("database.max_idle_conns", 10)
	v.SetDefault("database.max_open_conns", 100)
	v.SetDefault("database.conn_max_lifetime", time.Hour)
	v.SetDefault("database.max_retries", 5)
	v.SetDefault("database.retry_interval", 5*time.Second)

	v.SetDefault("auth.api_key", "")
	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.token_ttl", 24*time.Hour)

	v.SetDefault("cron.occupancy_report", "*/5 * * * *")
}
