package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Storage   StorageConfig   `mapstructure:"storage"`
	JWT       JWTConfig       `mapstructure:"jwt"`
	Admin     AdminConfig     `mapstructure:"admin"`
	SMTP      SMTPConfig      `mapstructure:"smtp"`
	Chat      ChatConfig      `mapstructure:"chat"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	CORS      CORSConfig      `mapstructure:"cors"`
	Log       LogConfig       `mapstructure:"log"`
}

type ServerConfig struct {
	Port           int           `mapstructure:"port" envconfig:"SERVER_PORT"`
	ReadTimeout    time.Duration `mapstructure:"read_timeout"`
	WriteTimeout   time.Duration `mapstructure:"write_timeout"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

// StorageConfig selects the document store backend. Driver is one of
// file, redis, postgres.
type StorageConfig struct {
	Driver string `mapstructure:"driver" envconfig:"STORAGE_DRIVER"`
	Key    string `mapstructure:"key" envconfig:"STORAGE_KEY"`

	// file driver
	Path string `mapstructure:"path" envconfig:"STORAGE_PATH"`

	// redis driver
	RedisURL string `mapstructure:"redis_url" envconfig:"STORAGE_REDIS_URL"`

	// postgres driver
	PostgresDSN string `mapstructure:"postgres_dsn" envconfig:"STORAGE_POSTGRES_DSN"`
}

type JWTConfig struct {
	Secret      string        `mapstructure:"secret" envconfig:"JWT_SECRET"`
	ExpiryHours int           `mapstructure:"expiry_hours"`
	Expiry      time.Duration `mapstructure:"-" envconfig:"-"`
}

// AdminConfig is the single admin identity; there is no user table.
type AdminConfig struct {
	Email        string `mapstructure:"email" envconfig:"ADMIN_EMAIL"`
	PasswordHash string `mapstructure:"password_hash" envconfig:"ADMIN_PASSWORD_HASH"`
}

type SMTPConfig struct {
	Host     string `mapstructure:"host" envconfig:"SMTP_HOST"`
	Port     int    `mapstructure:"port" envconfig:"SMTP_PORT"`
	Username string `mapstructure:"username" envconfig:"SMTP_USERNAME"`
	Password string `mapstructure:"password" envconfig:"SMTP_PASSWORD"`
	From     string `mapstructure:"from" envconfig:"SMTP_FROM"`
}

// Enabled reports whether outgoing mail is configured at all.
func (c SMTPConfig) Enabled() bool { return c.Host != "" }

type ChatConfig struct {
	APIKey     string        `mapstructure:"api_key" envconfig:"GEMINI_API_KEY"`
	Model      string        `mapstructure:"model"`
	HistoryTTL time.Duration `mapstructure:"history_ttl"`
}

type RateLimitConfig struct {
	Enabled           bool    `mapstructure:"enabled"`
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`
	Burst             int     `mapstructure:"burst"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" envconfig:"LOG_LEVEL"`
	Pretty bool   `mapstructure:"pretty"`
}

// LoadConfig reads config.yaml and overlays environment variables prefixed
// with HOSPITAL_.
func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := envconfig.Process("hospital", &config); err != nil {
		return nil, fmt.Errorf("failed to process environment overrides: %w", err)
	}

	if config.JWT.ExpiryHours <= 0 {
		config.JWT.ExpiryHours = 24
	}
	config.JWT.Expiry = time.Duration(config.JWT.ExpiryHours) * time.Hour

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", "15s")
	viper.SetDefault("server.write_timeout", "15s")
	viper.SetDefault("server.request_timeout", "30s")
	viper.SetDefault("storage.driver", "file")
	viper.SetDefault("storage.key", "hospital_db")
	viper.SetDefault("storage.path", "hospital_db.json")
	viper.SetDefault("jwt.expiry_hours", 24)
	viper.SetDefault("chat.model", "gemini-1.5-flash")
	viper.SetDefault("chat.history_ttl", "30m")
	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.requests_per_second", 20)
	viper.SetDefault("rate_limit.burst", 40)
	viper.SetDefault("cors.allowed_origins", []string{"*"})
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.pretty", false)
}
