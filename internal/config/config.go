package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
)

// Config конфигурация сервиса
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Database  DatabaseConfig  `toml:"database"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Scheduler SchedulerConfig `toml:"scheduler"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port" validate:"required,min=1,max=65535"`
	ReadTimeout     int `toml:"read_timeout" validate:"min=0"`
	WriteTimeout    int `toml:"write_timeout" validate:"min=0"`
	IdleTimeout     int `toml:"idle_timeout" validate:"min=0"`
	ShutdownTimeout int `toml:"shutdown_timeout" validate:"min=0"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host" validate:"required"`
	Port            int    `toml:"port" validate:"required,min=1,max=65535"`
	User            string `toml:"user" validate:"required"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname" validate:"required"`
	SSLMode         string `toml:"sslmode" validate:"omitempty,oneof=disable require verify-ca verify-full"`
	MaxOpenConns    int    `toml:"max_open_conns" validate:"min=0"`
	MaxIdleConns    int    `toml:"max_idle_conns" validate:"min=0"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime" validate:"min=0"`
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	sslMode := d.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, sslMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	Level string `toml:"level" validate:"omitempty,oneof=debug info warn error"`
	File  string `toml:"file"`
}

// MetricsConfig настройки Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path" validate:"omitempty,startswith=/"`
	ServiceName string `toml:"service_name" validate:"required_if=Enabled true"`
}

// SchedulerConfig периодическое завершение прошедших бронирований
type SchedulerConfig struct {
	Enabled bool `toml:"enabled"`
	// CompletionSpec cron-выражение, по умолчанию ежедневно в 00:05
	CompletionSpec string `toml:"completion_spec"`
	// Timezone определяет "сегодня" для завершения бронирований
	Timezone string `toml:"timezone"`
}

// Location таймзона планировщика (UTC, если не задана)
func (s SchedulerConfig) Location() (*time.Location, error) {
	if s.Timezone == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(s.Timezone)
}

const (
	defaultLogLevel       = "info"
	defaultMetricsPath    = "/metrics"
	defaultCompletionSpec = "5 0 * * *"

	// PasswordEnv переменная окружения, перекрывающая пароль БД из файла
	PasswordEnv = "DB_PASSWORD"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load читает конфигурацию из TOML файла, применяет значения по умолчанию и валидирует
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if password, ok := os.LookupEnv(PasswordEnv); ok {
		cfg.Database.Password = password
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Logs.Level == "" {
		c.Logs.Level = defaultLogLevel
	}
	if c.Metrics.Enabled && c.Metrics.Path == "" {
		c.Metrics.Path = defaultMetricsPath
	}
	if c.Scheduler.CompletionSpec == "" {
		c.Scheduler.CompletionSpec = defaultCompletionSpec
	}
}

// Validate проверяет теги и значения, которые нельзя выразить тегами
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	if _, err := c.Scheduler.Location(); err != nil {
		return fmt.Errorf("config validation failed: scheduler.timezone: %w", err)
	}
	return nil
}
