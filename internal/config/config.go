package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// Storage backends
const (
	BackendFile     = "file"
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
)

// Config конфигурация сервиса
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Logs    LogsConfig    `toml:"logs"`
	Metrics MetricsConfig `toml:"metrics"`
	Storage StorageConfig `toml:"storage"`
	Slots   SlotsConfig   `toml:"slots"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// StorageConfig выбор и настройки backend'а хранилища
type StorageConfig struct {
	Backend  string         `toml:"backend"` // file | memory | postgres
	File     FileConfig     `toml:"file"`
	Memory   MemoryConfig   `toml:"memory"`
	Postgres PostgresConfig `toml:"postgres"`
}

// FileConfig настройки файлового хранилища
type FileConfig struct {
	Path string `toml:"path"`
}

// MemoryConfig настройки in-memory хранилища
type MemoryConfig struct {
	SeedSampleData bool `toml:"seed_sample_data"`
}

// PostgresConfig настройки подключения к PostgreSQL
type PostgresConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN собирает строку подключения к PostgreSQL
func (c PostgresConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// SlotsConfig политика генерации слотов
type SlotsConfig struct {
	HorizonDays     int    `toml:"horizon_days"`
	DayStartHour    int    `toml:"day_start_hour"`
	DayEndHour      int    `toml:"day_end_hour"` // не включается
	IntervalMinutes int    `toml:"interval_minutes"`
	WeekStart       string `toml:"week_start"` // today | monday
}

// Load читает конфигурацию из TOML файла и валидирует ее
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// defaultConfig возвращает конфигурацию по умолчанию:
// файловое хранилище и каноническая политика слотов.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "appointment-service",
		},
		Storage: StorageConfig{
			Backend: BackendFile,
			File: FileConfig{
				Path: "storage/bookings.json",
			},
		},
		Slots: SlotsConfig{
			HorizonDays:     domain.DefaultHorizonDays,
			DayStartHour:    domain.DefaultDayStartHour,
			DayEndHour:      domain.DefaultDayEndHour,
			IntervalMinutes: domain.DefaultIntervalMinutes,
			WeekStart:       domain.WeekStartToday,
		},
	}
}

func (c *Config) validate() error {
	switch c.Storage.Backend {
	case BackendFile, BackendMemory, BackendPostgres:
	default:
		return fmt.Errorf("config: unknown storage backend %q", c.Storage.Backend)
	}

	switch c.Slots.WeekStart {
	case domain.WeekStartToday, domain.WeekStartMonday:
	default:
		return fmt.Errorf("config: unknown week_start %q", c.Slots.WeekStart)
	}

	if c.Slots.HorizonDays <= 0 {
		return fmt.Errorf("config: horizon_days must be positive")
	}

	if c.Slots.DayStartHour < 0 || c.Slots.DayEndHour > 24 || c.Slots.DayStartHour >= c.Slots.DayEndHour {
		return fmt.Errorf("config: invalid working hours %d-%d", c.Slots.DayStartHour, c.Slots.DayEndHour)
	}

	if c.Slots.IntervalMinutes <= 0 || 60%c.Slots.IntervalMinutes != 0 {
		return fmt.Errorf("config: interval_minutes must divide an hour, got %d", c.Slots.IntervalMinutes)
	}

	return nil
}
