package config

import (
	"fmt"
	"os"
	"time"
	_ "time/tzdata"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Database  DatabaseConfig  `toml:"database"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Auth      AuthConfig      `toml:"auth"`
	RateLimit RateLimitConfig `toml:"rate_limit"`
	Autofill  AutofillConfig  `toml:"autofill"`
	SheetDB   SheetDBConfig   `toml:"sheetdb"`
	Calendar  CalendarConfig  `toml:"calendar"`
}

// ServerConfig настройки HTTP сервера, таймауты в секундах
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// MetricsConfig настройки Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// AuthConfig пустой токен отключает проверку
type AuthConfig struct {
	APIToken string `toml:"api_token"`
}

// RateLimitConfig лимит запросов автозаполнения на одного клиента
type RateLimitConfig struct {
	AutofillPerMinute int `toml:"autofill_per_minute"`
	MaxClients        int `toml:"max_clients"`
	TTL               int `toml:"ttl"`
}

// AutofillConfig настройки разбора сообщений
type AutofillConfig struct {
	// BirthdatePolicy: non_male_name, always, never
	BirthdatePolicy string `toml:"birthdate_policy"`
}

// SheetDBConfig старая таблица, из которой импортируются данные
type SheetDBConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"`
}

// CalendarConfig часовой пояс, в котором понимаются даты без времени
type CalendarConfig struct {
	Timezone string `toml:"timezone"`
}

// Location загружает часовой пояс календаря
func (c CalendarConfig) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

// Load читает конфиг из файла, подставляет значения по умолчанию и секреты из окружения
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadConfig, err)
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default конфигурация по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "smc-readings-crm",
		},
		RateLimit: RateLimitConfig{
			AutofillPerMinute: 60,
			MaxClients:        1000,
			TTL:               300,
		},
		Autofill: AutofillConfig{
			BirthdatePolicy: "non_male_name",
		},
		SheetDB: SheetDBConfig{
			Timeout: 30,
		},
		Calendar: CalendarConfig{
			Timezone: "Europe/Moscow",
		},
	}
}

func (c *Config) applyEnv() {
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		c.Database.Password = v
	}
	if v := os.Getenv("API_TOKEN"); v != "" {
		c.Auth.APIToken = v
	}
	if v := os.Getenv("SHEETDB_URL"); v != "" {
		c.SheetDB.URL = v
	}
}

// Validate проверяет обязательные поля
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port=%d", ErrInvalidConfig, c.Server.HTTPPort)
	}
	if c.Database.Host == "" || c.Database.DBName == "" || c.Database.User == "" {
		return fmt.Errorf("%w: database host, dbname and user are required", ErrInvalidConfig)
	}
	if c.RateLimit.AutofillPerMinute <= 0 {
		return fmt.Errorf("%w: rate_limit.autofill_per_minute must be positive", ErrInvalidConfig)
	}
	switch c.Autofill.BirthdatePolicy {
	case "", "non_male_name", "always", "never":
	default:
		return fmt.Errorf("%w: unknown autofill.birthdate_policy %q", ErrInvalidConfig, c.Autofill.BirthdatePolicy)
	}
	if _, err := c.Calendar.Location(); err != nil {
		return fmt.Errorf("%w: calendar.timezone: %v", ErrInvalidConfig, err)
	}
	return nil
}
