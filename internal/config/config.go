package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// ErrInvalidConfig возвращается, когда конфигурация не проходит валидацию
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация обоих процессов: poolclient (BFF) и poolschedule (сервис расписания)
type Config struct {
	Server          ServerConfig   `toml:"server"`
	Logs            LogsConfig     `toml:"logs"`
	Metrics         MetricsConfig  `toml:"metrics"`
	ScheduleService RemoteService  `toml:"schedule_service"`
	AuthService     RemoteService  `toml:"auth_service"`
	Booking         BookingConfig  `toml:"booking"`
	RateLimit       RateLimit      `toml:"rate_limit"`
	Database        DatabaseConfig `toml:"database"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды, 0 - без ограничения (нужно для SSE)
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// RemoteService адрес и таймаут удаленного HTTP сервиса
type RemoteService struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
}

type BookingConfig struct {
	// RequestTimeout таймаут одного запроса бронирования/отмены, после него UI разблокируется
	RequestTimeout int `toml:"request_timeout"`
	// FetchConcurrency сколько дат недели загружать параллельно
	FetchConcurrency int `toml:"fetch_concurrency"`
	// IdleTTL через сколько минут без запросов координатор пользователя удаляется
	IdleTTL int `toml:"idle_ttl"`
}

type RateLimit struct {
	RPS   float64 `toml:"rps"`
	Burst int     `toml:"burst"`
}

type DatabaseConfig struct {
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

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// URL строка подключения в URL-формате (для golang-migrate)
func (d DatabaseConfig) URL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode)
}

func (s RemoteService) TimeoutDuration() time.Duration {
	return time.Duration(s.Timeout) * time.Second
}

func (b BookingConfig) RequestTimeoutDuration() time.Duration {
	return time.Duration(b.RequestTimeout) * time.Second
}

func (b BookingConfig) IdleTTLDuration() time.Duration {
	return time.Duration(b.IdleTTL) * time.Minute
}

// Default значения по умолчанию, поверх них накладываются файл и переменные окружения
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    0,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			ServiceName: "pacific-pool",
			Path:        "/metrics",
		},
		ScheduleService: RemoteService{
			URL:     "http://localhost:8081/api/v1/schedule",
			Timeout: 10,
		},
		AuthService: RemoteService{
			URL:     "http://localhost:8082/api/v1/auth",
			Timeout: 10,
		},
		Booking: BookingConfig{
			RequestTimeout:   10,
			FetchConcurrency: 4,
			IdleTTL:          30,
		},
		RateLimit: RateLimit{
			RPS:   5,
			Burst: 10,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			DBName:          "pacific_pool",
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    25,
			ConnMaxLifetime: 300,
		},
	}
}

// Load читает .env (если есть), TOML файл (если есть) и переменные окружения POOL_*
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: load .env: %w", err)
	}

	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config: decode %s: %w", path, err)
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyEnv(cfg *Config) error {
	setString := func(key string, dst *string) {
		if v, ok := os.LookupEnv(key); ok {
			*dst = v
		}
	}
	setInt := func(key string, dst *int) error {
		v, ok := os.LookupEnv(key)
		if !ok {
			return nil
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not an integer", ErrInvalidConfig, key, v)
		}
		*dst = n
		return nil
	}

	setString("POOL_SCHEDULE_URL", &cfg.ScheduleService.URL)
	setString("POOL_AUTH_URL", &cfg.AuthService.URL)
	setString("POOL_LOG_LEVEL", &cfg.Logs.Level)
	setString("POOL_LOG_FILE", &cfg.Logs.File)
	setString("POOL_DB_HOST", &cfg.Database.Host)
	setString("POOL_DB_USER", &cfg.Database.User)
	setString("POOL_DB_PASSWORD", &cfg.Database.Password)
	setString("POOL_DB_NAME", &cfg.Database.DBName)

	if err := setInt("POOL_HTTP_PORT", &cfg.Server.HTTPPort); err != nil {
		return err
	}
	if err := setInt("POOL_DB_PORT", &cfg.Database.Port); err != nil {
		return err
	}
	if err := setInt("POOL_BOOKING_TIMEOUT", &cfg.Booking.RequestTimeout); err != nil {
		return err
	}

	if v, ok := os.LookupEnv("POOL_METRICS_ENABLED"); ok {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: POOL_METRICS_ENABLED=%q is not a boolean", ErrInvalidConfig, v)
		}
		cfg.Metrics.Enabled = enabled
	}

	return nil
}

// Validate проверяет обязательные значения
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be in 1..65535", ErrInvalidConfig)
	}
	if c.ScheduleService.URL == "" {
		return fmt.Errorf("%w: schedule_service.url is required", ErrInvalidConfig)
	}
	if c.ScheduleService.Timeout <= 0 || c.AuthService.Timeout <= 0 {
		return fmt.Errorf("%w: remote service timeouts must be positive", ErrInvalidConfig)
	}
	if c.Booking.RequestTimeout <= 0 {
		return fmt.Errorf("%w: booking.request_timeout must be positive", ErrInvalidConfig)
	}
	if c.Booking.FetchConcurrency <= 0 {
		return fmt.Errorf("%w: booking.fetch_concurrency must be positive", ErrInvalidConfig)
	}
	if c.Booking.IdleTTL <= 0 {
		return fmt.Errorf("%w: booking.idle_ttl must be positive", ErrInvalidConfig)
	}
	if c.RateLimit.RPS <= 0 || c.RateLimit.Burst <= 0 {
		return fmt.Errorf("%w: rate_limit.rps and rate_limit.burst must be positive", ErrInvalidConfig)
	}
	if c.Metrics.Enabled && c.Metrics.Path == "" {
		return fmt.Errorf("%w: metrics.path is required when metrics are enabled", ErrInvalidConfig)
	}
	return nil
}
