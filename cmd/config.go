package cmd

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"delivery-api/internal/adapters/out/postgres"
	"delivery-api/internal/adapters/out/redis"
	"delivery-api/internal/pkg/logger"

	"github.com/joho/godotenv"
)

const (
	CacheDriverRedis = "redis"
	CacheDriverNoop  = "noop"

	serviceName = "delivery-api"
)

type Config struct {
	HTTPPort            int
	DBHost              string
	DBPort              int
	DBUser              string
	DBPassword          string
	DBName              string
	DBSslMode           string
	DBMaxOpenConns      int
	DBMaxIdleConns      int
	DBConnMaxLifetime   time.Duration
	CacheDriver         string
	CacheTTL            time.Duration
	RedisAddr           string
	RedisPassword       string
	RedisDB             int
	LogLevel            string
	LogEncoding         string
	CacheWarmupSchedule string
}

var loadEnvOnce sync.Once

// LoadConfig reads the configuration from the environment, after loading an optional .env file.
func LoadConfig() (Config, error) {
	loadEnvOnce.Do(func() {
		_ = godotenv.Load()
	})

	cfg := Config{
		HTTPPort:            getEnvAsInt("HTTP_PORT", 8080),
		DBHost:              getEnv("DB_HOST", "localhost"),
		DBPort:              getEnvAsInt("DB_PORT", 5432),
		DBUser:              getEnv("DB_USER", "postgres"),
		DBPassword:          getEnv("DB_PASSWORD", "postgres"),
		DBName:              getEnv("DB_NAME", "delivery"),
		DBSslMode:           getEnv("DB_SSLMODE", "disable"),
		DBMaxOpenConns:      getEnvAsInt("DB_MAX_OPEN_CONNS", 25),
		DBMaxIdleConns:      getEnvAsInt("DB_MAX_IDLE_CONNS", 25),
		DBConnMaxLifetime:   getEnvAsDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
		CacheDriver:         strings.ToLower(strings.TrimSpace(getEnv("CACHE_DRIVER", CacheDriverRedis))),
		CacheTTL:            getEnvAsDuration("CACHE_TTL", 10*time.Minute),
		RedisAddr:           getEnv("REDIS_ADDR", "127.0.0.1:6379"),
		RedisPassword:       getEnv("REDIS_PASSWORD", ""),
		RedisDB:             getEnvAsInt("REDIS_DB", 0),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		LogEncoding:         getEnv("LOG_ENCODING", logger.EncodingJSON),
		CacheWarmupSchedule: strings.TrimSpace(getEnv("CACHE_WARMUP_SCHEDULE", "0 */5 * * * *")),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error

	if c.HTTPPort <= 0 || c.HTTPPort > 65535 {
		errs = append(errs, fmt.Errorf("invalid HTTP port: %d", c.HTTPPort))
	}
	if c.DBHost == "" {
		errs = append(errs, errors.New("missing DB_HOST"))
	}
	if c.DBPort <= 0 {
		errs = append(errs, fmt.Errorf("invalid DB port: %d", c.DBPort))
	}

	switch c.CacheDriver {
	case CacheDriverRedis:
		if c.RedisAddr == "" {
			errs = append(errs, errors.New("missing REDIS_ADDR for redis cache"))
		}
	case CacheDriverNoop:
	default:
		errs = append(errs, fmt.Errorf("unsupported cache driver: %s", c.CacheDriver))
	}

	if c.CacheTTL <= 0 {
		errs = append(errs, fmt.Errorf("invalid cache TTL: %s", c.CacheTTL))
	}

	return errors.Join(errs...)
}

func (c Config) Database() postgres.Config {
	return postgres.Config{
		Host:            c.DBHost,
		Port:            c.DBPort,
		User:            c.DBUser,
		Password:        c.DBPassword,
		Name:            c.DBName,
		SSLMode:         c.DBSslMode,
		MaxOpenConns:    c.DBMaxOpenConns,
		MaxIdleConns:    c.DBMaxIdleConns,
		ConnMaxLifetime: c.DBConnMaxLifetime,
	}
}

func (c Config) Redis() redis.Config {
	return redis.Config{
		Addr:       c.RedisAddr,
		Password:   c.RedisPassword,
		DB:         c.RedisDB,
		DefaultTTL: c.CacheTTL,
	}
}

func (c Config) Logger() logger.Config {
	return logger.Config{
		Level:    c.LogLevel,
		Encoding: c.LogEncoding,
		Service:  serviceName,
	}
}

func (c Config) HTTPAddr() string {
	return fmt.Sprintf("0.0.0.0:%d", c.HTTPPort)
}
