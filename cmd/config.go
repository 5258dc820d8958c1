package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	ProfileCacheTTL time.Duration

	OrderPendingTTL     time.Duration
	OrderExpirySchedule string
	OrderExpiryBatch    int
	AtmSampleLimit      int

	LogLevel slog.Level
}

// LoadConfig reads the environment, after loading envFile when it exists.
// Variables already set in the environment win over the file.
func LoadConfig(envFile string) (Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load %s: %w", envFile, err)
	}

	cfg := Config{
		HTTPPort:            envOr("HTTP_PORT", "8080"),
		DBHost:              envOr("DB_HOST", "localhost"),
		DBPort:              envOr("DB_PORT", "5432"),
		DBUser:              envOr("DB_USER", "postgres"),
		DBPassword:          os.Getenv("DB_PASSWORD"),
		DBName:              envOr("DB_NAME", "cashrun"),
		DBSslMode:           envOr("DB_SSLMODE", "disable"),
		RedisAddr:           envOr("REDIS_ADDR", "localhost:6379"),
		RedisPassword:       os.Getenv("REDIS_PASSWORD"),
		OrderExpirySchedule: os.Getenv("ORDER_EXPIRY_SCHEDULE"),
	}

	var err error
	if cfg.RedisDB, err = intEnv("REDIS_DB", 0); err != nil {
		return Config{}, err
	}
	if cfg.ProfileCacheTTL, err = durationEnv("PROFILE_CACHE_TTL", 10*time.Minute); err != nil {
		return Config{}, err
	}
	if cfg.OrderPendingTTL, err = durationEnv("ORDER_PENDING_TTL", 30*time.Minute); err != nil {
		return Config{}, err
	}
	if cfg.OrderExpiryBatch, err = intEnv("ORDER_EXPIRY_BATCH", 0); err != nil {
		return Config{}, err
	}
	if cfg.AtmSampleLimit, err = intEnv("ATM_SAMPLE_LIMIT", 0); err != nil {
		return Config{}, err
	}
	if err = cfg.LogLevel.UnmarshalText([]byte(envOr("LOG_LEVEL", "INFO"))); err != nil {
		return Config{}, fmt.Errorf("LOG_LEVEL: %w", err)
	}

	return cfg, nil
}

// DSN is the postgres connection string for gorm.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func intEnv(key string, fallback int) (int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}

func durationEnv(key string, fallback time.Duration) (time.Duration, error) {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return fallback, nil
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}
