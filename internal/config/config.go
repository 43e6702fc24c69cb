package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/cmlabs-hris/attendance-payroll/internal/pkg/clock"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

const (
	StoreFile     = "file"
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

type Config struct {
	Database DatabaseConfig
	App      AppConfig
	Store    StoreConfig
	Payroll  PayrollConfig
	Report   ReportConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
	MaxConns int32
	MinConns int32
}

// AppConfig holds application configuration
type AppConfig struct {
	Port               int
	Env                string
	LogLevel           string
	Timezone           string
	CORSAllowedOrigins []string
	SeedSampleData     bool
}

// StoreConfig selects where the directory and ledger live.
type StoreConfig struct {
	Type     string
	DataFile string
}

type PayrollConfig struct {
	WorkWeek     clock.WorkWeek
	LatenessRate decimal.Decimal
}

type ReportConfig struct {
	Locale          string
	ExportDir       string
	ScheduleEnabled bool
}

// Load reads the environment, after applying a .env file when one exists.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	maxConns, err := strconv.ParseInt(getEnv("DB_MAX_CONNS", "25"), 10, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_CONNS: %w", err)
	}
	minConns, err := strconv.ParseInt(getEnv("DB_MIN_CONNS", "5"), 10, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MIN_CONNS: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "attendance_payroll"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		MaxConns: int32(maxConns),
		MinConns: int32(minConns),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	seed, err := getEnvBool("SEED_SAMPLE_EMPLOYEES", true)
	if err != nil {
		return nil, err
	}

	config.App = AppConfig{
		Port:               appPort,
		Env:                getEnv("APP_ENV", "development"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		Timezone:           getEnv("APP_TIMEZONE", "Asia/Riyadh"),
		CORSAllowedOrigins: getEnvSlice("CORS_ALLOWED_ORIGINS", []string{"*"}),
		SeedSampleData:     seed,
	}

	config.Store = StoreConfig{
		Type:     strings.ToLower(getEnv("STORE_TYPE", StoreFile)),
		DataFile: getEnv("DATA_FILE", "data/attendance.json"),
	}

	// Payroll policy
	workWeek, err := clock.ParseWorkWeek(getEnv("WORK_WEEK", "sun,mon,tue,wed,thu"))
	if err != nil {
		return nil, fmt.Errorf("invalid WORK_WEEK: %w", err)
	}
	rate, err := decimal.NewFromString(getEnv("LATE_DEDUCTION_RATE", "0.10"))
	if err != nil {
		return nil, fmt.Errorf("invalid LATE_DEDUCTION_RATE: %w", err)
	}

	config.Payroll = PayrollConfig{
		WorkWeek:     workWeek,
		LatenessRate: rate,
	}

	scheduleEnabled, err := getEnvBool("EXPORT_SCHEDULE_ENABLED", false)
	if err != nil {
		return nil, err
	}

	config.Report = ReportConfig{
		Locale:          getEnv("REPORT_LOCALE", "ar"),
		ExportDir:       getEnv("EXPORT_DIR", "exports"),
		ScheduleEnabled: scheduleEnabled,
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.Store.Type {
	case StoreFile:
		if c.Store.DataFile == "" {
			return fmt.Errorf("DATA_FILE is required when STORE_TYPE=%s", StoreFile)
		}
	case StorePostgres:
		if c.Database.Password == "" {
			return fmt.Errorf("DB_PASSWORD is required when STORE_TYPE=%s", StorePostgres)
		}
	case StoreMemory:
	default:
		return fmt.Errorf("unsupported STORE_TYPE %q", c.Store.Type)
	}

	if c.Payroll.LatenessRate.IsNegative() || c.Payroll.LatenessRate.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("LATE_DEDUCTION_RATE must be between 0 and 1")
	}
	if c.Report.ScheduleEnabled && c.Report.ExportDir == "" {
		return fmt.Errorf("EXPORT_DIR is required when EXPORT_SCHEDULE_ENABLED is set")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// SlogLevel maps LOG_LEVEL to a slog level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.App.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) (bool, error) {
	value := getEnv(key, "")
	if value == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return b, nil
}

func getEnvSlice(env string, fallback []string) []string {
	value := getEnv(env, "")
	if value == "" {
		return fallback
	}
	var result []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			result = append(result, part)
		}
	}
	return result
}
