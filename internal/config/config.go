package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	Database   DatabaseConfig
	JWT        JWTConfig
	App        AppConfig
	Attendance AttendanceConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT verification configuration. Tokens are issued by the
// upstream identity service; this app only verifies them.
type JWTConfig struct {
	Secret string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// AttendanceConfig holds the time-accounting knobs.
type AttendanceConfig struct {
	// DuplicateToleranceMinutes is the near-duplicate window for imports.
	DuplicateToleranceMinutes int
	// BaseDailyRate feeds the hourly-rate figure on period summaries.
	BaseDailyRate decimal.Decimal
	// HolidayRegion selects the holiday calendar, e.g. "PH".
	HolidayRegion string
	// StaleOpenDays is how old an open attendance record must be before the
	// auto-close job closes it.
	StaleOpenDays int
}

func Load() (*Config, error) {
	// A missing .env is fine in deployed environments where the process
	// gets real environment variables.
	_ = godotenv.Load()

	config := &Config{}

	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "pe_bms"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	config.JWT = JWTConfig{
		Secret: getEnv("JWT_SECRET_KEY", ""),
	}

	tolerance, err := strconv.Atoi(getEnv("DUPLICATE_TOLERANCE_MINUTES", "5"))
	if err != nil {
		return nil, fmt.Errorf("invalid DUPLICATE_TOLERANCE_MINUTES: %w", err)
	}

	baseDailyRate, err := decimal.NewFromString(getEnv("BASE_DAILY_RATE", "513.00"))
	if err != nil {
		return nil, fmt.Errorf("invalid BASE_DAILY_RATE: %w", err)
	}

	staleOpenDays, err := strconv.Atoi(getEnv("STALE_OPEN_DAYS", "1"))
	if err != nil {
		return nil, fmt.Errorf("invalid STALE_OPEN_DAYS: %w", err)
	}

	config.Attendance = AttendanceConfig{
		DuplicateToleranceMinutes: tolerance,
		BaseDailyRate:             baseDailyRate,
		HolidayRegion:             getEnv("HOLIDAY_REGION", "PH"),
		StaleOpenDays:             staleOpenDays,
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Attendance.DuplicateToleranceMinutes < 0 {
		return fmt.Errorf("DUPLICATE_TOLERANCE_MINUTES must not be negative")
	}
	if c.Attendance.StaleOpenDays < 1 {
		return fmt.Errorf("STALE_OPEN_DAYS must be at least 1")
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

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
