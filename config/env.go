package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"twitteralchemy/models"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// Load resolves the configuration once: defaults, then the optional table
// names file, then the environment (a .env file in the working directory is
// read first when present).
func Load() (*models.EnvConfig, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed reading .env file: %w", err)
	}
	cfg := GetDefaultConfig()

	path := os.Getenv("DB_TABLES_FILE")
	if path == "" {
		path = tablesPath
	}
	tables, err := LoadTableConfig(path)
	if err != nil {
		return nil, err
	}
	cfg.Tables = tables.Merge(cfg.Tables)

	if err := LoadEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func LoadEnv(cfg *models.EnvConfig) error {
	if value := os.Getenv("DB_DRIVER"); value != "" {
		cfg.DBDriver = value
	}
	if value := os.Getenv("DB_HOST"); value != "" {
		cfg.DBHost = value
	}
	if value := os.Getenv("DB_PORT"); value != "" {
		port, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("DB_PORT env is not a valid integer: %w", err)
		}
		cfg.DBPort = port
	}
	if value := os.Getenv("DB_NAME"); value != "" {
		cfg.DBName = value
	}
	if value := os.Getenv("DB_USER"); value != "" {
		cfg.DBUser = value
	}
	if value := os.Getenv("DB_PASSWORD"); value != "" {
		cfg.DBPassword = value
	} else if cfg.DBDriver == DriverMySQL {
		zap.S().Warn("DB_PASSWORD is not set")
	}
	if value := os.Getenv("DB_PATH"); value != "" {
		cfg.DBPath = value
	} else if cfg.DBDriver == DriverSQLite {
		zap.S().Warnf("DB_PATH is not set, using default %s", cfg.DBPath)
	}
	if value := os.Getenv("DB_TABLE_TWEET"); value != "" {
		cfg.Tables.Tweet = value
	}
	if value := os.Getenv("DB_TABLE_REFERENCED_TWEET"); value != "" {
		cfg.Tables.ReferencedTweet = value
	}
	if value := os.Getenv("DB_TABLE_USER"); value != "" {
		cfg.Tables.User = value
	}
	if value := os.Getenv("LOG_LEVEL"); value != "" {
		cfg.LogLevel = value
	}
	if value := os.Getenv("LOG_FORMAT"); value != "" {
		cfg.LogFormat = value
	}

	switch cfg.DBDriver {
	case DriverMySQL, DriverSQLite:
	default:
		return fmt.Errorf("DB_DRIVER env must be %q or %q, got %q", DriverMySQL, DriverSQLite, cfg.DBDriver)
	}
	return nil
}

const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

func GetDefaultConfig() *models.EnvConfig {
	return &models.EnvConfig{
		DBDriver: DriverSQLite,
		DBHost:   "localhost",
		DBPort:   3306,
		DBName:   "twitteralchemy",
		DBUser:   "twitteralchemy",
		DBPath:   "twitteralchemy.db",

		Tables: models.DefaultTableConfig(),

		LogLevel:  "info",
		LogFormat: "console",
	}
}
