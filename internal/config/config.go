package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/xxxsen/common/logger"
)

type Config struct {
	Port        int              `json:"port"`
	JWTSecret   string           `json:"jwt_secret"`
	Database    DatabaseConfig   `json:"database"`
	CORSOrigins []string         `json:"cors_origins"`
	LogConfig   logger.LogConfig `json:"log_config"`
}

type DatabaseConfig struct {
	Driver string `json:"driver"`
	DSN    string `json:"dsn"`
}

// Load reads an optional JSON config file and applies environment overrides.
// A `.env` file next to the binary is honored the same way the upstream
// service honored dotenv.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if path != "" {
		file, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()
		if err := json.NewDecoder(file).Decode(&cfg); err != nil {
			return nil, fmt.Errorf("decode config: %w", err)
		}
	}

	cfg.JWTSecret = getEnv("TODO_JWT_SECRET", cfg.JWTSecret)
	cfg.Database.Driver = getEnv("TODO_DB_DRIVER", cfg.Database.Driver)
	cfg.Database.DSN = getEnv("TODO_DB_DSN", cfg.Database.DSN)
	cfg.Port = getEnvInt("TODO_PORT", cfg.Port)
	if origins := os.Getenv("TODO_CORS_ORIGINS"); origins != "" {
		cfg.CORSOrigins = strings.Split(origins, ",")
	}

	if cfg.Port == 0 {
		cfg.Port = 4000
	}
	if cfg.Database.Driver == "" {
		cfg.Database.Driver = "sqlite"
	}
	if cfg.Database.DSN == "" {
		cfg.Database.DSN = "data/todo.db"
	}
	if cfg.LogConfig.Level == "" {
		cfg.LogConfig.Level = "info"
		cfg.LogConfig.Console = true
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("jwt_secret is required")
	}
	switch cfg.Database.Driver {
	case "sqlite", "postgres":
	default:
		return nil, fmt.Errorf("database.driver must be sqlite or postgres")
	}
	return &cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}
