package config

import (
	"fmt"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Config holds everything the process needs at startup. It is built once
// in main and passed down explicitly; nothing here is a mutable global.
type Config struct {
	DBDriver   string // "mysql" or "sqlite"
	DBDSN      string
	SQLitePath string
	Port       string
	GinMode    string
	CORSOrigin string
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Load reads the configuration from the environment (godotenv has already
// populated it from .env when present).
func Load() Config {
	cfg := Config{
		DBDriver:   getEnv("DB_DRIVER", "sqlite"),
		SQLitePath: getEnv("SQLITE_PATH", "catalogue.db"),
		Port:       getEnv("PORT", "8080"),
		GinMode:    os.Getenv("GIN_MODE"),
		CORSOrigin: getEnv("CORS_ORIGIN", "*"),
	}

	if cfg.DBDriver == "mysql" {
		cfg.DBDSN = os.Getenv("DB_DSN")
		if cfg.DBDSN == "" {
			cfg.DBDSN = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
				getEnv("DB_USER", "root"),
				os.Getenv("DB_PASSWORD"),
				getEnv("DB_HOST", "127.0.0.1"),
				getEnv("DB_PORT", "3306"),
				getEnv("DB_NAME", "catalogue"),
			)
		}
	}

	return cfg
}

// OpenDB opens the configured database. MySQL is the production driver;
// sqlite keeps local development and tests self-contained.
func OpenDB(cfg Config) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}

	switch cfg.DBDriver {
	case "mysql":
		return gorm.Open(mysql.Open(cfg.DBDSN), gormCfg)
	case "sqlite":
		return gorm.Open(sqlite.Open(cfg.SQLitePath), gormCfg)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
}
