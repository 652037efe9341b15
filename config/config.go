package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type Config struct {
	Port        string
	BindAddress string
	DBPath      string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system env")
	}

	return &Config{
		Port:        getEnv("PORT", "9000"),
		BindAddress: getEnv("BIND_ADDRESS", "0.0.0.0"),
		DBPath:      getEnv("DB_PATH", "quiz.db"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func InitDB(cfg *Config) (*gorm.DB, error) {
	// Quiz/question integrity is enforced by the services (existence checks
	// and manual cascade deletes), so migration must not add FK constraints.
	db, err := gorm.Open(sqlite.Open(cfg.DBPath), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}
