package config

import (
	"os"

	"github.com/joho/godotenv"
)

const defaultDBPath = "orinoco.db"

type Config struct {
	DBPath string
	AppEnv string
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DBPath: os.Getenv("DB_PATH"),
		AppEnv: os.Getenv("APP_ENV"),
	}

	if cfg.DBPath == "" {
		cfg.DBPath = defaultDBPath
	}

	return cfg
}
