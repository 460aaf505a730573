package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	// DatabaseURL is the MongoDB connection string. It may be empty: the
	// server still starts and serves health endpoints, while store-backed
	// endpoints report a configuration error.
	DatabaseURL  string
	DatabaseName string
}

// Load reads environment variables and returns a Config object
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file, using environment variables")
	}

	cfg := &Config{
		Port:         os.Getenv("PORT"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		DatabaseName: os.Getenv("DATABASE_NAME"),
	}

	if cfg.Port == "" {
		cfg.Port = "8000"
	}
	if cfg.DatabaseName == "" {
		cfg.DatabaseName = "discover_portugal"
	}

	return cfg
}
