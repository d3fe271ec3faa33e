package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds the environment-driven settings for the API. Every field
// maps to a single environment variable; missing variables load as "".
type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	JWTSecret  string
	APIBaseURL string
	SessionDir string
}

// LoadConfig reads a .env file when present and then the process
// environment. The .env file is optional so containers can rely on
// injected variables alone.
func LoadConfig() Config {
	_ = godotenv.Load()

	return Config{
		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     os.Getenv("DB_PORT"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		JWTSecret:  os.Getenv("JWT_SECRET"),
		APIBaseURL: os.Getenv("API_BASE_URL"),
		SessionDir: os.Getenv("SESSION_DIR"),
	}
}
