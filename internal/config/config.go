package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port string
	Env  string

	// Database
	DatabasePath string

	// Gemini AI. May be empty; the chat service reports the missing
	// credential per call so the rest of the site keeps working.
	GeminiAPIKey string

	// Frontend
	StaticDir    string
	DevServerURL string
	FrontendURL  string
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	return &Config{
		Port:         getEnvOrDefault("PORT", "3000"),
		Env:          getEnvOrDefault("ENV", "development"),
		DatabasePath: getEnvOrDefault("DATABASE_PATH", "./data/bajotierra.sqlite"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		StaticDir:    getEnvOrDefault("STATIC_DIR", "./dist"),
		DevServerURL: getEnvOrDefault("DEV_SERVER_URL", "http://localhost:5173"),
		FrontendURL:  getEnvOrDefault("FRONTEND_URL", "*"),
	}
}

// IsProduction selects static-asset serving over the dev server proxy.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}
