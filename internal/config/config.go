package config

import (
	"os"
	"time"
)

type Config struct {
	Port          string
	Env           string
	MongoURI      string
	MongoDB       string
	PostgresDSN   string
	JWTSecret     string
	JWTExpiration time.Duration
	DefaultLocale string
}

func Load() *Config {
	return &Config{
		Port:          getEnv("PORT", "3000"),
		Env:           getEnv("ENV", "development"),
		MongoURI:      getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDB:       getEnv("MONGODB_DATABASE", "timecal"),
		PostgresDSN:   getEnv("DATABASE_URL", "postgresql://postgres@localhost:5432/timecal"),
		JWTSecret:     getEnv("JWT_SECRET", "change-me-in-production"),
		JWTExpiration: 24 * time.Hour,
		DefaultLocale: getEnv("DEFAULT_LOCALE", "en"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
