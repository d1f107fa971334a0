package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort    string
	DBDriver      string
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	SQLitePath    string
	JWTSecret     string
	AdminUsername string
	AdminPassword string
	UploadDir     string
	MaxUploadMB   int64
}

func Load() *Config {
	// Missing .env is fine, env vars alone work too.
	_ = godotenv.Load()

	return &Config{
		ServerPort:    getEnv("SERVER_PORT", "8080"),
		DBDriver:      getEnv("DB_DRIVER", "postgres"),
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "5432"),
		DBUser:        getEnv("DB_USER", "postgres"),
		DBPassword:    getEnv("DB_PASSWORD", "postgres"),
		DBName:        getEnv("DB_NAME", "studyportal"),
		SQLitePath:    getEnv("SQLITE_PATH", "studyportal.db"),
		JWTSecret:     getEnv("JWT_SECRET", "super-secret-key-change-me"),
		AdminUsername: getEnv("ADMIN_USERNAME", "mohamed_admen_mo2025"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "mohamed_admen_mo2025#"),
		UploadDir:     getEnv("UPLOAD_DIR", "uploads"),
		MaxUploadMB:   10,
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
