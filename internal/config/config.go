package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds the application configuration, populated from the environment.
type Config struct {
	Port        string
	DatabaseURL string // Postgres DSN; when empty, SQLitePath is used instead
	SQLitePath  string
	JWTSecret   string
	CORSOrigins []string
	RedisAddr   string
	RedisPass   string
	RedisDB     int
	SMTPHost    string
	SMTPPort    int
	SMTPUser    string
	SMTPPass    string
	SMTPFrom    string
	IsProd      bool
}

// Load reads configuration from environment variables.
func Load() *Config {
	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	smtpPort, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))

	return &Config{
		Port:        getEnv("PORT", "3000"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		SQLitePath:  getEnv("SQLITE_PATH", "movilidad.db"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		CORSOrigins: splitOrigins(os.Getenv("CORS_ORIGINS")),
		RedisAddr:   os.Getenv("REDIS_ADDR"),
		RedisPass:   os.Getenv("REDIS_PASS"),
		RedisDB:     redisDB,
		SMTPHost:    os.Getenv("SMTP_HOST"),
		SMTPPort:    smtpPort,
		SMTPUser:    os.Getenv("SMTP_USERNAME"),
		SMTPPass:    os.Getenv("SMTP_PASSWORD"),
		SMTPFrom:    os.Getenv("SMTP_FROM"),
		IsProd:      os.Getenv("IS_PROD") == "true",
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitOrigins(raw string) []string {
	if raw == "" {
		// Local development defaults; production deployments set CORS_ORIGINS.
		return []string{"http://localhost:3000", "http://localhost:5173"}
	}

	var origins []string

	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}

	return origins
}
