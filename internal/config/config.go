package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort    string
	DatabaseDSN string // empty = in-memory only, nothing survives a restart
	JWTSecret   string
	CORSOrigins string
	LogLevel    string

	AdminEmail    string
	AdminPassword string

	// TaxReducesProfit: whether recorded tax is subtracted from net profit.
	// Default keeps tax as a pass-through to the tax authority.
	TaxReducesProfit bool
}

func Load() *Config {
	godotenv.Load()

	cfg := &Config{
		HTTPPort:         getEnv("HTTP_PORT", "8080"),
		DatabaseDSN:      getEnv("DATABASE_DSN", ""),
		JWTSecret:        getEnv("JWT_SECRET", ""),
		CORSOrigins:      getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		AdminEmail:       getEnv("ADMIN_EMAIL", "admin@cloudk.local"),
		AdminPassword:    getEnv("ADMIN_PASSWORD", ""),
		TaxReducesProfit: getEnv("TAX_REDUCES_PROFIT", "false") == "true",
	}

	if cfg.JWTSecret == "" {
		log.Fatal("[FATAL] JWT_SECRET is not set. It is required.")
	}
	if len(cfg.JWTSecret) < 32 {
		log.Fatal("[FATAL] JWT_SECRET must be at least 32 characters.")
	}
	if cfg.AdminPassword == "" {
		log.Fatal("[FATAL] ADMIN_PASSWORD is not set. It is required.")
	}
	if cfg.DatabaseDSN == "" {
		log.Println("[WARN] DATABASE_DSN is empty, running in-memory only. Data is lost on restart.")
	}

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
