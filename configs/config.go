package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBSource        string
	Port            string
	JWTSecret       string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
	UploadDir       string
}

func LoadConfig() *Config {
	// .env is optional; real env vars win either way
	_ = godotenv.Load()

	return &Config{
		DBSource:        getEnv("DB_SOURCE", "restaurant.db"),
		Port:            getEnv("PORT", "8000"),
		JWTSecret:       getEnv("JWT_SECRET", "changeme"),
		AccessTokenTTL:  getMinutesEnv("ACCESS_TOKEN_TTL_MINUTES", 60),
		RefreshTokenTTL: getMinutesEnv("REFRESH_TOKEN_TTL_MINUTES", 7*24*60),
		UploadDir:       getEnv("UPLOAD_DIR", "./uploads"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getMinutesEnv(key string, fallback int) time.Duration {
	if v, ok := os.LookupEnv(key); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			log.Fatalf("invalid %s: %v", key, err)
		}
		return time.Duration(n) * time.Minute
	}
	return time.Duration(fallback) * time.Minute
}
