package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var AppEnv Config

type Config struct {
	MongoURI   string
	DBName     string
	JWTSecret  string
	AdminEmail string
	TokenTTL   time.Duration
	Port       string
}

func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded:", err)
	}
	AppEnv = Config{
		MongoURI:   getEnvOrDefault("MONGO_URI", "mongodb://127.0.0.1:27017"),
		DBName:     getEnvOrDefault("DB_NAME", "food_delivery"),
		JWTSecret:  getEnvOrDefault("JWT_SECRET", ""),
		AdminEmail: getEnvOrDefault("ADMIN_EMAIL", ""),
		TokenTTL:   getDurationEnv("TOKEN_TTL_DAYS", 7, 24*time.Hour),
		Port:       getEnvOrDefault("PORT", "3000"),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue int, unit time.Duration) time.Duration {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil && parsed > 0 {
			return time.Duration(parsed) * unit
		}
	}
	return time.Duration(defaultValue) * unit
}
