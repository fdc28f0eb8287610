package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port     string
	MongoURI string
	MongoDB  string

	AccessTokenSecret string
	TokenTTL          time.Duration

	CloudName           string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string
}

func LoadConfig() *Config {
	// Only load .env for local development; deployed environments
	// provide real environment variables.
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			log.Println("error loading .env file:", err)
		}
	}

	return &Config{
		Port:     getEnv("PORT", "5000"),
		MongoURI: getEnv("DB_CONNECT", ""),
		MongoDB:  getEnv("MONGO_DB", "gadget_galaxy"),

		AccessTokenSecret: getEnv("ACCESS_TOKEN_SECRET", ""),
		TokenTTL:          time.Duration(getEnvInt("TOKEN_TTL_HOURS", 720)) * time.Hour,

		CloudName:           getEnv("CLOUD_NAME", ""),
		CloudinaryAPIKey:    getEnv("CLOUDINARY_API_KEY", ""),
		CloudinaryAPISecret: getEnv("CLOUDINARY_API_SECRET", ""),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}
