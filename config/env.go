package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv        string
	Port          string
	DBUser        string
	DBPass        string
	DBCluster     string
	DBName        string
	MongoURI      string
	TokenSecret   string
	SessionTTL    time.Duration
	OriginURL     string
	RedisURL      string
	RedisAddr     string
	RedisPassword string
}

var AppConfig *Config

const defaultSessionTTL = 365 * 24 * time.Hour

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	sessionTTL, err := time.ParseDuration(getEnv("SESSION_TTL", ""))
	if err != nil || sessionTTL <= 0 {
		sessionTTL = defaultSessionTTL
	}

	AppConfig = &Config{
		AppEnv:        getEnv("APP_ENV", getEnv("NODE_ENV", "development")),
		Port:          getEnv("PORT", "9000"),
		DBUser:        getEnv("DB_USER", ""),
		DBPass:        getEnv("DB_PASS", ""),
		DBCluster:     getEnv("DB_CLUSTER", "cluster0.wnw5g.mongodb.net"),
		DBName:        getEnv("DB_NAME", "plantNet-session"),
		MongoURI:      getEnv("MONGODB_URI", ""),
		TokenSecret:   getEnv("ACCESS_TOKEN_SECRET", "secret"),
		SessionTTL:    sessionTTL,
		OriginURL:     getEnv("ORIGIN_URL", ""),
		RedisURL:      getEnv("REDIS_URL", ""),
		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
	}

	log.Println("Configuration loaded successfully")
	log.Printf("Environment: %s", AppConfig.AppEnv)
	log.Printf("Server will run on port: %s", AppConfig.Port)
	return AppConfig
}

// IsProduction decides the cross-site policy of the session cookie.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
