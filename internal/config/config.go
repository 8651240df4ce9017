package config

import (
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/reanestrella/cell-growth-hub-sub000/internal/constants"
)

type Config struct {
	DBDriver      string
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBSQLitePath  string
	RedisHost     string
	RedisPort     string
	SessionSecret string
	JWTSecret     string
	JWTTTL        time.Duration
	GinMode       string
	Port          string
	LogLevel      string
	InvitationTTL time.Duration
	AppBaseURL    string
	OpenAIAPIKey  string
}

// Load reads the configuration from the environment. A .env file in the
// working directory is applied first when present.
func Load() *Config {
	if err := godotenv.Load(); err == nil {
		slog.Debug(".env file loaded")
	}

	return &Config{
		DBDriver:      getEnv("DB_DRIVER", "postgres"),
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "5432"),
		DBUser:        getEnv("DB_USER", "cellhub"),
		DBPassword:    getEnv("DB_PASSWORD", "cellhub"),
		DBName:        getEnv("DB_NAME", "cellhub"),
		DBSQLitePath:  getEnv("DB_SQLITE_PATH", "cellhub.db"),
		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		SessionSecret: getEnv("SESSION_SECRET", "default-secret-key-change-me"),
		JWTSecret:     getEnv("JWT_SECRET", "default-jwt-secret-change-me"),
		JWTTTL:        getDuration("JWT_TTL", 24*time.Hour),
		GinMode:       getEnv("GIN_MODE", "debug"),
		Port:          getEnv("PORT", "8080"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		InvitationTTL: getDuration("INVITATION_TTL", constants.DefaultInvitationTTL),
		AppBaseURL:    getEnv("APP_BASE_URL", "http://localhost:5173"),
		OpenAIAPIKey:  getEnv("OPENAI_API_KEY", ""),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		slog.Warn("invalid duration in environment, using default", "key", key, "value", value)
		return defaultValue
	}
	return d
}
