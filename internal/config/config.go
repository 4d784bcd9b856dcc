package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Auth     AuthConfig
	Logging  LoggingConfig
	Features FeaturesConfig
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type ServerConfig struct {
	HTTPAddr string
}

type AuthConfig struct {
	JWTSecret string
}

type LoggingConfig struct {
	Level string
}

// FeaturesConfig описывает включенные премиум-функции.
// PremiumFeatures из окружения имеют приоритет над файлом File.
type FeaturesConfig struct {
	PremiumFeatures []string
	File            string
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "metabase"),
			Password: getEnv("DB_PASSWORD", "metabase"),
			DBName:   getEnv("DB_NAME", "group_managers"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Server: ServerConfig{
			HTTPAddr: getEnv("HTTP_ADDR", ":8080"),
		},
		Auth: AuthConfig{
			JWTSecret: getEnv("JWT_SECRET", ""),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Features: FeaturesConfig{
			PremiumFeatures: splitList(os.Getenv("PREMIUM_FEATURES")),
			File:            getEnv("FEATURES_FILE", ""),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// splitList разбирает список через запятую, пропуская пустые элементы
func splitList(value string) []string {
	var result []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			result = append(result, item)
		}
	}
	return result
}
