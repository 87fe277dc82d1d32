package config

import (
	"log"
	"os"
	"time"
)

// DefaultJWTSecret is used when JWT_SECRET is not set. Fine for local
// development, must be overridden in any real deployment.
const DefaultJWTSecret = "default-jwt-secret-for-maestros-app"

const TokenExpirationMinutes = 60

// Config содержит всю конфигурацию сервера, загруженную из окружения.
type Config struct {
	Port string

	JWTSecret       string
	SecretIsDefault bool
	TokenTTL        time.Duration

	AdminUsername     string
	AdminPassword     string
	AdminPasswordHash string

	// StoreBackend выбирает хранилище: "json" (по умолчанию) или "sqlite".
	StoreBackend string
	DataFile     string
	SQLiteFile   string

	StaticDir string
}

// Load читает конфигурацию из переменных окружения, подставляя значения
// по умолчанию для отсутствующих.
func Load() *Config {
	cfg := &Config{
		Port:              getEnvOrDefault("PORT", "3000"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		TokenTTL:          time.Duration(TokenExpirationMinutes) * time.Minute,
		AdminUsername:     getEnvOrDefault("ADMIN_USERNAME", "admin"),
		AdminPassword:     getEnvOrDefault("ADMIN_PASSWORD", "admin123"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		StoreBackend:      getEnvOrDefault("STORE_BACKEND", "json"),
		DataFile:          getEnvOrDefault("DATA_FILE", "./data/teachers.json"),
		SQLiteFile:        getEnvOrDefault("SQLITE_FILE", "./data/teachers.db"),
		StaticDir:         getEnvOrDefault("STATIC_DIR", "./public"),
	}

	if cfg.JWTSecret == "" {
		cfg.JWTSecret = DefaultJWTSecret
		cfg.SecretIsDefault = true
	}

	return cfg
}

func getEnvOrDefault(envVar, defaultValue string) string {
	value := os.Getenv(envVar)
	if value == "" {
		log.Printf("Переменная %s отсутствует в окружении, используем значение по умолчанию: %s", envVar, defaultValue)
		return defaultValue
	}
	return value
}
