package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort        string
	DbHost         string
	DbPort         string
	DbUser         string
	DbPassword     string
	DbName         string
	DbParams       string
	DbMaxOpenConns int
	TrustedProxies []string

	JWTSecret string
	JWTIssuer string

	// NatsURL empty means task-created notifications are only logged.
	NatsURL                string
	NatsTaskCreatedSubject string

	CorsAllowedOrigins []string
	ShutdownTimeout    time.Duration
}

func LoadConfig() *Config {
	_ = godotenv.Load(".env")

	return &Config{
		AppPort:                getEnv("APP_PORT", "8080"),
		DbHost:                 getEnv("MYSQL_HOST", "db"),
		DbPort:                 getEnv("MYSQL_PORT", "3306"),
		DbUser:                 getEnv("MYSQL_USER", "tasktracker"),
		DbPassword:             getEnv("MYSQL_PASSWORD", "tasktracker"),
		DbName:                 getEnv("MYSQL_DATABASE", "tasktracker"),
		DbParams:               getEnv("MYSQL_PARAMS", "parseTime=true&multiStatements=true"),
		DbMaxOpenConns:         getEnvInt("MYSQL_MAX_OPEN_CONNS", 25),
		TrustedProxies:         parseList(os.Getenv("TRUSTED_PROXIES")),
		JWTSecret:              getEnv("JWT_SECRET", ""),
		JWTIssuer:              getEnv("JWT_ISSUER", "tasktracker"),
		NatsURL:                getEnv("NATS_URL", ""),
		NatsTaskCreatedSubject: getEnv("NATS_TASK_CREATED_SUBJECT", "tasks.created"),
		CorsAllowedOrigins:     parseList(os.Getenv("CORS_ALLOWED_ORIGINS")),
		ShutdownTimeout:        getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	parsed, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}

// parseList splits a comma separated env value, dropping blanks.
func parseList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		items = append(items, item)
	}

	if len(items) == 0 {
		return nil
	}

	return items
}
