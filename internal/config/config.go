package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppName           string
	AppPort           string
	DbHost            string
	DbPort            string
	DbUser            string
	DbPassword        string
	DbName            string
	DbParams          string
	TranslationFolder string
	TrustedProxies    []string
}

func LoadConfig() *Config {
	_ = godotenv.Load(".env")

	return &Config{
		AppName:           getEnv("APP_NAME", "backend"),
		AppPort:           getEnv("APP_PORT", "5000"),
		DbHost:            getEnv("MYSQL_HOST", "db"),
		DbPort:            getEnv("MYSQL_PORT", "3306"),
		DbUser:            getEnv("MYSQL_USER", "todo"),
		DbPassword:        getEnv("MYSQL_PASSWORD", "todo"),
		DbName:            getEnv("MYSQL_DATABASE", "todo"),
		DbParams:          getEnv("MYSQL_PARAMS", "parseTime=true&multiStatements=true&clientFoundRows=true"),
		TranslationFolder: getEnv("TRANSLATION_FOLDER", "pkg/translator/translation"),
		TrustedProxies:    parseTrustedProxies(os.Getenv("TRUSTED_PROXIES")),
	}
}

// ClientConfig drives the todo CLI.
type ClientConfig struct {
	APIBaseURL        string
	StatePath         string
	Language          string
	TranslationFolder string
	RequestTimeout    time.Duration
	ToastDuration     time.Duration
}

func LoadClientConfig() *ClientConfig {
	_ = godotenv.Load(".env")

	return &ClientConfig{
		APIBaseURL:        getEnv("TODO_API_URL", "http://localhost:5000"),
		StatePath:         getEnv("TODO_STATE_PATH", defaultStatePath()),
		Language:          getEnv("TODO_LANG", "en"),
		TranslationFolder: getEnv("TRANSLATION_FOLDER", "pkg/translator/translation"),
		RequestTimeout:    getDuration("TODO_REQUEST_TIMEOUT", 10*time.Second),
		ToastDuration:     getDuration("TODO_TOAST_DURATION", 3*time.Second),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	d, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

func defaultStatePath() string {
	dir, err := os.UserConfigDir()
	if err != nil || dir == "" {
		return "todo-state.db"
	}
	return filepath.Join(dir, "nginx-docker", "todo-state.db")
}

func parseTrustedProxies(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	proxies := make([]string, 0, len(parts))
	for _, part := range parts {
		proxy := strings.TrimSpace(part)
		if proxy == "" {
			continue
		}
		proxies = append(proxies, proxy)
	}

	if len(proxies) == 0 {
		return nil
	}

	return proxies
}
