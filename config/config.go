package config

import (
	"os"
	"strconv"
)

// Config 应用配置
type Config struct {
	Port         string
	DatabaseURL  string
	FirecrawlKey string
	RefreshDays  int // 档案refresh窗口（天）
}

// Load 从环境变量加载配置
func Load() *Config {
	return &Config{
		Port:         getEnv("PORT", "8080"),
		DatabaseURL:  getEnv("DATABASE_URL", ""),
		FirecrawlKey: getEnv("FIRECRAWL_API_KEY", ""),
		RefreshDays:  getEnvInt("REFRESH_DAYS", 7),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
