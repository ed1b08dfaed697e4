package config

import (
	"os"
	"strings"
	"sync"
)

// Config holds server settings read from the environment. JWTSecret has
// no default; startup must refuse to run without one.
type Config struct {
	Port        string
	CORSOrigins []string
	UploadsDir  string
	JWTSecret   string
}

var (
	config *Config
	once   sync.Once
)

// GetConfig loads the configuration once from the environment.
func GetConfig() *Config {
	once.Do(func() {
		config = &Config{
			Port:       getEnv("PORT", "8081"),
			UploadsDir: getEnv("UPLOADS_DIR", "uploads"),
			JWTSecret:  os.Getenv("JWT_SECRET"),
			CORSOrigins: splitEnv("CORS_ORIGINS", []string{
				"http://localhost:3000",
				"http://localhost:8080",
			}),
		}
	})
	return config
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitEnv(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parts := strings.Split(v, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
