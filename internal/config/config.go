package config

import (
	"crypto/rand"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var AppEnv Config

type Config struct {
	APIBaseURL     string
	Port           string
	SessionKey     []byte
	CSRFKey        []byte
	CookieSecure   bool
	RequestTimeout time.Duration
}

func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded:", err)
	}
	AppEnv = Config{
		APIBaseURL:     getEnvOrDefault("API_BASE_URL", "http://localhost:5000/api"),
		Port:           getEnvOrDefault("PORT", "8080"),
		SessionKey:     getKeyEnv("SESSION_KEY"),
		CSRFKey:        getKeyEnv("CSRF_KEY"),
		CookieSecure:   getBoolEnv("COOKIE_SECURE", false),
		RequestTimeout: getDurationEnv("REQUEST_TIMEOUT", 5, time.Second),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
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

// getKeyEnv reads a 32-byte key from the environment, generating an
// ephemeral one when unset. Ephemeral keys invalidate sessions on restart,
// so production deployments must set both key variables.
func getKeyEnv(key string) []byte {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return []byte(value)
	}

	log.Printf("ENV %s not set, using an ephemeral key", key)
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		log.Fatalf("cannot generate %s: %v", key, err)
	}
	return buf
}
