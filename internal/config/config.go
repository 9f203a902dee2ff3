// Package config provides configuration for the saathi bot service.
package config

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the bot service configuration.
type Config struct {
	// Server settings
	HTTPPort int

	// OpenAI settings
	OpenAIBaseURL string
	OpenAIAPIKey  string
	ChatModel     string

	// Twilio credentials, used only to fetch inbound media
	TwilioAccountSID string
	TwilioAuthToken  string
}

// Load loads configuration from environment variables.
func Load() *Config {
	return &Config{
		HTTPPort:         getEnvInt("PORT", 3000),
		OpenAIBaseURL:    getEnv("OPENAI_BASE_URL", ""),
		OpenAIAPIKey:     getEnv("OPENAI_API_KEY", ""),
		ChatModel:        getEnv("OPENAI_MODEL", ""),
		TwilioAccountSID: getEnv("TWILIO_ACCOUNT_SID", ""),
		TwilioAuthToken:  getEnv("TWILIO_AUTH_TOKEN", ""),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if intVal, err := strconv.Atoi(val); err == nil {
			return intVal
		}
	}
	return defaultVal
}

// LoadDotEnv tries to load env vars from .env.local and .env in the
// working directory. It only sets vars that are not already set, matching
// godotenv's behavior.
func LoadDotEnv(logPrefix string) {
	if IsDotEnvDisabled() {
		return
	}

	for _, p := range []string{".env.local", ".env"} {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			log.Fatalf("%s failed to load %s: %v", logPrefix, p, err)
		} else {
			log.Printf("%s loaded env from %s", logPrefix, p)
		}
	}
}

func IsDotEnvDisabled() bool {
	v := strings.TrimSpace(os.Getenv("SAATHI_DOTENV"))
	if v == "" {
		return false
	}
	switch strings.ToLower(v) {
	case "0", "false", "off", "no":
		return true
	default:
		return false
	}
}
