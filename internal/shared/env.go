package shared

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	EnvConfigPath = "LYRX_CONFIG"
	EnvAPIBaseURL = "LYRX_API_BASE_URL"
	EnvLogLevel   = "LYRX_LOG_LEVEL"
)

// LoadEnv loads a .env file from the working directory if one exists and returns the values for keys that are set.
//
// A missing .env file is not an error.
func LoadEnv(keys ...string) map[string]string {
	_ = godotenv.Load()

	env := make(map[string]string, len(keys))
	for _, key := range keys {
		if value := strings.TrimSpace(os.Getenv(key)); value != "" {
			env[key] = value
		}
	}
	return env
}

// ApplyEnv overrides config values with environment variables.
func (c *Config) ApplyEnv(env map[string]string) {
	if v, ok := env[EnvAPIBaseURL]; ok {
		c.API.BaseURL = v
	}
	if v, ok := env[EnvLogLevel]; ok {
		c.Log.Level = v
	}
}
