// Package config loads the process configuration once at startup. The result
// is an immutable value passed into the router and fetcher; nothing reads the
// environment after Load returns.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"vnquote/internal/platform/externalapi/msn"
	"vnquote/internal/platform/externalapi/tcbs"
	"vnquote/internal/platform/externalapi/vietcap"
	"vnquote/internal/platform/externalapi/vndirect"
)

// SourceConfig configures one upstream data source.
type SourceConfig struct {
	Enabled bool
	BaseURL string
}

// Config holds all process-wide settings.
type Config struct {
	Port           string        // HTTP listen port
	APIKey         string        // Shared secret for X-API-Key; empty disables auth
	RequestTimeout time.Duration // Timeout for upstream HTTP calls

	TCBS     SourceConfig
	VNDirect SourceConfig
	MSN      SourceConfig
	VietCap  SourceConfig
}

// Load reads configuration from a .env file (if present) and the environment.
func Load() Config {
	// Best effort: absence of a .env file is the normal production case.
	_ = godotenv.Load()

	return Config{
		Port:           getenv("PORT", "8000"),
		APIKey:         os.Getenv("API_KEY"),
		RequestTimeout: time.Duration(getenvInt("REQUEST_TIMEOUT_SEC", 10)) * time.Second,
		TCBS: SourceConfig{
			Enabled: getenvBool("TCBS_ENABLED", true),
			BaseURL: getenv("TCBS_BASE_URL", tcbs.DefaultBaseURL),
		},
		VNDirect: SourceConfig{
			Enabled: getenvBool("VND_ENABLED", true),
			BaseURL: getenv("VND_BASE_URL", vndirect.DefaultBaseURL),
		},
		MSN: SourceConfig{
			Enabled: getenvBool("MSN_ENABLED", true),
			BaseURL: getenv("MSN_BASE_URL", msn.DefaultBaseURL),
		},
		VietCap: SourceConfig{
			Enabled: getenvBool("VCI_ENABLED", true),
			BaseURL: getenv("VCI_BASE_URL", vietcap.DefaultBaseURL),
		},
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if x, err := strconv.Atoi(v); err == nil && x > 0 {
			return x
		}
	}
	return def
}

func getenvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
