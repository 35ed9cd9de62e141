package remote

import (
	"os"
	"strconv"
	"time"
)

// Config holds remote sync settings.
type Config struct {
	Enabled bool
	URL     string
	Timeout time.Duration
}

// DefaultConfig returns a Config with sync disabled.
func DefaultConfig() Config {
	return Config{
		Enabled: false,
		URL:     "",
		Timeout: 10 * time.Second,
	}
}

// LoadConfig reads sync configuration from environment variables, falling
// back to defaults for any unset values. Setting a URL implies enabled
// unless SHOWDECK_SYNC_ENABLED says otherwise.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("SHOWDECK_SYNC_URL"); v != "" {
		cfg.URL = v
		cfg.Enabled = true
	}
	if v := os.Getenv("SHOWDECK_SYNC_ENABLED"); v != "" {
		cfg.Enabled, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("SHOWDECK_SYNC_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Timeout = time.Duration(n) * time.Millisecond
		}
	}

	return cfg
}
