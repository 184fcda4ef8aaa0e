package config

import (
	"time"

	"github.com/spf13/viper"
)

type (
	Config struct {
		API
		Supabase
		HTTP
		Logging
		User
	}

	API struct {
		URL       string // Base URL of the Bookhub API
		LegacyURL string // Base URL of the legacy API, kept for old deployments
	}
	Supabase struct {
		URL     string // Supabase project URL
		AnonKey string // Supabase anonymous access key
	}
	HTTP struct {
		TimeoutInSeconds int
	}
	Logging struct {
		Level string
	}
	User struct {
		ID string // Default user identifier attached to CLI operations
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("bookhub_api_url", DefaultAPIURL)
	v.SetDefault("bookhub_legacy_api_url", DefaultLegacyAPIURL)
	v.SetDefault("supabase_url", "")
	v.SetDefault("supabase_anon_key", "")
	v.SetDefault("http_timeout_in_seconds", 30)
	v.SetDefault("log_level", "info")
	v.SetDefault("bookhub_user_id", "")

	return &Config{
		API: API{
			URL:       v.GetString("BOOKHUB_API_URL"),
			LegacyURL: v.GetString("BOOKHUB_LEGACY_API_URL"),
		},
		Supabase: Supabase{
			URL:     v.GetString("SUPABASE_URL"),
			AnonKey: v.GetString("SUPABASE_ANON_KEY"),
		},
		HTTP: HTTP{
			TimeoutInSeconds: v.GetInt("HTTP_TIMEOUT_IN_SECONDS"),
		},
		Logging: Logging{
			Level: v.GetString("LOG_LEVEL"),
		},
		User: User{
			ID: v.GetString("BOOKHUB_USER_ID"),
		},
	}
}

// Timeout returns the configured HTTP client timeout as a duration.
func (h HTTP) Timeout() time.Duration {
	return time.Duration(h.TimeoutInSeconds) * time.Second
}

// Configured reports whether both Supabase connection values are present.
func (s Supabase) Configured() bool {
	return s.URL != "" && s.AnonKey != ""
}
