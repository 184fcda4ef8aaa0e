package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, DefaultAPIURL, cfg.API.URL)
	assert.Equal(t, DefaultLegacyAPIURL, cfg.API.LegacyURL)
	assert.Equal(t, 30, cfg.HTTP.TimeoutInSeconds)
	assert.Equal(t, 30*time.Second, cfg.HTTP.Timeout())
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Empty(t, cfg.Supabase.URL)
	assert.Empty(t, cfg.Supabase.AnonKey)
}

func TestNewConfig_EnvOverrides(t *testing.T) {
	t.Setenv("BOOKHUB_API_URL", "http://localhost:3000")
	t.Setenv("SUPABASE_URL", "https://abc.supabase.co")
	t.Setenv("SUPABASE_ANON_KEY", "anon-key")
	t.Setenv("HTTP_TIMEOUT_IN_SECONDS", "5")

	cfg := NewConfig()

	assert.Equal(t, "http://localhost:3000", cfg.API.URL)
	assert.Equal(t, "https://abc.supabase.co", cfg.Supabase.URL)
	assert.Equal(t, "anon-key", cfg.Supabase.AnonKey)
	assert.Equal(t, 5*time.Second, cfg.HTTP.Timeout())
}

func TestSupabase_Configured(t *testing.T) {
	tests := []struct {
		name string
		url  string
		key  string
		want bool
	}{
		{"both set", "https://abc.supabase.co", "anon-key", true},
		{"missing key", "https://abc.supabase.co", "", false},
		{"missing url", "", "anon-key", false},
		{"both missing", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Supabase{URL: tt.url, AnonKey: tt.key}
			assert.Equal(t, tt.want, s.Configured())
		})
	}
}
