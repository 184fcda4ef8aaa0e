package backend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/supabase-community/supabase-go"
)

// resetClient clears the package-level singleton and restores the real
// constructor after the test.
func resetClient(t *testing.T) {
	t.Helper()
	origNew := newSupabaseClient
	client = nil
	t.Cleanup(func() {
		clientMu.Lock()
		defer clientMu.Unlock()
		client = nil
		newSupabaseClient = origNew
	})
}

func TestIsConfigured(t *testing.T) {
	tests := []struct {
		name string
		url  string
		key  string
		want bool
	}{
		{"both set", "https://abc.supabase.co", "anon-key", true},
		{"url missing", "", "anon-key", false},
		{"key missing", "https://abc.supabase.co", "", false},
		{"both missing", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("SUPABASE_URL", tt.url)
			t.Setenv("SUPABASE_ANON_KEY", tt.key)

			assert.Equal(t, tt.want, IsConfigured())
		})
	}
}

func TestClient_ReturnsIdenticalHandle(t *testing.T) {
	resetClient(t)
	t.Setenv("SUPABASE_URL", "https://abc.supabase.co")
	t.Setenv("SUPABASE_ANON_KEY", "anon-key")

	constructed := 0
	newSupabaseClient = func(url, key string) (*supabase.Client, error) {
		constructed++
		assert.Equal(t, "https://abc.supabase.co", url)
		assert.Equal(t, "anon-key", key)
		return &supabase.Client{}, nil
	}

	first, err := Client()
	require.NoError(t, err)
	second, err := Client()
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, constructed)
}

func TestClient_IgnoresConfigurationChangesAfterFirstCall(t *testing.T) {
	resetClient(t)
	t.Setenv("SUPABASE_URL", "https://abc.supabase.co")
	t.Setenv("SUPABASE_ANON_KEY", "anon-key")

	newSupabaseClient = func(url, key string) (*supabase.Client, error) {
		return &supabase.Client{}, nil
	}

	first, err := Client()
	require.NoError(t, err)

	t.Setenv("SUPABASE_URL", "https://other.supabase.co")

	second, err := Client()
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestClient_NotConfigured(t *testing.T) {
	resetClient(t)
	t.Setenv("SUPABASE_URL", "")
	t.Setenv("SUPABASE_ANON_KEY", "")

	newSupabaseClient = func(url, key string) (*supabase.Client, error) {
		t.Fatal("constructor must not be called when configuration is absent")
		return nil, nil
	}

	_, err := Client()
	require.Error(t, err)

	var confErr *ConfigurationError
	require.ErrorAs(t, err, &confErr)
	assert.Contains(t, confErr.Error(), "SUPABASE_URL")
	assert.Contains(t, confErr.Error(), "SUPABASE_ANON_KEY")
}
