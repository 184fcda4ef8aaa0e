// Package backend unifies access to the Supabase handle and the Bookhub API
// client behind a single surface. It adds no behavior of its own: the only
// logic here is configuration validation and lazy construction of the
// process-wide Supabase client.
package backend

import (
	"fmt"
	"sync"

	"github.com/supabase-community/supabase-go"

	"github.com/ayeshaqaisar/bookhub/internal/config"
)

var (
	clientMu sync.Mutex
	client   *supabase.Client
)

// newSupabaseClient is swappable in tests so singleton behavior can be
// verified without a real Supabase project.
var newSupabaseClient = func(url, key string) (*supabase.Client, error) {
	return supabase.NewClient(url, key, &supabase.ClientOptions{})
}

// IsConfigured reports whether both Supabase connection values are present in
// the environment. It reads the live environment on every call and has no
// side effects.
func IsConfigured() bool {
	return config.NewConfig().Supabase.Configured()
}

// Client returns the process-wide Supabase client, constructing it on first
// call. Later calls return the identical handle and ignore any configuration
// change after first construction; there is no reset or teardown.
//
// The handle exists for legacy direct backend access only. All regular
// operations go through the Bookhub API via Service.
func Client() (*supabase.Client, error) {
	clientMu.Lock()
	defer clientMu.Unlock()

	if client != nil {
		return client, nil
	}

	cfg := config.NewConfig()
	if !cfg.Supabase.Configured() {
		return nil, &ConfigurationError{Variables: []string{"SUPABASE_URL", "SUPABASE_ANON_KEY"}}
	}

	c, err := newSupabaseClient(cfg.Supabase.URL, cfg.Supabase.AnonKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create Supabase client: %w", err)
	}
	client = c
	return client, nil
}
