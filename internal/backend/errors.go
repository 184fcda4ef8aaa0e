package backend

import (
	"fmt"
	"strings"
)

// ConfigurationError indicates the Supabase environment variables are missing
// or empty. It is raised synchronously, before any construction or network
// attempt.
type ConfigurationError struct {
	Variables []string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("backend is not configured: set %s", strings.Join(e.Variables, " and "))
}
