package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/ayeshaqaisar/bookhub/internal/api"
	"github.com/ayeshaqaisar/bookhub/internal/backend"
	"github.com/ayeshaqaisar/bookhub/internal/progress"
)

// Full API surface consumed by the backend facade
var _ backend.API = (*api.Client)(nil)

// The facade itself exposes the same surface it delegates to
var _ backend.API = (*backend.Service)(nil)

// Progress adapter collaborators
var _ progress.API = (*api.Client)(nil)
var _ progress.API = (*backend.Service)(nil)
