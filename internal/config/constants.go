package config

// Default endpoints for the hosted Bookhub deployment
const (
	// DefaultAPIURL is the base URL of the production Bookhub API
	DefaultAPIURL = "https://bookhub-api.onrender.com"

	// DefaultLegacyAPIURL is the base URL of the pre-Supabase API, still
	// serving deployments that have not been migrated
	DefaultLegacyAPIURL = "https://bookhub-legacy.onrender.com"
)
