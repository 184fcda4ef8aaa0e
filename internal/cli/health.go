package cli

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/ayeshaqaisar/bookhub/internal/backend"
)

// HealthCommand reports API reachability and backend configuration
type HealthCommand struct{}

func NewHealthCommand() *HealthCommand {
	return &HealthCommand{}
}

func (cmd *HealthCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("health", flag.ExitOnError)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s health\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Check Bookhub API health and Supabase configuration.\n")
	}

	return fs.Parse(args)
}

func (cmd *HealthCommand) Run() error {
	svc, _, err := newService()
	if err != nil {
		return err
	}

	fmt.Printf("API URL:    %s\n", svc.BaseURL())
	fmt.Printf("Legacy URL: %s\n", svc.LegacyBaseURL())

	health, err := svc.CheckHealth(context.Background())
	if err != nil {
		fmt.Printf("API:        unreachable (%v)\n", err)
	} else if health.Version != "" {
		fmt.Printf("API:        %s (version %s)\n", health.Status, health.Version)
	} else {
		fmt.Printf("API:        %s\n", health.Status)
	}

	if !backend.IsConfigured() {
		fmt.Println("Supabase:   not configured (set SUPABASE_URL and SUPABASE_ANON_KEY for legacy access)")
		return nil
	}

	if _, err := backend.Client(); err != nil {
		return fmt.Errorf("failed to initialize Supabase client: %w", err)
	}
	fmt.Println("Supabase:   configured, client ready")

	return nil
}
