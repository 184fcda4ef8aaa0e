// Package cli contains the bookhub subcommands. Each command is a struct
// with ParseFlags and Run, wired from main.
package cli

import (
	"fmt"

	"github.com/ayeshaqaisar/bookhub/internal/api"
	"github.com/ayeshaqaisar/bookhub/internal/backend"
	"github.com/ayeshaqaisar/bookhub/internal/config"
	"github.com/ayeshaqaisar/bookhub/internal/logging"
)

// newService builds the backend facade shared by all commands from the live
// environment configuration.
func newService() (*backend.Service, *config.Config, error) {
	cfg := config.NewConfig()

	logger, err := logging.New(cfg.Logging.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logging: %w", err)
	}

	return backend.NewService(api.NewClient(cfg, logger)), cfg, nil
}
