package cli

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/ayeshaqaisar/bookhub/internal/api"
)

// RegisterCommand creates or updates a user profile
type RegisterCommand struct {
	UserID string
	Email  string
	Name   string
}

func NewRegisterCommand() *RegisterCommand {
	return &RegisterCommand{}
}

func (cmd *RegisterCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("register", flag.ExitOnError)

	fs.StringVar(&cmd.UserID, "id", "", "User identifier (defaults to BOOKHUB_USER_ID)")
	fs.StringVar(&cmd.Email, "email", "", "User email (required)")
	fs.StringVar(&cmd.Name, "name", "", "Display name")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s register -email <email> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Create or update a user profile. The operation is an upsert keyed by\n")
		fmt.Fprintf(os.Stderr, "the user identifier.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.Email == "" {
		return fmt.Errorf("required flag -email not provided")
	}

	return nil
}

func (cmd *RegisterCommand) Run() error {
	svc, cfg, err := newService()
	if err != nil {
		return err
	}

	userID := cmd.UserID
	if userID == "" {
		userID = cfg.User.ID
	}
	if userID == "" {
		return fmt.Errorf("no user identifier: pass -id or set BOOKHUB_USER_ID")
	}

	user, err := svc.CreateOrUpdateUser(context.Background(), api.User{
		ID:    userID,
		Email: cmd.Email,
		Name:  cmd.Name,
	})
	if err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}

	fmt.Printf("Saved user %s <%s>\n", user.ID, user.Email)
	return nil
}
