package cli

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/ayeshaqaisar/bookhub/internal/api"
)

// ChatCommand sends chat messages to a book character
type ChatCommand struct {
	CharacterID string
	Message     string
	Interactive bool
}

func NewChatCommand() *ChatCommand {
	return &ChatCommand{}
}

func (cmd *ChatCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("chat", flag.ExitOnError)

	fs.StringVar(&cmd.CharacterID, "character", "", "Character identifier (required)")
	fs.StringVar(&cmd.Message, "message", "", "Message to send (required unless -interactive)")
	fs.BoolVar(&cmd.Interactive, "interactive", false, "Keep a conversation loop open on stdin")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s chat -character <character-id> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Chat with an AI character extracted from a book.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  # Single message:\n")
		fmt.Fprintf(os.Stderr, "  %s chat -character c1 -message \"What drives you?\"\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  # Conversation loop (empty line or Ctrl-D to quit):\n")
		fmt.Fprintf(os.Stderr, "  %s chat -character c1 -interactive\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.CharacterID == "" {
		return fmt.Errorf("required flag -character not provided")
	}
	if cmd.Message == "" && !cmd.Interactive {
		return fmt.Errorf("provide -message or use -interactive")
	}

	return nil
}

func (cmd *ChatCommand) Run() error {
	svc, _, err := newService()
	if err != nil {
		return err
	}
	ctx := context.Background()

	// History is client-side only: the backend is stateless and receives the
	// full conversation with every message.
	var history []api.ChatMessage

	send := func(message string) error {
		reply, err := svc.SendCharacterMessage(ctx, cmd.CharacterID, message, history)
		if err != nil {
			return fmt.Errorf("failed to send message: %w", err)
		}

		fmt.Printf("\n%s\n", reply.Reply)

		history = append(history,
			api.ChatMessage{Role: "user", Content: message},
			api.ChatMessage{Role: "character", Content: reply.Reply},
		)
		return nil
	}

	if cmd.Message != "" {
		if err := send(cmd.Message); err != nil {
			return err
		}
	}

	if !cmd.Interactive {
		return nil
	}

	fmt.Println("\nInteractive chat. Empty line or Ctrl-D to quit.")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("\n> ")
		if !scanner.Scan() {
			break
		}
		message := strings.TrimSpace(scanner.Text())
		if message == "" {
			break
		}
		if err := send(message); err != nil {
			return err
		}
	}

	return scanner.Err()
}
