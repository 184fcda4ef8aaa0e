package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
)

// AskCommand asks a free-form question about a book
type AskCommand struct {
	BookID   string
	Question string
}

func NewAskCommand() *AskCommand {
	return &AskCommand{}
}

func (cmd *AskCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("ask", flag.ExitOnError)

	fs.StringVar(&cmd.BookID, "book", "", "Book identifier (required)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s ask -book <book-id> <question>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Ask a question about a book, answered from its indexed text.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExample:\n")
		fmt.Fprintf(os.Stderr, "  %s ask -book b1 who rules Arrakis at the start of the story?\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.BookID == "" {
		return fmt.Errorf("required flag -book not provided")
	}

	cmd.Question = strings.Join(fs.Args(), " ")
	if cmd.Question == "" {
		return fmt.Errorf("no question provided")
	}

	return nil
}

func (cmd *AskCommand) Run() error {
	svc, _, err := newService()
	if err != nil {
		return err
	}

	answer, err := svc.AskBookQuestion(context.Background(), cmd.BookID, cmd.Question)
	if err != nil {
		return fmt.Errorf("failed to ask question: %w", err)
	}

	fmt.Printf("\n%s\n", answer.Answer)
	if len(answer.Sources) > 0 {
		fmt.Printf("\nSources: %s\n", strings.Join(answer.Sources, ", "))
	}

	return nil
}
