package cli

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/ayeshaqaisar/bookhub/internal/api"
	"github.com/ayeshaqaisar/bookhub/internal/progress"
)

// ProgressCommand shows or updates the user's reading progress
type ProgressCommand struct {
	Set     bool
	Payload api.ReadingProgress
}

func NewProgressCommand() *ProgressCommand {
	return &ProgressCommand{}
}

func (cmd *ProgressCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("progress", flag.ExitOnError)

	var (
		bookID    string
		percent   float64
		page      int
		status    string
		position  string
		favourite bool
	)
	fs.BoolVar(&cmd.Set, "set", false, "Update progress instead of listing it (requires -book)")
	fs.StringVar(&bookID, "book", "", "Book identifier (required with -set)")
	fs.Float64Var(&percent, "percent", 0, "Percent complete, 0-100")
	fs.IntVar(&page, "page", 0, "Current page")
	fs.StringVar(&status, "status", "", "Progress status: reading, completed or paused")
	fs.StringVar(&position, "position", "", "Reader position as raw JSON")
	fs.BoolVar(&favourite, "favourite", false, "Mark the book as a favourite")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s progress [-set -book <book-id> [options]]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Without -set, list your reading progress across all books.\n")
		fmt.Fprintf(os.Stderr, "With -set, upsert progress for one book. Omitted options fall back to\n")
		fmt.Fprintf(os.Stderr, "backend defaults (0%%, status 'reading', not a favourite).\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s progress\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s progress -set -book b1 -percent 42 -page 120 -status reading\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if !cmd.Set {
		return nil
	}
	if bookID == "" {
		return fmt.Errorf("required flag -book not provided")
	}

	cmd.Payload = api.ReadingProgress{BookID: bookID}

	// Only flags the user actually set go into the payload; the adapter
	// applies defaults for the rest.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "percent":
			cmd.Payload.PercentComplete = &percent
		case "page":
			cmd.Payload.CurrentPage = &page
		case "status":
			cmd.Payload.Status = api.ProgressStatus(status)
		case "position":
			cmd.Payload.LastPosition = json.RawMessage(position)
		case "favourite":
			cmd.Payload.IsFavourite = &favourite
		}
	})

	switch cmd.Payload.Status {
	case "", api.StatusReading, api.StatusCompleted, api.StatusPaused:
	default:
		return fmt.Errorf("invalid -status %q: must be reading, completed or paused", cmd.Payload.Status)
	}

	if cmd.Payload.LastPosition != nil && !json.Valid(cmd.Payload.LastPosition) {
		return fmt.Errorf("invalid -position: not valid JSON")
	}

	return nil
}

func (cmd *ProgressCommand) Run() error {
	svc, cfg, err := newService()
	if err != nil {
		return err
	}
	adapter := progress.NewAdapter(svc)
	ctx := context.Background()

	if cmd.Set {
		cmd.Payload.UserID = cfg.User.ID
		if err := adapter.Upsert(ctx, cmd.Payload); err != nil {
			return fmt.Errorf("failed to save reading progress: %w", err)
		}
		fmt.Printf("Progress saved for book %s\n", cmd.Payload.BookID)
		return nil
	}

	records, err := adapter.Fetch(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch reading progress: %w", err)
	}

	if len(records) == 0 {
		fmt.Println("No reading progress recorded yet.")
		return nil
	}

	fmt.Printf("Reading progress (%d books):\n\n", len(records))
	for _, record := range records {
		printProgress(record)
	}

	return nil
}

func printProgress(record api.ReadingProgress) {
	percent := 0.0
	if record.PercentComplete != nil {
		percent = *record.PercentComplete
	}

	line := fmt.Sprintf("- %s: %.0f%%", record.BookID, percent)
	if record.Status != "" {
		line += fmt.Sprintf(" (%s)", record.Status)
	}
	if record.CurrentPage != nil {
		line += fmt.Sprintf(", page %d", *record.CurrentPage)
	}
	if record.IsFavourite != nil && *record.IsFavourite {
		line += ", favourite"
	}
	fmt.Println(line)

	if record.LastReadAt != "" {
		fmt.Printf("  Last read: %s\n", record.LastReadAt)
	}
}
