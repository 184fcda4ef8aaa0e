package cli

import (
	"context"
	"flag"
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/ayeshaqaisar/bookhub/internal/api"
	"github.com/ayeshaqaisar/bookhub/internal/progress"
)

// LibraryCommand shows the catalog joined with the user's reading progress
type LibraryCommand struct {
	FavouritesOnly bool
}

func NewLibraryCommand() *LibraryCommand {
	return &LibraryCommand{}
}

func (cmd *LibraryCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("library", flag.ExitOnError)

	fs.BoolVar(&cmd.FavouritesOnly, "favourites", false, "Only show favourite books")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s library [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Show all books together with your reading progress.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

func (cmd *LibraryCommand) Run() error {
	svc, _, err := newService()
	if err != nil {
		return err
	}
	adapter := progress.NewAdapter(svc)

	var (
		books   []api.Book
		records []api.ReadingProgress
	)

	g, ctx := errgroup.WithContext(context.Background())
	g.Go(func() error {
		var err error
		books, err = svc.FetchBooks(ctx)
		if err != nil {
			return fmt.Errorf("failed to fetch books: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		records, err = adapter.Fetch(ctx)
		if err != nil {
			return fmt.Errorf("failed to fetch reading progress: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	byBook := make(map[string]api.ReadingProgress, len(records))
	for _, record := range records {
		byBook[record.BookID] = record
	}

	shown := 0
	for _, book := range books {
		record, hasProgress := byBook[book.ID]

		favourite := hasProgress && record.IsFavourite != nil && *record.IsFavourite
		if cmd.FavouritesOnly && !favourite {
			continue
		}
		shown++

		marker := " "
		if favourite {
			marker = "*"
		}

		if !hasProgress {
			fmt.Printf("%s \"%s\" by %s - not started\n", marker, book.Title, book.Author)
			continue
		}

		percent := 0.0
		if record.PercentComplete != nil {
			percent = *record.PercentComplete
		}
		status := record.Status
		if status == "" {
			status = api.StatusReading
		}
		fmt.Printf("%s \"%s\" by %s - %.0f%% (%s)\n", marker, book.Title, book.Author, percent, status)
	}

	if shown == 0 {
		fmt.Println("Nothing to show.")
	}

	return nil
}
