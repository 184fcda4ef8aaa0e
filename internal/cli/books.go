package cli

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/ayeshaqaisar/bookhub/internal/utils"
)

// BooksCommand lists the book catalog
type BooksCommand struct {
	Verbose bool
}

func NewBooksCommand() *BooksCommand {
	return &BooksCommand{}
}

func (cmd *BooksCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("books", flag.ExitOnError)

	fs.BoolVar(&cmd.Verbose, "verbose", false, "Show descriptions and cover URLs")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s books [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "List all books in the catalog.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

func (cmd *BooksCommand) Run() error {
	svc, _, err := newService()
	if err != nil {
		return err
	}

	books, err := svc.FetchBooks(context.Background())
	if err != nil {
		return fmt.Errorf("failed to fetch books: %w", err)
	}

	if len(books) == 0 {
		fmt.Println("No books in the catalog yet. Use 'upload' to add one.")
		return nil
	}

	fmt.Printf("Found %d books:\n\n", len(books))
	for i, book := range books {
		fmt.Printf("%d. \"%s\" by %s [%s]\n", i+1, book.Title, book.Author, book.ID)
		if book.Status != "" && book.Status != "ready" {
			fmt.Printf("   Status: %s\n", book.Status)
		}
		if cmd.Verbose {
			if book.Description != "" {
				fmt.Printf("   %s\n", utils.Truncate(book.Description, 100))
			}
			if book.CoverURL != "" {
				fmt.Printf("   Cover: %s\n", book.CoverURL)
			}
		}
	}

	return nil
}
