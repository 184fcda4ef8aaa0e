package cli

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/ayeshaqaisar/bookhub/internal/utils"
)

// BookCommand shows a single book with optional characters and chunks
type BookCommand struct {
	BookID         string
	ShowCharacters bool
	ShowChunks     bool
}

func NewBookCommand() *BookCommand {
	return &BookCommand{}
}

func (cmd *BookCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("book", flag.ExitOnError)

	fs.StringVar(&cmd.BookID, "id", "", "Book identifier (required)")
	fs.BoolVar(&cmd.ShowCharacters, "characters", false, "Also list the book's AI characters")
	fs.BoolVar(&cmd.ShowChunks, "chunks", false, "Also list the book's indexed text chunks")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s book -id <book-id> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Show a single book from the catalog.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s book -id b1\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s book -id b1 -characters -chunks\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.BookID == "" {
		return fmt.Errorf("required flag -id not provided")
	}

	return nil
}

func (cmd *BookCommand) Run() error {
	svc, _, err := newService()
	if err != nil {
		return err
	}
	ctx := context.Background()

	book, err := svc.FetchBook(ctx, cmd.BookID)
	if err != nil {
		return fmt.Errorf("failed to fetch book: %w", err)
	}

	fmt.Printf("\"%s\" by %s\n", book.Title, book.Author)
	fmt.Printf("ID: %s\n", book.ID)
	if book.Status != "" {
		fmt.Printf("Status: %s\n", book.Status)
	}
	if book.TotalPages > 0 {
		fmt.Printf("Pages: %d\n", book.TotalPages)
	}
	if book.Description != "" {
		fmt.Printf("\n%s\n", book.Description)
	}

	if cmd.ShowCharacters {
		characters, err := svc.FetchCharactersByBook(ctx, cmd.BookID)
		if err != nil {
			return fmt.Errorf("failed to fetch characters: %w", err)
		}

		fmt.Printf("\n=== Characters (%d) ===\n", len(characters))
		for _, character := range characters {
			fmt.Printf("- %s [%s]\n", character.Name, character.ID)
			if character.Description != "" {
				fmt.Printf("  %s\n", utils.Truncate(character.Description, 100))
			}
		}
	}

	if cmd.ShowChunks {
		chunks, err := svc.FetchChunksByBook(ctx, cmd.BookID)
		if err != nil {
			return fmt.Errorf("failed to fetch chunks: %w", err)
		}

		fmt.Printf("\n=== Chunks (%d) ===\n", len(chunks))
		for _, chunk := range chunks {
			fmt.Printf("%d. %s\n", chunk.Index, utils.Truncate(chunk.Content, 120))
		}
	}

	return nil
}
