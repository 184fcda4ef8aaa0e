package cli

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/ayeshaqaisar/bookhub/internal/api"
)

// UpdateBookCommand applies a partial update to a book's metadata
type UpdateBookCommand struct {
	BookID string
	Update api.BookUpdate
}

func NewUpdateBookCommand() *UpdateBookCommand {
	return &UpdateBookCommand{}
}

func (cmd *UpdateBookCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("update-book", flag.ExitOnError)

	var title, author, description, cover string
	fs.StringVar(&cmd.BookID, "id", "", "Book identifier (required)")
	fs.StringVar(&title, "title", "", "New title")
	fs.StringVar(&author, "author", "", "New author")
	fs.StringVar(&description, "description", "", "New description")
	fs.StringVar(&cover, "cover", "", "New cover image URL")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s update-book -id <book-id> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Update a book's metadata. Only the provided flags are changed;\n")
		fmt.Fprintf(os.Stderr, "everything else is left untouched.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExample:\n")
		fmt.Fprintf(os.Stderr, "  %s update-book -id b1 -title \"Dune (Annotated)\"\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.BookID == "" {
		return fmt.Errorf("required flag -id not provided")
	}

	// Only flags the user actually set become part of the patch, so an empty
	// string can still clear a field.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "title":
			cmd.Update.Title = &title
		case "author":
			cmd.Update.Author = &author
		case "description":
			cmd.Update.Description = &description
		case "cover":
			cmd.Update.CoverURL = &cover
		}
	})

	if cmd.Update == (api.BookUpdate{}) {
		return fmt.Errorf("nothing to update: provide at least one of -title, -author, -description, -cover")
	}

	return nil
}

func (cmd *UpdateBookCommand) Run() error {
	svc, _, err := newService()
	if err != nil {
		return err
	}

	book, err := svc.UpdateBook(context.Background(), cmd.BookID, cmd.Update)
	if err != nil {
		return fmt.Errorf("failed to update book: %w", err)
	}

	fmt.Printf("Updated \"%s\" by %s [%s]\n", book.Title, book.Author, book.ID)
	return nil
}
