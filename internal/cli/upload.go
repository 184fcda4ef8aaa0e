package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ayeshaqaisar/bookhub/internal/api"
)

// UploadCommand uploads a new book to the catalog
type UploadCommand struct {
	FilePath    string
	Title       string
	Author      string
	Description string
}

func NewUploadCommand() *UploadCommand {
	return &UploadCommand{}
}

func (cmd *UploadCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("upload", flag.ExitOnError)

	fs.StringVar(&cmd.FilePath, "file", "", "Path to the book file to upload (required)")
	fs.StringVar(&cmd.Title, "title", "", "Book title (required)")
	fs.StringVar(&cmd.Author, "author", "", "Book author (required)")
	fs.StringVar(&cmd.Description, "description", "", "Book description")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s upload -file <path> -title <title> -author <author> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Upload a book to the catalog. The backend chunks and indexes the text\n")
		fmt.Fprintf(os.Stderr, "asynchronously; the book stays in 'processing' status until that finishes.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExample:\n")
		fmt.Fprintf(os.Stderr, "  %s upload -file dune.txt -title \"Dune\" -author \"Frank Herbert\"\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.FilePath == "" {
		return fmt.Errorf("required flag -file not provided")
	}
	if cmd.Title == "" {
		return fmt.Errorf("required flag -title not provided")
	}
	if cmd.Author == "" {
		return fmt.Errorf("required flag -author not provided")
	}

	return nil
}

func (cmd *UploadCommand) Run() error {
	svc, _, err := newService()
	if err != nil {
		return err
	}

	file, err := os.Open(cmd.FilePath)
	if err != nil {
		return fmt.Errorf("failed to open book file: %w", err)
	}
	defer file.Close()

	fmt.Printf("Uploading \"%s\" by %s...\n", cmd.Title, cmd.Author)

	book, err := svc.UploadBook(context.Background(), api.BookUpload{
		Title:       cmd.Title,
		Author:      cmd.Author,
		Description: cmd.Description,
		Filename:    filepath.Base(cmd.FilePath),
		Content:     file,
	})
	if err != nil {
		return fmt.Errorf("failed to upload book: %w", err)
	}

	fmt.Printf("Uploaded. Book ID: %s (status: %s)\n", book.ID, book.Status)
	return nil
}
