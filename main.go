package main

import (
	"fmt"
	"os"

	"github.com/ayeshaqaisar/bookhub/internal/cli"
)

// Version information - set at build time via ldflags
var (
	Version = "dev"
	Commit  = "unknown"
)

// command is implemented by every subcommand in internal/cli.
type command interface {
	ParseFlags(args []string) error
	Run() error
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	name := os.Args[1]
	args := os.Args[2:]

	var cmd command
	switch name {
	case "books":
		cmd = cli.NewBooksCommand()
	case "book":
		cmd = cli.NewBookCommand()
	case "upload":
		cmd = cli.NewUploadCommand()
	case "update-book":
		cmd = cli.NewUpdateBookCommand()
	case "chat":
		cmd = cli.NewChatCommand()
	case "ask":
		cmd = cli.NewAskCommand()
	case "progress":
		cmd = cli.NewProgressCommand()
	case "library":
		cmd = cli.NewLibraryCommand()
	case "register":
		cmd = cli.NewRegisterCommand()
	case "health":
		cmd = cli.NewHealthCommand()

	case "version":
		fmt.Printf("bookhub %s (%s)\n", Version, Commit)
		return

	case "-h", "--help", "help":
		printUsage()
		return

	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", name)
		printUsage()
		os.Exit(1)
	}

	if err := cmd.ParseFlags(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := cmd.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: %s <command> [options]\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Commands:\n")
	fmt.Fprintf(os.Stderr, "  books        List all books in the catalog\n")
	fmt.Fprintf(os.Stderr, "  book         Show one book, optionally with characters and chunks\n")
	fmt.Fprintf(os.Stderr, "  upload       Upload a new book\n")
	fmt.Fprintf(os.Stderr, "  update-book  Update a book's metadata\n")
	fmt.Fprintf(os.Stderr, "  chat         Chat with a book character\n")
	fmt.Fprintf(os.Stderr, "  ask          Ask a question about a book\n")
	fmt.Fprintf(os.Stderr, "  progress     Show or update reading progress\n")
	fmt.Fprintf(os.Stderr, "  library      Show books joined with reading progress\n")
	fmt.Fprintf(os.Stderr, "  register     Create or update a user profile\n")
	fmt.Fprintf(os.Stderr, "  health       Check API health and backend configuration\n")
	fmt.Fprintf(os.Stderr, "\nUse '%s <command> -h' for help on a specific command.\n", os.Args[0])
}
