package cli

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/mrlokans/bookmarks/internal/config"
	"github.com/mrlokans/bookmarks/internal/database"
	"github.com/mrlokans/bookmarks/internal/importers"
)

// ImportFileCommand imports a bookmark export file straight into the
// database, without going through the HTTP server.
type ImportFileCommand struct {
	FilePath     string
	DatabasePath string
	Verbose      bool
	DryRun       bool
}

func NewImportFileCommand() *ImportFileCommand {
	return &ImportFileCommand{}
}

func (cmd *ImportFileCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("import-file", flag.ExitOnError)

	fs.StringVar(&cmd.FilePath, "file", "", "Path to the bookmark export file (required)")
	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the local database file for storing imported bookmarks")
	fs.BoolVar(&cmd.Verbose, "verbose", false, "Enable verbose logging")
	fs.BoolVar(&cmd.DryRun, "dry-run", false, "Show what would be imported without making changes")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s import-file -file <path> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Import bookmarks from a browser, Pinboard, Pocket or Instapaper export.\n")
		fmt.Fprintf(os.Stderr, "The format is detected from the file content.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  # Import a browser bookmark export:\n")
		fmt.Fprintf(os.Stderr, "  %s import-file -file bookmarks.html\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  # Preview what a Pocket export would import:\n")
		fmt.Fprintf(os.Stderr, "  %s import-file -file pocket.csv -dry-run -verbose\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.FilePath == "" {
		return fmt.Errorf("required flag -file not provided")
	}

	return nil
}

func (cmd *ImportFileCommand) Run() error {
	fmt.Println("Bookmark Import")
	fmt.Println("===============")

	if cmd.DryRun {
		fmt.Println("DRY RUN MODE - No changes will be made")
		fmt.Println()
	}

	data, err := os.ReadFile(cmd.FilePath)
	if err != nil {
		return fmt.Errorf("failed to read export file: %w", err)
	}

	content := string(data)
	if len(content) == 0 {
		return fmt.Errorf("file is empty: %s", cmd.FilePath)
	}

	format, ok := importers.Detect(content)
	if !ok {
		return fmt.Errorf("unrecognized file format: %s", cmd.FilePath)
	}

	fmt.Printf("File: %s\n", cmd.FilePath)
	fmt.Printf("Detected format: %s\n", format)

	parsed := importers.Parse(format, content)
	if len(parsed) == 0 {
		fmt.Println("No valid bookmarks found in export file")
		return nil
	}

	db, err := database.NewDatabase(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	existing, err := db.ListBookmarkBaseURLs(0)
	if err != nil {
		return fmt.Errorf("failed to list existing bookmarks: %w", err)
	}

	fresh, skipped := importers.Partition(parsed, existing)
	fmt.Printf("Found %d bookmarks (%d already present)\n", len(parsed), skipped)

	if cmd.Verbose {
		fmt.Println("\n=== Bookmarks to Import ===")
		for i, b := range fresh {
			title := b.Title
			if title == "" {
				title = "(no title)"
			}
			fmt.Printf("%d. %s - %s\n", i+1, title, b.URL)
		}
	}

	if cmd.DryRun {
		fmt.Printf("\nWould import %d new bookmarks\n", len(fresh))
		return nil
	}

	imported, failed := 0, 0
	ctx := context.Background()
	for _, b := range fresh {
		if err := db.CreateBookmark(ctx, 0, b); err != nil {
			failed++
			if cmd.Verbose {
				fmt.Printf("Failed to import %s: %v\n", b.URL, err)
			}
			continue
		}
		imported++
	}

	fmt.Printf("\nImported %d bookmarks (%d skipped, %d failed)\n", imported, skipped, failed)
	return nil
}
