package archive

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// deckPatterns matches the file types quizdeck generates.
var deckPatterns = []string{"*.pptx", "*.apkg", "*.csv"}

// ArchiveDecks moves previously generated deck files out of dir into a
// timestamped subdirectory of dir/archive.
func ArchiveDecks(dir string) error {
	// Check if the deck directory exists
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return fmt.Errorf("deck directory does not exist: %s", dir)
	}

	var decks []string
	for _, pattern := range deckPatterns {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return fmt.Errorf("failed to scan deck directory: %w", err)
		}
		decks = append(decks, matches...)
	}
	if len(decks) == 0 {
		return fmt.Errorf("no generated decks found in %s", dir)
	}

	// Create archive directory if it doesn't exist
	archiveDir := filepath.Join(dir, "archive")
	if err := os.MkdirAll(archiveDir, 0755); err != nil {
		return fmt.Errorf("failed to create archive directory: %w", err)
	}

	// Generate timestamp
	timestamp := time.Now().Format("20060102-150405")
	archivePath := filepath.Join(archiveDir, fmt.Sprintf("decks-%s", timestamp))

	// Check if archive already exists (unlikely but possible)
	if _, err := os.Stat(archivePath); err == nil {
		// Add microseconds to make it unique
		timestamp = time.Now().Format("20060102-150405.000000")
		archivePath = filepath.Join(archiveDir, fmt.Sprintf("decks-%s", timestamp))
	}

	if err := os.MkdirAll(archivePath, 0755); err != nil {
		return fmt.Errorf("failed to create archive directory: %w", err)
	}

	for _, deck := range decks {
		target := filepath.Join(archivePath, filepath.Base(deck))
		if err := os.Rename(deck, target); err != nil {
			return fmt.Errorf("failed to archive %s: %w", deck, err)
		}
	}

	fmt.Printf("Archived %d deck(s) to: %s\n", len(decks), archivePath)
	return nil
}
