package anki

import (
	"encoding/csv"
	"fmt"
	"os"
)

// GenerateCSV writes the cards as a two-column CSV file for Anki's
// legacy text import. Headers are written first so the importer can map
// the columns.
func GenerateCSV(cards []Card, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write([]string{"Question", "Answer"}); err != nil {
		return fmt.Errorf("failed to write headers: %w", err)
	}

	for _, card := range cards {
		if err := writer.Write([]string{card.Question, card.Answer}); err != nil {
			return fmt.Errorf("failed to write card: %w", err)
		}
	}

	return nil
}
