package anki

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestGenerateCSV(t *testing.T) {
	cards := []Card{
		{Question: "Who wrote Hamlet?", Answer: "William Shakespeare"},
		{Question: "Capital of France?", Answer: "Paris"},
		{Question: "Quote, with \"comma\"?", Answer: ""},
	}

	outputPath := filepath.Join(t.TempDir(), "import.csv")
	if err := GenerateCSV(cards, outputPath); err != nil {
		t.Fatalf("GenerateCSV() error = %v", err)
	}

	file, err := os.Open(outputPath)
	if err != nil {
		t.Fatalf("Failed to open CSV: %v", err)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatalf("Failed to parse CSV: %v", err)
	}

	want := [][]string{
		{"Question", "Answer"},
		{"Who wrote Hamlet?", "William Shakespeare"},
		{"Capital of France?", "Paris"},
		{"Quote, with \"comma\"?", ""},
	}
	if !reflect.DeepEqual(records, want) {
		t.Errorf("CSV records = %v, want %v", records, want)
	}
}

func TestGenerateCSV_BadPath(t *testing.T) {
	err := GenerateCSV(nil, "/nonexistent/dir/import.csv")
	if err == nil {
		t.Fatal("Expected error for unwritable output path")
	}
}
