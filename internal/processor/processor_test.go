package processor

import (
	"archive/zip"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"codeberg.org/snonux/quizdeck/internal/cli"
	"codeberg.org/snonux/quizdeck/internal/quiz"
)

func TestOutputPath(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"txt extension replaced", "quiz.txt", "quiz.pptx"},
		{"no extension appended", "quiz", "quiz.pptx"},
		{"path preserved", "/tmp/decks/quiz.txt", "/tmp/decks/quiz.pptx"},
		{"other extension kept", "quiz.text", "quiz.text.pptx"},
		{"txt only at the end counts", "my.txt.backup", "my.txt.backup.pptx"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OutputPath(tt.input); got != tt.want {
				t.Errorf("OutputPath(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestRun(t *testing.T) {
	tmpDir := t.TempDir()
	inputPath := filepath.Join(tmpDir, "quiz.txt")
	content := "Q1?\nA1\n\nQ2?\nA2"
	if err := os.WriteFile(inputPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create quiz file: %v", err)
	}

	proc := NewProcessor(cli.NewFlags())
	if err := proc.Run(inputPath); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	outputPath := filepath.Join(tmpDir, "quiz.pptx")
	reader, err := zip.OpenReader(outputPath)
	if err != nil {
		t.Fatalf("Expected a valid .pptx at %s: %v", outputPath, err)
	}
	defer reader.Close()

	slideCount := 0
	for _, f := range reader.File {
		if filepath.Dir(f.Name) == "ppt/slides" {
			slideCount++
		}
	}
	if slideCount != 4 {
		t.Errorf("Expected 4 slide parts for 2 pairs, got %d", slideCount)
	}
}

func TestRun_ExplicitOutput(t *testing.T) {
	tmpDir := t.TempDir()
	inputPath := filepath.Join(tmpDir, "quiz.txt")
	if err := os.WriteFile(inputPath, []byte("Q?\nA"), 0644); err != nil {
		t.Fatalf("Failed to create quiz file: %v", err)
	}

	flags := cli.NewFlags()
	flags.OutputPath = filepath.Join(tmpDir, "custom.pptx")

	proc := NewProcessor(flags)
	if err := proc.Run(inputPath); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if _, err := os.Stat(flags.OutputPath); err != nil {
		t.Errorf("Expected deck at %s: %v", flags.OutputPath, err)
	}
}

func TestRun_WithAnkiExport(t *testing.T) {
	tmpDir := t.TempDir()
	inputPath := filepath.Join(tmpDir, "quiz.txt")
	if err := os.WriteFile(inputPath, []byte("Q1?\nA1\n\nQ2?\nA2"), 0644); err != nil {
		t.Fatalf("Failed to create quiz file: %v", err)
	}

	flags := cli.NewFlags()
	flags.GenerateAnki = true

	proc := NewProcessor(flags)
	if err := proc.Run(inputPath); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	apkgPath := filepath.Join(tmpDir, "quiz.apkg")
	if _, err := zip.OpenReader(apkgPath); err != nil {
		t.Errorf("Expected a valid .apkg at %s: %v", apkgPath, err)
	}
}

func TestRun_WithAnkiCSVExport(t *testing.T) {
	tmpDir := t.TempDir()
	inputPath := filepath.Join(tmpDir, "quiz.txt")
	if err := os.WriteFile(inputPath, []byte("Q1?\nA1"), 0644); err != nil {
		t.Fatalf("Failed to create quiz file: %v", err)
	}

	flags := cli.NewFlags()
	flags.GenerateAnki = true
	flags.AnkiCSV = true

	proc := NewProcessor(flags)
	if err := proc.Run(inputPath); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	csvPath := filepath.Join(tmpDir, "quiz.csv")
	if _, err := os.Stat(csvPath); err != nil {
		t.Errorf("Expected a CSV export at %s: %v", csvPath, err)
	}
}

func TestRun_EmptyInput(t *testing.T) {
	tmpDir := t.TempDir()
	inputPath := filepath.Join(tmpDir, "empty.txt")
	if err := os.WriteFile(inputPath, []byte(""), 0644); err != nil {
		t.Fatalf("Failed to create quiz file: %v", err)
	}

	proc := NewProcessor(cli.NewFlags())
	err := proc.Run(inputPath)
	if !errors.Is(err, quiz.ErrNoPairs) {
		t.Fatalf("Expected ErrNoPairs, got %v", err)
	}

	// An empty parse must not leave any deck file behind.
	if _, statErr := os.Stat(filepath.Join(tmpDir, "empty.pptx")); !os.IsNotExist(statErr) {
		t.Error("No deck file may be written when parsing yields no pairs")
	}
}

func TestRun_MissingInput(t *testing.T) {
	proc := NewProcessor(cli.NewFlags())
	if err := proc.Run("/nonexistent/quiz.txt"); err == nil {
		t.Fatal("Expected error for missing input file")
	}
}
