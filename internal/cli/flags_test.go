package cli

import "testing"

func TestNewFlags(t *testing.T) {
	flags := NewFlags()

	if flags == nil {
		t.Fatal("NewFlags returned nil")
	}

	if flags.DeckName != "Quiz Deck" {
		t.Errorf("Expected default deck name 'Quiz Deck', got %q", flags.DeckName)
	}
	if flags.Background != "202020" {
		t.Errorf("Expected default background 202020, got %q", flags.Background)
	}
	if flags.TextColor != "FFFFFF" {
		t.Errorf("Expected default text color FFFFFF, got %q", flags.TextColor)
	}
	if flags.TitleSize != 32 {
		t.Errorf("Expected default title size 32, got %d", flags.TitleSize)
	}
	if flags.BodySize != 28 {
		t.Errorf("Expected default body size 28, got %d", flags.BodySize)
	}

	if flags.GenerateAnki || flags.AnkiCSV || flags.Archive {
		t.Error("Boolean flags must default to false")
	}
	if flags.OutputPath != "" {
		t.Errorf("Expected empty default output path, got %q", flags.OutputPath)
	}
}
