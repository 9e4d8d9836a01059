package quiz

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		want      []Pair
		wantStats Stats
	}{
		{
			name:    "empty input",
			content: "",
			want:    nil,
		},
		{
			name:    "only whitespace",
			content: "   \n\t\n   ",
			want:    nil,
		},
		{
			name:    "two pairs",
			content: "Q1?\nA1\n\nQ2?\nA2",
			want: []Pair{
				{Question: "Q1?", Answer: "A1"},
				{Question: "Q2?", Answer: "A2"},
			},
			wantStats: Stats{Blocks: 2},
		},
		{
			name:    "question without answer",
			content: "OnlyQuestion?",
			want: []Pair{
				{Question: "OnlyQuestion?", Answer: ""},
			},
			wantStats: Stats{Blocks: 1},
		},
		{
			name:    "consecutive blank lines contribute nothing",
			content: "Q1?\nA1\n\n\n\nQ2?\nA2",
			want: []Pair{
				{Question: "Q1?", Answer: "A1"},
				{Question: "Q2?", Answer: "A2"},
			},
			wantStats: Stats{Blocks: 2},
		},
		{
			name:    "extra block lines are dropped",
			content: "Q1?\nA1\nignored\nalso ignored\n\nQ2?\nA2",
			want: []Pair{
				{Question: "Q1?", Answer: "A1"},
				{Question: "Q2?", Answer: "A2"},
			},
			wantStats: Stats{Blocks: 2, IgnoredLines: 2},
		},
		{
			name:    "surrounding whitespace is trimmed",
			content: "\n\n  Q1?  \n  A1  \n\n",
			want: []Pair{
				{Question: "Q1?", Answer: "A1"},
			},
			wantStats: Stats{Blocks: 1},
		},
		{
			name:    "windows line endings",
			content: "Q1?\r\nA1\r\n\r\nQ2?\r\nA2",
			want: []Pair{
				{Question: "Q1?", Answer: "A1"},
				{Question: "Q2?", Answer: "A2"},
			},
			wantStats: Stats{Blocks: 2},
		},
		{
			name:    "duplicate questions are kept in order",
			content: "Same?\nFirst\n\nSame?\nSecond",
			want: []Pair{
				{Question: "Same?", Answer: "First"},
				{Question: "Same?", Answer: "Second"},
			},
			wantStats: Stats{Blocks: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, stats := Parse(tt.content)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse() = %v, want %v", got, tt.want)
			}
			if stats != tt.wantStats {
				t.Errorf("Parse() stats = %+v, want %+v", stats, tt.wantStats)
			}
		})
	}
}

func TestParseFile(t *testing.T) {
	tmpDir := t.TempDir()
	quizFile := filepath.Join(tmpDir, "quiz.txt")
	content := "Who wrote Hamlet?\nWilliam Shakespeare\n\nCapital of France?\nParis"
	if err := os.WriteFile(quizFile, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create quiz file: %v", err)
	}

	pairs, stats, err := ParseFile(quizFile)
	if err != nil {
		t.Fatalf("ParseFile() error = %v", err)
	}
	if len(pairs) != 2 {
		t.Errorf("Expected 2 pairs, got %d", len(pairs))
	}
	if stats.Blocks != 2 {
		t.Errorf("Expected 2 blocks, got %d", stats.Blocks)
	}
	if pairs[0].Question != "Who wrote Hamlet?" || pairs[0].Answer != "William Shakespeare" {
		t.Errorf("Unexpected first pair: %+v", pairs[0])
	}
}

func TestParseFile_NotFound(t *testing.T) {
	_, _, err := ParseFile("/nonexistent/quiz.txt")
	if err == nil {
		t.Fatal("Expected error for non-existent file")
	}
	if errors.Is(err, ErrNoPairs) {
		t.Error("Missing file must not be reported as an empty parse")
	}
}

func TestParseFile_Empty(t *testing.T) {
	tmpDir := t.TempDir()
	quizFile := filepath.Join(tmpDir, "empty.txt")
	if err := os.WriteFile(quizFile, []byte("\n\n\n"), 0644); err != nil {
		t.Fatalf("Failed to create quiz file: %v", err)
	}

	_, _, err := ParseFile(quizFile)
	if !errors.Is(err, ErrNoPairs) {
		t.Errorf("Expected ErrNoPairs, got %v", err)
	}
}
