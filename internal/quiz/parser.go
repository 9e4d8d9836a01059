package quiz

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrNoPairs is returned when a quiz file yields no question/answer pairs.
var ErrNoPairs = errors.New("no question/answer pairs found")

// Pair is one parsed question/answer unit. Input order is preserved and
// determines the slide numbering.
type Pair struct {
	Question string
	Answer   string
}

// Stats reports what the parser encountered beyond the pairs themselves.
type Stats struct {
	// Blocks is the number of non-empty blocks seen in the input.
	Blocks int
	// IgnoredLines counts lines beyond the second within a block. The
	// original format only defines two lines per block; anything further
	// is dropped, and callers may want to warn about it.
	IgnoredLines int
}

// Parse splits content into question/answer pairs. Blocks are separated
// by one blank line. A block with at least two lines becomes a pair of
// its first two lines; a single-line block becomes a question with an
// empty answer; empty blocks are skipped.
func Parse(content string) ([]Pair, Stats) {
	var stats Stats

	// Normalize Windows line endings so a blank line is always "\n\n".
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.TrimSpace(content)

	var pairs []Pair
	for _, block := range strings.Split(content, "\n\n") {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		stats.Blocks++

		lines := strings.Split(block, "\n")
		for i, line := range lines {
			lines[i] = strings.TrimSpace(line)
		}

		switch {
		case len(lines) >= 2:
			pairs = append(pairs, Pair{Question: lines[0], Answer: lines[1]})
			stats.IgnoredLines += len(lines) - 2
		case len(lines) == 1:
			// Question without answer - include it anyway.
			pairs = append(pairs, Pair{Question: lines[0]})
		}
	}

	return pairs, stats
}

// ParseFile reads path and parses its content. It returns ErrNoPairs
// (wrapped) when the file contains no pairs at all.
func ParseFile(path string) ([]Pair, Stats, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, Stats{}, fmt.Errorf("file %q not found", path)
		}
		return nil, Stats{}, fmt.Errorf("failed to read %q: %w", path, err)
	}

	pairs, stats := Parse(string(content))
	if len(pairs) == 0 {
		return nil, stats, fmt.Errorf("%q: %w", path, ErrNoPairs)
	}
	return pairs, stats, nil
}
