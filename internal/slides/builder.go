package slides

import (
	"fmt"

	"codeberg.org/snonux/quizdeck/internal/pptx"
	"codeberg.org/snonux/quizdeck/internal/quiz"
)

// Theme holds the shared visual settings of a generated deck.
type Theme struct {
	Background string // hex RGB background color
	TextColor  string // hex RGB text color
	TitleSize  int    // title font size in points
	BodySize   int    // body font size in points
}

// DefaultTheme returns the dark theme the generator ships with.
func DefaultTheme() Theme {
	return Theme{
		Background: "202020",
		TextColor:  "FFFFFF",
		TitleSize:  32,
		BodySize:   28,
	}
}

// Progress is called once per emitted slide. The stage is either
// "question" or "answer"; i runs from 1 to n. It is purely
// observational and must not influence the deck.
type Progress func(stage string, i, n int)

// Build creates the deck for the given pairs: first all question slides,
// then all answer slides, never interleaved. Slide i of either pass is
// titled "i.". The resulting deck always has exactly 2x len(pairs)
// slides. progress may be nil.
func Build(pairs []quiz.Pair, theme Theme, progress Progress) *pptx.Deck {
	deck := pptx.NewDeck()
	deck.Background = theme.Background
	deck.TitleColor = theme.TextColor
	deck.TitleSize = theme.TitleSize

	n := len(pairs)

	// First pass: question slides.
	for i, pair := range pairs {
		deck.AddSlide(fmt.Sprintf("%d.", i+1), pptx.TextBox{
			Text: pair.Question,
			Left: 1, Top: 2, Width: 8, Height: 4,
			Size:  theme.BodySize,
			Color: theme.TextColor,
		})
		if progress != nil {
			progress("question", i+1, n)
		}
	}

	// Second pass: question plus answer, answer in bold. Two separate
	// boxes so the question and answer carry different bold flags.
	for i, pair := range pairs {
		deck.AddSlide(fmt.Sprintf("%d.", i+1),
			pptx.TextBox{
				Text: pair.Question,
				Left: 1, Top: 2, Width: 8, Height: 2,
				Size:  theme.BodySize,
				Color: theme.TextColor,
			},
			pptx.TextBox{
				Text: pair.Answer,
				Left: 1, Top: 4.5, Width: 8, Height: 2,
				Size:  theme.BodySize,
				Bold:  true,
				Color: theme.TextColor,
			},
		)
		if progress != nil {
			progress("answer", i+1, n)
		}
	}

	return deck
}
