package processor

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"codeberg.org/snonux/quizdeck/internal/anki"
	"codeberg.org/snonux/quizdeck/internal/cli"
	"codeberg.org/snonux/quizdeck/internal/pptx"
	"codeberg.org/snonux/quizdeck/internal/quiz"
	"codeberg.org/snonux/quizdeck/internal/slides"
)

// Processor handles the main quiz processing logic
type Processor struct {
	flags *cli.Flags
}

// NewProcessor creates a new quiz processor
func NewProcessor(flags *cli.Flags) *Processor {
	return &Processor{flags: flags}
}

// Run reads the quiz file, generates the presentation, and optionally
// the Anki export. All status output is human-readable only.
func (p *Processor) Run(inputPath string) error {
	fmt.Printf("Reading questions from: %s\n", inputPath)

	pairs, stats, err := quiz.ParseFile(inputPath)
	if err != nil {
		if errors.Is(err, quiz.ErrNoPairs) {
			fmt.Fprintln(os.Stderr, "No question/answer pairs found in file.")
			fmt.Fprintln(os.Stderr, "Check your file format - questions and answers should be separated by blank lines.")
		}
		return err
	}

	if stats.IgnoredLines > 0 {
		fmt.Fprintf(os.Stderr, "Warning: ignored %d extra line(s) - only the first two lines of a block are used\n", stats.IgnoredLines)
	}

	fmt.Printf("Found %d question/answer pairs\n\n", len(pairs))

	outputPath := p.flags.OutputPath
	if outputPath == "" {
		outputPath = OutputPath(inputPath)
	}

	deck := p.buildDeck(pairs)
	if err := deck.Save(outputPath); err != nil {
		return err
	}

	n := len(pairs)
	fmt.Printf("\nPresentation saved as: %s\n", outputPath)
	fmt.Printf("Total slides: %d\n", deck.SlideCount())
	fmt.Printf("  - Questions: slides 1-%d\n", n)
	fmt.Printf("  - Answers: slides %d-%d\n", n+1, deck.SlideCount())

	if p.flags.GenerateAnki {
		fmt.Printf("\nGenerating Anki import file...\n")
		ankiPath, err := p.generateAnkiFile(pairs, outputPath)
		if err != nil {
			return fmt.Errorf("failed to generate Anki file: %w", err)
		}
		fmt.Printf("Anki file created: %s\n", ankiPath)
	}

	return nil
}

// buildDeck emits the slides with progress lines per generation pass.
func (p *Processor) buildDeck(pairs []quiz.Pair) *pptx.Deck {
	theme := slides.Theme{
		Background: p.flags.Background,
		TextColor:  p.flags.TextColor,
		TitleSize:  p.flags.TitleSize,
		BodySize:   p.flags.BodySize,
	}

	n := len(pairs)
	fmt.Printf("Generating %d question slides...\n", n)

	lastStage := "question"
	deck := slides.Build(pairs, theme, func(stage string, i, total int) {
		if stage != lastStage {
			fmt.Printf("Generating %d answer slides...\n", total)
			lastStage = stage
		}
	})
	return deck
}

// OutputPath derives the presentation filename from the input filename:
// a trailing .txt extension is replaced with .pptx, otherwise .pptx is
// appended to the full name.
func OutputPath(input string) string {
	if strings.HasSuffix(input, ".txt") {
		return strings.TrimSuffix(input, ".txt") + ".pptx"
	}
	return input + ".pptx"
}

// generateAnkiFile exports the pairs next to the presentation file.
func (p *Processor) generateAnkiFile(pairs []quiz.Pair, outputPath string) (string, error) {
	cards := make([]anki.Card, 0, len(pairs))
	for _, pair := range pairs {
		cards = append(cards, anki.Card{Question: pair.Question, Answer: pair.Answer})
	}

	base := strings.TrimSuffix(outputPath, ".pptx")

	if p.flags.AnkiCSV {
		csvPath := base + ".csv"
		if err := anki.GenerateCSV(cards, csvPath); err != nil {
			return "", err
		}
		return csvPath, nil
	}

	apkgPath := base + ".apkg"
	gen := anki.NewAPKGGenerator(p.flags.DeckName)
	for _, card := range cards {
		gen.AddCard(card)
	}
	if err := gen.GenerateAPKG(apkgPath); err != nil {
		return "", err
	}
	return apkgPath, nil
}
