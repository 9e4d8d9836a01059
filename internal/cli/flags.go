package cli

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile      string
	OutputPath   string
	DeckName     string
	GenerateAnki bool
	AnkiCSV      bool
	Archive      bool

	// Theme flags
	Background string
	TextColor  string
	TitleSize  int
	BodySize   int
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		DeckName:   "Quiz Deck",
		Background: "202020",
		TextColor:  "FFFFFF",
		TitleSize:  32,
		BodySize:   28,
	}
}
