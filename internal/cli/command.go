package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/quizdeck/internal"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "quizdeck <questions.txt>",
		Short: "Quiz Slide Deck Generator",
		Long: `quizdeck generates a PowerPoint presentation from a plain-text quiz file.

Each question/answer pair becomes two slides: first a slide showing only
the question, later a slide showing the question with its answer in bold.
All question slides come before all answer slides.

Expected file format (pairs separated by one blank line):
  Who wrote Hamlet?
  William Shakespeare

  Capital of France?
  Paris

Examples:
  quizdeck quiz.txt               # Write quiz.pptx
  quizdeck --anki quiz.txt        # Also write quiz.apkg for Anki
  quizdeck --archive decks/       # Move generated decks into decks/archive/`,
		Args:    cobra.ExactArgs(1),
		Version: internal.Version,
	}

	// Set up flags
	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.quizdeck.yaml)")

	// Local flags
	cmd.Flags().StringVarP(&flags.OutputPath, "output", "o", "", "Output file (default: input name with .pptx extension)")
	cmd.Flags().StringVar(&flags.DeckName, "deck-name", flags.DeckName, "Deck name for APKG export")
	cmd.Flags().BoolVar(&flags.GenerateAnki, "anki", false, "Also generate an Anki import file (APKG format by default, use --anki-csv for legacy CSV)")
	cmd.Flags().BoolVar(&flags.AnkiCSV, "anki-csv", false, "Generate legacy CSV format instead of APKG when using --anki")
	cmd.Flags().BoolVar(&flags.Archive, "archive", false, "Archive previously generated decks in the given directory and exit")

	// Theme flags
	cmd.Flags().StringVar(&flags.Background, "background", flags.Background, "Slide background color (hex RGB)")
	cmd.Flags().StringVar(&flags.TextColor, "text-color", flags.TextColor, "Slide text color (hex RGB)")
	cmd.Flags().IntVar(&flags.TitleSize, "title-size", flags.TitleSize, "Title font size in points")
	cmd.Flags().IntVar(&flags.BodySize, "body-size", flags.BodySize, "Body font size in points")

	// Bind flags to viper
	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("deck.name", cmd.Flags().Lookup("deck-name"))
	viper.BindPFlag("deck.background", cmd.Flags().Lookup("background"))
	viper.BindPFlag("deck.text_color", cmd.Flags().Lookup("text-color"))
	viper.BindPFlag("deck.title_size", cmd.Flags().Lookup("title-size"))
	viper.BindPFlag("deck.body_size", cmd.Flags().Lookup("body-size"))
	viper.BindPFlag("output.path", cmd.Flags().Lookup("output"))
}

// ApplyConfig overlays config file values onto flags the user did not
// set explicitly on the command line.
func ApplyConfig(cmd *cobra.Command, flags *Flags) {
	if !cmd.Flags().Changed("deck-name") {
		if v := viper.GetString("deck.name"); v != "" {
			flags.DeckName = v
		}
	}
	if !cmd.Flags().Changed("background") {
		if v := viper.GetString("deck.background"); v != "" {
			flags.Background = v
		}
	}
	if !cmd.Flags().Changed("text-color") {
		if v := viper.GetString("deck.text_color"); v != "" {
			flags.TextColor = v
		}
	}
	if !cmd.Flags().Changed("title-size") {
		if v := viper.GetInt("deck.title_size"); v > 0 {
			flags.TitleSize = v
		}
	}
	if !cmd.Flags().Changed("body-size") {
		if v := viper.GetInt("deck.body_size"); v > 0 {
			flags.BodySize = v
		}
	}
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".quizdeck" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".quizdeck")
	}

	// Environment variables
	viper.SetEnvPrefix("QUIZDECK")
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
