package main

import (
	"os"

	"github.com/spf13/cobra"

	"codeberg.org/snonux/quizdeck/internal/archive"
	"codeberg.org/snonux/quizdeck/internal/cli"
	"codeberg.org/snonux/quizdeck/internal/processor"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags)

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	// Set the run function
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, args, flags)
	}

	// Execute command
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCommand(cmd *cobra.Command, args []string, flags *cli.Flags) error {
	// Handle --archive flag: the positional argument is the deck directory
	if flags.Archive {
		return archive.ArchiveDecks(args[0])
	}

	// Overlay config file values onto unset flags
	cli.ApplyConfig(cmd, flags)

	proc := processor.NewProcessor(flags)
	return proc.Run(args[0])
}
