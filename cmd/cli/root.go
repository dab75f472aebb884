package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "reviewterm-cli",
	Short: "reviewterm-cli sends code to the review service from scripts and CI.",
	Long: `A one-shot command-line interface for the reviewterm review service.

Where the terminal UI is interactive, reviewterm-cli reads a file, submits it
for review, and prints the result once, which makes it usable from scripts.`,
}

func Execute() error {
	return rootCmd.Execute()
}
