package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/t2048"
)

var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Run the slide/merge self-test",
	Long: `Run every reference line through the slide/merge engine and compare
the result and points with the expected values.

Exits with status 1 on the first mismatch.`,
	Args: cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		if err := t2048.RunSelfTest(os.Stdout); err != nil {
			os.Exit(1)
		}
	},
}
