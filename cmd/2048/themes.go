package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/theme"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List colour themes",
	Long:  `Shows every colour theme the board can be drawn with.`,
	Args:  cobra.NoArgs,
	Run:   runThemes,
}

func runThemes(_ *cobra.Command, _ []string) {
	themes := theme.List()

	fmt.Println("Available themes:")
	fmt.Println()

	maxLen := 4 // "Name" header
	for _, t := range themes {
		if len(t.Name) > maxLen {
			maxLen = len(t.Name)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxLen, "Name", "Description")
	fmt.Printf("  %-*s  %s\n", maxLen, "----", "-----------")
	for _, t := range themes {
		fmt.Printf("  %-*s  %s\n", maxLen, t.Name, t.Description)
	}

	fmt.Println()
	fmt.Println("Run '2048 <name>' to play with a theme.")
}
