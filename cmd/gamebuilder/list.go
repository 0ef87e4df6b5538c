package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gamebuilder/internal/platform/tui"
	"github.com/vovakirdan/gamebuilder/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available scenes",
	Long:  `Shows every registered scene with its title and goal.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	scenes := registry.List()

	if len(scenes) == 0 {
		fmt.Println("No scenes available.")
		return
	}

	fmt.Println("Available scenes:")
	fmt.Println()

	// Calculate column widths
	maxIDLen, maxTitleLen := 2, 5
	for _, s := range scenes {
		maxIDLen = max(maxIDLen, len(s.ID))
		maxTitleLen = max(maxTitleLen, len(s.Title))
	}

	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "ID", maxTitleLen, "Title", "Goal")
	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "--", maxTitleLen, "-----", "----")

	for _, s := range scenes {
		goal := "?"
		if sc, err := registry.Create(s.ID); err == nil {
			goal = tui.DescribeGoal(sc.Config())
		}
		fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, s.ID, maxTitleLen, s.Title, goal)
	}

	fmt.Println()
	fmt.Println("Run 'gamebuilder play <id>' to play a scene.")
}
