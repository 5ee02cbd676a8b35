package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List installed level packs",
	Long:  `Shows every level pack registered with the platformer, including packs from --levels.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	packs := registry.List()

	if len(packs) == 0 {
		fmt.Println("No level packs available.")
		return
	}

	fmt.Println("Level packs:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, p := range packs {
		maxIDLen = max(maxIDLen, len(p.ID))
	}

	fmt.Printf("  %-*s  %-6s  %s\n", maxIDLen, "ID", "Levels", "Title")
	fmt.Printf("  %-*s  %-6s  %s\n", maxIDLen, "--", "------", "-----")
	for _, p := range packs {
		fmt.Printf("  %-*s  %-6d  %s\n", maxIDLen, p.ID, p.Levels, p.Title)
	}

	fmt.Println()
	fmt.Println("Run 'platformer play <id>' to play a pack.")
}
