// Package formats provides pluggable level pack file format parsers.
package formats

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/tui-platformer/internal/game"
)

// Plan is one level layout. Each row is a line of plan symbols.
type Plan struct {
	Name string
	Rows []string
}

// Pack represents a parsed level pack ready for use.
type Pack struct {
	ID      string
	Title   string
	Plans   []Plan
	Symbols game.Symbols
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml", ".json"}
}

// Parse routes data to the parser for ext.
func Parse(data []byte, ext string) (Pack, error) {
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	case ".json":
		return ParseJSON(data)
	default:
		return Pack{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}

// mergeSymbols overlays remaps keyed by single-character strings onto the
// default legend.
func mergeSymbols(remap map[string]game.Spawn) (game.Symbols, error) {
	symbols := game.DefaultSymbols()
	for k, spawn := range remap {
		r, size := utf8.DecodeRuneInString(k)
		if r == utf8.RuneError || size != len(k) {
			return nil, fmt.Errorf("symbol %q must be a single character", k)
		}
		if r == 'x' || r == '!' {
			return nil, fmt.Errorf("symbol %q is reserved for terrain", k)
		}
		symbols[r] = spawn
	}
	return symbols, nil
}

// defaultPlanName names unnamed plans by their 1-based position.
func defaultPlanName(i int) string {
	return fmt.Sprintf("Level %d", i+1)
}
