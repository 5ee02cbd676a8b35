package formats

import (
	"encoding/json"
	"fmt"

	"github.com/vovakirdan/tui-platformer/internal/game"
)

// ParseJSON parses a bare array of plans, each an array of row strings:
//
//	[["     ", " @ o ", "xxxxx"], ["..."]]
//
// The pack has no ID or title; the loader derives them from the file name.
func ParseJSON(data []byte) (Pack, error) {
	var plans [][]string
	if err := json.Unmarshal(data, &plans); err != nil {
		return Pack{}, fmt.Errorf("json unmarshal: %w", err)
	}

	pack := Pack{
		Symbols: game.DefaultSymbols(),
		Plans:   make([]Plan, 0, len(plans)),
	}
	for i, rows := range plans {
		if len(rows) == 0 {
			return Pack{}, fmt.Errorf("level %d has no rows", i+1)
		}
		pack.Plans = append(pack.Plans, Plan{Name: defaultPlanName(i), Rows: rows})
	}

	return pack, nil
}
