package formats

import (
	"fmt"

	"github.com/vovakirdan/tui-platformer/internal/game"
	"gopkg.in/yaml.v3"
)

// YAMLPack represents the YAML structure for a level pack file.
type YAMLPack struct {
	ID      string                `yaml:"id"`
	Title   string                `yaml:"title"`
	Symbols map[string]game.Spawn `yaml:"symbols,omitempty"`
	Levels  []YAMLLevel           `yaml:"levels"`
}

// YAMLLevel is a single named plan.
type YAMLLevel struct {
	Name string   `yaml:"name"`
	Rows []string `yaml:"rows"`
}

// ParseYAML parses a YAML level pack. Symbol remaps are applied on top of
// the default legend.
func ParseYAML(data []byte) (Pack, error) {
	var yp YAMLPack
	if err := yaml.Unmarshal(data, &yp); err != nil {
		return Pack{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	symbols, err := mergeSymbols(yp.Symbols)
	if err != nil {
		return Pack{}, err
	}

	pack := Pack{
		ID:      yp.ID,
		Title:   yp.Title,
		Symbols: symbols,
		Plans:   make([]Plan, 0, len(yp.Levels)),
	}
	for i, l := range yp.Levels {
		if len(l.Rows) == 0 {
			return Pack{}, fmt.Errorf("level %d has no rows", i+1)
		}
		name := l.Name
		if name == "" {
			name = defaultPlanName(i)
		}
		pack.Plans = append(pack.Plans, Plan{Name: name, Rows: l.Rows})
	}

	return pack, nil
}
