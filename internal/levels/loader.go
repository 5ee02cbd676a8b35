// Package levels loads level packs from disk and registers the built-in
// campaigns. This package depends on game but game does not depend on levels.
package levels

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/vovakirdan/tui-platformer/internal/game"
	"github.com/vovakirdan/tui-platformer/internal/levels/formats"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

// Pack is a loaded campaign. It satisfies registry.Pack.
type Pack struct {
	id       string
	title    string
	plans    []formats.Plan
	symbols  game.Symbols
	filePath string
}

var _ registry.Pack = (*Pack)(nil)

func newPack(parsed formats.Pack, path string) *Pack {
	return &Pack{
		id:       parsed.ID,
		title:    parsed.Title,
		plans:    parsed.Plans,
		symbols:  parsed.Symbols,
		filePath: path,
	}
}

func (p *Pack) ID() string    { return p.id }
func (p *Pack) Title() string { return p.title }

// FilePath is the file the pack was loaded from, empty for built-in packs.
func (p *Pack) FilePath() string { return p.filePath }

// Plans returns a copy of the plans in play order.
func (p *Pack) Plans() [][]string {
	out := make([][]string, len(p.plans))
	for i, plan := range p.plans {
		out[i] = slices.Clone(plan.Rows)
	}
	return out
}

// Symbols returns a copy of the pack legend.
func (p *Pack) Symbols() game.Symbols {
	return maps.Clone(p.symbols)
}

// Len returns the number of levels in the pack.
func (p *Pack) Len() int { return len(p.plans) }

// LevelName returns the display name of level i.
func (p *Pack) LevelName(i int) string {
	if i < 0 || i >= len(p.plans) {
		return ""
	}
	return p.plans[i].Name
}

// Loader handles loading packs from a directory.
type Loader struct {
	Root string
}

// NewLoader creates a new pack loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all pack files.
// Returns packs sorted by ID for deterministic ordering. Invalid files are
// skipped.
func (l *Loader) LoadAll() ([]*Pack, error) {
	var packs []*Pack

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if !slices.Contains(formats.FormatExtensions(), ext) {
			return nil
		}

		pack, err := LoadFile(path)
		if err != nil {
			return nil
		}

		packs = append(packs, pack)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("levels: walking directory %s: %w", l.Root, err)
	}

	sort.Slice(packs, func(i, j int) bool {
		return packs[i].id < packs[j].id
	})

	return packs, nil
}

// LoadByID loads a specific pack by ID.
func (l *Loader) LoadByID(id string) (*Pack, error) {
	packs, err := l.LoadAll()
	if err != nil {
		return nil, err
	}

	for _, p := range packs {
		if p.id == id {
			return p, nil
		}
	}

	return nil, fmt.Errorf("levels: pack not found: %s", id)
}

// LoadFile loads a single pack file. A pack without an ID takes the file
// name without extension; a pack without a title takes its ID.
func LoadFile(path string) (*Pack, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("levels: reading file %s: %w", path, err)
	}

	ext := filepath.Ext(path)
	parsed, err := formats.Parse(data, ext)
	if err != nil {
		return nil, fmt.Errorf("levels: parsing file %s: %w", path, err)
	}
	if len(parsed.Plans) == 0 {
		return nil, fmt.Errorf("levels: %s contains no levels", path)
	}

	if parsed.ID == "" {
		parsed.ID = strings.TrimSuffix(filepath.Base(path), ext)
	}
	if parsed.Title == "" {
		parsed.Title = parsed.ID
	}

	return newPack(parsed, path), nil
}

// Resolve returns a registered pack by ID, or loads ref as a file path when
// no such pack exists.
func Resolve(ref string) (registry.Pack, error) {
	if registry.Exists(ref) {
		return registry.Create(ref)
	}
	if _, err := os.Stat(ref); err == nil {
		pack, err := LoadFile(ref)
		if err != nil {
			return nil, err
		}
		return pack, nil
	}
	return nil, fmt.Errorf("levels: %q is neither a registered pack nor a file", ref)
}
