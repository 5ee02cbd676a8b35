package levels

import (
	"embed"
	"fmt"
	"path"

	"github.com/vovakirdan/tui-platformer/internal/levels/formats"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

//go:embed builtin/*
var builtinFS embed.FS

// builtinPacks lists the embedded pack files in menu order.
var builtinPacks = []struct {
	id, title, file string
}{
	{"classic", "Classic", "classic.json"},
	{"tutorial", "Tutorial", "tutorial.yaml"},
}

func init() {
	for _, b := range builtinPacks {
		pack, err := loadBuiltin(b.id, b.title, b.file)
		if err != nil {
			panic(err)
		}
		registry.Register(b.id, func() registry.Pack { return pack })
	}
}

func loadBuiltin(id, title, file string) (*Pack, error) {
	data, err := builtinFS.ReadFile("builtin/" + file)
	if err != nil {
		return nil, fmt.Errorf("levels: builtin %s: %w", file, err)
	}
	parsed, err := formats.Parse(data, path.Ext(file))
	if err != nil {
		return nil, fmt.Errorf("levels: builtin %s: %w", file, err)
	}
	if parsed.ID == "" {
		parsed.ID = id
	}
	if parsed.Title == "" {
		parsed.Title = title
	}
	return newPack(parsed, ""), nil
}
