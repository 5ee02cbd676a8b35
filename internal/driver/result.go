package driver

import "github.com/vovakirdan/tui-platformer/internal/game"

// Result is the outcome of one level attempt.
type Result struct {
	PackID     string
	LevelIndex int // 0-based
	Outcome    game.Status
	Ticks      int
	Coins      int
}

// ResultRecorder persists level results. The storage layer implements it.
type ResultRecorder interface {
	RecordResult(r Result) error
}
