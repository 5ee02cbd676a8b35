package main

import (
	"math"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/driver"
	"github.com/vovakirdan/tui-platformer/internal/game"
)

func TestParseHold(t *testing.T) {
	tests := []struct {
		in       string
		expected driver.Controls
		wantErr  bool
	}{
		{"", driver.Controls{}, false},
		{"right", driver.Controls{Right: true}, false},
		{"left, JUMP", driver.Controls{Left: true, Jump: true}, false},
		{"right,jump,", driver.Controls{Right: true, Jump: true}, false},
		{"dash", driver.Controls{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseHold(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseHold(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.expected {
				t.Errorf("parseHold(%q) = %+v, expected %+v", tt.in, got, tt.expected)
			}
		})
	}
}

func TestStepSeconds(t *testing.T) {
	tests := []struct {
		name     string
		dt       float64
		fps      int
		expected float64
		wantErr  bool
	}{
		{"explicit", 0.5, 60, 0.5, false},
		{"zero uses fps", 0, 20, 0.05, false},
		{"negative uses fps", -1, 0, 1, false},
		{"infinite", math.Inf(1), 60, 0, true},
		{"nan", math.NaN(), 60, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := stepSeconds(tt.dt, tt.fps)
			if (err != nil) != tt.wantErr {
				t.Fatalf("stepSeconds(%v, %d) error = %v, wantErr %v", tt.dt, tt.fps, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.expected {
				t.Errorf("stepSeconds(%v, %d) = %v, expected %v", tt.dt, tt.fps, got, tt.expected)
			}
		})
	}
}

func newSimulation(plan []string, ctl driver.Controls, dt float64) *simulation {
	cfg := config.DefaultPlatformerConfig()
	return &simulation{
		level:   game.NewParser(game.DefaultSymbols(), game.WithSeed(1)).Parse(plan),
		physics: driver.PhysicsFrom(cfg.Physics),
		scale:   config.NewHazardCurve(cfg.Difficulty),
		ctl:     ctl,
		dt:      dt,
	}
}

func TestSimulationWinsLevel(t *testing.T) {
	sim := newSimulation([]string{"    ", "@  o", "xxxx"}, driver.Controls{Right: true}, 1.0/60)

	seen, ticks, err := sim.run(1000)
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if len(seen) != 1 || seen[0].Status != game.StatusWon {
		t.Fatalf("transitions = %+v, expected a single win", seen)
	}
	if !sim.level.IsFinished() {
		t.Error("run() should continue until the finish delay runs out")
	}
	if ticks >= 1000 {
		t.Errorf("ticks = %d, expected to stop early", ticks)
	}
}

func TestSimulationTickLimit(t *testing.T) {
	sim := newSimulation([]string{"   ", "@ o", "xxx"}, driver.Controls{}, 1.0/60)

	seen, ticks, err := sim.run(30)
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if ticks != 30 {
		t.Errorf("ticks = %d, expected 30", ticks)
	}
	if len(seen) != 0 {
		t.Errorf("transitions = %+v, expected none while standing still", seen)
	}
}

func TestSimulationLavaLoss(t *testing.T) {
	sim := newSimulation([]string{"  ", "@ ", "!!"}, driver.Controls{}, 0.5)

	seen, _, err := sim.run(10)
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if len(seen) == 0 || seen[0].Status != game.StatusLost || seen[0].Tick != 1 {
		t.Fatalf("transitions = %+v, expected loss on tick 1", seen)
	}
	if seen[0].Time != 0.5 {
		t.Errorf("loss time = %v, expected 0.5", seen[0].Time)
	}
}

func TestSimulationFrame(t *testing.T) {
	sim := newSimulation([]string{"   ", "@ o", "xxx"}, driver.Controls{}, 1.0/60)
	frame := sim.frame()

	if frame.Width() != 3*driver.CellWidth || frame.Height() != 3 {
		t.Errorf("frame = %dx%d, expected %dx3", frame.Width(), frame.Height(), 3*driver.CellWidth)
	}
	text := frame.String()
	if !strings.ContainsRune(text, driver.PlayerGlyph) || !strings.ContainsRune(text, driver.CoinGlyph) {
		t.Errorf("frame missing actors:\n%s", text)
	}
	if !strings.ContainsRune(text, driver.WallGlyph) {
		t.Errorf("frame missing walls:\n%s", text)
	}
}
