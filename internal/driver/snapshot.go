package driver

import "math"

// ActorState is the replayable state of one actor.
type ActorState struct {
	Kind           int
	X, Y           float64
	W, H           float64
	SpeedX, SpeedY float64
}

// Snapshot contains the campaign and level state for determinism checks.
type Snapshot struct {
	Tick        uint64
	LevelIndex  int
	LevelTicks  int
	Attempts    int
	Lives       int
	Score       int
	State       string
	Status      int
	FinishDelay float64
	Actors      []ActorState
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:       uint64(g.tick), //#nosec G115 -- tick count is always positive
		LevelIndex: g.levelIndex,
		LevelTicks: g.levelTicks,
		Attempts:   g.attempts,
		Lives:      g.lives,
		Score:      g.State().Score,
		State:      g.state,
	}
	if g.level == nil {
		return snap
	}

	snap.Status = int(g.level.Status())
	snap.FinishDelay = g.level.FinishDelay

	actors := g.level.Actors()
	snap.Actors = make([]ActorState, len(actors))
	for i, a := range actors {
		b := a.Body()
		snap.Actors[i] = ActorState{
			Kind:   int(a.Kind()),
			X:      b.Pos.X,
			Y:      b.Pos.Y,
			W:      b.Size.X,
			H:      b.Size.Y,
			SpeedX: b.Speed.X,
			SpeedY: b.Speed.Y,
		}
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
// Floats are hashed by their bit patterns, so equal hashes mean
// bit-identical runs.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.LevelIndex) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.LevelTicks) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Attempts)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Status)     //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.FinishDelay)

	for _, r := range snap.State {
		h = h*31 + uint64(r) //#nosec G115 -- hash computation
	}

	for _, a := range snap.Actors {
		h = h*31 + uint64(a.Kind) //#nosec G115 -- hash computation
		h = h*31 + math.Float64bits(a.X)
		h = h*31 + math.Float64bits(a.Y)
		h = h*31 + math.Float64bits(a.W)
		h = h*31 + math.Float64bits(a.H)
		h = h*31 + math.Float64bits(a.SpeedX)
		h = h*31 + math.Float64bits(a.SpeedY)
	}

	return h
}
