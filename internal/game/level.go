package game

import (
	"math"
	"slices"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// DefaultFinishDelay is the time a level keeps running after it is won or
// lost, so the final frame can play out before the driver moves on.
const DefaultFinishDelay = 1.0

// Level holds the static obstacle grid and the live actors.
type Level struct {
	grid   [][]Obstacle
	actors []Actor
	status Status
	width  int
	height int

	// FinishDelay counts down once the status is terminal. The driver owns
	// the countdown.
	FinishDelay float64
}

// NewLevel creates a level from a grid of rows (rows may differ in length)
// and an ordered actor list. Both slices are copied.
func NewLevel(grid [][]Obstacle, actors []Actor) *Level {
	l := &Level{
		grid:        make([][]Obstacle, len(grid)),
		actors:      slices.Clone(actors),
		FinishDelay: DefaultFinishDelay,
		height:      len(grid),
	}
	for y, row := range grid {
		l.grid[y] = slices.Clone(row)
		l.width = max(l.width, len(row))
	}
	return l
}

// Width returns the length of the longest grid row.
func (l *Level) Width() int {
	return l.width
}

// Height returns the number of grid rows.
func (l *Level) Height() int {
	return l.height
}

// Status returns the level outcome so far.
func (l *Level) Status() Status {
	return l.status
}

// Cell returns the obstacle at integer cell (x, y). Cells outside the grid,
// including past the end of a short row, are empty.
func (l *Level) Cell(x, y int) Obstacle {
	if y < 0 || y >= len(l.grid) || x < 0 || x >= len(l.grid[y]) {
		return ObstacleNone
	}
	return l.grid[y][x]
}

// Actors returns a snapshot of the actor list, safe to iterate while the
// level removes actors.
func (l *Level) Actors() []Actor {
	return slices.Clone(l.actors)
}

// HasActor reports whether actor is still part of the level.
func (l *Level) HasActor(actor Actor) bool {
	if isNilActor(actor) {
		return false
	}
	b := actor.Body()
	return slices.ContainsFunc(l.actors, func(a Actor) bool { return a.Body() == b })
}

// Player returns the first player actor, or nil when the level has none.
func (l *Level) Player() *Player {
	for _, a := range l.actors {
		if p, ok := a.(*Player); ok {
			return p
		}
	}
	return nil
}

// IsFinished reports whether the level has an outcome and its finish delay
// has run out.
func (l *Level) IsFinished() bool {
	return l.status != StatusNone && l.FinishDelay < 0
}

// ActorAt returns the first other actor overlapping actor, or nil.
func (l *Level) ActorAt(actor Actor) (Actor, error) {
	if isNilActor(actor) {
		return nil, &TypeError{Op: "ActorAt", Expected: "a non-nil Actor"}
	}
	b := actor.Body()
	for _, other := range l.actors {
		hit, err := b.IsIntersect(other)
		if err != nil {
			return nil, err
		}
		if hit {
			return other, nil
		}
	}
	return nil, nil
}

// ObstacleAt returns the first obstacle covered by a box at pos with the
// given size. Leaving the grid sideways or through the top counts as a
// wall; falling out of the bottom counts as lava.
func (l *Level) ObstacleAt(pos, size core.Vector) Obstacle {
	xStart := int(math.Floor(pos.X))
	xEnd := int(math.Ceil(pos.X + size.X))
	yStart := int(math.Floor(pos.Y))
	yEnd := int(math.Ceil(pos.Y + size.Y))

	if xStart < 0 || xEnd > l.width || yStart < 0 {
		return ObstacleWall
	}
	if yEnd > l.height {
		return ObstacleLava
	}

	for y := yStart; y < yEnd; y++ {
		for x := xStart; x < xEnd; x++ {
			if o := l.Cell(x, y); o != ObstacleNone {
				return o
			}
		}
	}
	return ObstacleNone
}

// RemoveActor drops actor from the level, matched by identity.
func (l *Level) RemoveActor(actor Actor) {
	if isNilActor(actor) {
		return
	}
	b := actor.Body()
	l.actors = slices.DeleteFunc(l.actors, func(a Actor) bool { return a.Body() == b })
}

// NoMoreActors reports whether no actor of the given kind is left.
func (l *Level) NoMoreActors(kind Kind) bool {
	return !slices.ContainsFunc(l.actors, func(a Actor) bool { return a.Kind() == kind })
}

// PlayerTouched applies the effect of the player touching t. Lava and
// fireballs lose the level. A coin is removed, and collecting the last one
// wins the level. It returns the status this touch produced, or StatusNone.
//
// A terminal status never changes, so a touch reported after the outcome
// is decided cannot flip it: lava or a fireball on a won level returns
// StatusNone and the level stays won. The driver is expected to stop reporting
// touches once the status is terminal.
func (l *Level) PlayerTouched(t Touch, actor Actor) Status {
	switch t {
	case TouchLava, TouchFireball:
		if l.finish(StatusLost) {
			return StatusLost
		}
		return StatusNone
	case TouchCoin:
		l.RemoveActor(actor)
		if l.NoMoreActors(KindCoin) && l.finish(StatusWon) {
			return StatusWon
		}
		return StatusNone
	case TouchNone, TouchWall, TouchActor, TouchPlayer:
		return StatusNone
	default:
		return StatusNone
	}
}

// finish sets the terminal status unless one is already set. It reports
// whether the level now has status s.
func (l *Level) finish(s Status) bool {
	if l.status == StatusNone {
		l.status = s
	}
	return l.status == s
}
