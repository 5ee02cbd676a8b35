// Package game implements the platformer simulation core: actors with
// axis-aligned bounding boxes, the level grid, and the plan parser.
// It depends only on internal/core and never touches the terminal.
package game

import (
	"reflect"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// DefaultSize is the bounding box of an actor that does not set its own.
var DefaultSize = core.V(1, 1)

// Actor is anything with a bounding box that takes part in collision checks.
type Actor interface {
	// Body returns the actor's mutable geometry. The pointer is stable for
	// the actor's lifetime and doubles as its identity.
	Body() *Body

	// Kind returns the actor's behavior category.
	Kind() Kind

	// Act advances the actor by dt time units inside level.
	Act(dt float64, level *Level)
}

// Body is the position, extent and velocity shared by every actor.
// The bounding box is [Pos.X, Pos.X+Size.X) x [Pos.Y, Pos.Y+Size.Y).
type Body struct {
	Pos   core.Vector
	Size  core.Vector
	Speed core.Vector
}

// NewBody builds a body. Negative size components are clamped to zero.
func NewBody(pos, size, speed core.Vector) Body {
	if size.X < 0 {
		size.X = 0
	}
	if size.Y < 0 {
		size.Y = 0
	}
	return Body{Pos: pos, Size: size, Speed: speed}
}

// Left returns the x-coordinate of the left edge.
func (b *Body) Left() float64 {
	return b.Pos.X
}

// Right returns the x-coordinate of the right edge.
func (b *Body) Right() float64 {
	return b.Pos.X + b.Size.X
}

// Top returns the y-coordinate of the top edge.
func (b *Body) Top() float64 {
	return b.Pos.Y
}

// Bottom returns the y-coordinate of the bottom edge.
func (b *Body) Bottom() float64 {
	return b.Pos.Y + b.Size.Y
}

// IsIntersect reports whether other's box overlaps this one.
// An actor never intersects itself, and boxes that only share an edge do
// not intersect. A nil actor is rejected with ErrTypeConstraint.
func (b *Body) IsIntersect(other Actor) (bool, error) {
	if isNilActor(other) {
		return false, &TypeError{Op: "IsIntersect", Expected: "a non-nil Actor"}
	}
	o := other.Body()
	if o == b {
		return false, nil
	}
	return b.overlaps(o), nil
}

func (b *Body) overlaps(o *Body) bool {
	switch {
	case o.Left() >= b.Right():
		return false
	case o.Top() >= b.Bottom():
		return false
	case o.Right() <= b.Left():
		return false
	case o.Bottom() <= b.Top():
		return false
	}
	return true
}

// isNilActor catches both a nil interface and a typed nil pointer.
func isNilActor(a Actor) bool {
	if a == nil {
		return true
	}
	v := reflect.ValueOf(a)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// Prop is a plain actor with no behavior. Its kind is KindActor.
type Prop struct {
	body Body
}

// NewProp creates a behavior-less actor.
func NewProp(pos, size, speed core.Vector) *Prop {
	return &Prop{body: NewBody(pos, size, speed)}
}

func (p *Prop) Body() *Body { return &p.body }

func (p *Prop) Kind() Kind { return KindActor }

// Act does nothing for a plain actor.
func (p *Prop) Act(float64, *Level) {}
