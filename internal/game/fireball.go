package game

import "github.com/vovakirdan/tui-platformer/internal/core"

// Initial velocities of the fireball family.
var (
	HorizontalFireballSpeed = core.V(2, 0)
	VerticalFireballSpeed   = core.V(0, 2)
	FireRainSpeed           = core.V(0, 3)
)

// ObstacleResponse selects what a fireball does when its next step would
// enter an obstacle.
type ObstacleResponse int

const (
	Bounce       ObstacleResponse = iota // Reverse velocity, stay in place
	ResetToSpawn                         // Jump back to the spawn position
)

func (r ObstacleResponse) String() string {
	switch r {
	case Bounce:
		return "bounce"
	case ResetToSpawn:
		return "reset"
	default:
		return "unknown"
	}
}

// Fireball is a moving hazard. The horizontal, vertical and rain variants
// differ only in initial velocity and obstacle response.
type Fireball struct {
	body     Body
	spawn    core.Vector
	response ObstacleResponse
}

// NewFireball creates a one-cell hazard at pos moving with speed.
func NewFireball(pos, speed core.Vector, response ObstacleResponse) *Fireball {
	return &Fireball{
		body:     NewBody(pos, DefaultSize, speed),
		spawn:    pos,
		response: response,
	}
}

// NewHorizontalFireball creates a hazard that patrols left and right.
func NewHorizontalFireball(pos core.Vector) *Fireball {
	return NewFireball(pos, HorizontalFireballSpeed, Bounce)
}

// NewVerticalFireball creates a hazard that patrols up and down.
func NewVerticalFireball(pos core.Vector) *Fireball {
	return NewFireball(pos, VerticalFireballSpeed, Bounce)
}

// NewFireRain creates a falling hazard that restarts from its spawn point
// whenever it hits something.
func NewFireRain(pos core.Vector) *Fireball {
	return NewFireball(pos, FireRainSpeed, ResetToSpawn)
}

func (f *Fireball) Body() *Body { return &f.body }

func (f *Fireball) Kind() Kind { return KindFireball }

// Spawn returns the position the fireball was created at.
func (f *Fireball) Spawn() core.Vector {
	return f.spawn
}

// Response returns the obstacle policy chosen at construction.
func (f *Fireball) Response() ObstacleResponse {
	return f.response
}

// NextPosition returns where the fireball would be after dt time units.
func (f *Fireball) NextPosition(dt float64) core.Vector {
	return f.body.Pos.Plus(f.body.Speed.Times(dt))
}

// HandleObstacle applies the obstacle response.
func (f *Fireball) HandleObstacle() {
	switch f.response {
	case Bounce:
		f.body.Speed = f.body.Speed.Times(-1)
	case ResetToSpawn:
		f.body.Pos = f.spawn
	}
}

// Act moves the fireball unless the next position is blocked, in which case
// it handles the obstacle and stays put. A nil level has no obstacles.
func (f *Fireball) Act(dt float64, level *Level) {
	next := f.NextPosition(dt)
	if level != nil && level.ObstacleAt(next, f.body.Size) != ObstacleNone {
		f.HandleObstacle()
		return
	}
	f.body.Pos = next
}
