// Package driver runs levels over time. It owns the clock, moves the player,
// reports contacts to the level and sequences the levels of a pack. The
// simulation core in package game never depends on it.
package driver

import (
	"errors"
	"fmt"
	"math"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/game"
)

// DefaultMaxStep is the longest sub-step used when Physics.MaxStep is unset.
const DefaultMaxStep = 0.05

// ErrNoLevel is returned when StepLevel is called without a level.
var ErrNoLevel = errors.New("driver: no level")

// ErrBadStep is returned when StepLevel is given an infinite or NaN dt.
var ErrBadStep = errors.New("driver: step must be finite")

// Controls is the player input held during a step.
type Controls struct {
	Left  bool
	Right bool
	Jump  bool
}

// ControlsFrom maps an input frame to player controls.
func ControlsFrom(in core.InputFrame) Controls {
	return Controls{
		Left:  in.Has(core.ActionLeft),
		Right: in.Has(core.ActionRight),
		Jump:  in.Has(core.ActionJump),
	}
}

// Physics holds the player motion parameters. Distances are in cells and
// times in seconds.
type Physics struct {
	Gravity      float64
	JumpSpeed    float64
	PlayerXSpeed float64
	MaxStep      float64

	// HazardScale multiplies the time fireballs see. Zero means 1.
	HazardScale float64
}

// PhysicsFrom builds Physics from the configuration section.
func PhysicsFrom(cfg config.PhysicsConfig) Physics {
	return Physics{
		Gravity:      cfg.Gravity,
		JumpSpeed:    cfg.JumpSpeed,
		PlayerXSpeed: cfg.PlayerXSpeed,
		MaxStep:      cfg.MaxStep,
		HazardScale:  1,
	}
}

// DefaultPhysics returns the physics of the default configuration.
func DefaultPhysics() Physics {
	return PhysicsFrom(config.DefaultPlatformerConfig().Physics)
}

func (p Physics) maxStep() float64 {
	if p.MaxStep <= 0 {
		return DefaultMaxStep
	}
	return p.MaxStep
}

func (p Physics) hazardScale() float64 {
	if p.HazardScale <= 0 {
		return 1
	}
	return p.HazardScale
}

// StepLevel advances level by dt seconds, split into sub-steps of at most
// MaxStep. Each sub-step acts every actor in a snapshot of the actor list,
// skipping actors removed earlier in the same sub-step, then reports player
// contacts. Terrain is checked before actors, and no contact is reported
// once the level has an outcome. After that the finish delay counts down
// while actors keep moving.
//
// It returns the level status after the step.
func StepLevel(level *game.Level, dt float64, ctl Controls, phys Physics) (game.Status, error) {
	if level == nil {
		return game.StatusNone, ErrNoLevel
	}
	if math.IsInf(dt, 0) || math.IsNaN(dt) {
		return level.Status(), fmt.Errorf("%w, got %v", ErrBadStep, dt)
	}

	maxStep := phys.maxStep()
	for dt > 0 {
		step := min(dt, maxStep)
		if err := stepOnce(level, step, ctl, phys); err != nil {
			return level.Status(), err
		}
		dt -= step
	}
	return level.Status(), nil
}

func stepOnce(level *game.Level, step float64, ctl Controls, phys Physics) error {
	player := level.Player()

	for _, actor := range level.Actors() {
		if !level.HasActor(actor) {
			continue
		}
		switch a := actor.(type) {
		case *game.Player:
			if a == player {
				movePlayer(level, a, step, ctl, phys)
			} else {
				a.Act(step, level)
			}
		case *game.Fireball:
			a.Act(step*phys.hazardScale(), level)
		default:
			actor.Act(step, level)
		}
	}

	if player != nil && !level.Status().IsTerminal() {
		if err := reportContacts(level, player); err != nil {
			return err
		}
	}

	if level.Status().IsTerminal() {
		level.FinishDelay -= step
	}
	return nil
}

// movePlayer applies walking, gravity and jumping. A blocked move reports
// the blocking terrain. After a loss the player sinks and shrinks instead.
func movePlayer(level *game.Level, p *game.Player, step float64, ctl Controls, phys Physics) {
	body := p.Body()

	if level.Status() == game.StatusLost {
		body.Pos = body.Pos.Plus(core.V(0, step))
		body.Size = core.V(body.Size.X, max(0, body.Size.Y-step))
		return
	}

	var xSpeed float64
	if ctl.Left {
		xSpeed -= phys.PlayerXSpeed
	}
	if ctl.Right {
		xSpeed += phys.PlayerXSpeed
	}
	body.Speed = core.V(xSpeed, body.Speed.Y)

	next := body.Pos.Plus(core.V(xSpeed*step, 0))
	if o := level.ObstacleAt(next, body.Size); o != game.ObstacleNone {
		touchTerrain(level, o)
	} else {
		body.Pos = next
	}

	ySpeed := body.Speed.Y + step*phys.Gravity
	next = body.Pos.Plus(core.V(0, ySpeed*step))
	if o := level.ObstacleAt(next, body.Size); o != game.ObstacleNone {
		touchTerrain(level, o)
		if ctl.Jump && ySpeed > 0 {
			ySpeed = -phys.JumpSpeed
		} else {
			ySpeed = 0
		}
	} else {
		body.Pos = next
	}
	body.Speed = core.V(body.Speed.X, ySpeed)
}

func touchTerrain(level *game.Level, o game.Obstacle) {
	if level.Status().IsTerminal() {
		return
	}
	level.PlayerTouched(game.TouchOfObstacle(o), nil)
}

// reportContacts reports lava under the player before any actor contact.
func reportContacts(level *game.Level, player *game.Player) error {
	body := player.Body()
	if level.ObstacleAt(body.Pos, body.Size) == game.ObstacleLava {
		level.PlayerTouched(game.TouchLava, nil)
		return nil
	}

	other, err := level.ActorAt(player)
	if err != nil {
		return fmt.Errorf("driver: contact check: %w", err)
	}
	if other != nil {
		level.PlayerTouched(game.TouchOf(other.Kind()), other)
	}
	return nil
}
