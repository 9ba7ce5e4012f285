package actor

import (
	"github.com/charmbracelet/log"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/collision"
)

// State is the vertical motion state of an actor.
type State int

const (
	Airborne State = iota
	Grounded
)

func (s State) String() string {
	switch s {
	case Airborne:
		return "airborne"
	case Grounded:
		return "grounded"
	default:
		return "unknown"
	}
}

// Tuning holds the movement constants, in pixels and seconds.
type Tuning struct {
	Gravity   float64
	MoveSpeed float64
	JumpSpeed float64
}

// DefaultTuning matches the prototype's whale.
func DefaultTuning() Tuning {
	return Tuning{
		Gravity:   2000,
		MoveSpeed: 300,
		JumpSpeed: -700,
	}
}

// Actor is a rectangle driven by input against a static grid.
type Actor struct {
	Name string

	box    collision.Box
	pos    cp.Vector
	vel    cp.Vector
	state  State
	tuning Tuning
}

// New creates an actor at spawn with zero velocity.
func New(name string, spawn cp.Vector, box collision.Box, tuning Tuning) *Actor {
	return &Actor{
		Name:   name,
		box:    box,
		pos:    spawn,
		state:  Airborne,
		tuning: tuning,
	}
}

// Position returns the top-left corner of the actor's box.
func (a *Actor) Position() cp.Vector { return a.pos }
func (a *Actor) Velocity() cp.Vector { return a.vel }
func (a *Actor) Box() collision.Box  { return a.box }
func (a *Actor) State() State        { return a.state }
func (a *Actor) Tuning() Tuning      { return a.tuning }

// SetTuning swaps the movement constants; position and velocity are kept.
func (a *Actor) SetTuning(t Tuning) { a.tuning = t }

// Center returns the middle of the actor's box in world coordinates.
func (a *Actor) Center() cp.Vector {
	return cp.Vector{X: a.pos.X + a.box.W/2, Y: a.pos.Y + a.box.H/2}
}

func (a *Actor) setState(next State) {
	if a.state == next {
		return
	}
	log.Debug("actor state", "actor", a.Name, "from", a.state, "to", next, "x", a.pos.X, "y", a.pos.Y)
	a.state = next
}

// Tick advances the actor by dt seconds. The order of the steps is fixed:
// the grounded read happens before any velocity change, and the vertical
// move is resolved before the horizontal one.
func (a *Actor) Tick(g *collision.Grid, in Controls, dt float64) {
	grounded := collision.IsGrounded(g, a.box, a.pos)

	if grounded {
		a.vel.Y = 0
	} else {
		a.vel.Y += a.tuning.Gravity * dt
	}

	switch {
	case in.KeyDown(MoveRight):
		a.vel.X = a.tuning.MoveSpeed
	case in.KeyDown(MoveLeft):
		a.vel.X = -a.tuning.MoveSpeed
	default:
		a.vel.X = 0
	}

	jumped := false
	if grounded && in.KeyPressed(Jump) {
		a.vel.Y = a.tuning.JumpSpeed
		jumped = true
	}

	a.pos, _ = collision.MoveAxis(g, a.box, a.pos, collision.Vertical, a.vel.Y*dt)
	a.pos, _ = collision.MoveAxis(g, a.box, a.pos, collision.Horizontal, a.vel.X*dt)

	if grounded && !jumped {
		a.setState(Grounded)
	} else {
		a.setState(Airborne)
	}
}
