package actor

import (
	"github.com/milk9111/platformer/collision"
)

type driven struct {
	actor    *Actor
	controls Controls
}

// Scene owns the level grid and the actors moving through it. Actors are
// ticked in the order they were added, each one fully before the next.
type Scene struct {
	grid   *collision.Grid
	actors []driven
	ticks  int
}

func NewScene(grid *collision.Grid) *Scene {
	return &Scene{grid: grid}
}

// Add registers an actor and the controls that drive it.
func (s *Scene) Add(a *Actor, in Controls) {
	if a == nil || in == nil {
		return
	}
	s.actors = append(s.actors, driven{actor: a, controls: in})
}

// Update advances every actor by the clock's elapsed time.
func (s *Scene) Update(clock Clock) {
	dt := clock.ElapsedTime()
	for _, d := range s.actors {
		d.actor.Tick(s.grid, d.controls, dt)
	}
	s.ticks++
}

func (s *Scene) Grid() *collision.Grid { return s.grid }

// Ticks returns how many updates the scene has run.
func (s *Scene) Ticks() int { return s.ticks }

// Actors returns the registered actors in tick order.
func (s *Scene) Actors() []*Actor {
	out := make([]*Actor, 0, len(s.actors))
	for _, d := range s.actors {
		out = append(out, d.actor)
	}
	return out
}
