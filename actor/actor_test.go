package actor

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/collision"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dt = 1.0 / 60.0

type fakeControls struct {
	down    map[Action]bool
	pressed map[Action]bool
}

func newFakeControls() *fakeControls {
	return &fakeControls{down: map[Action]bool{}, pressed: map[Action]bool{}}
}

func (f *fakeControls) KeyDown(a Action) bool    { return f.down[a] }
func (f *fakeControls) KeyPressed(a Action) bool { return f.pressed[a] }

// press marks a as pressed for exactly one tick.
func (f *fakeControls) press(a Action) {
	f.pressed[a] = true
	f.down[a] = true
}

func (f *fakeControls) release() {
	f.pressed = map[Action]bool{}
	f.down = map[Action]bool{}
}

type fixedClock float64

func (c fixedClock) ElapsedTime() float64 { return float64(c) }

// floorGrid is 10x10 cells of 32px with row 5 solid.
func floorGrid(t *testing.T) *collision.Grid {
	t.Helper()
	cells := make([]bool, 100)
	for c := 0; c < 10; c++ {
		cells[5*10+c] = true
	}
	g, err := collision.Build(cells, 32, 32, 10, 10)
	require.NoError(t, err)
	return g
}

func openGrid(t *testing.T) *collision.Grid {
	t.Helper()
	g, err := collision.Build(make([]bool, 100), 32, 32, 10, 10)
	require.NoError(t, err)
	return g
}

var box20 = collision.Box{W: 20, H: 20}

func settle(t *testing.T, g *collision.Grid, a *Actor, in Controls) {
	t.Helper()
	for i := 0; i < 120; i++ {
		a.Tick(g, in, dt)
	}
	require.Equal(t, Grounded, a.State())
}

func TestFallsAndSettlesOnFloor(t *testing.T) {
	g := floorGrid(t)
	a := New("whale", cp.Vector{X: 100, Y: 0}, box20, DefaultTuning())
	in := newFakeControls()

	assert.Equal(t, Airborne, a.State())
	settle(t, g, a, in)

	assert.Equal(t, 160.0, a.Position().Y+a.Box().H)
	assert.Equal(t, 100.0, a.Position().X)
	assert.True(t, collision.IsGrounded(g, a.Box(), a.Position()))

	for i := 0; i < 30; i++ {
		a.Tick(g, in, dt)
		assert.Equal(t, Grounded, a.State())
		assert.Zero(t, a.Velocity().Y)
		assert.Equal(t, 140.0, a.Position().Y)
	}
}

func TestGravityAccumulatesWhileAirborne(t *testing.T) {
	g := openGrid(t)
	tuning := DefaultTuning()
	a := New("whale", cp.Vector{X: 100, Y: 0}, box20, tuning)
	in := newFakeControls()

	for n := 1; n <= 10; n++ {
		a.Tick(g, in, dt)
		assert.InDelta(t, float64(n)*tuning.Gravity*dt, a.Velocity().Y, 1e-9, "tick %d", n)
		assert.Equal(t, Airborne, a.State())
	}
}

func TestNoTerminalVelocity(t *testing.T) {
	g := openGrid(t)
	a := New("whale", cp.Vector{X: 100, Y: 0}, box20, DefaultTuning())
	in := newFakeControls()

	for i := 0; i < 600; i++ {
		a.Tick(g, in, dt)
	}
	assert.InDelta(t, 600*2000*dt, a.Velocity().Y, 1e-6)
}

func TestJumpFromGround(t *testing.T) {
	g := floorGrid(t)
	tuning := DefaultTuning()
	a := New("whale", cp.Vector{X: 100, Y: 0}, box20, tuning)
	in := newFakeControls()
	settle(t, g, a, in)

	in.press(Jump)
	a.Tick(g, in, dt)
	in.release()

	assert.Equal(t, tuning.JumpSpeed, a.Velocity().Y)
	assert.InDelta(t, 140+tuning.JumpSpeed*dt, a.Position().Y, 1e-9)
	assert.Equal(t, Airborne, a.State())

	// the next tick reads the ground from the new, raised position
	a.Tick(g, in, dt)
	assert.False(t, collision.IsGrounded(g, a.Box(), cp.Vector{X: 100, Y: 140 + tuning.JumpSpeed*dt}))
	assert.InDelta(t, tuning.JumpSpeed+tuning.Gravity*dt, a.Velocity().Y, 1e-9)

	// and eventually lands again
	settle(t, g, a, in)
	assert.Equal(t, 140.0, a.Position().Y)
}

func TestJumpIgnoredWhileAirborne(t *testing.T) {
	g := openGrid(t)
	tuning := DefaultTuning()
	a := New("whale", cp.Vector{X: 100, Y: 0}, box20, tuning)
	in := newFakeControls()

	a.Tick(g, in, dt)
	before := a.Velocity().Y

	in.press(Jump)
	a.Tick(g, in, dt)

	assert.InDelta(t, before+tuning.Gravity*dt, a.Velocity().Y, 1e-9)
	assert.Equal(t, Airborne, a.State())
}

func TestHeldJumpDoesNotRepeat(t *testing.T) {
	g := floorGrid(t)
	a := New("whale", cp.Vector{X: 100, Y: 0}, box20, DefaultTuning())
	in := newFakeControls()
	settle(t, g, a, in)

	// held but not pressed this tick
	in.down[Jump] = true
	a.Tick(g, in, dt)
	assert.Zero(t, a.Velocity().Y)
	assert.Equal(t, Grounded, a.State())
}

func TestHorizontalVelocitySnaps(t *testing.T) {
	tests := []struct {
		name  string
		left  bool
		right bool
		want  float64
	}{
		{"none", false, false, 0},
		{"right", false, true, 300},
		{"left", true, false, -300},
		{"both_prefers_right", true, true, 300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := floorGrid(t)
			a := New("whale", cp.Vector{X: 100, Y: 0}, box20, DefaultTuning())
			in := newFakeControls()
			settle(t, g, a, in)

			in.down[MoveLeft] = tt.left
			in.down[MoveRight] = tt.right
			a.Tick(g, in, dt)

			assert.Equal(t, tt.want, a.Velocity().X)
			assert.InDelta(t, 100+tt.want*dt, a.Position().X, 1e-9)
			assert.Equal(t, Grounded, a.State())
		})
	}
}

func TestWalkIntoWallStopsFlush(t *testing.T) {
	cells := make([]bool, 100)
	for c := 0; c < 10; c++ {
		cells[5*10+c] = true
	}
	for r := 0; r < 5; r++ {
		cells[r*10+6] = true
	}
	g, err := collision.Build(cells, 32, 32, 10, 10)
	require.NoError(t, err)

	a := New("whale", cp.Vector{X: 100, Y: 0}, box20, DefaultTuning())
	in := newFakeControls()
	settle(t, g, a, in)

	in.down[MoveRight] = true
	for i := 0; i < 60; i++ {
		a.Tick(g, in, dt)
	}

	assert.Equal(t, 192.0, a.Position().X+a.Box().W)
	assert.Equal(t, 140.0, a.Position().Y)
	assert.Equal(t, Grounded, a.State())
}

func TestSetTuningKeepsMotion(t *testing.T) {
	g := openGrid(t)
	a := New("whale", cp.Vector{X: 100, Y: 0}, box20, DefaultTuning())
	in := newFakeControls()
	a.Tick(g, in, dt)
	pos, vel := a.Position(), a.Velocity()

	a.SetTuning(Tuning{Gravity: 10, MoveSpeed: 1, JumpSpeed: -1})
	assert.Equal(t, pos, a.Position())
	assert.Equal(t, vel, a.Velocity())
	assert.Equal(t, 10.0, a.Tuning().Gravity)
}

func TestCenter(t *testing.T) {
	a := New("whale", cp.Vector{X: 200, Y: 100}, collision.Box{W: 36, H: 66}, DefaultTuning())
	assert.Equal(t, cp.Vector{X: 218, Y: 133}, a.Center())
}
