package obj

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/platformer/actor"
	"github.com/milk9111/platformer/camera"
	"github.com/milk9111/platformer/collision"
	"golang.org/x/image/colornames"
)

var (
	solidOutline    = color.RGBA{R: 0x66, G: 0xb3, B: 0xff, A: 0xff}
	groundedOutline = colornames.Lime
	airborneOutline = colornames.Magenta
)

// DrawGrid outlines every solid cell of the collision grid.
func DrawGrid(screen *ebiten.Image, g *collision.Grid, cam *camera.Camera) {
	if g == nil {
		return
	}
	zoom := cam.Zoom()
	tw, th := g.TileWidth(), g.TileHeight()
	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Cols(); col++ {
			if !g.IsSolidCell(col, row) {
				continue
			}
			x, y := cam.WorldToScreen(float64(col)*tw, float64(row)*th)
			vector.StrokeRect(screen, float32(x), float32(y), float32(tw*zoom), float32(th*zoom), 1, solidOutline, false)
		}
	}
}

// DrawActorBox outlines an actor's collider, green when grounded.
func DrawActorBox(screen *ebiten.Image, a *actor.Actor, cam *camera.Camera) {
	pos, box := a.Position(), a.Box()
	x, y := cam.WorldToScreen(pos.X, pos.Y)
	clr := airborneOutline
	if a.State() == actor.Grounded {
		clr = groundedOutline
	}
	zoom := cam.Zoom()
	vector.StrokeRect(screen, float32(x), float32(y), float32(box.W*zoom), float32(box.H*zoom), 1, clr, false)
}

// DrawHUD prints tick rate and actor state in the top-left corner.
func DrawHUD(screen *ebiten.Image, a *actor.Actor, ticks int) {
	pos, vel := a.Position(), a.Velocity()
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"TPS: %.1f  FPS: %.1f  tick: %d\npos: (%.2f, %.2f)\nvel: (%.1f, %.1f)\nstate: %s",
		ebiten.ActualTPS(), ebiten.ActualFPS(), ticks, pos.X, pos.Y, vel.X, vel.Y, a.State(),
	))
}
