package obj

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/platformer/actor"
	"github.com/milk9111/platformer/camera"
	"github.com/milk9111/platformer/prefabs"
)

var defaultPlayerColor = color.NRGBA{R: 0xff, G: 0x8c, B: 0x00, A: 0xff}

// Player draws an actor with a sprite frame that may be larger than its
// collider; the frame is offset from the collider's top-left corner.
type Player struct {
	Actor *actor.Actor

	img     *ebiten.Image
	offsetX float64
	offsetY float64
	facing  float64
}

func NewPlayer(a *actor.Actor, spec prefabs.SpriteSpec) *Player {
	p := &Player{Actor: a, facing: 1}
	p.SetSprite(spec)
	return p
}

// SetSprite rebuilds the frame, e.g. after a prefab reload. Facing is kept
// and the previous frame is released.
func (p *Player) SetSprite(spec prefabs.SpriteSpec) {
	w, h := spec.Width, spec.Height
	if w <= 0 || h <= 0 {
		box := p.Actor.Box()
		w, h = int(box.W), int(box.H)
	}
	old := p.img
	p.img = whaleImage(w, h, spec.Color.Or(defaultPlayerColor))
	p.offsetX, p.offsetY = spec.OffsetX, spec.OffsetY
	if old != nil {
		old.Deallocate()
	}
}

// Facing is 1 when the sprite looks right and -1 when it looks left.
func (p *Player) Facing() float64 { return p.facing }

func (p *Player) Update() {
	switch vx := p.Actor.Velocity().X; {
	case vx > 0:
		p.facing = 1
	case vx < 0:
		p.facing = -1
	}
}

func (p *Player) Draw(screen *ebiten.Image, cam *camera.Camera) {
	pos := p.Actor.Position()
	sx, sy := cam.WorldToScreen(pos.X+p.offsetX, pos.Y+p.offsetY)
	w := float64(p.img.Bounds().Dx())

	op := &ebiten.DrawImageOptions{}
	if p.facing < 0 {
		op.GeoM.Scale(-1, 1)
		op.GeoM.Translate(w, 0)
	}
	op.GeoM.Scale(cam.Zoom(), cam.Zoom())
	op.GeoM.Translate(sx, sy)
	screen.DrawImage(p.img, op)
}

// whaleImage builds a placeholder frame: a filled body with an eye near
// the leading edge.
func whaleImage(w, h int, body color.Color) *ebiten.Image {
	img := ebiten.NewImage(w, h)
	img.Fill(body)

	eye := ebiten.NewImage(max(w/10, 2), max(h/10, 2))
	eye.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(w)*0.75, float64(h)*0.25)
	img.DrawImage(eye, op)
	return img
}
