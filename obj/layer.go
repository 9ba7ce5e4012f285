package obj

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/platformer/camera"
	"github.com/milk9111/platformer/levels"
)

// Layer owns the tile image and drawing logic for a single map layer.
type Layer struct {
	Data    *levels.Layer
	TileImg *ebiten.Image
	tileW   int
	tileH   int
}

func NewLayer(data *levels.Layer, tileW, tileH int, tint color.Color) *Layer {
	img := ebiten.NewImage(tileW, tileH)
	img.Fill(tint)
	return &Layer{Data: data, TileImg: img, tileW: tileW, tileH: tileH}
}

// Draw blits one tile image per occupied cell. Tiles from later tilesets
// are drawn slightly darker so neighbouring gids stay distinguishable.
func (ly *Layer) Draw(screen *ebiten.Image, cam *camera.Camera) {
	if ly == nil || ly.Data == nil || !ly.Data.IsVisible() {
		return
	}
	zoom := cam.Zoom()
	alpha := float32(ly.Data.Alpha())
	for y := 0; y < ly.Data.Height; y++ {
		for x := 0; x < ly.Data.Width; x++ {
			gid := ly.Data.Gid(x, y)
			if gid == 0 {
				continue
			}
			sx, sy := cam.WorldToScreen(float64(x*ly.tileW), float64(y*ly.tileH))
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(zoom, zoom)
			op.GeoM.Translate(sx, sy)
			shade := 1 - 0.12*float32((gid-1)%4)
			op.ColorScale.Scale(shade, shade, shade, 1)
			op.ColorScale.ScaleAlpha(alpha)
			screen.DrawImage(ly.TileImg, op)
		}
	}
}
