package obj

import (
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/platformer/camera"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/levels"
)

var defaultTileColor = color.NRGBA{R: 0x3c, G: 0x78, B: 0xff, A: 0xff}

// Level draws the tile layers of a map. It holds no collision state; the
// grid built from the same map is owned by the scene.
type Level struct {
	Map    *levels.Map
	layers []*Layer
}

func NewLevel(m *levels.Map) *Level {
	l := &Level{Map: m}
	for _, tl := range m.TileLayers() {
		tint := defaultTileColor
		if tl.TintColor != "" {
			c, err := common.ParseTiledColor(tl.TintColor)
			if err != nil {
				log.Warn("bad layer tint, using default", "layer", tl.Name, "tint", tl.TintColor, "err", err)
			} else {
				tint = c
			}
		}
		l.layers = append(l.layers, NewLayer(tl, m.TileWidth, m.TileHeight, tint))
	}
	return l
}

// Draw renders every visible layer in map order.
func (l *Level) Draw(screen *ebiten.Image, cam *camera.Camera) {
	if l == nil {
		return
	}
	for _, ly := range l.layers {
		ly.Draw(screen, cam)
	}
}
