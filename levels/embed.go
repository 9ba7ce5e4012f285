package levels

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/milk9111/platformer/collision"
)

//go:embed *.json
var LevelsFS embed.FS

// DefaultMap is the embedded map used when no path is given.
const DefaultMap = "map.json"

// MainLayer is the layer the prototype collides against.
const MainLayer = "main layer"

// Tiled stores flip flags in the high bits of each gid.
const gidMask = 0x1FFFFFFF

var ErrLayerNotFound = errors.New("levels: layer not found")

// Map is the subset of a Tiled JSON map the game reads.
type Map struct {
	Width      int     `json:"width"`
	Height     int     `json:"height"`
	TileWidth  int     `json:"tilewidth"`
	TileHeight int     `json:"tileheight"`
	Layers     []Layer `json:"layers"`
}

type Layer struct {
	Name      string   `json:"name"`
	Type      string   `json:"type"`
	Width     int      `json:"width"`
	Height    int      `json:"height"`
	Data      []uint32 `json:"data"`
	Visible   *bool    `json:"visible,omitempty"`
	Opacity   *float64 `json:"opacity,omitempty"`
	TintColor string   `json:"tintcolor,omitempty"`
}

// IsVisible treats a missing flag as visible, like Tiled does.
func (l *Layer) IsVisible() bool {
	return l.Visible == nil || *l.Visible
}

func (l *Layer) Alpha() float64 {
	if l.Opacity == nil {
		return 1
	}
	return *l.Opacity
}

// Gid returns the tile id at x,y with flip flags cleared; 0 means no tile.
func (l *Layer) Gid(x, y int) uint32 {
	if x < 0 || y < 0 || x >= l.Width || y >= l.Height {
		return 0
	}
	return l.Data[y*l.Width+x] & gidMask
}

func (l *Layer) HasTile(x, y int) bool {
	return l.Gid(x, y) != 0
}

// LoadMap reads a map from disk, or the embedded default when path is empty.
func LoadMap(path string) (*Map, error) {
	var (
		data []byte
		err  error
	)
	if path == "" {
		data, err = fs.ReadFile(LevelsFS, DefaultMap)
		path = DefaultMap
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", path, err)
	}

	m, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("levels: %s: %w", path, err)
	}
	log.Info("map loaded", "path", path, "cols", m.Width, "rows", m.Height, "layers", len(m.Layers))
	return m, nil
}

// Decode parses and validates a Tiled JSON map.
func Decode(data []byte) (*Map, error) {
	var m Map
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("unmarshal map: %w", err)
	}
	if m.Width <= 0 || m.Height <= 0 {
		return nil, fmt.Errorf("invalid map dimensions: %dx%d", m.Width, m.Height)
	}
	if m.TileWidth <= 0 || m.TileHeight <= 0 {
		return nil, fmt.Errorf("invalid tile size: %dx%d", m.TileWidth, m.TileHeight)
	}

	for i := range m.Layers {
		layer := &m.Layers[i]
		if layer.Type != "" && layer.Type != "tilelayer" {
			continue
		}
		if layer.Width == 0 && layer.Height == 0 {
			layer.Width, layer.Height = m.Width, m.Height
		}
		if layer.Width != m.Width || layer.Height != m.Height {
			return nil, fmt.Errorf("layer %q is %dx%d, map is %dx%d", layer.Name, layer.Width, layer.Height, m.Width, m.Height)
		}
		if len(layer.Data) != m.Width*m.Height {
			return nil, fmt.Errorf("layer %q has %d tiles, want %d", layer.Name, len(layer.Data), m.Width*m.Height)
		}
	}
	return &m, nil
}

// Layer returns the first tile layer with the given name.
func (m *Map) Layer(name string) (*Layer, bool) {
	for i := range m.Layers {
		l := &m.Layers[i]
		if l.Name == name && (l.Type == "" || l.Type == "tilelayer") {
			return l, true
		}
	}
	return nil, false
}

// TileLayers returns the tile layers in draw order.
func (m *Map) TileLayers() []*Layer {
	out := make([]*Layer, 0, len(m.Layers))
	for i := range m.Layers {
		if t := m.Layers[i].Type; t == "" || t == "tilelayer" {
			out = append(out, &m.Layers[i])
		}
	}
	return out
}

// PixelSize returns the map extent in pixels.
func (m *Map) PixelSize() (int, int) {
	return m.Width * m.TileWidth, m.Height * m.TileHeight
}

// Occupancy merges the named layers into one row-major presence slice.
func (m *Map) Occupancy(layers ...string) ([]bool, error) {
	cells := make([]bool, m.Width*m.Height)
	for _, name := range layers {
		l, ok := m.Layer(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrLayerNotFound, name)
		}
		for y := 0; y < m.Height; y++ {
			for x := 0; x < m.Width; x++ {
				if l.HasTile(x, y) {
					cells[y*m.Width+x] = true
				}
			}
		}
	}
	return cells, nil
}

// BuildGrid builds the static collision grid from the named layers,
// MainLayer when none are given.
func BuildGrid(m *Map, layers ...string) (*collision.Grid, error) {
	if len(layers) == 0 {
		layers = []string{MainLayer}
	}
	cells, err := m.Occupancy(layers...)
	if err != nil {
		return nil, err
	}
	return collision.Build(cells, float64(m.TileWidth), float64(m.TileHeight), m.Width, m.Height)
}
