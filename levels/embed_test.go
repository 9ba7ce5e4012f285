package levels

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/milk9111/platformer/collision"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const smallMap = `{
 "width": 3, "height": 2, "tilewidth": 16, "tileheight": 8,
 "layers": [
  {"name": "main layer", "type": "tilelayer", "width": 3, "height": 2,
   "data": [0, 0, 1,
            2, 0, 2147483651]},
  {"name": "decorations", "type": "tilelayer", "width": 3, "height": 2, "visible": false, "opacity": 0.5,
   "data": [0, 7, 0,
            0, 0, 0]},
  {"name": "spawns", "type": "objectgroup"}
 ]
}`

func TestDecode(t *testing.T) {
	m, err := Decode([]byte(smallMap))
	require.NoError(t, err)

	w, h := m.PixelSize()
	assert.Equal(t, 48, w)
	assert.Equal(t, 16, h)
	assert.Len(t, m.TileLayers(), 2)

	main, ok := m.Layer(MainLayer)
	require.True(t, ok)
	assert.True(t, main.IsVisible())
	assert.Equal(t, 1.0, main.Alpha())
	assert.True(t, main.HasTile(2, 0))
	assert.False(t, main.HasTile(1, 1))
	assert.Equal(t, uint32(3), main.Gid(2, 1), "flip flags are masked")
	assert.False(t, main.HasTile(5, 5))

	deco, ok := m.Layer("decorations")
	require.True(t, ok)
	assert.False(t, deco.IsVisible())
	assert.Equal(t, 0.5, deco.Alpha())

	_, ok = m.Layer("spawns")
	assert.False(t, ok, "object groups are not tile layers")
}

func TestDecodeRejectsBadMaps(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not_json", `{`},
		{"zero_size", `{"width": 0, "height": 2, "tilewidth": 16, "tileheight": 16}`},
		{"zero_tile", `{"width": 1, "height": 1, "tilewidth": 0, "tileheight": 16}`},
		{"short_layer", `{"width": 2, "height": 1, "tilewidth": 16, "tileheight": 16,
			"layers": [{"name": "main layer", "type": "tilelayer", "width": 2, "height": 1, "data": [1]}]}`},
		{"layer_size_mismatch", `{"width": 2, "height": 1, "tilewidth": 16, "tileheight": 16,
			"layers": [{"name": "main layer", "width": 1, "height": 2, "data": [1, 1]}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestBuildGrid(t *testing.T) {
	m, err := Decode([]byte(smallMap))
	require.NoError(t, err)

	g, err := BuildGrid(m)
	require.NoError(t, err)
	assert.Equal(t, 3, g.Cols())
	assert.Equal(t, 2, g.Rows())
	assert.Equal(t, 16.0, g.TileWidth())
	assert.Equal(t, 8.0, g.TileHeight())
	assert.True(t, g.IsSolidAt(32, 0))
	assert.True(t, g.IsSolidAt(0, 8))
	assert.False(t, g.IsSolidAt(16, 0), "decorations are not collidable by default")

	merged, err := BuildGrid(m, MainLayer, "decorations")
	require.NoError(t, err)
	assert.True(t, merged.IsSolidAt(16, 0))

	_, err = BuildGrid(m, "missing")
	assert.True(t, errors.Is(err, ErrLayerNotFound))
}

func TestBuildGridPropagatesConfigError(t *testing.T) {
	m := &Map{Width: 2, Height: 1, TileWidth: 16, TileHeight: 16, Layers: []Layer{{Name: MainLayer, Width: 2, Height: 1, Data: []uint32{0, 1}}}}
	m.TileWidth = -16

	_, err := BuildGrid(m)
	assert.True(t, errors.Is(err, collision.ErrConfig))
}

func TestLoadMapEmbeddedDefault(t *testing.T) {
	m, err := LoadMap("")
	require.NoError(t, err)

	g, err := BuildGrid(m)
	require.NoError(t, err)

	// the default player spawn box starts in open air
	w, h := g.Size()
	assert.Greater(t, w, 236.0)
	assert.Greater(t, h, 166.0)
	assert.False(t, g.IsSolidAt(200, 100))
	assert.False(t, g.IsSolidAt(235, 165))
}

func TestLoadMapFromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "level.json")
	require.NoError(t, os.WriteFile(path, []byte(smallMap), 0o644))

	m, err := LoadMap(path)
	require.NoError(t, err)
	assert.Equal(t, 3, m.Width)

	_, err = LoadMap(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
