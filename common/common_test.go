package common

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
		ok   bool
	}{
		{"#3c78ff", color.NRGBA{R: 0x3c, G: 0x78, B: 0xff, A: 0xff}, true},
		{"000000", color.NRGBA{A: 0xff}, true},
		{"#ff000080", color.NRGBA{R: 0xff, A: 0x80}, true},
		{"#fff", color.NRGBA{}, false},
		{"#gg0000", color.NRGBA{}, false},
		{"", color.NRGBA{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHexColor(tt.in)
			if !tt.ok {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseTiledColorMovesAlpha(t *testing.T) {
	got, err := ParseTiledColor("#80ff0000")
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 0xff, A: 0x80}, got)

	got, err = ParseTiledColor("#2e8b57")
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 0x2e, G: 0x8b, B: 0x57, A: 0xff}, got)
}

func TestLerpAndClamp(t *testing.T) {
	assert.Equal(t, 5.0, Lerp(0, 10, 0.5))
	assert.Equal(t, 10.0, Lerp(10, 20, 0))
	assert.Equal(t, 1.0, Clamp(-3, 1, 4))
	assert.Equal(t, 4.0, Clamp(9, 1, 4))
	assert.Equal(t, 2.5, Clamp(2.5, 1, 4))
}
