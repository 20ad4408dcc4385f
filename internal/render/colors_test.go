package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHexRGB(t *testing.T) {
	tests := []struct {
		name    string
		hex     string
		r, g, b uint8
	}{
		{name: "palette blue", hex: "#4e79a7", r: 0x4e, g: 0x79, b: 0xa7},
		{name: "white", hex: "#ffffff", r: 0xff, g: 0xff, b: 0xff},
		{name: "missing hash degrades to black", hex: "4e79a7"},
		{name: "too short degrades to black", hex: "#fff"},
		{name: "not hex degrades to black", hex: "#zzzzzz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b := hexRGB(tt.hex)
			assert.Equal(t, tt.r, r)
			assert.Equal(t, tt.g, g)
			assert.Equal(t, tt.b, b)
		})
	}
}

func TestPaletteColorAlpha(t *testing.T) {
	clr := paletteColor(0, 0xd9)
	nrgba, ok := clr.(color.NRGBA)
	assert.True(t, ok)
	assert.Equal(t, uint8(0xd9), nrgba.A)

	// slot 8 wraps back to slot 0
	assert.Equal(t, paletteColor(0, 0xff), paletteColor(8, 0xff))
}
