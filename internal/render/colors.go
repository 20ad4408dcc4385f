package render

import (
	"image/color"
	"strconv"

	"github.com/maxkimambo/gantt/internal/layout"
)

// paletteColor resolves a palette slot to a concrete color with the
// given alpha applied.
func paletteColor(index int, alpha uint8) color.Color {
	r, g, b := hexRGB(layout.Palette[index%len(layout.Palette)])
	return color.NRGBA{R: r, G: g, B: b, A: alpha}
}

// hexRGB parses a "#rrggbb" string. The palette is fixed and known
// good, so parse failures degrade to black rather than erroring.
func hexRGB(hex string) (r, g, b uint8) {
	if len(hex) != 7 || hex[0] != '#' {
		return 0, 0, 0
	}
	rv, err1 := strconv.ParseUint(hex[1:3], 16, 8)
	gv, err2 := strconv.ParseUint(hex[3:5], 16, 8)
	bv, err3 := strconv.ParseUint(hex[5:7], 16, 8)
	if err1 != nil || err2 != nil || err3 != nil {
		return 0, 0, 0
	}
	return uint8(rv), uint8(gv), uint8(bv)
}
