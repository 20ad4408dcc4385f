package layout

// Palette is the fixed chart palette, one color per group. Groups
// beyond the palette length cycle back to the start.
var Palette = [8]string{
	"#4e79a7", // blue
	"#f28e2b", // orange
	"#e15759", // red
	"#76b7b2", // teal
	"#59a14f", // green
	"#edc948", // yellow
	"#b07aa1", // purple
	"#ff9da7", // pink
}

// ColorIndex maps a group's position in the document to its palette slot.
func ColorIndex(groupIndex int) int {
	return groupIndex % len(Palette)
}

// GroupColor returns the hex color for a group's position.
func GroupColor(groupIndex int) string {
	return Palette[ColorIndex(groupIndex)]
}
