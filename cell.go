package termui

// Cell is one position of the framebuffer: a single codepoint plus the
// effect bitmask and colours it should be drawn with. One codepoint occupies
// exactly one cell; there is no wide/combining glyph correction (§1).
type Cell struct {
	Glyph  rune
	Effect Effect
	Fg     Color
	Bg     Color
}

// blankCell returns the reset value of a cell for the given default colours.
func blankCell(defaultFg, defaultBg Color) Cell {
	return Cell{Glyph: ' ', Effect: 0, Fg: defaultFg, Bg: defaultBg}
}
