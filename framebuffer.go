package termui

import "strings"

// TextAlignment packs an alignment mode (Left/Right/Centered) together with
// an optional ClipStart flag, mirroring the source's TextAlignment bitmask
// so a single value can express e.g. "Centered, clip from the start".
type TextAlignment int

const (
	Left TextAlignment = iota
	Right
	Centered

	alignmentModeMask TextAlignment = 0x3
	ClipStart         TextAlignment = 1 << 2
)

func (a TextAlignment) mode() TextAlignment { return a & alignmentModeMask }
func (a TextAlignment) clipStart() bool     { return a&ClipStart != 0 }

const ellipsis = '…'

// Framebuffer is the in-memory grid of styled cells the application paints
// into. It is row-major: cell (y,x) lives at index y*width+x.
type Framebuffer struct {
	width, height        int
	defaultFg, defaultBg Color
	cells                []Cell
}

// NewFramebuffer returns a Framebuffer reset to the given size.
func NewFramebuffer(width, height int) *Framebuffer {
	fb := &Framebuffer{defaultFg: DefaultFg, defaultBg: DefaultBg}
	fb.Reset(width, height)
	return fb
}

func (fb *Framebuffer) Width() int  { return fb.width }
func (fb *Framebuffer) Height() int { return fb.height }

// Reset resizes the grid to width*height and sets every cell to
// {' ', 0, defaultFg, defaultBg}.
func (fb *Framebuffer) Reset(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	fb.width, fb.height = width, height
	fb.cells = make([]Cell, width*height)
	blank := blankCell(fb.defaultFg, fb.defaultBg)
	for i := range fb.cells {
		fb.cells[i] = blank
	}
}

// SetDefaultColors changes the colours used by future Reset calls. It does
// not repaint existing cells.
func (fb *Framebuffer) SetDefaultColors(fg, bg Color) {
	fb.defaultFg, fb.defaultBg = fg, bg
}

func (fb *Framebuffer) inBounds(y, x int) bool {
	return y >= 0 && y < fb.height && x >= 0 && x < fb.width
}

func (fb *Framebuffer) cellAt(y, x int) *Cell {
	if !fb.inBounds(y, x) {
		return nil
	}
	return &fb.cells[y*fb.width+x]
}

// AddGlyph overwrites cell (y,x) if it is in bounds; otherwise it is a
// silent no-op.
func (fb *Framebuffer) AddGlyph(y, x int, g rune, fg, bg Color, effect Effect) {
	if c := fb.cellAt(y, x); c != nil {
		*c = Cell{Glyph: g, Effect: effect, Fg: fg, Bg: bg}
	}
}

// SetColors overwrites the fg/bg of an existing horizontal run of cells,
// leaving their glyph and effect untouched. Out-of-range cells are skipped.
func (fb *Framebuffer) SetColors(y, x, width int, fg, bg Color) {
	for i := 0; i < width; i++ {
		if c := fb.cellAt(y, x+i); c != nil {
			c.Fg, c.Bg = fg, bg
		}
	}
}

// AddString decodes s as UTF-8 and places consecutive glyphs starting at
// (y,x).
func (fb *Framebuffer) AddString(y, x int, s string, fg, bg Color, effect Effect) {
	col := x
	for _, r := range s {
		fb.AddGlyph(y, col, r, fg, bg, effect)
		col++
	}
}

// clipRunes truncates s to exactly width runes, substituting a trailing (or
// leading, if clipStart) ellipsis for the removed portion. Precondition:
// len(s) > width > 0.
func clipRunes(s []rune, width int, clipStart bool) []rune {
	if clipStart {
		out := make([]rune, 0, width)
		out = append(out, ellipsis)
		out = append(out, s[len(s)-(width-1):]...)
		return out
	}
	out := make([]rune, 0, width)
	out = append(out, s[:width-1]...)
	out = append(out, ellipsis)
	return out
}

// AddStringN places s across exactly width cells: clipped with an ellipsis
// if s is longer than width, padded with spaces per align if shorter.
func (fb *Framebuffer) AddStringN(y, x int, s string, width int, align TextAlignment, fg, bg Color, effect Effect) {
	runes := []rune(s)
	var out []rune
	switch {
	case width <= 0:
		out = nil
	case len(runes) == width:
		out = runes
	case len(runes) > width:
		out = clipRunes(runes, width, align.clipStart())
	default:
		pad := width - len(runes)
		switch align.mode() {
		case Right:
			out = append(spaces(pad), runes...)
		case Centered:
			leftPad := pad / 2
			rightPad := pad - leftPad
			out = append(append(spaces(leftPad), runes...), spaces(rightPad)...)
		default: // Left
			out = append(append([]rune{}, runes...), spaces(pad)...)
		}
	}
	for i, r := range out {
		fb.AddGlyph(y, x+i, r, fg, bg, effect)
	}
}

func spaces(n int) []rune {
	if n <= 0 {
		return nil
	}
	s := make([]rune, n)
	for i := range s {
		s[i] = ' '
	}
	return s
}

// AddStringsN lays out three fields across width cells: left-aligned,
// centred, and right-aligned, resolving overlap by shrinking outward fields
// first (§4.5).
func (fb *Framebuffer) AddStringsN(y, x int, left, middle, right string, width int, fg, bg Color, effect Effect) {
	l, m, r := []rune(left), []rune(middle), []rune(right)

	lStart, lEnd := 0, len(l)-1
	rStart, rEnd := width-len(r), width-1
	var mStart, mEnd int
	hasMiddle := len(m) > 0
	if hasMiddle {
		mStart = width/2 - (len(m)+1)/2
		mEnd = mStart + len(m) - 1
	}
	hasLeft, hasRight := len(l) > 0, len(r) > 0

	// lEnd/mEnd are inclusive indices (count-1), one less than the
	// exclusive-end positions original_source/src/termui.cpp's endLeft/
	// endMiddle track; every cap and comparison against them below is
	// shifted by one accordingly.
	if hasLeft && hasMiddle && lEnd >= mStart-2 {
		b := width / 3
		if lEnd > b-2 {
			lEnd = b - 2
		}
		if mStart < b+1 {
			mStart = b + 1
			mEnd = mStart + len(m) - 1
		}
	}
	if hasMiddle && hasRight && mEnd >= rStart-2 {
		b := 2 * width / 3
		if mEnd > b-2 {
			mEnd = b - 2
		}
		if rStart < b+1 {
			rStart = b + 1
		}
	}
	if hasLeft && hasRight && lEnd >= rStart-2 {
		half := width / 2
		if lEnd > half-2 {
			lEnd = half - 2
		}
		if rStart < half+1 {
			rStart = half + 1
		}
	}

	row := make([]rune, width)
	for i := range row {
		row[i] = ' '
	}
	placeField(row, l, lStart, lEnd, width)
	placeField(row, m, mStart, mEnd, width)
	placeField(row, r, rStart, rEnd, width)

	for i, g := range row {
		fb.AddGlyph(y, x+i, g, fg, bg, effect)
	}
}

// placeField writes text into row within [start,end], clipping with a
// trailing ellipsis if the resolved extent is smaller than len(text).
func placeField(row []rune, text []rune, start, end, width int) {
	if len(text) == 0 {
		return
	}
	visible := 0
	if end >= start {
		visible = end - start + 1
	}
	if visible > len(text) {
		visible = len(text)
	}
	if visible <= 0 {
		return
	}
	out := text
	if visible < len(text) {
		out = clipRunes(text, visible, false)
	}
	for i, g := range out {
		pos := start + i
		if pos >= 0 && pos < width {
			row[pos] = g
		}
	}
}

// AddFormattedString iterates a Glyph stream: sentinels update the running
// effect/fg/bg without writing a cell, plain codepoints are written to
// consecutive cells starting at (y,x). Remaining width is padded with
// spaces in the running style. A row outside the grid is a silent no-op.
func (fb *Framebuffer) AddFormattedString(y, x int, formatted []Glyph, width int) {
	if y < 0 || y >= fb.height {
		return
	}
	maxWidth := fb.width - x
	if width > maxWidth {
		width = maxWidth
	}
	if width <= 0 {
		return
	}

	fg, bg := fb.defaultFg, fb.defaultBg
	var effect Effect
	col := x
	remaining := width
	for _, g := range formatted {
		if remaining <= 0 {
			break
		}
		switch {
		case g.IsEffect():
			effect = g.AsEffect()
		case g.IsFg():
			fg = g.AsColor()
		case g.IsBg():
			bg = g.AsColor()
		default:
			fb.AddGlyph(y, col, g.AsRune(), fg, bg, effect)
			col++
			remaining--
		}
	}
	for remaining > 0 {
		fb.AddGlyph(y, col, ' ', fg, bg, effect)
		col++
		remaining--
	}
}

// AddMarkdown splits text on newlines, expands the lightweight markdown
// syntax of §4.4 on each line, and writes each expanded line with
// AddFormattedString starting at row y and incrementing per line.
func (fb *Framebuffer) AddMarkdown(y, x int, text string, width int) {
	for i, line := range strings.Split(text, "\n") {
		fb.AddFormattedString(y+i, x, ExpandMarkdown([]rune(line)), width)
	}
}
