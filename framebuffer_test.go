package termui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func rowString(fb *Framebuffer, y int) string {
	runes := make([]rune, fb.Width())
	for x := 0; x < fb.Width(); x++ {
		runes[x] = fb.cellAt(y, x).Glyph
	}
	return string(runes)
}

func TestResetFillsBlankCells(t *testing.T) {
	fb := NewFramebuffer(3, 2)
	fb.SetDefaultColors(Palette(1), Palette(2))
	fb.Reset(3, 2)
	assert.Len(t, fb.cells, 6)
	for _, c := range fb.cells {
		assert.Equal(t, blankCell(Palette(1), Palette(2)), c)
	}
}

func TestAddGlyphOutOfBoundsIsNoop(t *testing.T) {
	fb := NewFramebuffer(2, 2)
	before := append([]Cell{}, fb.cells...)
	fb.AddGlyph(5, 5, 'x', DefaultFg, DefaultBg, 0)
	assert.Equal(t, before, fb.cells)
}

func TestAddGlyphInBounds(t *testing.T) {
	fb := NewFramebuffer(2, 2)
	fb.AddGlyph(1, 1, 'z', Palette(3), Palette(4), EffectBold)
	c := fb.cellAt(1, 1)
	assert.Equal(t, Cell{Glyph: 'z', Effect: EffectBold, Fg: Palette(3), Bg: Palette(4)}, *c)
	assert.Equal(t, blankCell(fb.defaultFg, fb.defaultBg), *fb.cellAt(0, 0))
}

// Scenario 1: centered clipping.
func TestScenarioCenteredClipping(t *testing.T) {
	fb := NewFramebuffer(10, 1)
	fb.AddStringN(0, 0, "abcdefghij", 10, Centered, DefaultFg, DefaultBg, 0)
	assert.Equal(t, "abcdefghij", rowString(fb, 0))

	fb.AddStringN(0, 0, "abcdefghijk", 10, Centered, DefaultFg, DefaultBg, 0)
	assert.Equal(t, "abcdefghi…", rowString(fb, 0))

	fb.AddStringN(0, 0, "abcdefghijk", 10, Centered|ClipStart, DefaultFg, DefaultBg, 0)
	assert.Equal(t, "…cdefghijk", rowString(fb, 0))
}

// Scenario 2: three-zone footer.
func TestScenarioThreeZoneFooter(t *testing.T) {
	fb := NewFramebuffer(20, 1)
	fb.AddStringsN(0, 0, "L", "MID", "R", 20, DefaultFg, DefaultBg, 0)
	row := rowString(fb, 0)
	assert.Len(t, row, 20)
	assert.Equal(t, byte('L'), row[0])
	assert.Equal(t, byte('R'), row[19])
	assert.Contains(t, row, "MID")

	// Left overflows enough to force the width/3 shrink rule: left keeps
	// floor(20/3)-1 = 5 cells ("xxxx…"), middle and right stay untouched.
	fb2 := NewFramebuffer(20, 1)
	fb2.AddStringsN(0, 0, "xxxxxxxxxx", "MID", "R", 20, DefaultFg, DefaultBg, 0)
	row = rowString(fb2, 0)
	assert.Equal(t, "xxxx…   MID        R", row)
}

// Scenario 3: inline format.
func TestScenarioInlineFormat(t *testing.T) {
	fb := NewFramebuffer(3, 1)
	stream := []Glyph{BuildFg(Palette(1)), Glyph('A'), BuildEffect(EffectBold), Glyph('B')}
	fb.AddFormattedString(0, 0, stream, 3)

	assert.Equal(t, Cell{Glyph: 'A', Effect: 0, Fg: Palette(1), Bg: fb.defaultBg}, *fb.cellAt(0, 0))
	assert.Equal(t, Cell{Glyph: 'B', Effect: EffectBold, Fg: Palette(1), Bg: fb.defaultBg}, *fb.cellAt(0, 1))
	assert.Equal(t, Cell{Glyph: ' ', Effect: EffectBold, Fg: Palette(1), Bg: fb.defaultBg}, *fb.cellAt(0, 2))
}

// Scenario 4: markdown expansion.
func TestScenarioMarkdownExpansion(t *testing.T) {
	fb := NewFramebuffer(30, 1)
	fb.AddMarkdown(0, 0, "**bold** and //italic//", 30)

	var visible []rune
	for x := 0; x < 30; x++ {
		g := fb.cellAt(0, x).Glyph
		if g != 0 {
			visible = append(visible, g)
		}
	}
	got := string(visible)
	assert.Contains(t, got, "bold and italic")

	boldCell := fb.cellAt(0, 0)
	assert.NotEqual(t, Effect(0), boldCell.Effect&EffectBold)
}

func TestAddStringNPaddingAlignments(t *testing.T) {
	fb := NewFramebuffer(6, 1)
	fb.AddStringN(0, 0, "ab", 6, Left, DefaultFg, DefaultBg, 0)
	assert.Equal(t, "ab    ", rowString(fb, 0))

	fb2 := NewFramebuffer(6, 1)
	fb2.AddStringN(0, 0, "ab", 6, Right, DefaultFg, DefaultBg, 0)
	assert.Equal(t, "    ab", rowString(fb2, 0))

	fb3 := NewFramebuffer(6, 1)
	fb3.AddStringN(0, 0, "ab", 6, Centered, DefaultFg, DefaultBg, 0)
	assert.Equal(t, "  ab  ", rowString(fb3, 0))
}
