package termui

import (
	"strconv"
	"strings"
)

// txSink is the minimal write side a Publisher needs from the TTY channel.
type txSink interface {
	TxAppendString(s string)
	TxAppendRune(r rune)
	TxFlush() error
}

// Publish emits fb to tty as a full-screen repaint (§4.6). It makes no
// attempt at diffing against a previous frame; per §9(c) this design must
// not promise diffed output, so every call walks the entire grid, tracking
// only the currently-emitted SGR state to avoid redundant parameter bytes.
func Publish(fb *Framebuffer, tty txSink) error {
	tty.TxAppendString(cmdClearHome)

	var curEffect Effect
	var curFg, curBg Color
	effectValid, fgValid, bgValid := false, false, false

	width, height := fb.width, fb.height
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			cell := fb.cells[y*width+x]
			var params []string

			if !effectValid || cell.Effect != curEffect {
				params = append(params, "0")
				for bit := effectFirstBit; bit <= effectLastBit; bit++ {
					if cell.Effect&(1<<uint(bit)) != 0 {
						params = append(params, strconv.Itoa(bit))
					}
				}
				curEffect, effectValid = cell.Effect, true
				fgValid, bgValid = false, false // SGR 0 clears colours too
			}
			if !fgValid || cell.Fg != curFg {
				params = append(params, sgrColorParam(cell.Fg, true))
				curFg, fgValid = cell.Fg, true
			}
			if !bgValid || cell.Bg != curBg {
				params = append(params, sgrColorParam(cell.Bg, false))
				curBg, bgValid = cell.Bg, true
			}
			if len(params) > 0 {
				tty.TxAppendString("\x1b[" + strings.Join(params, ";") + "m")
			}
			tty.TxAppendRune(cell.Glyph)
		}
		// home the cursor to the start of the next row; avoids ambiguity
		// about end-of-line wrap accumulating under resize.
		tty.TxAppendString("\x1b[" + strconv.Itoa(y+2) + "H")
	}

	tty.TxAppendString("\x1b[0m")
	return tty.TxFlush()
}
