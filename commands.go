package termui

// Hardcoded terminal control sequences (§6). These are emitted directly
// rather than resolved through a terminfo database: the set the design
// depends on is small and fixed, and the source (termui's commands::
// namespace) does the same.
const (
	cmdEnterScreen = "\x1b[?1049h\x1b[22;0;0t" // alternate screen + push title
	cmdLeaveScreen = "\x1b[?1049l\x1b[23;0;0t" // pop title + primary screen
	cmdClearHome   = "\x1b[H\x1b[2J"
	cmdKeypadOn    = "\x1b[?1h\x1b="
	cmdKeypadOff   = "\x1b[?1l\x1b>"
	cmdCursorHide  = "\x1b[?25l"
	cmdCursorShow  = "\x1b[?12l\x1b[?25h"
)
