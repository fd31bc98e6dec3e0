package termui

import "golang.org/x/sys/unix"

// App is the one-way interface a terminal drives (§9): decoded input flows
// in through OnEvent, and a resize (SIGWINCH) triggers OnDraw. The terminal
// never calls back into itself mid-callback; callbacks are expected to
// mutate application state and, if a redraw is warranted, call
// Terminal.Publish themselves.
type App interface {
	// OnEvent is called once per decoded input event. Signals are not
	// passed through OnEvent: SIGWINCH results in OnDraw, and other signals
	// go to the loop's own signal handlers.
	OnEvent(Event)
	// OnDraw is called after the framebuffer has been resized to match a
	// new terminal size, so the application can repaint before the next
	// Publish.
	OnDraw()
}

// Terminal ties a raw-mode TTY, a Framebuffer sized to match it, and a
// MainLoop registration together (§4, §5). Constructing one takes over the
// controlling terminal; Close hands it back.
type Terminal struct {
	tty  *TTY
	fb   *Framebuffer
	loop *MainLoop
	app  App
	opts Options
}

// NewTerminal opens the controlling terminal, sizes a Framebuffer to match,
// and registers both the tty descriptor and SIGWINCH with loop. The caller
// must have already called loop.SetSignals with unix.SIGWINCH included; if
// it is not part of the blocked set, resize notifications will never
// arrive, since MainLoop routes signals only through its signalfd.
func NewTerminal(loop *MainLoop, app App, opts Options) (*Terminal, error) {
	opts = opts.withDefaults()

	tty, err := OpenTTY()
	if err != nil {
		return nil, err
	}

	cols, rows, err := tty.Size()
	if err != nil {
		tty.Close()
		return nil, err
	}

	t := &Terminal{
		tty:  tty,
		fb:   NewFramebuffer(cols, rows),
		loop: loop,
		app:  app,
		opts: opts,
	}

	if err := loop.Add(tty.Fd(), unix.EPOLLIN, t.handleReadable); err != nil {
		tty.Close()
		return nil, err
	}
	loop.RegisterSignalHandler(int(unix.SIGWINCH), t.handleResize)
	opts.Logger.Debug("tty opened", "fd", tty.Fd(), "cols", cols, "rows", rows)

	return t, nil
}

func (t *Terminal) handleReadable(_ *Poll, _ int, events uint32) {
	if events&unix.EPOLLERR != 0 {
		panic("termui: EPOLLERR on tty fd")
	}
	if err := t.tty.RxFill(); err != nil {
		panic(err)
	}
	for _, ev := range t.tty.DecodeEvents() {
		t.app.OnEvent(ev)
	}
}

func (t *Terminal) handleResize(_ int) {
	if err := t.Reset(); err != nil {
		t.opts.Logger.Debug("resize query failed", "error", err)
		return
	}
	t.app.OnDraw()
}

// Reset re-queries the current terminal size and resizes the framebuffer
// to match, blanking every cell (§4.6/§6). SIGWINCH delivery calls this
// automatically; an application may also call it directly, e.g. once per
// frame at the top of its draw loop, to pick up a resize it missed while
// signals were blocked.
func (t *Terminal) Reset() error {
	cols, rows, err := t.tty.Size()
	if err != nil {
		return err
	}
	t.opts.Logger.Debug("resized", "cols", cols, "rows", rows)
	t.fb.Reset(cols, rows)
	return nil
}

// Close restores cursor, keypad, screen and termios state and deregisters
// the tty descriptor from the loop. It does not close the loop itself,
// since the loop may still own other descriptors (e.g. application timers).
func (t *Terminal) Close() error {
	t.opts.Logger.Debug("tty closing", "fd", t.tty.Fd())
	t.loop.Remove(t.tty.Fd())
	return t.tty.Close()
}

// Publish paints the current framebuffer contents to the terminal (§4.6).
func (t *Terminal) Publish() error { return Publish(t.fb, t.tty) }

// Width returns the framebuffer's current column count.
func (t *Terminal) Width() int { return t.fb.Width() }

// Height returns the framebuffer's current row count.
func (t *Terminal) Height() int { return t.fb.Height() }

// SetDefaultColors sets the colours used to fill newly exposed cells on the
// next Reset (e.g. after a resize).
func (t *Terminal) SetDefaultColors(fg, bg Color) { t.fb.SetDefaultColors(fg, bg) }

// SetColors recolours width cells starting at (y, x) without touching
// their glyphs.
func (t *Terminal) SetColors(y, x, width int, fg, bg Color) {
	t.fb.SetColors(y, x, width, fg, bg)
}

// AddGlyph writes a single cell.
func (t *Terminal) AddGlyph(y, x int, g rune, fg, bg Color, effect Effect) {
	t.fb.AddGlyph(y, x, g, fg, bg, effect)
}

// AddString writes s left-aligned starting at (y, x).
func (t *Terminal) AddString(y, x int, s string, fg, bg Color, effect Effect) {
	t.fb.AddString(y, x, s, fg, bg, effect)
}

// AddStringN writes s within a width-wide field per the given alignment,
// clipping with an ellipsis as needed (§4.5).
func (t *Terminal) AddStringN(y, x int, s string, width int, align TextAlignment, fg, bg Color, effect Effect) {
	t.fb.AddStringN(y, x, s, width, align, fg, bg, effect)
}

// AddStringsN lays out left/center/right fields across a single row,
// resolving overlaps per §4.5.
func (t *Terminal) AddStringsN(y, x int, left, middle, right string, width int, fg, bg Color, effect Effect) {
	t.fb.AddStringsN(y, x, left, middle, right, width, fg, bg, effect)
}

// AddFormattedString writes a []Glyph stream produced by GlyphString or
// ExpandMarkdown, honouring any inline format sentinels it carries.
func (t *Terminal) AddFormattedString(y, x int, formatted []Glyph, width int) {
	t.fb.AddFormattedString(y, x, formatted, width)
}

// AddMarkdown expands markdown-lite delimiters in text and writes the result
// starting at (y, x) (§4.4).
func (t *Terminal) AddMarkdown(y, x int, text string, width int) {
	t.fb.AddMarkdown(y, x, text, width)
}
