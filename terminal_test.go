package termui

import (
	"os"
	"testing"

	"github.com/creack/pty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingApp implements App and records what the terminal called it with,
// so tests can assert on the callback wiring without a real UI.
type recordingApp struct {
	events []Event
	draws  int
}

func (a *recordingApp) OnEvent(ev Event) { a.events = append(a.events, ev) }
func (a *recordingApp) OnDraw()          { a.draws++ }

// newTestTerminal builds a Terminal against a pty pair rather than
// NewTerminal's hardcoded /dev/tty, the way tty_linux_test.go does for TTY
// directly: a test cannot safely repoint the process's actual controlling
// terminal.
func newTestTerminal(t *testing.T) (*Terminal, *os.File, *recordingApp) {
	t.Helper()
	ptmx, ptsFile, err := pty.Open()
	require.NoError(t, err)
	t.Cleanup(func() { ptmx.Close() })
	t.Cleanup(func() { ptsFile.Close() })

	tty := &TTY{fd: int(ptsFile.Fd()), tx: make([]byte, 0, 4096)}
	cols, rows, err := tty.Size()
	require.NoError(t, err)

	loop, err := NewMainLoop(Options{})
	require.NoError(t, err)
	t.Cleanup(func() { loop.Close() })

	app := &recordingApp{}
	term := &Terminal{
		tty:  tty,
		fb:   NewFramebuffer(cols, rows),
		loop: loop,
		app:  app,
		opts: Options{}.withDefaults(),
	}
	return term, ptmx, app
}

func TestTerminalResetResizesFramebuffer(t *testing.T) {
	term, ptmx, _ := newTestTerminal(t)

	require.NoError(t, pty.Setsize(ptmx, &pty.Winsize{Rows: 24, Cols: 80}))
	require.NoError(t, term.Reset())
	assert.Equal(t, 80, term.Width())
	assert.Equal(t, 24, term.Height())

	require.NoError(t, pty.Setsize(ptmx, &pty.Winsize{Rows: 10, Cols: 40}))
	require.NoError(t, term.Reset())
	assert.Equal(t, 40, term.Width())
	assert.Equal(t, 10, term.Height())
}

func TestTerminalHandleResizeCallsOnDraw(t *testing.T) {
	term, ptmx, app := newTestTerminal(t)

	require.NoError(t, pty.Setsize(ptmx, &pty.Winsize{Rows: 15, Cols: 50}))
	term.handleResize(0)

	assert.Equal(t, 1, app.draws)
	assert.Equal(t, 50, term.Width())
	assert.Equal(t, 15, term.Height())
}

func TestTerminalPublishWritesToTTY(t *testing.T) {
	term, ptmx, _ := newTestTerminal(t)

	// A fresh pty reports a 0x0 window, which leaves the framebuffer with no
	// cells; give it a size so the painted text has somewhere to go.
	require.NoError(t, pty.Setsize(ptmx, &pty.Winsize{Rows: 2, Cols: 10}))
	require.NoError(t, term.Reset())

	term.AddString(0, 0, "hi", DefaultFg, DefaultBg, 0)
	require.NoError(t, term.Publish())

	buf := make([]byte, 4096)
	n, err := ptmx.Read(buf)
	require.NoError(t, err)
	got := string(buf[:n])
	assert.Contains(t, got, cmdClearHome)
	assert.Contains(t, got, "hi")
}
