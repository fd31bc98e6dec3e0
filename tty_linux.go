//go:build linux
// +build linux

package termui

import (
	"unicode/utf8"

	"golang.org/x/sys/unix"
)

// TTY owns the controlling terminal: raw-mode termios, the rx byte ring
// (§4.2) and a buffered tx stream (§4.1), plus the alternate-screen and
// keypad transitions that bracket a session's lifetime.
type TTY struct {
	fd          int
	origTermios unix.Termios

	rx Rx
	tx []byte
}

// OpenTTY opens /dev/tty, switches it to raw non-blocking mode and enters
// the alternate screen, keypad mode and hidden cursor. The reverse
// transition happens in Close.
func OpenTTY() (*TTY, error) {
	fd, err := unix.Open("/dev/tty", unix.O_RDWR|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, newSyscallError("open(/dev/tty)", err)
	}

	orig, err := unix.IoctlGetTermios(fd, unix.TCGETS)
	if err != nil {
		unix.Close(fd)
		return nil, newSyscallError("tcgetattr", err)
	}

	raw := rawTermios(*orig)

	if err := unix.IoctlSetTermios(fd, unix.TCSETSF, &raw); err != nil {
		unix.Close(fd)
		return nil, newSyscallError("tcsetattr", err)
	}

	t := &TTY{fd: fd, origTermios: *orig, tx: make([]byte, 0, 4096)}
	t.TxAppendString(cmdEnterScreen)
	t.TxAppendString(cmdKeypadOn)
	t.TxAppendString(cmdCursorHide)
	t.TxAppendString(cmdClearHome)
	if err := t.TxFlush(); err != nil {
		unix.IoctlSetTermios(fd, unix.TCSETSF, orig)
		unix.Close(fd)
		return nil, err
	}
	return t, nil
}

// Close restores the cursor, keypad and screen, then the original termios,
// in the reverse order of OpenTTY, and closes the descriptor.
func (t *TTY) Close() error {
	t.TxAppendString(cmdCursorShow)
	t.TxAppendString(cmdKeypadOff)
	t.TxAppendString(cmdLeaveScreen)
	flushErr := t.TxFlush()

	restoreErr := unix.IoctlSetTermios(t.fd, unix.TCSETSF, &t.origTermios)
	unix.Close(t.fd)

	if restoreErr != nil {
		return newSyscallError("tcsetattr", restoreErr)
	}
	return flushErr
}

// rawTermios derives a raw, non-blocking termios from orig: no input/output
// processing, no line editing or signal generation, 8-bit characters, and a
// read that never blocks waiting for a byte count or timeout (VMIN=0,
// VTIME=0) so a poll-driven caller decides entirely when to read.
func rawTermios(orig unix.Termios) unix.Termios {
	raw := orig
	raw.Iflag &^= unix.IGNBRK | unix.BRKINT | unix.PARMRK | unix.ISTRIP |
		unix.INLCR | unix.IGNCR | unix.ICRNL | unix.IXON
	raw.Oflag &^= unix.OPOST
	raw.Lflag &^= unix.ECHO | unix.ECHONL | unix.ICANON | unix.ISIG | unix.IEXTEN
	raw.Cflag &^= unix.CSIZE | unix.PARENB
	raw.Cflag |= unix.CS8
	raw.Cc[unix.VMIN] = 0
	raw.Cc[unix.VTIME] = 0
	return raw
}

// Fd returns the descriptor to register with a Poll or MainLoop.
func (t *TTY) Fd() int { return t.fd }

// Size queries the current window size directly from the kernel (§4.1);
// callers cache it themselves if they need to compare against a prior
// value, e.g. on SIGWINCH.
func (t *TTY) Size() (cols, rows int, err error) {
	ws, err := unix.IoctlGetWinsize(t.fd, unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, newSyscallError("ioctl(TIOCGWINSZ)", err)
	}
	return int(ws.Col), int(ws.Row), nil
}

// RxFill performs one non-blocking read into the rx buffer. EINTR and
// EAGAIN are reported as "nothing read", not errors, since VMIN=0/VTIME=0
// combined with edge cases in signal delivery make both routine.
func (t *TTY) RxFill() error {
	avail := t.rx.Available()
	if avail == 0 {
		return nil
	}
	scratch := rxScratchPool.Get()
	defer rxScratchPool.Put(scratch)
	n, err := unix.Read(t.fd, scratch[:avail])
	if err != nil {
		if err == unix.EINTR || err == unix.EAGAIN {
			return nil
		}
		return newSyscallError("read", err)
	}
	if n > 0 {
		t.rx.Append(scratch[:n])
	}
	return nil
}

// DecodeEvents drains as many complete events as the rx buffer currently
// holds, matching the source's read-then-decode-to-exhaustion loop.
func (t *TTY) DecodeEvents() []Event {
	return DecodeEvents(&t.rx)
}

// TxAppendString queues raw bytes for the next Flush.
func (t *TTY) TxAppendString(s string) { t.tx = append(t.tx, s...) }

// TxAppendRune queues r's UTF-8 encoding.
func (t *TTY) TxAppendRune(r rune) {
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	t.tx = append(t.tx, buf[:n]...)
}

// TxAppendBytes queues an already-encoded byte slice, e.g. a precomputed
// escape sequence fragment.
func (t *TTY) TxAppendBytes(b []byte) { t.tx = append(t.tx, b...) }

// TxFlush writes the queued bytes to the tty, retrying on EINTR/EAGAIN
// until the buffer is empty. OpenTTY does not set O_NONBLOCK (VMIN/VTIME
// only govern reads), so writes normally block; the EAGAIN retry covers a
// descriptor that was made non-blocking elsewhere.
func (t *TTY) TxFlush() error {
	for len(t.tx) > 0 {
		n, err := unix.Write(t.fd, t.tx)
		if err != nil {
			if err == unix.EINTR || err == unix.EAGAIN {
				continue
			}
			return newSyscallError("write", err)
		}
		t.tx = t.tx[n:]
	}
	t.tx = t.tx[:0]
	return nil
}
