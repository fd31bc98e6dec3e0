package termui

import "unicode/utf8"

// rxCapacity bounds the read buffer. It must be at least large enough to
// hold the longest recognised escape sequence (ESC + 5 bytes); a small
// multiple of that gives headroom against fragmented reads without letting
// the buffer grow unbounded.
const rxCapacity = 64

// Rx is the TTY channel's incoming byte buffer: a small rolling window plus
// the (implicitly stateless, since Go's utf8 package needs no persistent
// decoder state) UTF-8 decode logic described in §4.1/§4.3.
type Rx struct {
	buf []byte
}

// Available reports how many more bytes TTY.RxFill may append before the buffer
// reaches capacity.
func (r *Rx) Available() int {
	n := rxCapacity - len(r.buf)
	if n < 0 {
		return 0
	}
	return n
}

// Append adds bytes obtained by a non-blocking read to the buffer.
func (r *Rx) Append(b []byte) { r.buf = append(r.buf, b...) }

// Peek returns the current buffered bytes without consuming them.
func (r *Rx) Peek() []byte { return r.buf }

// Consume drops the first n bytes of the buffer.
func (r *Rx) Consume(n int) {
	if n <= 0 {
		return
	}
	if n > len(r.buf) {
		n = len(r.buf)
	}
	r.buf = append(r.buf[:0], r.buf[n:]...)
}

// NextCodepoint attempts to decode one UTF-8 codepoint from the head of the
// buffer. It returns (codepoint, true) and consumes its bytes on success;
// (0, false) without consuming if the buffer is empty or holds an
// incomplete multibyte sequence; (0, false) after consuming exactly one
// byte if that byte cannot begin a valid sequence, to resynchronize.
func (r *Rx) NextCodepoint() (rune, bool) {
	if len(r.buf) == 0 {
		return 0, false
	}
	if !utf8.FullRune(r.buf) {
		return 0, false
	}
	ch, size := utf8.DecodeRune(r.buf)
	if ch == utf8.RuneError && size == 1 {
		r.Consume(1)
		return 0, false
	}
	r.Consume(size)
	return ch, true
}

// DecodeEvents drains as many events as the buffer currently allows,
// implementing §4.3: control letters, ESC-prefixed sequences via Identify,
// and plain codepoints. It never blocks and never calls TTY.RxFill itself; the
// caller re-invokes it after every successful read.
func DecodeEvents(rx *Rx) []Event {
	var events []Event
	for {
		buf := rx.Peek()
		if len(buf) == 0 {
			return events
		}
		b0 := buf[0]
		switch {
		case b0 >= 1 && b0 <= 26:
			rx.Consume(1)
			events = append(events, FromCtrl('A'+b0-1))

		case b0 == 27:
			ev, n, status := Identify(buf[1:])
			switch status {
			case Matched:
				rx.Consume(1 + n)
				events = append(events, ev)
			case NeedMore:
				return events
			default: // NotMatched
				rx.Consume(1)
				events = append(events, Escape)
			}

		default:
			before := len(buf)
			r, ok := rx.NextCodepoint()
			if ok {
				events = append(events, Event(r))
				continue
			}
			if len(rx.Peek()) < before {
				continue // resynchronized past an invalid byte; retry
			}
			return events // incomplete multibyte sequence; wait for more data
		}
	}
}
