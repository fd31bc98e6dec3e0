package termui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Scenario 5, part 1: a complete modified-arrow sequence yields exactly one
// event and empties the buffer.
func TestScenarioCompleteSequenceConsumed(t *testing.T) {
	var rx Rx
	rx.Append([]byte{0x1B, '[', '1', ';', '5', 'D'})
	events := DecodeEvents(&rx)
	assert.Equal(t, []Event{Ctrl | ArrowLeft}, events)
	assert.Empty(t, rx.Peek())
}

// Scenario 5, part 2: an incomplete sequence yields no event and leaves the
// ESC byte itself buffered, not consumed.
func TestScenarioIncompleteSequenceBuffered(t *testing.T) {
	var rx Rx
	rx.Append([]byte{0x1B, '[', '1'})
	events := DecodeEvents(&rx)
	assert.Empty(t, events)
	assert.Equal(t, []byte{0x1B, '[', '1'}, rx.Peek())
}

// Scenario 5, part 3: a bare ESC followed by an unrelated byte yields
// Escape, and the following byte is decoded as the next event. DecodeEvents
// drains the buffer, so both events come out of one call and a second call
// has nothing left to decode.
func TestScenarioBareEscapeThenLiteral(t *testing.T) {
	var rx Rx
	rx.Append([]byte{0x1B, 'x'})
	events := DecodeEvents(&rx)
	assert.Equal(t, []Event{Escape, Event('x')}, events)
	assert.Empty(t, rx.Peek())

	events = DecodeEvents(&rx)
	assert.Empty(t, events)
	assert.Empty(t, rx.Peek())
}

func TestNextCodepointIncompleteMultibyte(t *testing.T) {
	var rx Rx
	rx.Append([]byte{0xE2, 0x82}) // first two bytes of U+20AC, incomplete
	r, ok := rx.NextCodepoint()
	assert.False(t, ok)
	assert.Equal(t, rune(0), r)
	assert.Len(t, rx.Peek(), 2)
}

func TestNextCodepointInvalidByteResyncs(t *testing.T) {
	var rx Rx
	rx.Append([]byte{0xFF, 'a'})
	r, ok := rx.NextCodepoint()
	assert.False(t, ok)
	assert.Equal(t, rune(0), r)
	assert.Equal(t, []byte{'a'}, rx.Peek())
}

func TestDecodeEventsControlByte(t *testing.T) {
	var rx Rx
	rx.Append([]byte{0x03}) // Ctrl-C
	events := DecodeEvents(&rx)
	assert.Equal(t, []Event{FromCtrl('C')}, events)
}

func TestRxAvailableBoundedByCapacity(t *testing.T) {
	var rx Rx
	assert.Equal(t, rxCapacity, rx.Available())
	rx.Append(make([]byte, rxCapacity))
	assert.Equal(t, 0, rx.Available())
}
