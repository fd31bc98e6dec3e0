package termui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromCtrl(t *testing.T) {
	c := FromCtrl('C')
	assert.True(t, c.IsCtrl())
	assert.False(t, c.IsAlt())
	assert.Equal(t, Event('C'), c.Payload())
}

func TestComposedModifiers(t *testing.T) {
	ev := Ctrl | Alt | ArrowLeft
	assert.True(t, ev.IsCtrl())
	assert.True(t, ev.IsAlt())
	assert.True(t, ev.IsSpecial())
}

func TestSignalEvent(t *testing.T) {
	ev := SignalEvent(28)
	assert.True(t, ev.IsSignal())
	assert.Equal(t, 28, ev.SignalNumber())
}

func TestEnterAndTab(t *testing.T) {
	assert.Equal(t, FromCtrl('M'), Enter)
	assert.Equal(t, FromCtrl('I'), Tab)
}
