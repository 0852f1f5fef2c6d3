package pulse_test

import (
	"testing"

	. "github.com/coreman2200/funtimes-ledpulse/pulse"
	"github.com/stretchr/testify/assert"
)

func TestSerialSequencePlaysMembersInOrder(t *testing.T) {
	w1 := &testWriter{}
	w2 := &testWriter{}
	c := &manualClock{}
	p1 := New(w1).WithClock(c.read).On().Repeat(1)
	p2 := New(w2).WithClock(c.read).Off().Repeat(1)
	s := NewSequence(Serial, p1, p2)

	c.now = 0
	assert.True(t, s.Tick())
	assert.Equal(t, uint8(255), w1.last())
	assert.Empty(t, w2.writes, "second member must not start early")

	// first member finishes after its single-sample period
	c.now = 1
	assert.True(t, s.Tick())
	assert.False(t, p1.IsRunning())
	assert.True(t, p2.IsRunning())

	c.now = 2
	assert.False(t, s.Tick())
	assert.False(t, p2.IsRunning())
}

func TestParallelSequenceTicksAllMembers(t *testing.T) {
	w1 := &testWriter{}
	w2 := &testWriter{}
	p1 := New(w1).Blink(100, 100).Repeat(1)
	p2 := New(w2).Blink(100, 100).Repeat(2)
	s := NewSequence(Parallel, p1, p2)

	assert.True(t, s.TickAt(0))
	assert.Equal(t, uint8(255), w1.last())
	assert.Equal(t, uint8(255), w2.last())

	// first member done, second still cycling
	assert.True(t, s.TickAt(200))
	assert.False(t, p1.IsRunning())
	assert.True(t, p2.IsRunning())

	assert.False(t, s.TickAt(400))
}

func TestSequenceStopStopsEveryMember(t *testing.T) {
	w1 := &testWriter{}
	w2 := &testWriter{}
	p1 := New(w1).On().Forever()
	p2 := New(w2).On().Forever()
	s := NewSequence(Parallel, p1, p2)

	s.TickAt(0)
	s.Stop()
	assert.False(t, p1.IsRunning())
	assert.False(t, p2.IsRunning())
	assert.Equal(t, uint8(0), w1.last())
	assert.Equal(t, uint8(0), w2.last())
}
