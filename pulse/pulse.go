package pulse

import (
	"time"
)

const (
	FullBrightness uint8 = 255
	ZeroBrightness uint8 = 0

	// RepeatForever as repetition count repeats the effect until Stop.
	RepeatForever uint16 = 65535
)

const (
	flagInverted  uint8 = 1 << 0
	flagLowActive uint8 = 1 << 1
	flagDelayRest uint8 = 1 << 2
)

// Writer drives the physical output bound to a Pulse. Write receives the
// fully transformed brightness level in [0..255].
type Writer interface {
	Write(level uint8)
}

// Clock returns the current time in milliseconds. Values wrap modulo 2^32;
// elapsed time is always computed by unsigned subtraction so wraparound
// yields the correct delta.
type Clock func() uint32

func millis() uint32 {
	return uint32(time.Now().UnixNano() / int64(time.Millisecond))
}

// Pulse animates the brightness of a single output. Configure an effect,
// then call Tick repeatedly from a cooperative loop; Tick never blocks.
//
//  p := pulse.New(w).Blink(500, 500).Repeat(10).DelayBefore(1000)
//  for p.Tick() {
//  }
type Pulse struct {
	writer Writer
	clock  Clock

	fn     BrightnessFunc
	param  uint32
	period uint16

	repeats     uint16
	delayBefore uint32
	delayAfter  uint16
	flags       uint8

	timeStart uint32
	lastTick  uint32
	started   bool
}

// New binds a Pulse to the given output. The default clock is wall time in
// milliseconds.
func New(w Writer) *Pulse {
	return &Pulse{
		writer:  w,
		clock:   millis,
		repeats: 1,
	}
}

// WithClock replaces the time source. All configured durations are
// interpreted in the clock's unit.
func (p *Pulse) WithClock(c Clock) *Pulse {
	p.clock = c
	return p
}

// init installs a brightness function and resets timing state, so the next
// Tick re-establishes the schedule from scratch.
func (p *Pulse) init(fn BrightnessFunc) *Pulse {
	p.fn = fn
	p.started = false
	return p
}

// clampPeriod maps the undefined period==0 case to the degenerate
// single-sample waveform.
func clampPeriod(ms uint16) uint16 {
	if ms == 0 {
		return 1
	}
	return ms
}

// On turns the output fully on, respecting DelayBefore.
func (p *Pulse) On() *Pulse {
	p.period = 1
	return p.init(OnFunc)
}

// Off turns the output off, respecting DelayBefore.
func (p *Pulse) Off() *Pulse {
	p.period = 1
	return p.init(OffFunc)
}

// Set calls On or Off.
func (p *Pulse) Set(on bool) *Pulse {
	if on {
		return p.On()
	}
	return p.Off()
}

// FadeOn eases the output from dark to full brightness over ms.
func (p *Pulse) FadeOn(ms uint16) *Pulse {
	p.period = clampPeriod(ms)
	return p.init(FadeOnFunc)
}

// FadeOff eases the output from full brightness to dark over ms.
func (p *Pulse) FadeOff(ms uint16) *Pulse {
	p.period = clampPeriod(ms)
	return p.init(FadeOffFunc)
}

// Breathe fades the output on and back off within one period of ms.
func (p *Pulse) Breathe(ms uint16) *Pulse {
	p.period = clampPeriod(ms)
	return p.init(BreatheFunc)
}

// Blink switches the output on for onMs, then off for offMs, per cycle.
func (p *Pulse) Blink(onMs, offMs uint16) *Pulse {
	p.period = clampPeriod(onMs + offMs)
	p.param = uint32(onMs)
	return p.init(BlinkFunc)
}

// Func installs a user supplied brightness function. param is passed
// through to fn on every evaluation.
func (p *Pulse) Func(fn BrightnessFunc, period uint16, param uint32) *Pulse {
	p.period = clampPeriod(period)
	p.param = param
	return p.init(fn)
}

// Repeat sets the number of cycles to play.
func (p *Pulse) Repeat(n uint16) *Pulse {
	p.repeats = n
	return p
}

// Forever repeats the effect until Stop.
func (p *Pulse) Forever() *Pulse {
	return p.Repeat(RepeatForever)
}

func (p *Pulse) IsForever() bool {
	return p.repeats == RepeatForever
}

// DelayBefore waits ms, relative to the first Tick, before the effect
// starts. The output is not touched during the wait.
func (p *Pulse) DelayBefore(ms uint16) *Pulse {
	p.delayBefore = uint32(ms)
	return p
}

// DelayAfter holds the final waveform value for ms after each cycle.
func (p *Pulse) DelayAfter(ms uint16) *Pulse {
	p.delayAfter = ms
	return p
}

// Invert replaces every computed level v with 255-v.
func (p *Pulse) Invert() *Pulse {
	return p.setFlags(flagInverted, true)
}

func (p *Pulse) IsInverted() bool {
	return p.getFlag(flagInverted)
}

// LowActive complements the physically written value only; the logical
// animation is unaffected.
func (p *Pulse) LowActive() *Pulse {
	return p.setFlags(flagLowActive, true)
}

func (p *Pulse) IsLowActive() bool {
	return p.getFlag(flagLowActive)
}

// IsRunning reports whether an effect is configured and not yet finished.
func (p *Pulse) IsRunning() bool {
	return p.fn != nil
}

// Stop ends the current effect and writes a raw zero level, bypassing
// the Invert and LowActive transforms.
func (p *Pulse) Stop() {
	p.fn = nil
	p.writer.Write(ZeroBrightness)
}

// Tick advances the effect to the clock's current time and reports whether
// it is still active. It performs O(1) work and never blocks.
func (p *Pulse) Tick() bool {
	return p.TickAt(p.clock())
}

// TickAt advances the effect to the given timestamp. Repeated calls with
// an identical now are idempotent.
func (p *Pulse) TickAt(now uint32) bool {
	if p.fn == nil {
		return false
	}
	if p.started && now == p.lastTick {
		return true
	}

	// First tick after (re)configuration pins the schedule: the periodic
	// phase begins delayBefore from now.
	if !p.started {
		p.lastTick = now
		p.timeStart = now + p.delayBefore
		p.started = true
	}
	delta := now - p.lastTick
	p.lastTick = now

	if p.delayBefore > 0 {
		if delta < p.delayBefore {
			p.delayBefore -= delta
			return true
		}
		p.delayBefore = 0
	}

	cycle := uint32(p.period) + uint32(p.delayAfter)

	if !p.IsForever() {
		total := uint64(cycle) * uint64(p.repeats)
		if uint64(now-p.timeStart) >= total {
			// latch the waveform's final sample exactly once
			p.write(p.eval(uint32(p.period) - 1))
			p.fn = nil
			return false
		}
	}

	// t cycles in [0 .. period+delayAfter-1]
	t := (now - p.timeStart) % cycle

	if t < uint32(p.period) {
		p.setFlags(flagDelayRest, false)
		p.write(p.eval(t))
	} else if !p.getFlag(flagDelayRest) {
		// single write on entry to the rest phase, then hold
		p.setFlags(flagDelayRest, true)
		p.write(p.eval(uint32(p.period) - 1))
	}
	return true
}

func (p *Pulse) eval(t uint32) uint8 {
	v := p.fn(t, p.period, p.param)
	if p.IsInverted() {
		v = FullBrightness - v
	}
	return v
}

func (p *Pulse) write(v uint8) {
	if p.IsLowActive() {
		v = FullBrightness - v
	}
	p.writer.Write(v)
}

func (p *Pulse) setFlags(f uint8, on bool) *Pulse {
	if on {
		p.flags |= f
	} else {
		p.flags &^= f
	}
	return p
}

func (p *Pulse) getFlag(f uint8) bool {
	return p.flags&f != 0
}
