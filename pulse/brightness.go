package pulse

// BrightnessFunc computes the output level for a point in time within one
// waveform cycle. t is always in [0..period-1]; param is the opaque effect
// parameter. Functions must be pure: f(period-1, period, param) is
// evaluated last to latch the final state of the output.
type BrightnessFunc func(t uint32, period uint16, param uint32) uint8

// OnFunc holds the output fully on.
func OnFunc(_ uint32, _ uint16, _ uint32) uint8 {
	return FullBrightness
}

// OffFunc holds the output off.
func OffFunc(_ uint32, _ uint16, _ uint32) uint8 {
	return ZeroBrightness
}

// BlinkFunc does one on-off cycle per period; param is the on-duration.
func BlinkFunc(t uint32, _ uint16, param uint32) uint8 {
	if t < param {
		return FullBrightness
	}
	return ZeroBrightness
}

// fadeOnTable samples
//   y(x) = (exp(sin((x - period/2) * PI / period)) - 0.36787944) * 108
// at x = 0, 32, ..., 256. FadeOnFunc interpolates linearly between the
// samples, so no floating point or transcendental ops happen at runtime.
// Fade-off and breathe are derived from it.
var fadeOnTable = [9]uint8{0, 3, 13, 33, 68, 118, 179, 232, 255}

// FadeOnFunc eases the output from dark to full brightness over one period.
func FadeOnFunc(t uint32, period uint16, _ uint32) uint8 {
	if t+1 >= uint32(period) {
		return FullBrightness
	}

	// scale t according to period into 0..255
	t = ((t << 8) / uint32(period)) & 0xff
	i := t >> 5 // bracketing sample, 0..7
	y0 := uint32(fadeOnTable[i])
	y1 := uint32(fadeOnTable[i+1])
	x0 := i << 5

	// y(t) = mt+b, with m = dy/dx = (y1-y0)/32 = (y1-y0) >> 5
	return uint8((((t - x0) * (y1 - y0)) >> 5) + y0)
}

// FadeOffFunc is FadeOnFunc with time mirrored.
func FadeOffFunc(t uint32, period uint16, _ uint32) uint8 {
	return FadeOnFunc(uint32(period)-t, period, 0)
}

// BreatheFunc fades on during the first half period and off during the
// second, ending dark at the final sample.
func BreatheFunc(t uint32, period uint16, _ uint32) uint8 {
	if t+1 >= uint32(period) {
		return ZeroBrightness
	}
	half := period >> 1
	if t < uint32(half) {
		return FadeOnFunc(t, half, 0)
	}
	return FadeOffFunc(t-uint32(half), half, 0)
}
