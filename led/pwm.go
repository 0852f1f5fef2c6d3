// Package led provides output drivers for pulse over periph.io hardware.
package led

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/physic"
)

const DFLT_PWM_FREQ physic.Frequency = 800 * physic.Hertz

// PWMPin writes brightness levels as PWM duty cycles on a GPIO pin.
type PWMPin struct {
	pin  gpio.PinOut
	freq physic.Frequency
	err  error
}

// NewPWMPin wraps an already resolved pin. A zero freq selects the default
// 800 Hz.
func NewPWMPin(pin gpio.PinOut, freq physic.Frequency) *PWMPin {
	if freq == 0 {
		freq = DFLT_PWM_FREQ
	}
	return &PWMPin{
		pin:  pin,
		freq: freq,
	}
}

// OpenPWM resolves a pin by its registry name, e.g. "GPIO18" or "18".
func OpenPWM(name string, freq physic.Frequency) (*PWMPin, error) {
	pin := gpioreg.ByName(name)
	if pin == nil {
		return nil, fmt.Errorf("led: no gpio pin named %q", name)
	}
	return NewPWMPin(pin, freq), nil
}

// Write scales level into the duty range and updates the pin. Errors are
// deferred to LastErr so the caller's poll loop stays error-free.
func (p *PWMPin) Write(level uint8) {
	duty := gpio.Duty(uint64(gpio.DutyMax) * uint64(level) / 255)
	if err := p.pin.PWM(duty, p.freq); err != nil {
		p.err = err
	}
}

// LastErr returns the most recent Write failure, if any.
func (p *PWMPin) LastErr() error {
	return p.err
}

// Halt parks the pin at zero duty.
func (p *PWMPin) Halt() error {
	return p.pin.PWM(0, p.freq)
}
