package led

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
)

// BinaryPin drives a plain on/off GPIO pin: levels of 128 and above read
// as high. Useful for pins without PWM capability.
type BinaryPin struct {
	pin gpio.PinOut
	err error
}

func NewBinaryPin(pin gpio.PinOut) *BinaryPin {
	return &BinaryPin{pin: pin}
}

// OpenBinary resolves a pin by its registry name.
func OpenBinary(name string) (*BinaryPin, error) {
	pin := gpioreg.ByName(name)
	if pin == nil {
		return nil, fmt.Errorf("led: no gpio pin named %q", name)
	}
	return NewBinaryPin(pin), nil
}

func (b *BinaryPin) Write(level uint8) {
	if err := b.pin.Out(gpio.Level(level >= 128)); err != nil {
		b.err = err
	}
}

func (b *BinaryPin) LastErr() error {
	return b.err
}

func (b *BinaryPin) Halt() error {
	return b.pin.Out(gpio.Low)
}
