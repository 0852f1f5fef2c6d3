package led

import (
	"image"
	"image/color"

	"github.com/rs/zerolog/log"

	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/devices/v3/nrzled"
	"periph.io/x/extra/devices/screen"
)

const RefreshRate physic.Frequency = 800

// Strip renders brightness as white pixels on an NRZ LED strip behind a
// display.Drawer. When no SPI port is available it falls back to drawing
// at the terminal.
type Strip struct {
	drawer display.Drawer
	pixels int
	err    error
}

// NewStrip wraps an existing drawer spanning the given number of pixels.
func NewStrip(d display.Drawer, pixels int) *Strip {
	if pixels < 1 {
		pixels = 1
	}
	return &Strip{
		drawer: d,
		pixels: pixels,
	}
}

// OpenStrip opens the named SPI port and attaches an NRZ strip of the
// given length to it.
func OpenStrip(port string, pixels int) (*Strip, error) {
	if pixels < 1 {
		pixels = 1
	}
	ss, err := spireg.Open(port)
	if err != nil {
		log.Warn().Err(err).Msg("no SPI port, drawing at the console")
		return NewStrip(screen.New(pixels), pixels), nil
	}

	opts := nrzled.Opts{
		NumPixels: pixels,
		Channels:  3,
		Freq:      ((RefreshRate * 3) + 100) * physic.KiloHertz,
	}
	d, err := nrzled.NewSPI(ss, &opts)
	if err != nil {
		return nil, err
	}
	d.Halt()
	return NewStrip(d, pixels), nil
}

// Write paints every pixel with the gray matching level.
func (s *Strip) Write(level uint8) {
	im := image.NewNRGBA(image.Rect(0, 0, s.pixels, 1))
	c := color.NRGBA{R: level, G: level, B: level, A: 255}
	for x := 0; x < s.pixels; x++ {
		im.SetNRGBA(x, 0, c)
	}
	if err := s.drawer.Draw(s.drawer.Bounds(), im, image.Point{}); err != nil {
		s.err = err
	}
}

func (s *Strip) LastErr() error {
	return s.err
}

// Halt blanks the strip and stops the drawer.
func (s *Strip) Halt() error {
	s.Write(0)
	return s.drawer.Halt()
}
