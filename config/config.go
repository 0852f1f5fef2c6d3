// Package config loads driver and effect settings from a YAML file and
// builds the configured Pulse.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"periph.io/x/conn/v3/physic"

	"github.com/coreman2200/funtimes-ledpulse/led"
	"github.com/coreman2200/funtimes-ledpulse/pulse"
)

type EffectCfg struct {
	Name string `yaml:"name"` // on | off | fade_on | fade_off | breathe | blink

	PeriodMs uint16 `yaml:"period_ms"`
	OnMs     uint16 `yaml:"on_ms"`  // blink only
	OffMs    uint16 `yaml:"off_ms"` // blink only

	Repeat        uint16 `yaml:"repeat"`
	Forever       bool   `yaml:"forever"`
	DelayBeforeMs uint16 `yaml:"delay_before_ms"`
	DelayAfterMs  uint16 `yaml:"delay_after_ms"`
	Invert        bool   `yaml:"invert"`
	LowActive     bool   `yaml:"low_active"`
}

type Config struct {
	Driver string `yaml:"driver"` // "pwm" | "gpio" | "strip"
	Pin    string `yaml:"pin"`    // gpio pin name, e.g. GPIO18
	Port   string `yaml:"port"`   // spi port name for "strip"
	Pixels int    `yaml:"pixels"` // strip length
	FreqHz int    `yaml:"freq_hz"`
	FPS    int    `yaml:"fps"`

	Effect EffectCfg `yaml:"effect"`
}

func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) writer() (pulse.Writer, error) {
	switch c.Driver {
	case "pwm", "":
		return led.OpenPWM(c.Pin, physic.Frequency(c.FreqHz)*physic.Hertz)
	case "gpio":
		return led.OpenBinary(c.Pin)
	case "strip":
		return led.OpenStrip(c.Port, c.Pixels)
	default:
		return nil, fmt.Errorf("config: unknown driver %q", c.Driver)
	}
}

// Build opens the configured output and returns the Pulse with the effect
// applied, ready to be ticked.
func (c *Config) Build() (*pulse.Pulse, error) {
	w, err := c.writer()
	if err != nil {
		return nil, err
	}
	return c.Apply(pulse.New(w))
}

// Apply configures the effect and modifiers on an existing Pulse.
func (c *Config) Apply(p *pulse.Pulse) (*pulse.Pulse, error) {
	e := c.Effect
	switch e.Name {
	case "on":
		p.On()
	case "off":
		p.Off()
	case "fade_on":
		p.FadeOn(e.PeriodMs)
	case "fade_off":
		p.FadeOff(e.PeriodMs)
	case "breathe":
		p.Breathe(e.PeriodMs)
	case "blink":
		p.Blink(e.OnMs, e.OffMs)
	default:
		return nil, fmt.Errorf("config: unknown effect %q", e.Name)
	}

	if e.Forever {
		p.Forever()
	} else if e.Repeat > 0 {
		p.Repeat(e.Repeat)
	}
	p.DelayBefore(e.DelayBeforeMs)
	p.DelayAfter(e.DelayAfterMs)
	if e.Invert {
		p.Invert()
	}
	if e.LowActive {
		p.LowActive()
	}
	return p, nil
}
