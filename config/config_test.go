package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/coreman2200/funtimes-ledpulse/config"
	"github.com/coreman2200/funtimes-ledpulse/pulse"
	"github.com/stretchr/testify/assert"
)

type nullWriter struct {
	last uint8
}

func (w *nullWriter) Write(level uint8) {
	w.last = level
}

func writeTemp(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "ledpulse.yaml")
	if err := os.WriteFile(p, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestLoadParsesEffect(t *testing.T) {
	path := writeTemp(t, `
driver: pwm
pin: GPIO18
fps: 50
effect:
  name: blink
  on_ms: 500
  off_ms: 500
  repeat: 3
  delay_before_ms: 1000
  invert: true
`)
	c, err := config.Load(path)
	assert.NoError(t, err)
	assert.Equal(t, "pwm", c.Driver)
	assert.Equal(t, "GPIO18", c.Pin)
	assert.Equal(t, 50, c.FPS)
	assert.Equal(t, "blink", c.Effect.Name)
	assert.Equal(t, uint16(500), c.Effect.OnMs)
	assert.Equal(t, uint16(3), c.Effect.Repeat)
	assert.True(t, c.Effect.Invert)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load("/does/not/exist.yaml")
	assert.Error(t, err)
}

func TestApplyConfiguresPulse(t *testing.T) {
	c := &config.Config{
		Effect: config.EffectCfg{
			Name:      "breathe",
			PeriodMs:  2000,
			Forever:   true,
			LowActive: true,
		},
	}
	w := &nullWriter{}
	p, err := c.Apply(pulse.New(w))
	assert.NoError(t, err)
	assert.True(t, p.IsForever())
	assert.True(t, p.IsLowActive())
	assert.False(t, p.IsInverted())

	assert.True(t, p.TickAt(0))
	assert.Equal(t, uint8(255), w.last, "breathe starts dark, low active flips it")
}

func TestApplyRejectsUnknownEffect(t *testing.T) {
	c := &config.Config{Effect: config.EffectCfg{Name: "sparkle"}}
	_, err := c.Apply(pulse.New(&nullWriter{}))
	assert.Error(t, err)
}

func TestBuildRejectsUnknownDriver(t *testing.T) {
	c := &config.Config{Driver: "laser"}
	_, err := c.Build()
	assert.Error(t, err)
}
