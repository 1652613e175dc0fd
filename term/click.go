package term

import (
	"log/slog"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	clickRate      = beep.SampleRate(44100)
	clickFrequency = 880
	clickLength    = 30 * time.Millisecond
)

// Clicker plays a short tone for handled clicks. Without an audio device
// it stays silent.
type Clicker struct {
	mu     sync.Mutex
	ready  bool
	logger *slog.Logger
}

// NewClicker creates a silent clicker; call Init to open the speaker.
func NewClicker(logger *slog.Logger) *Clicker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Clicker{logger: logger}
}

// Init opens the speaker. A failure is returned but leaves the clicker
// usable and silent.
func (c *Clicker) Init() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.ready {
		return nil
	}
	if err := speaker.Init(clickRate, clickRate.N(time.Second/10)); err != nil {
		return err
	}
	c.ready = true
	return nil
}

// Click plays the tone.
func (c *Clicker) Click() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.ready {
		return
	}
	sine, err := generators.SineTone(clickRate, clickFrequency)
	if err != nil {
		c.logger.Debug("click tone unavailable", "err", err)
		return
	}
	speaker.Play(beep.Take(clickRate.N(clickLength), sine))
}

// Close releases the speaker.
func (c *Clicker) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.ready {
		return
	}
	speaker.Close()
	c.ready = false
}
