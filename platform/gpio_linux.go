//go:build linux

package platform

import (
	"sync"

	"github.com/warthog618/gpiod"

	"max77650-go/errcode"
)

// IRQLine is a GPIO character-device line requested for falling-edge events.
// It satisfies irqwatch.Pin.
type IRQLine struct {
	chip *gpiod.Chip
	line *gpiod.Line

	mu      sync.Mutex
	handler func()
}

// OpenIRQLine requests offset on chip (e.g. "gpiochip0") as an input with
// falling-edge detection.
func OpenIRQLine(chip string, offset int) (*IRQLine, error) {
	c, err := gpiod.NewChip(chip, gpiod.WithConsumer("max77650-nirq"))
	if err != nil {
		return nil, errcode.Wrap(errcode.Transport, "platform.gpio", err)
	}
	l := &IRQLine{chip: c}
	l.line, err = c.RequestLine(offset, gpiod.WithEventHandler(l.onEdge), gpiod.WithFallingEdge)
	if err != nil {
		c.Close()
		return nil, errcode.Wrap(errcode.Transport, "platform.gpio", err)
	}
	return l, nil
}

// Get returns the line level; a read failure reads as high (idle).
func (l *IRQLine) Get() bool {
	v, err := l.line.Value()
	return err != nil || v != 0
}

func (l *IRQLine) SetIRQ(handler func()) error {
	l.mu.Lock()
	l.handler = handler
	l.mu.Unlock()
	return nil
}

func (l *IRQLine) ClearIRQ() error { return l.SetIRQ(nil) }

func (l *IRQLine) Close() error {
	err := l.line.Close()
	if cerr := l.chip.Close(); err == nil {
		err = cerr
	}
	return err
}

func (l *IRQLine) onEdge(gpiod.LineEvent) {
	l.mu.Lock()
	h := l.handler
	l.mu.Unlock()
	if h != nil {
		h()
	}
}
