// Package irqwatch services the MAX77650 nIRQ line: each falling edge queues
// a drain of the read-clear interrupt registers on a worker goroutine, and the
// decoded events are delivered on a channel.
package irqwatch

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"max77650-go/drivers/max77650"
)

// Pin is the nIRQ input. nIRQ is open-drain, active low.
type Pin interface {
	Get() bool
	// SetIRQ installs handler for falling edges. handler may run in
	// interrupt or event-thread context and must not block.
	SetIRQ(handler func()) error
	ClearIRQ() error
}

// Drainer reads and clears the interrupt registers. *max77650.Serial
// satisfies it; so does *max77650.Device when nothing else shares it.
type Drainer interface {
	DrainInterrupts() (max77650.InterruptEvent, error)
}

// Event is delivered from the worker. Err is set when the drain failed; the
// groups read before the failure are still reported.
type Event struct {
	max77650.InterruptEvent
	TS  time.Time
	Err error
}

var ErrStarted = errors.New("irqwatch: worker already started")

// Re-drain while nIRQ stays low, bounded so a stuck line cannot spin.
const maxPasses = 4

type Worker struct {
	src Drainer
	pin Pin

	// Written by the edge handler; capacity 1 coalesces bursts.
	kick    chan struct{}
	outQ    chan Event
	stopped chan struct{}

	drops   uint32 // events dropped on a full outQ
	started uint32
}

func New(src Drainer, pin Pin, outBuf int) *Worker {
	if outBuf <= 0 {
		outBuf = 16
	}
	return &Worker{
		src:     src,
		pin:     pin,
		kick:    make(chan struct{}, 1),
		outQ:    make(chan Event, outBuf),
		stopped: make(chan struct{}),
	}
}

// Start arms the edge handler and runs the worker until ctx is done. A drain
// is queued immediately so events latched before Start are not missed.
//
// A Worker starts once; later calls return ErrStarted. If the edge handler
// cannot be installed the worker never runs and Done is closed.
func (w *Worker) Start(ctx context.Context) error {
	if !atomic.CompareAndSwapUint32(&w.started, 0, 1) {
		return ErrStarted
	}
	if w.pin != nil {
		if err := w.pin.SetIRQ(w.Kick); err != nil {
			close(w.stopped)
			return err
		}
	}
	w.Kick()
	go func() {
		defer close(w.stopped)
		if w.pin != nil {
			defer func() { _ = w.pin.ClearIRQ() }()
		}
		for {
			select {
			case <-ctx.Done():
				return
			case <-w.kick:
				w.service()
			}
		}
	}()
	return nil
}

// Kick queues a drain without blocking. Safe from an edge handler.
func (w *Worker) Kick() {
	select {
	case w.kick <- struct{}{}:
	default:
	}
}

func (w *Worker) Events() <-chan Event { return w.outQ }

// Done is closed once the worker goroutine has exited.
func (w *Worker) Done() <-chan struct{} { return w.stopped }

func (w *Worker) Drops() uint32 { return atomic.LoadUint32(&w.drops) }

func (w *Worker) service() {
	for pass := 0; pass < maxPasses; pass++ {
		ev, err := w.src.DrainInterrupts()
		if err != nil || !ev.Empty() {
			w.emit(Event{InterruptEvent: ev, TS: time.Now(), Err: err})
		}
		if err != nil || w.pin == nil || w.pin.Get() {
			return
		}
	}
}

func (w *Worker) emit(ev Event) {
	select {
	case w.outQ <- ev:
	default:
		atomic.AddUint32(&w.drops, 1)
	}
}
