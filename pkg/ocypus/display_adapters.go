package ocypus

import (
	"errors"
	"fmt"
	"sync"

	"github.com/fatkhur1960/ocypus-digital/internal/domain"
	"github.com/fatkhur1960/ocypus-digital/internal/ports"
)

// ErrChannelDisplayClosed is returned when a channel display receives a
// report after being closed.
var ErrChannelDisplayClosed = errors.New("ocypus: channel display closed")

// ReportFunc consumes encoded reports in place of real hardware.
type ReportFunc func(domain.Report) error

// NewCallbackDisplay adapts a function into a ports.Display so callers can
// route reports anywhere without defining structs.
func NewCallbackDisplay(name string, fn ReportFunc) ports.Display {
	if name == "" {
		name = "callback"
	}
	return &callbackDisplay{name: name, fn: fn}
}

// NewChannelDisplay exposes reports via a channel; it returns the display,
// the read-only channel, and a close function the caller should invoke during
// shutdown.
func NewChannelDisplay(name string, buffer int) (ports.Display, <-chan domain.Report, func()) {
	if name == "" {
		name = "channel"
	}
	if buffer < 0 {
		buffer = 0
	}
	ch := make(chan domain.Report, buffer)
	d := &channelDisplay{
		name:   name,
		ch:     ch,
		closed: make(chan struct{}),
	}
	return d, ch, func() { d.close() }
}

type callbackDisplay struct {
	name string
	fn   ReportFunc
}

func (d *callbackDisplay) Send(r domain.Report) error {
	if d.fn == nil {
		return fmt.Errorf("callback display %q: nil handler", d.name)
	}
	return d.fn(r)
}

func (d *callbackDisplay) Close() error { return nil }

type channelDisplay struct {
	name   string
	ch     chan domain.Report
	closed chan struct{}
	once   sync.Once
}

func (d *channelDisplay) Send(r domain.Report) error {
	select {
	case <-d.closed:
		return ErrChannelDisplayClosed
	default:
	}

	select {
	case <-d.closed:
		return ErrChannelDisplayClosed
	case d.ch <- r:
		return nil
	}
}

func (d *channelDisplay) Close() error {
	d.close()
	return nil
}

func (d *channelDisplay) close() {
	d.once.Do(func() {
		close(d.closed)
		close(d.ch)
	})
}
