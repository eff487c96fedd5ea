package display

import (
	"fmt"

	"github.com/fatkhur1960/ocypus-digital/internal/domain"
	"github.com/fatkhur1960/ocypus-digital/internal/ports"
)

// State is the connection lifecycle of a session.
type State int

const (
	Disconnected State = iota
	Connecting
	Connected
	Faulted
)

func (s State) String() string {
	switch s {
	case Connecting:
		return "connecting"
	case Connected:
		return "connected"
	case Faulted:
		return "faulted"
	default:
		return "disconnected"
	}
}

// Session owns the HID handle. It recovers from I/O failure by dropping the
// handle immediately so the next tick reopens from scratch instead of reusing
// a broken one. The monitor is the only caller; no internal locking.
type Session struct {
	opener Opener
	obs    ports.Observability
	dev    Device
	state  State
}

func NewSession(obs ports.Observability) *Session {
	return &Session{opener: HIDOpener{}, obs: obs}
}

// NewSessionWithOpener is for tests and embedders that bring their own device
// transport.
func NewSessionWithOpener(opener Opener, obs ports.Observability) *Session {
	return &Session{opener: opener, obs: obs}
}

// EnsureConnected opens the device if no healthy handle is held. A failed
// open leaves the session Disconnected and returns a recoverable error; retry
// pacing is the caller's business.
func (s *Session) EnsureConnected() error {
	if s.state == Connected && s.dev != nil {
		return nil
	}

	s.state = Connecting
	dev, err := s.opener.Open(VendorID, ProductID)
	if err != nil {
		s.state = Disconnected
		return err
	}

	s.dev = dev
	s.state = Connected
	s.obs.IncCounter("ocypus_device_connects_total", 1)
	s.obs.LogInfo("device_connected",
		ports.Field{Key: "vid", Value: fmt.Sprintf("%04x", VendorID)},
		ports.Field{Key: "pid", Value: fmt.Sprintf("%04x", ProductID)})
	return nil
}

// Send delivers one report, reconnecting first if needed. A write failure
// faults the session and tears the handle down before returning.
func (s *Session) Send(r domain.Report) error {
	if err := s.EnsureConnected(); err != nil {
		return err
	}

	if _, err := s.dev.Write(r[:]); err != nil {
		s.fault(err)
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}
	return nil
}

func (s *Session) fault(cause error) {
	s.state = Faulted
	s.obs.IncCounter("ocypus_device_faults_total", 1)
	s.obs.LogError("device_fault", cause)
	if s.dev != nil {
		_ = s.dev.Close()
		s.dev = nil
	}
	s.state = Disconnected
}

// State reports the current lifecycle state.
func (s *Session) State() State { return s.state }

// Close releases the handle on shutdown.
func (s *Session) Close() error {
	if s.dev == nil {
		s.state = Disconnected
		return nil
	}
	err := s.dev.Close()
	s.dev = nil
	s.state = Disconnected
	return err
}

var _ ports.Display = (*Session)(nil)
