package ocypus

import (
	"errors"
	"testing"
	"time"

	"github.com/fatkhur1960/ocypus-digital/internal/domain"
)

func TestCallbackDisplay(t *testing.T) {
	var got []int
	d := NewCallbackDisplay("test", func(r domain.Report) error {
		got = append(got, r.Digits())
		return nil
	})

	if err := d.Send(domain.EncodeReport(42)); err != nil {
		t.Fatalf("send: %v", err)
	}
	if err := d.Send(domain.EncodeReport(86)); err != nil {
		t.Fatalf("send: %v", err)
	}
	if len(got) != 2 || got[0] != 42 || got[1] != 86 {
		t.Fatalf("unexpected reports: %v", got)
	}
	if err := d.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}

func TestCallbackDisplayNilHandler(t *testing.T) {
	d := NewCallbackDisplay("", nil)
	if err := d.Send(domain.EncodeReport(1)); err == nil {
		t.Fatalf("expected error for nil handler")
	}
}

func TestCallbackDisplayPropagatesError(t *testing.T) {
	want := errors.New("downstream broken")
	d := NewCallbackDisplay("test", func(domain.Report) error { return want })
	if err := d.Send(domain.EncodeReport(1)); !errors.Is(err, want) {
		t.Fatalf("expected %v, got %v", want, err)
	}
}

func TestChannelDisplay(t *testing.T) {
	d, ch, closeFn := NewChannelDisplay("test", 4)
	defer closeFn()

	if err := d.Send(domain.EncodeReport(55)); err != nil {
		t.Fatalf("send: %v", err)
	}

	select {
	case r := <-ch:
		if r.Digits() != 55 {
			t.Fatalf("expected 55, got %d", r.Digits())
		}
	case <-time.After(time.Second):
		t.Fatalf("no report received")
	}
}

func TestChannelDisplayClosed(t *testing.T) {
	d, ch, closeFn := NewChannelDisplay("test", 1)
	closeFn()
	closeFn() // idempotent

	if err := d.Send(domain.EncodeReport(1)); !errors.Is(err, ErrChannelDisplayClosed) {
		t.Fatalf("expected ErrChannelDisplayClosed, got %v", err)
	}
	if _, ok := <-ch; ok {
		t.Fatalf("expected drained channel after close")
	}
	if err := d.Close(); err != nil {
		t.Fatalf("close after closeFn: %v", err)
	}
}
