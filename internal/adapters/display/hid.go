package display

import (
	"errors"
	"fmt"
	"sync"

	"github.com/sstallion/go-hid"
)

// Iota L24 USB identifiers. Frozen protocol constants.
const (
	VendorID  uint16 = 0x1a2c
	ProductID uint16 = 0x434d
)

var (
	ErrNotFound    = errors.New("display device not found")
	ErrOpenFailed  = errors.New("display device open failed")
	ErrWriteFailed = errors.New("display device write failed")
)

// Device is the minimal surface of an open HID handle.
type Device interface {
	Write(p []byte) (int, error)
	Close() error
}

// Opener locates and opens the device. Tests and embedders swap it out.
type Opener interface {
	Open(vid, pid uint16) (Device, error)
}

var (
	hidInit    sync.Once
	hidInitErr error
)

// HIDOpener enumerates hidraw nodes via hidapi and opens the first match by
// path.
type HIDOpener struct{}

func (HIDOpener) Open(vid, pid uint16) (Device, error) {
	hidInit.Do(func() { hidInitErr = hid.Init() })
	if hidInitErr != nil {
		return nil, fmt.Errorf("%w: hid init: %v", ErrOpenFailed, hidInitErr)
	}

	var path string
	if err := hid.Enumerate(vid, pid, func(info *hid.DeviceInfo) error {
		if path == "" {
			path = info.Path
		}
		return nil
	}); err != nil {
		return nil, fmt.Errorf("%w: vid=%04x pid=%04x: %v", ErrNotFound, vid, pid, err)
	}
	if path == "" {
		return nil, fmt.Errorf("%w: vid=%04x pid=%04x", ErrNotFound, vid, pid)
	}

	dev, err := hid.OpenPath(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrOpenFailed, path, err)
	}
	return dev, nil
}
