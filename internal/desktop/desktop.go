// Package desktop is the window side of the single-instance handshake:
// enumerating top-level windows, reading and writing the identity tag on
// them, and bringing one to the foreground.
package desktop

import (
	"errors"

	"github.com/sirupsen/logrus"
)

var (
	log = logrus.WithField("module", "desktop")

	NoSuchWindowError = errors.New("no such window")
)

// Window is an opaque top-level window handle. Zero is never a window.
type Window uintptr

type Desktop interface {
	// Windows lists the top-level windows in enumeration order.
	Windows() ([]Window, error)

	HasTag(w Window, key string) bool
	SetTag(w Window, key string) error
	RemoveTag(w Window, key string) error

	IsMinimized(w Window) bool
	Restore(w Window) error
	SetForeground(w Window) error

	// LastActivePopup returns the owned popup that was active most
	// recently, or w itself when there is none.
	LastActivePopup(w Window) Window
}
