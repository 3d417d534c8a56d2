// Package store provides the in-memory, screen-local state of the camera and
// generator screens. The TUI models own one store per mounted screen and
// render from it; all transitions live here so they can be tested without a
// terminal.
package store

import "errors"

var (
	// ErrEmptyInput indicates the generator text is empty or whitespace-only.
	ErrEmptyInput = errors.New("please enter some text to generate QR code")
	// ErrNoNotification indicates there is no pending notification to acknowledge.
	ErrNoNotification = errors.New("no pending notification")
	// ErrUnknownAction indicates a key that is not one of the pending notification's actions.
	ErrUnknownAction = errors.New("unknown notification action")
)

// Acknowledgement keys shared by every notification.
const (
	KeyScanAgain = "s"
	KeyOK        = "enter"
)

// View is the mutually exclusive rendering mode of the camera screen.
type View int

const (
	ViewLoading View = iota
	ViewDenied
	ViewLive
)
