// Package tui provides Bubble Tea models for the interactive TUI.
package tui

import (
	"github.com/h0rv/qrkit/internal/domain"
	"github.com/h0rv/qrkit/internal/store"
)

// NavigateMsg is emitted when a screen asks the host to open another screen.
type NavigateMsg struct {
	Screen domain.Screen
}

// BackMsg is emitted when a screen asks the host to return to the previous screen.
type BackMsg struct{}

// QuitMsg is emitted when the user requests to quit.
type QuitMsg struct{}

// Camera screen messages. Results of commands started by a camera screen
// carry the state of the mount that started them.
type (
	permissionResolvedMsg struct {
		mount   *store.CameraState
		granted bool
	}

	scanEventMsg struct {
		events <-chan domain.ScanEvent // Stream the event came from
		event  domain.ScanEvent
	}

	scanStreamClosedMsg struct {
		events <-chan domain.ScanEvent
	}

	captureDoneMsg struct {
		mount   *store.CameraState
		picture domain.Picture
	}

	captureFailedMsg struct {
		mount *store.CameraState
		err   error
	}
)
