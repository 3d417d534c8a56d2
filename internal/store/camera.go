package store

import (
	"fmt"

	"github.com/h0rv/qrkit/internal/domain"
)

// CameraState holds the permission and scan state of a mounted camera screen.
//
// The recorded payload is the only duplicate-suppression mechanism: a scan
// event is ignored while it equals the recorded payload, and any
// acknowledgement of a scan notification clears the payload so the same code
// can be detected again. Detection is never paused while a notification is
// pending.
type CameraState struct {
	permission domain.Permission
	payload    string

	// Pending notifications, oldest first. Only the head is shown.
	pending []domain.Notification

	// Counters for the status bar
	scans    int
	captures int
}

// NewCameraState creates the state of a freshly mounted camera screen.
func NewCameraState() *CameraState {
	return &CameraState{permission: domain.PermissionUnknown}
}

// Permission returns the current permission state.
func (s *CameraState) Permission() domain.Permission {
	return s.permission
}

// SetPermission records the outcome of a permission query.
func (s *CameraState) SetPermission(granted bool) {
	if granted {
		s.permission = domain.PermissionGranted
		return
	}
	s.permission = domain.PermissionDenied
}

// View returns which of the three exclusive views should be rendered.
func (s *CameraState) View() View {
	switch s.permission {
	case domain.PermissionGranted:
		return ViewLive
	case domain.PermissionDenied:
		return ViewDenied
	default:
		return ViewLoading
	}
}

// Payload returns the last recorded payload, empty when idle.
func (s *CameraState) Payload() string {
	return s.payload
}

// PayloadShown reports whether the Granted sub-state is PayloadShown.
func (s *CameraState) PayloadShown() bool {
	return s.payload != ""
}

// Scans returns how many distinct scan notifications were raised.
func (s *CameraState) Scans() int {
	return s.scans
}

// Captures returns how many still captures succeeded.
func (s *CameraState) Captures() int {
	return s.captures
}

// OnScanEvent handles a payload reported by the camera. It returns true when
// a notification was raised.
func (s *CameraState) OnScanEvent(payload string) bool {
	if payload == "" || payload == s.payload {
		return false
	}

	s.payload = payload
	s.scans++
	s.pending = append(s.pending, domain.Notification{
		Kind:    domain.NotificationScan,
		Title:   "QR Code Detected!",
		Body:    "Data: " + payload,
		Payload: payload,
		Actions: []domain.Action{
			{Key: KeyScanAgain, Label: "Scan Again"},
			{Key: KeyOK, Label: "OK"},
		},
	})
	return true
}

// CaptureSucceeded raises the success notice for a still capture.
func (s *CameraState) CaptureSucceeded(pictureID string) {
	s.captures++
	s.pending = append(s.pending, domain.Notification{
		Kind:    domain.NotificationCaptureSuccess,
		Title:   "Success",
		Body:    fmt.Sprintf("Picture captured successfully! (%s)", pictureID),
		Actions: []domain.Action{{Key: KeyOK, Label: "OK"}},
	})
}

// CaptureFailed raises the error notice for a still capture.
func (s *CameraState) CaptureFailed() {
	s.pending = append(s.pending, domain.Notification{
		Kind:    domain.NotificationCaptureError,
		Title:   "Error",
		Body:    "Failed to capture picture",
		Actions: []domain.Action{{Key: KeyOK, Label: "OK"}},
	})
}

// Pending returns the notification currently shown, if any.
func (s *CameraState) Pending() (domain.Notification, bool) {
	if len(s.pending) == 0 {
		return domain.Notification{}, false
	}
	return s.pending[0], true
}

// PendingCount returns the number of queued notifications.
func (s *CameraState) PendingCount() int {
	return len(s.pending)
}

// Acknowledge applies the action bound to key on the shown notification and
// dismisses it. Every action of a scan notification resets the payload.
func (s *CameraState) Acknowledge(key string) (domain.Notification, error) {
	n, ok := s.Pending()
	if !ok {
		return domain.Notification{}, ErrNoNotification
	}

	found := false
	for _, a := range n.Actions {
		if a.Key == key {
			found = true
			break
		}
	}
	if !found {
		return n, fmt.Errorf("%w: %q", ErrUnknownAction, key)
	}

	s.dismiss(n)
	return n, nil
}

// Dismiss dismisses the shown notification without checking the key. Used by
// supplementary actions such as opening a scanned URL.
func (s *CameraState) Dismiss() (domain.Notification, error) {
	n, ok := s.Pending()
	if !ok {
		return domain.Notification{}, ErrNoNotification
	}
	s.dismiss(n)
	return n, nil
}

func (s *CameraState) dismiss(n domain.Notification) {
	s.pending = s.pending[1:]
	if n.Kind == domain.NotificationScan {
		s.payload = ""
	}
}
