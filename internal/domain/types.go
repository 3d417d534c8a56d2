// Package domain defines the screen-independent types shared by the stores,
// the collaborators and the TUI.
package domain

// Screen names a navigation destination.
type Screen string

// Screen names understood by the navigation host. Home is the implicit default.
const (
	ScreenHome        Screen = "Home"
	ScreenCamera      Screen = "Camera"
	ScreenQRGenerator Screen = "QRGenerator"
)

// Permission is the camera screen's view of the camera permission.
type Permission int

const (
	PermissionUnknown Permission = iota // query still pending
	PermissionGranted
	PermissionDenied
)

func (p Permission) String() string {
	switch p {
	case PermissionGranted:
		return "granted"
	case PermissionDenied:
		return "denied"
	default:
		return "unknown"
	}
}

// NotificationKind identifies what raised a notification.
type NotificationKind int

const (
	NotificationScan NotificationKind = iota
	NotificationCaptureSuccess
	NotificationCaptureError
	NotificationValidation
)

// Action is an acknowledgement choice offered by a notification.
type Action struct {
	Key   string // Key that triggers the action (e.g. "enter")
	Label string // Button text (e.g. "OK")
}

// Notification is a blocking, user-facing message. While one is pending the
// owning screen renders it as a modal and routes keys to its actions.
type Notification struct {
	Kind    NotificationKind
	Title   string
	Body    string
	Payload string // Decoded payload, only for NotificationScan
	Actions []Action
}

// ScanEvent is a decoded payload reported by the camera.
type ScanEvent struct {
	Payload string
	Frame   string // Frame the payload was decoded from
}

// Picture is the result of a still capture.
type Picture struct {
	ID      string
	Data    []byte
	Width   int
	Height  int
	Quality float64
}
