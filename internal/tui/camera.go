package tui

import (
	"context"
	"fmt"
	"log"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/h0rv/qrkit/internal/camera"
	"github.com/h0rv/qrkit/internal/domain"
	"github.com/h0rv/qrkit/internal/permission"
	"github.com/h0rv/qrkit/internal/store"
	"github.com/pkg/browser"
)

// openURL is swapped out in tests.
var openURL = browser.OpenURL

// CameraModel is the scanner screen. It resolves the camera permission on
// mount, then consumes scan events until it is stopped.
type CameraModel struct {
	// Dependencies
	camera  camera.Camera
	perms   permission.Store
	ctx     context.Context
	quality float64
	source  string // Shown in the live view

	state *store.CameraState

	// UI components
	keymap  CameraKeyMap
	help    HelpModel
	spinner spinner.Model

	// Live stream, nil until the camera is started
	events <-chan domain.ScanEvent

	requesting bool // Permission query in flight
	capturing  bool
	cameraErr  string
	openErr    string
	showHelp   bool

	width  int
	height int
}

// NewCameraModel creates a camera screen with fresh state.
func NewCameraModel(cam camera.Camera, perms permission.Store, ctx context.Context, quality float64, source string) CameraModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#007AFF"))

	keymap := DefaultCameraKeyMap()
	return CameraModel{
		camera:     cam,
		perms:      perms,
		ctx:        ctx,
		quality:    quality,
		source:     source,
		state:      store.NewCameraState(),
		keymap:     keymap,
		help:       NewHelpModel(keymap),
		spinner:    sp,
		requesting: true,
	}
}

// Init starts the permission query.
func (m CameraModel) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		tea.WindowSize(),
		m.requestPermission(),
	)
}

// State exposes the screen state for the host and tests.
func (m CameraModel) State() *store.CameraState {
	return m.state
}

// Stop releases the camera. The host calls it when the screen is popped.
func (m CameraModel) Stop() {
	if m.events == nil || m.camera == nil {
		return
	}
	if err := m.camera.Close(); err != nil {
		log.Printf("closing camera: %v", err)
	}
}

// Update handles messages.
func (m CameraModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case permissionResolvedMsg:
		if msg.mount != m.state {
			return m, nil
		}
		m.requesting = false
		m.state.SetPermission(msg.granted)
		if !msg.granted || m.events != nil {
			return m, nil
		}
		events, err := m.camera.Start(m.ctx)
		if err != nil {
			log.Printf("starting camera: %v", err)
			m.cameraErr = err.Error()
			return m, nil
		}
		m.cameraErr = ""
		m.events = events
		return m, waitForScan(events)

	case scanEventMsg:
		// Events from a stream this screen no longer owns are dropped
		if msg.events != m.events {
			return m, nil
		}
		m.state.OnScanEvent(msg.event.Payload)
		return m, waitForScan(m.events)

	case scanStreamClosedMsg:
		if msg.events == m.events && m.events != nil {
			m.cameraErr = "camera stream ended"
		}
		return m, nil

	case captureDoneMsg:
		if msg.mount != m.state {
			return m, nil
		}
		m.capturing = false
		log.Printf("captured picture %s (%dx%d, %d bytes)", msg.picture.ID, msg.picture.Width, msg.picture.Height, len(msg.picture.Data))
		m.state.CaptureSucceeded(msg.picture.ID)
		return m, nil

	case captureFailedMsg:
		if msg.mount != m.state {
			return m, nil
		}
		m.capturing = false
		log.Printf("capture failed: %v", msg.err)
		m.state.CaptureFailed()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}

	return m, nil
}

// handleKeyPress processes keyboard input. A pending notification blocks
// every other action until it is acknowledged.
func (m CameraModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if n, ok := m.state.Pending(); ok {
		if n.Kind == domain.NotificationScan && key.Matches(msg, m.keymap.Open) && isOpenableURL(n.Payload) {
			if err := openURL(n.Payload); err != nil {
				log.Printf("opening %s: %v", n.Payload, err)
				m.openErr = fmt.Sprintf("Could not open browser: %v", err)
			}
			_, _ = m.state.Dismiss()
			return m, nil
		}
		for _, a := range n.Actions {
			b, ok := m.actionBinding(a.Key)
			if !ok || !key.Matches(msg, b) {
				continue
			}
			if _, err := m.state.Acknowledge(a.Key); err == nil {
				m.openErr = ""
			}
			break
		}
		return m, nil
	}

	if key.Matches(msg, m.keymap.Help) {
		m.showHelp = !m.showHelp
		return m, nil
	}

	if key.Matches(msg, m.keymap.Back) {
		return m, func() tea.Msg { return BackMsg{} }
	}

	switch m.state.View() {
	case store.ViewDenied:
		if key.Matches(msg, m.keymap.Retry) && !m.requesting {
			m.requesting = true
			return m, tea.Batch(m.spinner.Tick, m.requestPermission())
		}

	case store.ViewLive:
		if key.Matches(msg, m.keymap.Capture) && !m.capturing {
			m.capturing = true
			return m, tea.Batch(m.spinner.Tick, m.capture())
		}
	}

	return m, nil
}

// View renders one of the three permission views, with any pending
// notification on top.
func (m CameraModel) View() string {
	var content string
	switch m.state.View() {
	case store.ViewLoading:
		content = m.spinner.View() + " Requesting camera permission..."
	case store.ViewDenied:
		content = m.renderDenied()
	default:
		content = m.renderLive()
	}

	if n, ok := m.state.Pending(); ok {
		shown := n
		shown.Actions = make([]domain.Action, 0, len(n.Actions)+1)
		for _, a := range n.Actions {
			if b, ok := m.actionBinding(a.Key); ok {
				a.Key = b.Help().Key
			}
			shown.Actions = append(shown.Actions, a)
		}
		if n.Kind == domain.NotificationScan && isOpenableURL(n.Payload) {
			shown.Actions = append(shown.Actions, domain.Action{Key: m.keymap.Open.Help().Key, Label: "Open in browser"})
		}
		content = renderNotification(shown, m.width)
	}

	if m.showHelp {
		content = lipgloss.JoinVertical(lipgloss.Center, content, m.help.View(m.width))
	}

	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m CameraModel) renderDenied() string {
	action := SelectedItemStyle.Render("Grant Permission")
	if m.requesting {
		action = m.spinner.View() + " Requesting..."
	}
	return lipgloss.JoinVertical(lipgloss.Center,
		"No access to camera",
		"",
		action,
		HelpStyle.Render("r grant permission • esc back"),
	)
}

func (m CameraModel) renderLive() string {
	header := DimStyle.Render("← Back (esc)")

	frameWidth := 40
	if m.width > 0 && m.width-10 < frameWidth {
		frameWidth = max(m.width-10, 20)
	}
	inner := "Point a QR code at the camera"
	if m.cameraErr != "" {
		inner = ErrorStyle.Render("Camera error: " + m.cameraErr)
	}
	frame := ScanFrameStyle.Width(frameWidth).Render(inner)

	capture := CaptureButtonStyle.Render("● capture (c)")
	if m.capturing {
		capture = CaptureButtonStyle.Render(m.spinner.View() + " capturing")
	}

	status := DimStyle.Render(fmt.Sprintf("source %s • %d scanned • %d captured", m.source, m.state.Scans(), m.state.Captures()))

	parts := []string{header, "", frame, "", capture, status}
	if m.openErr != "" {
		parts = append(parts, ErrorStyle.Render(m.openErr))
	}
	if !m.showHelp {
		parts = append(parts, HelpStyle.Render(m.help.Short(m.width)))
	}
	return lipgloss.JoinVertical(lipgloss.Center, parts...)
}

// actionBinding returns the key binding that triggers a notification action.
func (m CameraModel) actionBinding(action string) (key.Binding, bool) {
	switch action {
	case store.KeyScanAgain:
		return m.keymap.ScanAgain, true
	case store.KeyOK:
		return m.keymap.OK, true
	}
	return key.Binding{}, false
}

// requestPermission creates a command that runs the permission flow.
func (m CameraModel) requestPermission() tea.Cmd {
	perms, ctx, mount := m.perms, m.ctx, m.state
	return func() tea.Msg {
		return permissionResolvedMsg{mount: mount, granted: permission.Resolve(ctx, perms)}
	}
}

// capture creates a command for a one-shot still capture.
func (m CameraModel) capture() tea.Cmd {
	cam, ctx, quality, mount := m.camera, m.ctx, m.quality, m.state
	return func() tea.Msg {
		pic, err := cam.Capture(ctx, quality)
		if err != nil {
			return captureFailedMsg{mount: mount, err: err}
		}
		return captureDoneMsg{mount: mount, picture: pic}
	}
}

// waitForScan blocks on the next scan event of events.
func waitForScan(events <-chan domain.ScanEvent) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return scanStreamClosedMsg{events: events}
		}
		return scanEventMsg{events: events, event: ev}
	}
}
