package tui

import (
	"context"
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/h0rv/qrkit/internal/camera"
	"github.com/h0rv/qrkit/internal/domain"
	"github.com/h0rv/qrkit/internal/permission"
	"github.com/h0rv/qrkit/internal/qr"
)

// Deps are the collaborators shared by the screens.
type Deps struct {
	Camera         camera.Camera
	Permissions    permission.Store
	Params         qr.Params
	CaptureQuality float64
	Source         string // Human-readable camera source
}

// AppModel is the root Bubble Tea model and the navigation host. It owns
// the screen stack; camera and generator state live only while their
// screen is on the stack.
type AppModel struct {
	// Dependencies
	deps Deps
	ctx  context.Context

	nav Navigator

	// Screens. camera and generator are nil when not on the stack.
	home      HomeModel
	camera    *CameraModel
	generator *GeneratorModel

	err error
}

// NewAppModel creates the app. A non-Home start screen is pushed on top of Home.
func NewAppModel(deps Deps, ctx context.Context, start domain.Screen) AppModel {
	m := AppModel{
		deps: deps,
		ctx:  ctx,
		nav:  NewNavigator(),
		home: NewHomeModel(),
	}

	if start != "" && start != domain.ScreenHome {
		if err := m.nav.Navigate(start); err != nil {
			m.err = err
			return m
		}
		m.mount(start)
	}
	return m
}

// Init initializes the current screen.
func (m AppModel) Init() tea.Cmd {
	return m.current().Init()
}

// Screen returns the screen on top of the stack.
func (m AppModel) Screen() domain.Screen {
	return m.nav.Current()
}

// Update handles navigation and delegates everything else to the current screen.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Global quit handler
		if msg.String() == "ctrl+c" {
			m.unmountAll()
			return m, tea.Quit
		}

	case QuitMsg:
		m.unmountAll()
		return m, tea.Quit

	case NavigateMsg:
		if msg.Screen == m.nav.Current() {
			return m, nil
		}
		if msg.Screen == domain.ScreenHome {
			m.unmountAll()
		}
		if err := m.nav.Navigate(msg.Screen); err != nil {
			m.err = err
			return m, nil
		}
		m.mount(msg.Screen)
		return m, m.current().Init()

	case BackMsg:
		popped := m.nav.Current()
		if !m.nav.GoBack() {
			return m, nil
		}
		m.unmount(popped)
		// Request window size to ensure proper rendering
		return m, tea.WindowSize()
	}

	return m.delegate(msg)
}

// delegate forwards msg to the current screen and stores the result.
func (m AppModel) delegate(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.nav.Current() {
	case domain.ScreenCamera:
		var updated tea.Model
		updated, cmd = m.camera.Update(msg)
		cm := updated.(CameraModel)
		m.camera = &cm
	case domain.ScreenQRGenerator:
		var updated tea.Model
		updated, cmd = m.generator.Update(msg)
		gm := updated.(GeneratorModel)
		m.generator = &gm
	default:
		var updated tea.Model
		updated, cmd = m.home.Update(msg)
		m.home = updated.(HomeModel)
	}
	return m, cmd
}

// View renders the current screen.
func (m AppModel) View() string {
	if m.err != nil {
		return ErrorStyle.Render(fmt.Sprintf("Error: %v\n\nPress Ctrl+C to quit", m.err))
	}
	return m.current().View()
}

func (m AppModel) current() tea.Model {
	switch m.nav.Current() {
	case domain.ScreenCamera:
		return *m.camera
	case domain.ScreenQRGenerator:
		return *m.generator
	default:
		return m.home
	}
}

// mount creates fresh state for screen.
func (m *AppModel) mount(screen domain.Screen) {
	switch screen {
	case domain.ScreenCamera:
		cm := NewCameraModel(m.deps.Camera, m.deps.Permissions, m.ctx, m.deps.CaptureQuality, m.deps.Source)
		m.camera = &cm
	case domain.ScreenQRGenerator:
		gm := NewGeneratorModel(m.deps.Params)
		m.generator = &gm
	}
}

// unmount destroys the state of screen and releases what it holds.
func (m *AppModel) unmount(screen domain.Screen) {
	switch screen {
	case domain.ScreenCamera:
		if m.camera != nil {
			m.camera.Stop()
			log.Printf("camera screen closed")
		}
		m.camera = nil
	case domain.ScreenQRGenerator:
		m.generator = nil
	}
}

func (m *AppModel) unmountAll() {
	m.unmount(domain.ScreenCamera)
	m.unmount(domain.ScreenQRGenerator)
}
