package tui

import "github.com/charmbracelet/bubbles/key"

// HomeKeyMap defines the key bindings for the home menu.
type HomeKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Select    key.Binding
	Camera    key.Binding
	Generator key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// DefaultHomeKeyMap returns the default home bindings.
func DefaultHomeKeyMap() HomeKeyMap {
	return HomeKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Camera: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "open camera"),
		),
		Generator: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "generate QR code"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns key bindings to be shown in the mini help view.
func (k HomeKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Select, k.Help, k.Quit}
}

// FullHelp returns key bindings for the expanded help view.
func (k HomeKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select},
		{k.Camera, k.Generator, k.Help, k.Quit},
	}
}

// CameraKeyMap defines the key bindings for the camera screen.
type CameraKeyMap struct {
	Capture   key.Binding
	Retry     key.Binding
	Back      key.Binding
	ScanAgain key.Binding
	OK        key.Binding
	Open      key.Binding
	Help      key.Binding
}

// DefaultCameraKeyMap returns the default camera bindings.
func DefaultCameraKeyMap() CameraKeyMap {
	return CameraKeyMap{
		Capture: key.NewBinding(
			key.WithKeys("c", " "),
			key.WithHelp("c/space", "capture picture"),
		),
		Retry: key.NewBinding(
			key.WithKeys("r", "enter"),
			key.WithHelp("r", "grant permission"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "backspace"),
			key.WithHelp("esc", "back"),
		),
		ScanAgain: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "scan again"),
		),
		OK: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "ok"),
		),
		Open: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "open in browser"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
	}
}

// ShortHelp returns key bindings to be shown in the mini help view.
func (k CameraKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Capture, k.Back, k.Help}
}

// FullHelp returns key bindings for the expanded help view.
func (k CameraKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Capture, k.Retry, k.Back},
		{k.ScanAgain, k.OK, k.Open, k.Help},
	}
}

// GeneratorKeyMap defines the key bindings for the generator screen.
// Printable keys go to the text input, so only control keys are bound.
type GeneratorKeyMap struct {
	Generate key.Binding
	Dismiss  key.Binding
	Back     key.Binding
	Help     key.Binding
}

// DefaultGeneratorKeyMap returns the default generator bindings.
func DefaultGeneratorKeyMap() GeneratorKeyMap {
	return GeneratorKeyMap{
		Generate: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "generate QR code"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("enter", "esc"),
			key.WithHelp("enter", "dismiss"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "toggle help"),
		),
	}
}

// ShortHelp returns key bindings to be shown in the mini help view.
func (k GeneratorKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Generate, k.Back, k.Help}
}

// FullHelp returns key bindings for the expanded help view.
func (k GeneratorKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Generate, k.Back},
		{k.Dismiss, k.Help},
	}
}
