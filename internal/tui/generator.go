package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/h0rv/qrkit/internal/qr"
	"github.com/h0rv/qrkit/internal/store"
)

const generatorInputWidth = 48

// GeneratorModel is the QR generator screen. The code is re-rendered on
// every text change; the generate action only validates.
type GeneratorModel struct {
	state  *store.GeneratorState
	params qr.Params

	// UI components
	input  textarea.Model
	keymap GeneratorKeyMap
	help   HelpModel

	// Rendered code for the current text, empty when nothing is shown
	image     string
	renderErr string
	confirmed bool
	showHelp  bool

	width  int
	height int
}

// NewGeneratorModel creates a generator screen with empty input.
func NewGeneratorModel(params qr.Params) GeneratorModel {
	ta := textarea.New()
	ta.Placeholder = "Enter text to generate QR code"
	ta.CharLimit = 2048
	ta.SetHeight(3)
	ta.SetWidth(generatorInputWidth)
	ta.ShowLineNumbers = false
	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()
	ta.Focus()

	keymap := DefaultGeneratorKeyMap()
	return GeneratorModel{
		state:  store.NewGeneratorState(),
		params: params,
		input:  ta,
		keymap: keymap,
		help:   NewHelpModel(keymap),
	}
}

// Init initializes the model.
func (m GeneratorModel) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, tea.WindowSize())
}

// State exposes the screen state for the host and tests.
func (m GeneratorModel) State() *store.GeneratorState {
	return m.state
}

// Rendered reports whether a QR code is currently displayed.
func (m GeneratorModel) Rendered() bool {
	return m.image != ""
}

// Update handles messages.
func (m GeneratorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.SetWidth(min(generatorInputWidth, max(msg.Width-6, 20)))
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m GeneratorModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Validation notice is modal
	if _, ok := m.state.Notice(); ok {
		if key.Matches(msg, m.keymap.Dismiss) {
			m.state.DismissNotice()
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keymap.Back):
		return m, func() tea.Msg { return BackMsg{} }
	case key.Matches(msg, m.keymap.Help):
		m.showHelp = !m.showHelp
		return m, nil
	case key.Matches(msg, m.keymap.Generate):
		m.confirmed = m.state.Generate() == nil
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.setText(m.input.Value())
	return m, cmd
}

// setText stores value and re-renders the code when the text changed.
func (m *GeneratorModel) setText(value string) {
	if value == m.state.Text() {
		return
	}
	m.state.SetText(value)
	m.confirmed = false
	m.refresh()
}

func (m *GeneratorModel) refresh() {
	m.image = ""
	m.renderErr = ""
	if !m.state.ShouldRender() {
		return
	}

	img, err := qr.Encode(m.state.Text(), m.params)
	if err != nil {
		m.renderErr = fmt.Sprintf("Cannot render QR code: %v", err)
		return
	}
	m.image = img.Terminal()
}

// View renders the model.
func (m GeneratorModel) View() string {
	parts := []string{
		TitleStyle.Render("QR Code Generator"),
		m.input.View(),
	}

	switch {
	case m.image != "":
		parts = append(parts, QRContainerStyle.Render(m.image))
	case m.renderErr != "":
		parts = append(parts, ErrorStyle.Render(m.renderErr))
	}

	button := NormalItemStyle.Render("Generate QR Code (ctrl+s)")
	if m.state.ShouldRender() {
		button = SelectedItemStyle.Render("Generate QR Code (ctrl+s)")
	}
	parts = append(parts, "", button)
	if m.confirmed {
		parts = append(parts, SuccessStyle.Render("QR code ready"))
	}
	parts = append(parts, DimStyle.Render("← Back (esc)"))

	if m.showHelp {
		parts = append(parts, m.help.View(m.width))
	} else {
		parts = append(parts, HelpStyle.Render(m.help.Short(m.width)))
	}

	content := lipgloss.JoinVertical(lipgloss.Center, parts...)
	if n, ok := m.state.Notice(); ok {
		content = renderNotification(n, m.width)
	}

	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}
