package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/h0rv/qrkit/internal/domain"
)

// menuItem is one navigation button of the home menu.
type menuItem struct {
	label     string
	screen    domain.Screen
	secondary bool
}

func (i menuItem) FilterValue() string { return i.label }

// menuDelegate renders menu items as buttons.
type menuDelegate struct{}

func (d menuDelegate) Height() int                             { return 1 }
func (d menuDelegate) Spacing() int                            { return 1 }
func (d menuDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d menuDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	i, ok := listItem.(menuItem)
	if !ok {
		return
	}

	style := NormalItemStyle
	if index == m.Index() {
		style = SelectedItemStyle
		if i.secondary {
			style = SecondarySelectedItemStyle
		}
	}
	fmt.Fprint(w, style.Render(i.label))
}

// HomeModel is the stateless start menu. It only emits NavigateMsg.
type HomeModel struct {
	list     list.Model
	keymap   HomeKeyMap
	help     HelpModel
	showHelp bool
	width    int
	height   int
}

// NewHomeModel creates the home menu.
func NewHomeModel() HomeModel {
	items := []list.Item{
		menuItem{label: "Open Camera", screen: domain.ScreenCamera},
		menuItem{label: "Generate QR Code", screen: domain.ScreenQRGenerator, secondary: true},
	}

	l := list.New(items, menuDelegate{}, 40, 6)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)

	keymap := DefaultHomeKeyMap()
	return HomeModel{
		list:   l,
		keymap: keymap,
		help:   NewHelpModel(keymap),
	}
}

// Init initializes the model.
func (m HomeModel) Init() tea.Cmd {
	return tea.WindowSize()
}

// Update handles messages.
func (m HomeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keymap.Select):
			if item, ok := m.list.SelectedItem().(menuItem); ok {
				return m, navigateTo(item.screen)
			}
			return m, nil
		case key.Matches(msg, m.keymap.Camera):
			return m, navigateTo(domain.ScreenCamera)
		case key.Matches(msg, m.keymap.Generator):
			return m, navigateTo(domain.ScreenQRGenerator)
		case key.Matches(msg, m.keymap.Help):
			m.showHelp = !m.showHelp
			return m, nil
		case key.Matches(msg, m.keymap.Quit):
			return m, func() tea.Msg { return QuitMsg{} }
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View renders the model.
func (m HomeModel) View() string {
	content := lipgloss.JoinVertical(lipgloss.Center,
		TitleStyle.Render("QR Code Scanner"),
		SubtitleStyle.Render("Scan QR codes with your camera"),
		m.list.View(),
	)

	if m.showHelp {
		content = lipgloss.JoinVertical(lipgloss.Center, content, m.help.View(m.width))
	} else {
		content = lipgloss.JoinVertical(lipgloss.Center, content, HelpStyle.Render(m.help.Short(m.width)))
	}

	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func navigateTo(screen domain.Screen) tea.Cmd {
	return func() tea.Msg {
		return NavigateMsg{Screen: screen}
	}
}
