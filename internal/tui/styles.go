package tui

import "github.com/charmbracelet/lipgloss"

var (
	// TitleStyle is used for screen titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#007AFF")).
			MarginBottom(1)

	// SubtitleStyle is used for the line under a title.
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			MarginBottom(1)

	// SelectedItemStyle is used for highlighted/selected items.
	SelectedItemStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("255")).
				Background(lipgloss.Color("#007AFF")).
				Bold(true).
				Padding(0, 2)

	// SecondarySelectedItemStyle highlights the secondary (green) action.
	SecondarySelectedItemStyle = SelectedItemStyle.
					Background(lipgloss.Color("#34C759"))

	// NormalItemStyle is used for non-selected items.
	NormalItemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Padding(0, 2)

	// ErrorStyle is used for error messages.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")). // Red
			Bold(true)

	// PromptStyle is used for prompt text.
	PromptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("99")). // Light blue
			MarginBottom(1)

	// HelpStyle is used for help text.
	HelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")). // Dark gray
			MarginTop(1)

	// DimStyle is used for secondary information.
	DimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	// ScanFrameStyle outlines the scan area of the live camera view.
	ScanFrameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#007AFF")).
			Padding(2, 4).
			Align(lipgloss.Center)

	// CaptureButtonStyle renders the capture control.
	CaptureButtonStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("255")).
				Padding(0, 2)

	// QRContainerStyle frames a rendered QR code.
	QRContainerStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("240")).
				Padding(0, 1).
				MarginTop(1)

	// NotificationStyle frames a modal notification.
	NotificationStyle = lipgloss.NewStyle().
				Border(lipgloss.DoubleBorder()).
				BorderForeground(lipgloss.Color("228")).
				Padding(1, 2)

	// NotificationTitleStyle is used for notification titles.
	NotificationTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("228"))

	// ActionKeyStyle renders the key of a notification action.
	ActionKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("228")).
			Padding(0, 1)

	// SuccessStyle is used for confirmations.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#34C759")).
			Bold(true)
)
