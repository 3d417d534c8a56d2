package tui

import (
	"net/url"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/h0rv/qrkit/internal/domain"
	"github.com/muesli/reflow/wordwrap"
)

const (
	maxNotificationWidth = 60
	minNotificationWidth = 20
)

// renderNotification draws n as a modal box.
func renderNotification(n domain.Notification, width int) string {
	wrap := maxNotificationWidth
	if width > 0 && width-8 < wrap {
		wrap = width - 8
	}
	if wrap < minNotificationWidth {
		wrap = minNotificationWidth
	}

	actions := make([]string, 0, len(n.Actions))
	for _, a := range n.Actions {
		actions = append(actions, ActionKeyStyle.Render(a.Key)+" "+a.Label)
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		NotificationTitleStyle.Render(n.Title),
		"",
		wordwrap.String(n.Body, wrap),
		"",
		strings.Join(actions, "   "),
	)
	return NotificationStyle.Render(body)
}

// isOpenableURL reports whether payload is an http(s) URL.
func isOpenableURL(payload string) bool {
	u, err := url.Parse(strings.TrimSpace(payload))
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
