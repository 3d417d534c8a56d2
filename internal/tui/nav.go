package tui

import (
	"fmt"

	"github.com/h0rv/qrkit/internal/domain"
)

// Navigator is the screen stack. Home is always at the bottom.
type Navigator struct {
	stack []domain.Screen
}

// NewNavigator creates a navigator showing Home.
func NewNavigator() Navigator {
	return Navigator{stack: []domain.Screen{domain.ScreenHome}}
}

// Current returns the screen on top of the stack.
func (n Navigator) Current() domain.Screen {
	return n.stack[len(n.stack)-1]
}

// Depth returns the number of screens on the stack.
func (n Navigator) Depth() int {
	return len(n.stack)
}

// Navigate opens screen. Navigating to Home pops back to the root;
// navigating to the current screen is a no-op.
func (n *Navigator) Navigate(screen domain.Screen) error {
	switch screen {
	case domain.ScreenHome:
		n.stack = n.stack[:1]
	case domain.ScreenCamera, domain.ScreenQRGenerator:
		if n.Current() != screen {
			n.stack = append(n.stack, screen)
		}
	default:
		return fmt.Errorf("unknown screen %q", screen)
	}
	return nil
}

// GoBack pops the current screen. It returns false when already at Home.
func (n *Navigator) GoBack() bool {
	if len(n.stack) == 1 {
		return false
	}
	n.stack = n.stack[:len(n.stack)-1]
	return true
}
