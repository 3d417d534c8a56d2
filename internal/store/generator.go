package store

import (
	"strings"

	"github.com/h0rv/qrkit/internal/domain"
)

// GeneratorState holds the text of a mounted generator screen.
type GeneratorState struct {
	text   string
	notice *domain.Notification
}

// NewGeneratorState creates an empty generator state.
func NewGeneratorState() *GeneratorState {
	return &GeneratorState{}
}

// SetText replaces the stored text verbatim.
func (s *GeneratorState) SetText(value string) {
	s.text = value
}

// Text returns the stored text.
func (s *GeneratorState) Text() string {
	return s.text
}

// ShouldRender reports whether a QR image is shown for the current text.
func (s *GeneratorState) ShouldRender() bool {
	return strings.TrimSpace(s.text) != ""
}

// Generate handles the explicit generate action. Rendering is already live,
// so with usable text this only confirms; otherwise a validation notice is
// raised and ErrEmptyInput returned.
func (s *GeneratorState) Generate() error {
	if !s.ShouldRender() {
		s.notice = &domain.Notification{
			Kind:    domain.NotificationValidation,
			Title:   "Error",
			Body:    "Please enter some text to generate QR code",
			Actions: []domain.Action{{Key: KeyOK, Label: "OK"}},
		}
		return ErrEmptyInput
	}
	return nil
}

// Notice returns the pending validation notice, if any.
func (s *GeneratorState) Notice() (domain.Notification, bool) {
	if s.notice == nil {
		return domain.Notification{}, false
	}
	return *s.notice, true
}

// DismissNotice clears the validation notice.
func (s *GeneratorState) DismissNotice() {
	s.notice = nil
}
