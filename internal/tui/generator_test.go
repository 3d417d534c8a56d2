package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/h0rv/qrkit/internal/qr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typeText(t *testing.T, m GeneratorModel, text string) GeneratorModel {
	t.Helper()
	for _, r := range text {
		var msg tea.KeyMsg
		if r == ' ' {
			msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
		} else {
			msg = keyRune(r)
		}
		model, _ := m.Update(msg)
		m = model.(GeneratorModel)
	}
	return m
}

func pressGenerate(t *testing.T, m GeneratorModel) GeneratorModel {
	t.Helper()
	model, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	return model.(GeneratorModel)
}

func TestGeneratorModel_EmptyInput(t *testing.T) {
	m := NewGeneratorModel(qr.DefaultParams())

	assert.False(t, m.Rendered())
	assert.Contains(t, m.View(), "QR Code Generator")

	m = pressGenerate(t, m)
	_, ok := m.state.Notice()
	require.True(t, ok)
	assert.Contains(t, m.View(), "Please enter some text to generate QR code")
}

func TestGeneratorModel_WhitespaceInput(t *testing.T) {
	m := NewGeneratorModel(qr.DefaultParams())
	m = typeText(t, m, "   ")

	assert.Equal(t, "   ", m.state.Text())
	assert.False(t, m.Rendered())

	m = pressGenerate(t, m)
	_, ok := m.state.Notice()
	assert.True(t, ok)
}

func TestGeneratorModel_LiveRendering(t *testing.T) {
	m := NewGeneratorModel(qr.DefaultParams())
	m = typeText(t, m, "hello")

	assert.Equal(t, "hello", m.state.Text())
	assert.True(t, m.Rendered(), "code renders without the generate action")
	assert.Contains(t, m.View(), "▀")

	// Generate with text only confirms
	m = pressGenerate(t, m)
	_, ok := m.state.Notice()
	assert.False(t, ok)
	assert.True(t, m.confirmed)
	assert.Contains(t, m.View(), "QR code ready")
}

func TestGeneratorModel_ClearingRemovesImage(t *testing.T) {
	m := NewGeneratorModel(qr.DefaultParams())
	m = typeText(t, m, "hi")
	require.True(t, m.Rendered())

	for i := 0; i < 2; i++ {
		model, _ := m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
		m = model.(GeneratorModel)
	}

	assert.Equal(t, "", m.state.Text())
	assert.False(t, m.Rendered())
	assert.NotContains(t, m.View(), "▀")
}

func TestGeneratorModel_NoticeIsModal(t *testing.T) {
	m := NewGeneratorModel(qr.DefaultParams())
	m = pressGenerate(t, m)

	// Typing while the notice is shown is swallowed
	m = typeText(t, m, "x")
	assert.Equal(t, "", m.state.Text())

	model, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = model.(GeneratorModel)
	_, ok := m.state.Notice()
	assert.False(t, ok)

	m = typeText(t, m, "x")
	assert.Equal(t, "x", m.state.Text())
}

func TestGeneratorModel_RenderError(t *testing.T) {
	params := qr.DefaultParams()
	params.Foreground = "not-a-colour"
	m := NewGeneratorModel(params)
	m = typeText(t, m, "hello")

	assert.False(t, m.Rendered())
	assert.Contains(t, m.View(), "Cannot render QR code")
}

func TestGeneratorModel_Back(t *testing.T) {
	m := NewGeneratorModel(qr.DefaultParams())

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.IsType(t, BackMsg{}, cmd())
}
