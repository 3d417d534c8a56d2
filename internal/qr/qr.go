// Package qr renders text as QR images for the terminal and as PNG.
// Encoding is delegated to go-qrcode; this package only supplies the text
// and the display parameters.
package qr

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	qrcode "github.com/skip2/go-qrcode"
)

var (
	// ErrEmptyText indicates there is nothing to encode.
	ErrEmptyText = errors.New("empty text")
	// ErrInvalidColor indicates an unparseable colour value.
	ErrInvalidColor = errors.New("invalid color")
)

// Params are the display parameters of a rendered code.
type Params struct {
	Size       int    // PNG edge length in pixels
	Foreground string // Module colour
	Background string // Quiet zone and light module colour
	Recovery   string // low | medium | high | highest
}

// DefaultParams mirrors the generator screen's defaults.
func DefaultParams() Params {
	return Params{
		Size:       200,
		Foreground: "black",
		Background: "white",
		Recovery:   "medium",
	}
}

// Image is an encoded code ready to display.
type Image struct {
	code   *qrcode.QRCode
	params Params
	fg     color.RGBA
	bg     color.RGBA
}

// Encode encodes text with params. Text is encoded verbatim.
func Encode(text string, params Params) (*Image, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyText
	}

	fg, err := ParseColor(params.Foreground)
	if err != nil {
		return nil, fmt.Errorf("foreground: %w", err)
	}
	bg, err := ParseColor(params.Background)
	if err != nil {
		return nil, fmt.Errorf("background: %w", err)
	}

	code, err := qrcode.New(text, recoveryLevel(params.Recovery))
	if err != nil {
		return nil, fmt.Errorf("encoding qr code: %w", err)
	}
	code.ForegroundColor = fg
	code.BackgroundColor = bg

	return &Image{code: code, params: params, fg: fg, bg: bg}, nil
}

// Modules returns the module matrix including the quiet zone; true is dark.
func (i *Image) Modules() [][]bool {
	return i.code.Bitmap()
}

// PNG returns the code as a PNG of Params.Size pixels.
func (i *Image) PNG() ([]byte, error) {
	data, err := i.code.PNG(i.params.Size)
	if err != nil {
		return nil, fmt.Errorf("rendering png: %w", err)
	}
	return data, nil
}

// Terminal renders the code with upper half blocks so each text row holds
// two module rows. The result is sized by module count, not Params.Size.
func (i *Image) Terminal() string {
	bitmap := i.code.Bitmap()
	fg := lipgloss.Color(hexColor(i.fg))
	bg := lipgloss.Color(hexColor(i.bg))

	// Four styles cover every top/bottom combination
	cell := map[[2]bool]lipgloss.Style{
		{true, true}:   lipgloss.NewStyle().Foreground(fg).Background(fg),
		{true, false}:  lipgloss.NewStyle().Foreground(fg).Background(bg),
		{false, true}:  lipgloss.NewStyle().Foreground(bg).Background(fg),
		{false, false}: lipgloss.NewStyle().Foreground(bg).Background(bg),
	}

	var b strings.Builder
	for y := 0; y < len(bitmap); y += 2 {
		for x := range bitmap[y] {
			bottom := false
			if y+1 < len(bitmap) {
				bottom = bitmap[y+1][x]
			}
			b.WriteString(cell[[2]bool{bitmap[y][x], bottom}].Render("▀"))
		}
		if y+2 < len(bitmap) {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// String renders the code with plain block characters, for output that is
// not a colour terminal.
func (i *Image) String() string {
	return i.code.ToSmallString(false)
}

func recoveryLevel(name string) qrcode.RecoveryLevel {
	switch strings.ToLower(name) {
	case "low":
		return qrcode.Low
	case "high":
		return qrcode.High
	case "highest":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

var namedColors = map[string]color.RGBA{
	"black": {0x00, 0x00, 0x00, 0xff},
	"white": {0xff, 0xff, 0xff, 0xff},
	"red":   {0xff, 0x00, 0x00, 0xff},
	"green": {0x00, 0x80, 0x00, 0xff},
	"blue":  {0x00, 0x00, 0xff, 0xff},
}

// ParseColor accepts a colour name, #rrggbb or #rgb.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := namedColors[s]; ok {
		return c, nil
	}

	hex, ok := strings.CutPrefix(s, "#")
	if !ok {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

func hexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
