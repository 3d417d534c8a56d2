// Package camera provides the live scanning feed and still capture used by
// the camera screen. Frame acquisition and code detection run inside the
// camera's own loop; the host only consumes scan events.
package camera

import (
	"context"
	"errors"
	"image"

	"github.com/h0rv/qrkit/internal/domain"
	"github.com/makiuchi-d/gozxing"
	gzqr "github.com/makiuchi-d/gozxing/qrcode"
)

// ErrNoFrame indicates a capture was requested before any frame arrived.
var ErrNoFrame = errors.New("no frame available")

// Camera is a live scanning feed with an imperative still capture.
type Camera interface {
	// Start begins scanning. The returned channel carries every recognized
	// payload, repeats included, and is closed when ctx ends or Close is called.
	Start(ctx context.Context) (<-chan domain.ScanEvent, error)
	// Capture takes a one-shot picture at quality in (0, 1].
	Capture(ctx context.Context, quality float64) (domain.Picture, error)
	// Close stops scanning and releases the device.
	Close() error
}

// Decoder extracts the payload of a machine-readable code from a frame.
// ok is false when the frame holds no recognizable code.
type Decoder interface {
	Decode(img image.Image) (payload string, ok bool, err error)
}

// ZXingDecoder decodes QR codes with gozxing.
type ZXingDecoder struct {
	hints map[gozxing.DecodeHintType]interface{}
}

// NewZXingDecoder creates a QR decoder that trades speed for accuracy.
func NewZXingDecoder() *ZXingDecoder {
	return &ZXingDecoder{
		hints: map[gozxing.DecodeHintType]interface{}{
			gozxing.DecodeHintType_TRY_HARDER: true,
		},
	}
}

// Decode implements Decoder. Frames without a readable code are not errors.
func (d *ZXingDecoder) Decode(img image.Image) (string, bool, error) {
	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return "", false, err
	}

	result, err := gzqr.NewQRCodeReader().Decode(bmp, d.hints)
	if err != nil {
		// Not found, checksum and format failures all mean "no code in frame"
		return "", false, nil
	}

	text := result.GetText()
	return text, text != "", nil
}
