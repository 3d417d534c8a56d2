package camera

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png" // frame format
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"
	"github.com/h0rv/qrkit/internal/domain"
)

// DirCamera treats a directory as the camera device: every image file that
// appears in it is a frame. Any frame grabber can feed it, e.g.
//
//	ffmpeg -f v4l2 -i /dev/video0 -vf fps=4 frames/%05d.jpg
type DirCamera struct {
	dir     string
	exts    map[string]bool
	decoder Decoder

	mu      sync.Mutex
	latest  string // Path of the most recent frame
	cancel  context.CancelFunc
	stopped chan struct{}
}

// NewDirCamera creates a camera over dir accepting files with the given extensions.
func NewDirCamera(dir string, extensions []string, decoder Decoder) *DirCamera {
	exts := make(map[string]bool, len(extensions))
	for _, e := range extensions {
		exts[strings.ToLower(e)] = true
	}
	return &DirCamera{dir: dir, exts: exts, decoder: decoder}
}

// Dir returns the watched directory.
func (c *DirCamera) Dir() string {
	return c.dir
}

// Start implements Camera.
func (c *DirCamera) Start(ctx context.Context) (<-chan domain.ScanEvent, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cancel != nil {
		return nil, fmt.Errorf("camera already started")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating frame watcher: %w", err)
	}
	if err := watcher.Add(c.dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watching %s: %w", c.dir, err)
	}

	ctx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.latest = ""
	c.stopped = make(chan struct{})

	events := make(chan domain.ScanEvent, 16)
	go c.loop(ctx, watcher, events, c.stopped)

	log.Printf("camera started on %s", c.dir)
	return events, nil
}

// Close implements Camera. It waits for the scan loop to exit.
func (c *DirCamera) Close() error {
	c.mu.Lock()
	cancel, stopped := c.cancel, c.stopped
	c.cancel, c.stopped = nil, nil
	c.mu.Unlock()

	// Frames from this session are not capture sources for the next one
	defer c.setLatest("")

	if cancel == nil {
		return nil
	}
	cancel()
	<-stopped
	log.Printf("camera stopped on %s", c.dir)
	return nil
}

func (c *DirCamera) loop(ctx context.Context, watcher *fsnotify.Watcher, events chan<- domain.ScanEvent, stopped chan<- struct{}) {
	defer close(stopped)
	defer close(events)
	defer watcher.Close()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
				continue
			}
			if !c.isFrame(event.Name) {
				continue
			}

			payload, found, err := c.decodeFrame(event.Name)
			if err != nil {
				// Frames may be read mid-write; the next Write event retries
				log.Printf("frame %s: %v", filepath.Base(event.Name), err)
				continue
			}
			c.setLatest(event.Name)
			if !found {
				continue
			}

			select {
			case events <- domain.ScanEvent{Payload: payload, Frame: event.Name}:
			case <-ctx.Done():
				return
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.Printf("frame watcher error: %v", err)
		}
	}
}

// Capture implements Camera by re-encoding the latest frame as JPEG.
func (c *DirCamera) Capture(ctx context.Context, quality float64) (domain.Picture, error) {
	if err := ctx.Err(); err != nil {
		return domain.Picture{}, err
	}

	c.mu.Lock()
	path := c.latest
	c.mu.Unlock()

	if path == "" {
		return domain.Picture{}, ErrNoFrame
	}

	img, err := readImage(path)
	if err != nil {
		return domain.Picture{}, fmt.Errorf("reading frame: %w", err)
	}

	q := int(quality * 100)
	if q < 1 {
		q = 1
	} else if q > 100 {
		q = 100
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: q}); err != nil {
		return domain.Picture{}, fmt.Errorf("encoding picture: %w", err)
	}

	bounds := img.Bounds()
	return domain.Picture{
		ID:      uuid.NewString(),
		Data:    buf.Bytes(),
		Width:   bounds.Dx(),
		Height:  bounds.Dy(),
		Quality: quality,
	}, nil
}

// DecodeFile decodes a single image file with decoder.
func DecodeFile(path string, decoder Decoder) (string, bool, error) {
	img, err := readImage(path)
	if err != nil {
		return "", false, err
	}
	return decoder.Decode(img)
}

func (c *DirCamera) decodeFrame(path string) (string, bool, error) {
	return DecodeFile(path, c.decoder)
}

func (c *DirCamera) isFrame(path string) bool {
	return c.exts[strings.ToLower(filepath.Ext(path))]
}

func (c *DirCamera) setLatest(path string) {
	c.mu.Lock()
	c.latest = path
	c.mu.Unlock()
}

func readImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", filepath.Base(path), err)
	}
	return img, nil
}
