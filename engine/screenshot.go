package engine

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Screenshot queues a labeled screenshot of the next drawn frame. The PNG is
// written to ScreenshotDir with a timestamped file name.
func (a *App) Screenshot(label string) {
	a.screenshotQueue = append(a.screenshotQueue, label)
}

// flushScreenshots writes every queued label. Called at the end of Draw.
func (a *App) flushScreenshots(screen *ebiten.Image) {
	if len(a.screenshotQueue) == 0 {
		return
	}
	defer func() { a.screenshotQueue = a.screenshotQueue[:0] }()

	if err := os.MkdirAll(a.ScreenshotDir, 0o755); err != nil {
		Logger().Warn("screenshot: mkdir failed", "dir", a.ScreenshotDir, "err", err)
		return
	}

	img := readNRGBA(screen)
	stamp := time.Now().Format("20060102_150405")
	for _, label := range a.screenshotQueue {
		path := filepath.Join(a.ScreenshotDir, fmt.Sprintf("%s_%s.png", stamp, sanitizeLabel(label)))
		if err := writePNG(path, img); err != nil {
			Logger().Warn("screenshot: write failed", "err", err)
			continue
		}
		Logger().Info("screenshot written", "path", path)
	}
}

// readNRGBA reads the image's pixels as straight-alpha NRGBA.
func readNRGBA(src *ebiten.Image) *image.NRGBA {
	b := src.Bounds()
	img := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	src.ReadPixels(img.Pix)
	unpremultiply(img.Pix)
	return img
}

// unpremultiply converts premultiplied RGBA bytes to straight alpha in
// place. Fully transparent and fully opaque pixels are left as is.
func unpremultiply(pix []byte) {
	for i := 0; i+3 < len(pix); i += 4 {
		a := int(pix[i+3])
		if a == 0 || a == 255 {
			continue
		}
		for c := i; c < i+3; c++ {
			pix[c] = uint8(min(int(pix[c])*255/a, 255))
		}
	}
}

func writePNG(path string, img *image.NRGBA) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
