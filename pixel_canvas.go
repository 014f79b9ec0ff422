package pixelcam

import (
	"fmt"

	"github.com/phanxgames/pixelcam/engine"
	"github.com/yohamta/donburi"
)

// canvasZ places the canvas just behind its parent so high-resolution
// sprites on the same layer draw over it.
const canvasZ = -1

// PixelCanvas is the on-screen sprite showing a pixel camera's target.
type PixelCanvas struct {
	PixelsPerUnit float64
	Width         float64
	Height        float64
	// Camera is the pixel camera rendering into this canvas's target. The
	// reference is non-owning: if it stops resolving, camera-dependent
	// steps skip this canvas.
	Camera donburi.Entity
	// NeedsResize asks ResizeTargets to resize the target on the next frame.
	NeedsResize bool
}

// Config returns the canvas sizing.
func (c *PixelCanvas) Config() Config {
	return Config{PixelsPerUnit: c.PixelsPerUnit, Width: c.Width, Height: c.Height}
}

var (
	PixelCanvasComponent = donburi.NewComponentType[PixelCanvas]()
	// Smoothing opts a pixel canvas into sub-pixel crop offsetting.
	Smoothing = donburi.NewTag()
)

// CreatePixelCanvas spawns a sprite showing target at cfg's size, linked to
// camera, and returns it. Panics if cfg is invalid. camera is not checked
// here; see PixelCanvas.Camera.
func CreatePixelCanvas(app *engine.App, cfg Config, target engine.Handle, camera donburi.Entity, layers engine.RenderLayers) donburi.Entity {
	if err := cfg.Validate(); err != nil {
		panic(err.Error())
	}
	w := app.World
	e := w.Create(
		PixelCanvasComponent,
		engine.SpriteComponent,
		engine.TransformComponent,
		engine.DepthComponent,
		engine.GlobalTransformComponent,
		engine.LayersComponent,
	)
	entry := w.Entry(e)

	sprite := engine.Sprite{Image: target, Color: engine.ColorWhite}
	sprite.SetCustomSize(cfg.Width, cfg.Height)
	sprite.SetRect(CanvasRect(cfg.PixelsPerUnit, cfg.Width, cfg.Height, 0, 0))
	engine.SpriteComponent.SetValue(entry, sprite)

	engine.TransformComponent.SetValue(entry, engine.NewTransform(0, 0))
	engine.DepthComponent.SetValue(entry, canvasZ)
	engine.LayersComponent.SetValue(entry, layers)
	PixelCanvasComponent.SetValue(entry, PixelCanvas{
		PixelsPerUnit: cfg.PixelsPerUnit,
		Width:         cfg.Width,
		Height:        cfg.Height,
		Camera:        camera,
		NeedsResize:   true,
	})
	return e
}

// EnableSmoothing attaches Smoothing to canvas. No-op if canvas is invalid
// or already smoothing.
func EnableSmoothing(w donburi.World, canvas donburi.Entity) {
	addTag(w, canvas, Smoothing)
}

// SetConfig changes a canvas's sizing at runtime and schedules its target
// for resizing on the next frame.
func SetConfig(w donburi.World, canvas donburi.Entity, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	pc, ok := canvasData(w, canvas)
	if !ok {
		return fmt.Errorf("set config on %v: %w", canvas, ErrNotCanvas)
	}
	pc.PixelsPerUnit = cfg.PixelsPerUnit
	pc.Width = cfg.Width
	pc.Height = cfg.Height
	pc.NeedsResize = true
	return nil
}

// CanvasConfig returns a canvas's current sizing.
func CanvasConfig(w donburi.World, canvas donburi.Entity) (Config, bool) {
	pc, ok := canvasData(w, canvas)
	if !ok {
		return Config{}, false
	}
	return pc.Config(), true
}

func canvasData(w donburi.World, canvas donburi.Entity) (*PixelCanvas, bool) {
	if !w.Valid(canvas) {
		return nil, false
	}
	entry := w.Entry(canvas)
	if !entry.HasComponent(PixelCanvasComponent) {
		return nil, false
	}
	return PixelCanvasComponent.Get(entry), true
}
