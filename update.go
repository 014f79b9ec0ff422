package pixelcam

import (
	"github.com/phanxgames/pixelcam/engine"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

var (
	canvasQuery           = donburi.NewQuery(filter.Contains(PixelCanvasComponent, engine.SpriteComponent))
	unsmoothedCanvasQuery = donburi.NewQuery(filter.And(
		filter.Contains(PixelCanvasComponent, engine.SpriteComponent),
		filter.Not(filter.Contains(Smoothing)),
	))
)

// SyncCanvasSprite sets each canvas sprite's on-screen size to the canvas's
// world-unit size.
func SyncCanvasSprite(app *engine.App) {
	canvasQuery.Each(app.World, func(entry *donburi.Entry) {
		pc := PixelCanvasComponent.Get(entry)
		engine.SpriteComponent.Get(entry).SetCustomSize(pc.Width, pc.Height)
	})
}

// ResizeTargets resizes the target of every canvas flagged NeedsResize and
// clears the flag. A canvas whose image handle does not resolve keeps the
// flag and is retried next frame.
func ResizeTargets(app *engine.App) {
	canvasQuery.Each(app.World, func(entry *donburi.Entry) {
		pc := PixelCanvasComponent.Get(entry)
		if !pc.NeedsResize {
			return
		}
		handle := engine.SpriteComponent.Get(entry).Image
		img, ok := app.Assets.Get(handle)
		if !ok {
			return
		}
		w, h := TargetExtent(pc.PixelsPerUnit, pc.Width, pc.Height)
		img.Resize(w, h)
		pc.NeedsResize = false
		engine.Logger().Debug("pixelcam: target resized", "handle", uint32(handle), "width", w, "height", h)
	})
}

// UpdateCameraProjection makes one world unit span exactly PixelsPerUnit
// target pixels on each canvas's pixel camera. Canvases whose camera is
// gone or has no orthographic projection are skipped.
func UpdateCameraProjection(app *engine.App) {
	w := app.World
	canvasQuery.Each(w, func(entry *donburi.Entry) {
		pc := PixelCanvasComponent.Get(entry)
		cam, ok := pixelCameraEntry(w, pc.Camera)
		if !ok || !cam.HasComponent(engine.OrthographicComponent) {
			return
		}
		engine.OrthographicComponent.Get(cam).Scaling = engine.WindowSize(pc.PixelsPerUnit)
	})
}

// ResetCanvasRect crops every canvas without Smoothing to the unshifted
// rectangle.
func ResetCanvasRect(app *engine.App) {
	unsmoothedCanvasQuery.Each(app.World, func(entry *donburi.Entry) {
		pc := PixelCanvasComponent.Get(entry)
		engine.SpriteComponent.Get(entry).SetRect(CanvasRect(pc.PixelsPerUnit, pc.Width, pc.Height, 0, 0))
	})
}

// pixelCameraEntry resolves a canvas's camera reference.
func pixelCameraEntry(w donburi.World, e donburi.Entity) (*donburi.Entry, bool) {
	if !w.Valid(e) {
		return nil, false
	}
	entry := w.Entry(e)
	if !entry.HasComponent(PixelCamera) {
		return nil, false
	}
	return entry, true
}

// parentTranslation returns the world position of e's parent.
func parentTranslation(w donburi.World, e donburi.Entity) (engine.Vec2, bool) {
	parent, ok := engine.ParentOf(w, e)
	if !ok {
		return engine.Vec2{}, false
	}
	return engine.WorldPosition(w, parent)
}
