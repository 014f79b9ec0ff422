package pixelcam

import (
	"github.com/phanxgames/pixelcam/engine"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

var smoothedCanvasQuery = donburi.NewQuery(filter.Contains(PixelCanvasComponent, engine.SpriteComponent, Smoothing))

// SmoothCanvasRect shifts the crop rectangle of every Smoothing canvas by
// the sub-pixel remainder of its parent's position, so the displayed image
// keeps moving continuously while the pixel camera snaps. The vertical
// offset is negated because target rows grow downward while world Y grows
// upward. Canvases without a resolvable parent are skipped.
func SmoothCanvasRect(app *engine.App) {
	w := app.World
	smoothedCanvasQuery.Each(w, func(entry *donburi.Entry) {
		pc := PixelCanvasComponent.Get(entry)
		t, ok := parentTranslation(w, entry.Entity())
		if !ok {
			return
		}
		off := PixelRemainder(t, pc.PixelsPerUnit)
		engine.SpriteComponent.Get(entry).SetRect(CanvasRect(pc.PixelsPerUnit, pc.Width, pc.Height, off.X, -off.Y))
	})
}
