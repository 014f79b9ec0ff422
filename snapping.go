package pixelcam

import (
	"github.com/phanxgames/pixelcam/engine"
	"github.com/yohamta/donburi"
)

// SnapCameraPositions moves every Snapping pixel camera so its world
// position lands on a whole target pixel. The discarded fraction of the
// parent's position is stored, negated, as the camera's local position.
//
// Cameras that are gone, not snapping, lack a Transform or have no
// resolvable parent are skipped.
func SnapCameraPositions(app *engine.App) {
	w := app.World
	canvasQuery.Each(w, func(entry *donburi.Entry) {
		pc := PixelCanvasComponent.Get(entry)
		cam, ok := pixelCameraEntry(w, pc.Camera)
		if !ok || !cam.HasComponent(Snapping) || !cam.HasComponent(engine.TransformComponent) {
			return
		}
		t, ok := parentTranslation(w, pc.Camera)
		if !ok {
			return
		}
		off := PixelRemainder(t, pc.PixelsPerUnit)
		tr := engine.TransformComponent.Get(cam)
		tr.LocalPosition.X = -off.X / pc.PixelsPerUnit
		tr.LocalPosition.Y = -off.Y / pc.PixelsPerUnit
	})
}
