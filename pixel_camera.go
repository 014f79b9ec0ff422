package pixelcam

import (
	"github.com/phanxgames/pixelcam/engine"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/component"
)

// pixelCameraOrder renders pixel cameras before the main camera (order 0),
// so a canvas always shows the current frame's target.
const pixelCameraOrder = -1

var (
	// PixelCamera tags a camera that renders into an offscreen target.
	PixelCamera = donburi.NewTag()
	// Snapping opts a pixel camera into whole-pixel position snapping.
	Snapping = donburi.NewTag()
)

// CreatePixelCamera spawns a camera rendering layers into target and
// returns it. The camera's projection is set by UpdateCameraProjection once
// a canvas refers to it.
func CreatePixelCamera(app *engine.App, target engine.Handle, layers engine.RenderLayers) donburi.Entity {
	w := app.World
	e := w.Create(
		PixelCamera,
		engine.CameraComponent,
		engine.OrthographicComponent,
		engine.TransformComponent,
		engine.GlobalTransformComponent,
		engine.LayersComponent,
	)
	entry := w.Entry(e)
	engine.CameraComponent.SetValue(entry, engine.Camera{
		Order:  pixelCameraOrder,
		Target: target,
		Active: true,
	})
	engine.TransformComponent.SetValue(entry, engine.NewTransform(0, 0))
	engine.LayersComponent.SetValue(entry, layers)
	return e
}

// EnableSnapping attaches Snapping to camera. No-op if camera is invalid or
// already snapping.
func EnableSnapping(w donburi.World, camera donburi.Entity) {
	addTag(w, camera, Snapping)
}

func addTag(w donburi.World, e donburi.Entity, tag component.IComponentType) {
	if !w.Valid(e) {
		return
	}
	entry := w.Entry(e)
	if !entry.HasComponent(tag) {
		entry.AddComponent(tag)
	}
}
