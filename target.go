package pixelcam

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/pixelcam/engine"
)

// TargetDescriptor is the allocation descriptor for offscreen targets:
// nearest sampling (no mipmaps, no interpolation) and an unmanaged buffer,
// since the pixel camera redraws it every frame.
func TargetDescriptor() engine.ImageDescriptor {
	return engine.ImageDescriptor{
		Label:     "pixelcam target",
		Filter:    ebiten.FilterNearest,
		Unmanaged: true,
	}
}

// CreateTarget allocates a zero-sized offscreen target in app.Assets and
// returns its handle. ResizeTargets gives it its real size on the first
// frame after a canvas that shows it is created.
func CreateTarget(app *engine.App) engine.Handle {
	return app.Assets.Add(engine.NewImage(TargetDescriptor()))
}
