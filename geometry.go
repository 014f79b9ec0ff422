package pixelcam

import (
	"math"

	"github.com/phanxgames/pixelcam/engine"
)

// targetMargin is the extra pixels on each axis of the offscreen target.
// One pixel per side absorbs the sub-pixel shift applied by smoothing.
const targetMargin = 2

// TargetExtent returns the offscreen target size for a canvas showing
// width x height world units at pixelsPerUnit:
//
//	(floor(ppu*width) + 2, floor(ppu*height) + 2)
func TargetExtent(pixelsPerUnit, width, height float64) (w, h int) {
	return int(math.Floor(pixelsPerUnit*width)) + targetMargin,
		int(math.Floor(pixelsPerUnit*height)) + targetMargin
}

// CanvasRect returns the source crop rectangle, in target pixels, for a
// canvas shifted by (offsetX, offsetY) pixels. The 1-pixel inset consumes
// the target margin so nearest sampling never reads an edge pixel.
func CanvasRect(pixelsPerUnit, width, height, offsetX, offsetY float64) engine.Rect {
	return engine.Rect{
		Min: engine.Vec2{X: 1 + offsetX, Y: 1 + offsetY},
		Max: engine.Vec2{
			X: 1 + offsetX + pixelsPerUnit*width,
			Y: 1 + offsetY + pixelsPerUnit*height,
		},
	}
}

// PixelRemainder converts a world translation to target pixels and returns
// its signed distance from the nearest whole pixel, per axis, in pixels.
// Each component lies in [-0.5, 0.5]; halves round away from zero.
func PixelRemainder(translation engine.Vec2, pixelsPerUnit float64) engine.Vec2 {
	px := translation.X * pixelsPerUnit
	py := translation.Y * pixelsPerUnit
	return engine.Vec2{X: px - math.Round(px), Y: py - math.Round(py)}
}
