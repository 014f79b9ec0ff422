package engine

import (
	"math"

	"github.com/yohamta/donburi"
)

// ScalingKind selects how an orthographic projection maps world units to
// viewport pixels.
type ScalingKind uint8

const (
	ScalingWindowSize ScalingKind = iota // fixed pixels per world unit
	ScalingAutoMin                       // fit at least MinWidth x MinHeight units
	ScalingFixed                         // exactly Width x Height units, aspect may stretch
)

// ScalingMode describes an orthographic projection's world-to-pixel scale.
// Build one with WindowSize, AutoMin or Fixed.
type ScalingMode struct {
	Kind          ScalingKind
	PixelsPerUnit float64
	MinWidth      float64
	MinHeight     float64
	Width         float64
	Height        float64
}

// WindowSize maps one world unit to pixelsPerUnit viewport pixels.
func WindowSize(pixelsPerUnit float64) ScalingMode {
	return ScalingMode{Kind: ScalingWindowSize, PixelsPerUnit: pixelsPerUnit}
}

// AutoMin keeps at least minWidth x minHeight world units visible.
func AutoMin(minWidth, minHeight float64) ScalingMode {
	return ScalingMode{Kind: ScalingAutoMin, MinWidth: minWidth, MinHeight: minHeight}
}

// Fixed shows exactly width x height world units.
func Fixed(width, height float64) ScalingMode {
	return ScalingMode{Kind: ScalingFixed, Width: width, Height: height}
}

// pixelScale returns the pixels per world unit on each axis for a viewport
// of vw x vh pixels. Degenerate inputs fall back to 1.
func (m ScalingMode) pixelScale(vw, vh float64) (sx, sy float64) {
	switch m.Kind {
	case ScalingWindowSize:
		if m.PixelsPerUnit > 0 {
			return m.PixelsPerUnit, m.PixelsPerUnit
		}
	case ScalingAutoMin:
		if m.MinWidth > 0 && m.MinHeight > 0 {
			s := math.Min(vw/m.MinWidth, vh/m.MinHeight)
			return s, s
		}
	case ScalingFixed:
		if m.Width > 0 && m.Height > 0 {
			return vw / m.Width, vh / m.Height
		}
	}
	return 1, 1
}

// Orthographic is a camera's projection. Scale divides the pixel scale
// (2 shows twice as much of the world).
type Orthographic struct {
	Scaling ScalingMode
	Scale   float64
}

// Camera renders the entities sharing its RenderLayers into Target, or the
// screen when Target is zero. Cameras draw in ascending Order.
type Camera struct {
	Order      int
	Target     Handle
	ClearColor Color
	// Clear fills the target with ClearColor before drawing.
	Clear  bool
	Active bool
}

var (
	CameraComponent       = donburi.NewComponentType[Camera](Camera{Active: true})
	OrthographicComponent = donburi.NewComponentType[Orthographic](Orthographic{Scaling: WindowSize(1), Scale: 1})
)

// ViewMatrix maps world coordinates to viewport pixels for a camera placed
// at cameraWorld with the given projection on a vw x vh viewport.
//
//	view = Translate(vw/2, vh/2) * Scale(sx, -sy) * inverse(cameraWorld)
//
// The negative Y scale turns the Y-up world into Y-down image space.
func ViewMatrix(cameraWorld [6]float64, proj Orthographic, vw, vh float64) [6]float64 {
	sx, sy := proj.Scaling.pixelScale(vw, vh)
	if proj.Scale > 0 {
		sx /= proj.Scale
		sy /= proj.Scale
	}
	screen := [6]float64{sx, 0, 0, -sy, vw / 2, vh / 2}
	return multiplyAffine(screen, invertAffine(cameraWorld))
}

// WorldToScreen converts a world point to viewport pixels.
func WorldToScreen(view [6]float64, wx, wy float64) (sx, sy float64) {
	return transformPoint(view, wx, wy)
}

// ScreenToWorld converts viewport pixels to a world point.
func ScreenToWorld(view [6]float64, sx, sy float64) (wx, wy float64) {
	return transformPoint(invertAffine(view), sx, sy)
}

// VisibleBounds returns the world-space AABB seen through view on a
// vw x vh viewport. Min.Y is the lowest world Y.
func VisibleBounds(view [6]float64, vw, vh float64) Rect {
	inv := invertAffine(view)
	x0, y0 := transformPoint(inv, 0, 0)
	x1, y1 := transformPoint(inv, vw, 0)
	x2, y2 := transformPoint(inv, vw, vh)
	x3, y3 := transformPoint(inv, 0, vh)
	return Rect{
		Min: Vec2{math.Min(math.Min(x0, x1), math.Min(x2, x3)), math.Min(math.Min(y0, y1), math.Min(y2, y3))},
		Max: Vec2{math.Max(math.Max(x0, x1), math.Max(x2, x3)), math.Max(math.Max(y0, y1), math.Max(y2, y3))},
	}
}
