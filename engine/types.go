package engine

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// toRGBA converts to a premultiplied color.RGBA for Ebitengine fills.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Vec2 is a 2D vector used for positions, sizes and offsets.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle given by its minimum and maximum corners.
// In image space the origin is the top-left pixel corner and Y grows downward.
type Rect struct {
	Min, Max Vec2
}

// Width returns Max.X - Min.X.
func (r Rect) Width() float64 { return r.Max.X - r.Min.X }

// Height returns Max.Y - Min.Y.
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// RenderLayers is a bitmask selecting which cameras see an entity.
// Entities without a RenderLayers component are on layer 0.
type RenderLayers uint32

// Layer returns a mask with only layer n set. n must be in [0, 31].
func Layer(n int) RenderLayers {
	if n < 0 || n > 31 {
		panic("engine: render layer out of range")
	}
	return RenderLayers(1) << n
}

// With returns the mask with layer n also set.
func (l RenderLayers) With(n int) RenderLayers {
	return l | Layer(n)
}

// Intersects reports whether the two masks share a layer.
func (l RenderLayers) Intersects(other RenderLayers) bool {
	return l&other != 0
}

// whitePixel backs solid-color sprites.
var whitePixel *ebiten.Image

func init() {
	whitePixel = ebiten.NewImage(1, 1)
	whitePixel.Fill(ColorWhite.toRGBA())
}
