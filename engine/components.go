package engine

import "github.com/yohamta/donburi"

// Sprite draws an image (or a solid color when Image is zero) as a quad
// centered on the entity's world origin.
type Sprite struct {
	// Image is the asset to draw. Zero draws a solid Color quad.
	Image Handle
	// Color tints the image.
	Color Color
	// CustomSize is the quad size in world units. When HasCustomSize is
	// false the quad uses the source rect size in pixels as world units.
	CustomSize    Vec2
	HasCustomSize bool
	// Rect crops the source image in pixel coordinates. Fractional values
	// are honoured. When HasRect is false the whole image is used.
	Rect    Rect
	HasRect bool
}

// SetCustomSize sets the quad size in world units.
func (s *Sprite) SetCustomSize(w, h float64) {
	s.CustomSize = Vec2{w, h}
	s.HasCustomSize = true
}

// SetRect sets the source crop rectangle.
func (s *Sprite) SetRect(r Rect) {
	s.Rect = r
	s.HasRect = true
}

var (
	SpriteComponent = donburi.NewComponentType[Sprite](Sprite{Color: ColorWhite})
	LayersComponent = donburi.NewComponentType[RenderLayers](RenderLayers(1))
)

// LayersOf returns e's render layers, defaulting to layer 0.
func LayersOf(entry *donburi.Entry) RenderLayers {
	if entry.HasComponent(LayersComponent) {
		return *LayersComponent.Get(entry)
	}
	return Layer(0)
}
