package engine

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Handle references an Image in an Assets table. The zero Handle is never
// issued and stands for "none" (the screen, for a Camera target).
type Handle uint32

// ImageDescriptor describes how an image buffer is allocated and sampled.
type ImageDescriptor struct {
	Label string
	// Filter is used whenever the image is sampled by the renderer.
	// FilterNearest never samples mipmaps.
	Filter ebiten.Filter
	// Unmanaged images are not backed up on the CPU side and are meant to be
	// rendered into every frame.
	Unmanaged bool
}

// Image is an asset-owned pixel buffer. A zero-sized Image holds no GPU
// image; Ebitengine cannot allocate one.
type Image struct {
	desc  ImageDescriptor
	img   *ebiten.Image
	w, h  int
	count int // number of Resize reallocations, for stats
}

// NewImage creates a zero-sized image with the given descriptor.
func NewImage(desc ImageDescriptor) *Image {
	return &Image{desc: desc}
}

// Descriptor returns the allocation descriptor.
func (im *Image) Descriptor() ImageDescriptor {
	return im.desc
}

// Size returns the width and height in pixels.
func (im *Image) Size() (w, h int) {
	return im.w, im.h
}

// Ebiten returns the backing image, or nil while the image is zero-sized.
func (im *Image) Ebiten() *ebiten.Image {
	return im.img
}

// Reallocations returns how many times Resize allocated a new buffer.
func (im *Image) Reallocations() int {
	return im.count
}

// Resize reallocates the buffer to w x h pixels, discarding the old
// contents. No-op if the size is unchanged. Non-positive sizes release the
// buffer.
func (im *Image) Resize(w, h int) {
	if w == im.w && h == im.h {
		return
	}
	if im.img != nil {
		im.img.Deallocate()
		im.img = nil
	}
	if w <= 0 || h <= 0 {
		im.w, im.h = 0, 0
		return
	}
	im.w, im.h = w, h
	im.img = ebiten.NewImageWithOptions(
		image.Rect(0, 0, w, h),
		&ebiten.NewImageOptions{Unmanaged: im.desc.Unmanaged},
	)
	im.count++
}

// Clear fills the image with transparent black. No-op when zero-sized.
func (im *Image) Clear() {
	if im.img != nil {
		im.img.Clear()
	}
}

// Fill fills the image with c. No-op when zero-sized.
func (im *Image) Fill(c Color) {
	if im.img != nil {
		im.img.Fill(c.toRGBA())
	}
}

// Assets is a handle-indexed table of images.
type Assets struct {
	images []*Image
	free   []Handle
}

// NewAssets creates an empty table.
func NewAssets() *Assets {
	return &Assets{}
}

// Add stores img and returns its handle.
func (a *Assets) Add(img *Image) Handle {
	if img == nil {
		panic("engine: cannot add nil image")
	}
	if n := len(a.free); n > 0 {
		h := a.free[n-1]
		a.free = a.free[:n-1]
		a.images[h-1] = img
		return h
	}
	a.images = append(a.images, img)
	return Handle(len(a.images))
}

// Get returns the image for h.
func (a *Assets) Get(h Handle) (*Image, bool) {
	if h == 0 || int(h) > len(a.images) {
		return nil, false
	}
	img := a.images[h-1]
	return img, img != nil
}

// Remove releases the image for h. No-op for unknown handles.
func (a *Assets) Remove(h Handle) {
	img, ok := a.Get(h)
	if !ok {
		return
	}
	img.Resize(0, 0)
	a.images[h-1] = nil
	a.free = append(a.free, h)
}

// Len returns the number of live images.
func (a *Assets) Len() int {
	return len(a.images) - len(a.free)
}
