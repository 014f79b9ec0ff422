package engine

import (
	"cmp"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

type cameraItem struct {
	entity donburi.Entity
	order  int
	seq    int
}

type spriteItem struct {
	world  [6]float64
	z      float64
	sprite Sprite
	seq    int
}

// drawBuffers are reused every frame so steady-state drawing does not
// allocate.
type drawBuffers struct {
	cameras []cameraItem
	sprites []spriteItem
	verts   [4]ebiten.Vertex
}

var quadIndices = []uint16{0, 1, 2, 0, 2, 3}

var (
	cameraQuery = donburi.NewQuery(filter.Contains(CameraComponent))
	spriteQuery = donburi.NewQuery(filter.Contains(SpriteComponent, GlobalTransformComponent))
)

// render draws every active camera in ascending Order. Ties keep creation
// order.
func (a *App) render(screen *ebiten.Image) {
	buf := &a.drawBuf
	buf.cameras = buf.cameras[:0]
	seq := 0
	cameraQuery.Each(a.World, func(entry *donburi.Entry) {
		cam := CameraComponent.Get(entry)
		if !cam.Active {
			return
		}
		buf.cameras = append(buf.cameras, cameraItem{entity: entry.Entity(), order: cam.Order, seq: seq})
		seq++
	})
	slices.SortFunc(buf.cameras, func(x, y cameraItem) int {
		if c := cmp.Compare(x.order, y.order); c != 0 {
			return c
		}
		return cmp.Compare(x.seq, y.seq)
	})

	for _, item := range buf.cameras {
		a.drawCamera(screen, item.entity)
	}
}

func (a *App) drawCamera(screen *ebiten.Image, e donburi.Entity) {
	w := a.World
	if !w.Valid(e) {
		return
	}
	entry := w.Entry(e)
	cam := CameraComponent.Get(entry)

	dst := screen
	var dstImage *Image
	if cam.Target != 0 {
		img, ok := a.Assets.Get(cam.Target)
		if !ok || img.Ebiten() == nil {
			return
		}
		dstImage = img
		dst = img.Ebiten()
		dst.Clear()
	}
	if cam.Clear {
		dst.Fill(cam.ClearColor.toRGBA())
	}

	proj := Orthographic{Scaling: WindowSize(1), Scale: 1}
	if entry.HasComponent(OrthographicComponent) {
		proj = *OrthographicComponent.Get(entry)
	}
	b := dst.Bounds()
	view := ViewMatrix(cameraWorld(entry), proj, float64(b.Dx()), float64(b.Dy()))

	sprites := a.collectSprites(LayersOf(entry))
	for i := range sprites {
		a.drawSprite(dst, dstImage, view, &sprites[i])
	}
}

// cameraWorld returns the camera's propagated world matrix, or identity if
// it has none.
func cameraWorld(entry *donburi.Entry) [6]float64 {
	if !entry.HasComponent(GlobalTransformComponent) {
		return identityTransform
	}
	return GlobalTransformComponent.Get(entry).Matrix
}

// collectSprites gathers the sprites visible on layers into the reused
// buffer, ordered by Z and then creation order.
func (a *App) collectSprites(layers RenderLayers) []spriteItem {
	buf := &a.drawBuf
	buf.sprites = buf.sprites[:0]
	seq := 0
	spriteQuery.Each(a.World, func(se *donburi.Entry) {
		if !LayersOf(se).Intersects(layers) {
			return
		}
		g := GlobalTransformComponent.Get(se)
		buf.sprites = append(buf.sprites, spriteItem{world: g.Matrix, z: g.Z, sprite: *SpriteComponent.Get(se), seq: seq})
		seq++
	})
	slices.SortFunc(buf.sprites, func(x, y spriteItem) int {
		if c := cmp.Compare(x.z, y.z); c != 0 {
			return c
		}
		return cmp.Compare(x.seq, y.seq)
	})
	return buf.sprites
}

// drawSprite emits one textured quad. The quad is centered on the entity
// origin; its top edge (world +Y) samples the top row of the source rect.
func (a *App) drawSprite(dst *ebiten.Image, dstImage *Image, view [6]float64, it *spriteItem) {
	sp := &it.sprite
	src := whitePixel
	filterMode := ebiten.FilterNearest
	var srcW, srcH float64 = 1, 1
	if sp.Image != 0 {
		img, ok := a.Assets.Get(sp.Image)
		if !ok || img.Ebiten() == nil || img == dstImage {
			return
		}
		src = img.Ebiten()
		filterMode = img.Descriptor().Filter
		w, h := img.Size()
		srcW, srcH = float64(w), float64(h)
	}

	rect := Rect{Max: Vec2{srcW, srcH}}
	if sp.HasRect && sp.Image != 0 {
		rect = sp.Rect
	}
	size := Vec2{rect.Width(), rect.Height()}
	if sp.HasCustomSize {
		size = sp.CustomSize
	}
	if size.X == 0 || size.Y == 0 {
		return
	}

	m := multiplyAffine(view, it.world)
	hw, hh := size.X/2, size.Y/2
	corners := [4][4]float64{
		{-hw, hh, rect.Min.X, rect.Min.Y},
		{hw, hh, rect.Max.X, rect.Min.Y},
		{hw, -hh, rect.Max.X, rect.Max.Y},
		{-hw, -hh, rect.Min.X, rect.Max.Y},
	}
	verts := &a.drawBuf.verts
	for i, c := range corners {
		dx, dy := transformPoint(m, c[0], c[1])
		verts[i] = ebiten.Vertex{
			DstX:   float32(dx),
			DstY:   float32(dy),
			SrcX:   float32(c[2]),
			SrcY:   float32(c[3]),
			ColorR: float32(sp.Color.R),
			ColorG: float32(sp.Color.G),
			ColorB: float32(sp.Color.B),
			ColorA: float32(sp.Color.A),
		}
	}

	var op ebiten.DrawTrianglesOptions
	op.Filter = filterMode
	op.Address = ebiten.AddressClampToZero
	dst.DrawTriangles(verts[:], quadIndices, src, &op)
}
