package engine

import (
	"testing"

	"github.com/yohamta/donburi"
)

func spawnSprite(w donburi.World, x, y float64, layers RenderLayers) donburi.Entity {
	e := w.Create(SpriteComponent, TransformComponent, GlobalTransformComponent, LayersComponent)
	entry := w.Entry(e)
	TransformComponent.SetValue(entry, NewTransform(x, y))
	LayersComponent.SetValue(entry, layers)
	return e
}

func TestCollectSpritesDrawsPropagatedPlacement(t *testing.T) {
	app := NewApp()
	w := app.World
	e := spawnSprite(w, 1, 2, Layer(0))
	// The local transform is stale until propagation; the renderer must not
	// recompute it.
	GlobalTransformComponent.SetValue(w.Entry(e), GlobalTransform{Matrix: [6]float64{1, 0, 0, 1, 7, 9}, Z: 3})

	got := app.collectSprites(Layer(0))
	if len(got) != 1 {
		t.Fatalf("collected %d sprites, want 1", len(got))
	}
	assertMatrix(t, "world", got[0].world, [6]float64{1, 0, 0, 1, 7, 9})
	assertNear(t, "z", got[0].z, 3)
}

func TestCollectSpritesAfterPropagation(t *testing.T) {
	app := NewApp()
	w := app.World
	parent := spawn(w, 3, 4)
	child := spawnSprite(w, 1, 1, Layer(0))
	SetParent(w, child, parent)

	PropagateTransforms(app)

	got := app.collectSprites(Layer(0))
	if len(got) != 1 {
		t.Fatalf("collected %d sprites, want 1", len(got))
	}
	assertNear(t, "x", got[0].world[4], 4)
	assertNear(t, "y", got[0].world[5], 5)
}

func TestCollectSpritesOrderAndLayers(t *testing.T) {
	app := NewApp()
	w := app.World
	tests := []struct {
		z      float64
		layers RenderLayers
	}{
		{2, Layer(0)},
		{-1, Layer(0)},
		{5, Layer(1)},
		{2, Layer(0).With(1)},
		{0, Layer(0)},
	}
	for i, tt := range tests {
		e := spawnSprite(w, 0, 0, tt.layers)
		g := GlobalTransformComponent.Get(w.Entry(e))
		g.Z = tt.z
		g.Matrix[4] = float64(i)
	}

	got := app.collectSprites(Layer(0))
	wantZ := []float64{-1, 0, 2, 2}
	if len(got) != len(wantZ) {
		t.Fatalf("collected %d sprites, want %d", len(got), len(wantZ))
	}
	for i, z := range wantZ {
		assertNear(t, "z", got[i].z, z)
	}
	// Equal Z keeps creation order.
	assertNear(t, "first z=2 sprite", got[2].world[4], 0)
	assertNear(t, "second z=2 sprite", got[3].world[4], 3)

	if got := app.collectSprites(Layer(1)); len(got) != 2 {
		t.Errorf("layer 1 collected %d sprites, want 2", len(got))
	}
}

func TestCameraWorld(t *testing.T) {
	w := donburi.NewWorld()
	bare := w.Entry(w.Create(CameraComponent))
	assertMatrix(t, "no global transform", cameraWorld(bare), identityTransform)

	e := w.Create(CameraComponent, TransformComponent, GlobalTransformComponent)
	entry := w.Entry(e)
	TransformComponent.SetValue(entry, NewTransform(100, 100))
	GlobalTransformComponent.SetValue(entry, GlobalTransform{Matrix: [6]float64{1, 0, 0, 1, 2, -3}})
	assertMatrix(t, "propagated", cameraWorld(entry), [6]float64{1, 0, 0, 1, 2, -3})
}
