package engine

import (
	"math"
	"testing"

	"github.com/yohamta/donburi"
)

const epsilon = 1e-9

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertMatrix(t *testing.T, name string, got, want [6]float64) {
	t.Helper()
	for i := range got {
		if math.Abs(got[i]-want[i]) > epsilon {
			t.Errorf("%s[%d] = %v, want %v (full: %v vs %v)", name, i, got[i], want[i], got, want)
		}
	}
}

func spawn(w donburi.World, x, y float64) donburi.Entity {
	e := w.Create(TransformComponent, GlobalTransformComponent)
	TransformComponent.SetValue(w.Entry(e), NewTransform(x, y))
	return e
}

// --- localMatrix ---

func TestLocalMatrixIdentity(t *testing.T) {
	tr := NewTransform(0, 0)
	assertMatrix(t, "identity", localMatrix(&tr), identityTransform)
}

func TestLocalMatrixTranslation(t *testing.T) {
	tr := NewTransform(10, 20)
	assertMatrix(t, "translation", localMatrix(&tr), [6]float64{1, 0, 0, 1, 10, 20})
}

func TestLocalMatrixScale(t *testing.T) {
	tr := NewTransform(0, 0)
	tr.LocalScale.X, tr.LocalScale.Y = 2, 3
	assertMatrix(t, "scale", localMatrix(&tr), [6]float64{2, 0, 0, 3, 0, 0})
}

func TestLocalMatrixRotation90(t *testing.T) {
	tr := NewTransform(0, 0)
	tr.LocalRotation = 90
	// Counter-clockwise in a Y-up world: +X maps to +Y.
	x, y := transformPoint(localMatrix(&tr), 1, 0)
	assertNear(t, "x", x, 0)
	assertNear(t, "y", y, 1)
}

// --- multiplyAffine ---

func TestMultiplyAffineIdentity(t *testing.T) {
	id := identityTransform
	m := [6]float64{2, 1, 3, 4, 5, 6}
	assertMatrix(t, "id*m", multiplyAffine(id, m), m)
	assertMatrix(t, "m*id", multiplyAffine(m, id), m)
}

func TestMultiplyAffineTranslations(t *testing.T) {
	a := [6]float64{1, 0, 0, 1, 10, 20}
	b := [6]float64{1, 0, 0, 1, 5, 3}
	assertMatrix(t, "translations", multiplyAffine(a, b), [6]float64{1, 0, 0, 1, 15, 23})
}

// --- invertAffine ---

func TestInvertAffine(t *testing.T) {
	m := [6]float64{2, 0, 0, 3, 10, 20}
	assertMatrix(t, "m*inv=id", multiplyAffine(m, invertAffine(m)), identityTransform)
}

func TestInvertAffineRotatedScaled(t *testing.T) {
	tr := NewTransform(4, -7)
	tr.LocalScale.X = 2
	tr.LocalRotation = 60
	m := localMatrix(&tr)
	assertMatrix(t, "m*inv=id", multiplyAffine(m, invertAffine(m)), identityTransform)
}

func TestInvertAffineSingularReturnsIdentity(t *testing.T) {
	m := [6]float64{0, 0, 0, 1, 10, 20}
	assertMatrix(t, "singular", invertAffine(m), identityTransform)
}

// --- hierarchy ---

func TestWorldTransformParentChild(t *testing.T) {
	w := donburi.NewWorld()
	parent := spawn(w, 100, 50)
	child := spawn(w, 10, 5)
	SetParent(w, child, parent)

	g, ok := WorldTransform(w, child)
	if !ok {
		t.Fatal("WorldTransform reported false")
	}
	assertNear(t, "x", g.Translation().X, 110)
	assertNear(t, "y", g.Translation().Y, 55)
}

func TestWorldTransformAddsDepth(t *testing.T) {
	w := donburi.NewWorld()
	parent := spawn(w, 0, 0)
	w.Entry(parent).AddComponent(DepthComponent)
	DepthComponent.SetValue(w.Entry(parent), 2)
	child := spawn(w, 0, 0)
	w.Entry(child).AddComponent(DepthComponent)
	DepthComponent.SetValue(w.Entry(child), -1)
	SetParent(w, child, parent)

	g, _ := WorldTransform(w, child)
	assertNear(t, "z", g.Z, 1)
}

func TestWorldTransformRotatedParent(t *testing.T) {
	w := donburi.NewWorld()
	parent := spawn(w, 1, 0)
	TransformComponent.Get(w.Entry(parent)).LocalRotation = 90
	child := spawn(w, 2, 0)
	SetParent(w, child, parent)

	g, _ := WorldTransform(w, child)
	assertNear(t, "x", g.Translation().X, 1)
	assertNear(t, "y", g.Translation().Y, 2)
}

func TestWorldTransformInvalid(t *testing.T) {
	w := donburi.NewWorld()
	e := w.Create(SpriteComponent)
	if _, ok := WorldTransform(w, e); ok {
		t.Error("entity without Transform reported ok")
	}
	w.Remove(e)
	if _, ok := WorldTransform(w, e); ok {
		t.Error("removed entity reported ok")
	}
}

func TestDeepHierarchy(t *testing.T) {
	w := donburi.NewWorld()
	prev := spawn(w, 1, 0)
	for range 9 {
		e := spawn(w, 1, 0)
		SetParent(w, e, prev)
		prev = e
	}
	g, _ := WorldTransform(w, prev)
	assertNear(t, "x", g.Translation().X, 10)
}

func TestParentOfRemovedParent(t *testing.T) {
	w := donburi.NewWorld()
	TrackHierarchy(w)
	parent := spawn(w, 5, 5)
	child := spawn(w, 1, 1)
	SetParent(w, child, parent)
	w.Remove(parent)

	if _, ok := ParentOf(w, child); ok {
		t.Error("ParentOf reported a removed parent")
	}
	g, _ := WorldTransform(w, child)
	assertNear(t, "x", g.Translation().X, 1)
	pos, ok := WorldPosition(w, child)
	if !ok {
		t.Fatal("WorldPosition reported false")
	}
	assertNear(t, "position x", pos.X, 1)
}

func TestWorldPosition(t *testing.T) {
	w := donburi.NewWorld()
	root := spawn(w, 10, -4)
	mid := spawn(w, 0.5, 2)
	leaf := spawn(w, -3, 0.25)
	SetParent(w, mid, root)
	SetParent(w, leaf, mid)

	pos, ok := WorldPosition(w, leaf)
	if !ok {
		t.Fatal("WorldPosition reported false")
	}
	assertNear(t, "x", pos.X, 7.5)
	assertNear(t, "y", pos.Y, -1.75)

	// Translation-only chains agree with the full affine walk.
	g, _ := WorldTransform(w, leaf)
	assertNear(t, "affine x", g.Translation().X, pos.X)
	assertNear(t, "affine y", g.Translation().Y, pos.Y)
}

func TestWorldPositionInvalid(t *testing.T) {
	w := donburi.NewWorld()
	e := w.Create(SpriteComponent)
	if _, ok := WorldPosition(w, e); ok {
		t.Error("entity without Transform reported ok")
	}
	w.Remove(e)
	if _, ok := WorldPosition(w, e); ok {
		t.Error("removed entity reported ok")
	}
}

func TestWorldPositionAncestorWithoutTransform(t *testing.T) {
	w := donburi.NewWorld()
	parent := spawn(w, 5, 5)
	child := spawn(w, 1, 1)
	SetParent(w, child, parent)
	w.Entry(parent).RemoveComponent(TransformComponent)

	if _, ok := WorldPosition(w, child); ok {
		t.Error("chain through a Transform-less parent reported ok")
	}
	g, _ := WorldTransform(w, child)
	assertNear(t, "x", g.Translation().X, 1)
}

func TestSetParentWithoutTransformPanics(t *testing.T) {
	w := donburi.NewWorld()
	child := spawn(w, 0, 0)
	parent := w.Create(SpriteComponent)
	defer func() {
		if recover() == nil {
			t.Error("expected panic for a parent without Transform")
		}
	}()
	SetParent(w, child, parent)
}

func TestSetParentReplacesAndClears(t *testing.T) {
	w := donburi.NewWorld()
	a := spawn(w, 10, 0)
	b := spawn(w, 20, 0)
	child := spawn(w, 1, 0)

	SetParent(w, child, a)
	SetParent(w, child, b)
	if p, _ := ParentOf(w, child); p != b {
		t.Errorf("parent = %v, want %v", p, b)
	}
	ClearParent(w, child)
	if _, ok := ParentOf(w, child); ok {
		t.Error("ClearParent left a parent")
	}
}

func TestSetParentCyclePanics(t *testing.T) {
	w := donburi.NewWorld()
	a := spawn(w, 0, 0)
	b := spawn(w, 0, 0)
	SetParent(w, b, a)
	defer func() {
		if recover() == nil {
			t.Error("expected panic for a parent cycle")
		}
	}()
	SetParent(w, a, b)
}

func TestPropagateTransforms(t *testing.T) {
	app := NewApp()
	w := app.World
	parent := spawn(w, 3, 4)
	child := spawn(w, 1, 1)
	SetParent(w, child, parent)

	PropagateTransforms(app)

	g := GlobalTransformComponent.Get(w.Entry(child))
	assertNear(t, "x", g.Translation().X, 4)
	assertNear(t, "y", g.Translation().Y, 5)
}
