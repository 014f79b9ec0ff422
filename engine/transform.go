package engine

import (
	"math"

	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/features/transform"
	"github.com/yohamta/donburi/filter"
)

// Transform is an entity's local placement relative to its parent: a
// position, a rotation in degrees and a scale. The world is Y-up.
type Transform = transform.TransformData

// NewTransform returns a transform at (x, y) with unit scale. Set it before
// parenting; a SetValue on a parented entity drops the parent link.
func NewTransform(x, y float64) Transform {
	return Transform{
		LocalPosition: dmath.NewVec2(x, y),
		LocalScale:    dmath.NewVec2(1, 1),
	}
}

// Depth orders sprites; higher is drawn later. A child's depth adds to its
// parent's.
type Depth float64

// GlobalTransform is the propagated world placement. PropagateTransforms
// writes it during PostUpdate and the renderer draws from it.
type GlobalTransform struct {
	Matrix [6]float64
	Z      float64
}

// Translation returns the world-space origin of the transform.
func (g GlobalTransform) Translation() Vec2 {
	return Vec2{g.Matrix[4], g.Matrix[5]}
}

var (
	TransformComponent       = transform.Transform
	DepthComponent           = donburi.NewComponentType[Depth]()
	GlobalTransformComponent = donburi.NewComponentType[GlobalTransform](GlobalTransform{Matrix: identityTransform})
)

// identityTransform is the identity affine matrix.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// maxHierarchyDepth bounds parent-chain walks. Deeper chains are treated as
// a cycle.
const maxHierarchyDepth = 64

// localMatrix computes Scale -> Rotate -> Translate. Returns [a, b, c, d, tx, ty].
func localMatrix(t *Transform) [6]float64 {
	sin, cos := math.Sincos(dmath.ToRadians(t.LocalRotation))
	sx, sy := t.LocalScale.X, t.LocalScale.Y
	return [6]float64{cos * sx, sin * sx, -sin * sy, cos * sy, t.LocalPosition.X, t.LocalPosition.Y}
}

// multiplyAffine multiplies two 2D affine matrices: result = parent * child.
//
//	Matrix layout: [a, b, c, d, tx, ty]
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
func multiplyAffine(p, c [6]float64) [6]float64 {
	return [6]float64{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// invertAffine computes the inverse of a 2D affine matrix.
// Returns the identity matrix if the matrix is singular.
func invertAffine(m [6]float64) [6]float64 {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return identityTransform
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return [6]float64{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// TrackHierarchy makes removing an entity detach its children, so no
// Transform is left pointing at a removed parent. NewApp installs it on the
// app's world.
func TrackHierarchy(w donburi.World) {
	w.OnRemove(func(w donburi.World, e donburi.Entity) {
		entry := w.Entry(e)
		if !entry.HasComponent(TransformComponent) {
			return
		}
		children, ok := transform.GetChildren(entry)
		if !ok {
			return
		}
		for _, c := range append([]*donburi.Entry(nil), children...) {
			if c.Valid() && c.HasComponent(TransformComponent) {
				transform.RemoveParent(c, false)
			}
		}
	})
}

// SetParent attaches child to parent, keeping child's local placement.
// Panics if either entity is invalid or lacks a Transform, or if the link
// would create a cycle.
func SetParent(w donburi.World, child, parent donburi.Entity) {
	if !w.Valid(child) || !w.Valid(parent) {
		panic("engine: SetParent on invalid entity")
	}
	ce, pe := w.Entry(child), w.Entry(parent)
	if !ce.HasComponent(TransformComponent) || !pe.HasComponent(TransformComponent) {
		panic("engine: SetParent on entity without Transform")
	}
	for p, depth := parent, 0; depth < maxHierarchyDepth; depth++ {
		if p == child {
			panic("engine: SetParent would create a cycle")
		}
		next, ok := ParentOf(w, p)
		if !ok {
			break
		}
		p = next
	}
	transform.ChangeParent(ce, pe, false)
}

// ClearParent detaches e from its parent. No-op if e has none.
func ClearParent(w donburi.World, e donburi.Entity) {
	if !w.Valid(e) {
		return
	}
	entry := w.Entry(e)
	if entry.HasComponent(TransformComponent) {
		transform.RemoveParent(entry, false)
	}
}

// ParentOf returns e's parent if e has one and it is still alive.
func ParentOf(w donburi.World, e donburi.Entity) (donburi.Entity, bool) {
	if !w.Valid(e) {
		return 0, false
	}
	entry := w.Entry(e)
	if !entry.HasComponent(TransformComponent) {
		return 0, false
	}
	p, ok := transform.GetParent(entry)
	if !ok {
		return 0, false
	}
	return p.Entity(), true
}

// WorldPosition returns e's world-space position: its local position plus
// every ancestor's. Rotation and scale are not applied; use WorldTransform
// for the full placement. Reports false if e or an ancestor has no
// Transform. Worlds whose parents may be removed need TrackHierarchy.
func WorldPosition(w donburi.World, e donburi.Entity) (Vec2, bool) {
	if !w.Valid(e) {
		return Vec2{}, false
	}
	entry := w.Entry(e)
	if !entry.HasComponent(TransformComponent) {
		return Vec2{}, false
	}
	cur := entry
	for depth := 0; depth < maxHierarchyDepth; depth++ {
		p, ok := transform.GetParent(cur)
		if !ok {
			break
		}
		if !p.HasComponent(TransformComponent) {
			return Vec2{}, false
		}
		cur = p
	}
	pos := transform.WorldPosition(entry)
	return Vec2{pos.X, pos.Y}, true
}

// WorldTransform computes e's world placement by walking the parent chain.
// Unlike GlobalTransform it always reflects the current local transforms,
// so systems that run before PostUpdate see this frame's values.
// Reports false if e is invalid or has no Transform.
func WorldTransform(w donburi.World, e donburi.Entity) (GlobalTransform, bool) {
	if !w.Valid(e) {
		return GlobalTransform{}, false
	}
	entry := w.Entry(e)
	if !entry.HasComponent(TransformComponent) {
		return GlobalTransform{}, false
	}
	g := GlobalTransform{Matrix: localMatrix(TransformComponent.Get(entry)), Z: depthOf(entry)}

	cur := entry
	for depth := 0; depth < maxHierarchyDepth; depth++ {
		p, ok := transform.GetParent(cur)
		if !ok || !p.HasComponent(TransformComponent) {
			break
		}
		g.Matrix = multiplyAffine(localMatrix(TransformComponent.Get(p)), g.Matrix)
		g.Z += depthOf(p)
		cur = p
	}
	return g, true
}

func depthOf(entry *donburi.Entry) float64 {
	if !entry.HasComponent(DepthComponent) {
		return 0
	}
	return float64(*DepthComponent.Get(entry))
}

var transformQuery = donburi.NewQuery(filter.Contains(TransformComponent, GlobalTransformComponent))

// PropagateTransforms refreshes every GlobalTransform from the hierarchy.
// Registered in PostUpdate by NewApp.
func PropagateTransforms(app *App) {
	w := app.World
	transformQuery.Each(w, func(entry *donburi.Entry) {
		g, ok := WorldTransform(w, entry.Entity())
		if !ok {
			return
		}
		GlobalTransformComponent.SetValue(entry, g)
	})
}
