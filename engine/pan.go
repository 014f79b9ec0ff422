package engine

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

// Pan animates an entity's local position toward a target. Attach it with PanTo;
// AdvancePans removes it once both axes finish.
type Pan struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

var PanComponent = donburi.NewComponentType[Pan]()

// PanTo starts moving e's Transform from its current local position to
// (x, y) over duration seconds. Replaces a pan already in progress. No-op if
// e is invalid or has no Transform.
func PanTo(w donburi.World, e donburi.Entity, x, y float64, duration float32, easeFn ease.TweenFunc) {
	if !w.Valid(e) {
		return
	}
	entry := w.Entry(e)
	if !entry.HasComponent(TransformComponent) {
		return
	}
	if easeFn == nil {
		easeFn = ease.Linear
	}
	t := TransformComponent.Get(entry)
	p := Pan{
		tweenX: gween.New(float32(t.LocalPosition.X), float32(x), duration, easeFn),
		tweenY: gween.New(float32(t.LocalPosition.Y), float32(y), duration, easeFn),
	}
	if !entry.HasComponent(PanComponent) {
		entry.AddComponent(PanComponent)
	}
	PanComponent.SetValue(entry, p)
}

// Panning reports whether e has a pan in progress.
func Panning(w donburi.World, e donburi.Entity) bool {
	return w.Valid(e) && w.Entry(e).HasComponent(PanComponent)
}

var panQuery = donburi.NewQuery(filter.Contains(PanComponent, TransformComponent))

// AdvancePans steps every active pan by the frame delta. Registered in the
// Update phase by the caller.
func AdvancePans(app *App) {
	dt := float32(app.Time.Delta)
	var finished []*donburi.Entry
	panQuery.Each(app.World, func(entry *donburi.Entry) {
		p := PanComponent.Get(entry)
		t := TransformComponent.Get(entry)
		if !p.doneX {
			v, done := p.tweenX.Update(dt)
			t.LocalPosition.X = float64(v)
			p.doneX = done
		}
		if !p.doneY {
			v, done := p.tweenY.Update(dt)
			t.LocalPosition.Y = float64(v)
			p.doneY = done
		}
		if p.doneX && p.doneY {
			finished = append(finished, entry)
		}
	})
	// Structural changes are deferred until iteration ends.
	for _, entry := range finished {
		entry.RemoveComponent(PanComponent)
	}
}
