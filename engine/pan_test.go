package engine

import (
	"testing"

	"github.com/tanema/gween/ease"
)

func TestPanToReachesTarget(t *testing.T) {
	app := NewApp()
	app.Time.FixedDelta = 0.1
	app.AddSystems(Update, SystemFunc(AdvancePans))
	e := spawn(app.World, 0, 0)

	PanTo(app.World, e, 4, -2, 0.5, ease.Linear)
	if !Panning(app.World, e) {
		t.Fatal("Panning = false after PanTo")
	}

	_ = app.Update()
	pos := TransformComponent.Get(app.World.Entry(e)).LocalPosition
	if !approxEqual(pos.X, 0.8, 1e-5) || !approxEqual(pos.Y, -0.4, 1e-5) {
		t.Errorf("after one step = (%v, %v), want (0.8, -0.4)", pos.X, pos.Y)
	}

	for range 10 {
		_ = app.Update()
	}
	pos = TransformComponent.Get(app.World.Entry(e)).LocalPosition
	if !approxEqual(pos.X, 4, 1e-5) || !approxEqual(pos.Y, -2, 1e-5) {
		t.Errorf("final = (%v, %v), want (4, -2)", pos.X, pos.Y)
	}
	if Panning(app.World, e) {
		t.Error("Panning = true after the pan finished")
	}
}

func TestPanToReplaces(t *testing.T) {
	app := NewApp()
	app.Time.FixedDelta = 1
	app.AddSystems(Update, SystemFunc(AdvancePans))
	e := spawn(app.World, 0, 0)

	PanTo(app.World, e, 10, 0, 5, nil)
	PanTo(app.World, e, 0, 3, 1, nil)
	_ = app.Update()

	pos := TransformComponent.Get(app.World.Entry(e)).LocalPosition
	if !approxEqual(pos.X, 0, 1e-5) || !approxEqual(pos.Y, 3, 1e-5) {
		t.Errorf("position = (%v, %v), want (0, 3)", pos.X, pos.Y)
	}
}

func TestPanToWithoutTransformIsNoop(t *testing.T) {
	app := NewApp()
	e := app.World.Create(SpriteComponent)
	PanTo(app.World, e, 1, 1, 1, nil)
	if Panning(app.World, e) {
		t.Error("pan attached to an entity without Transform")
	}
}
