package pixelcam

import (
	"fmt"

	"github.com/phanxgames/pixelcam/engine"
)

// PhaseUpdatePixelCamera runs right after engine.Update, so the steps see
// the frame's final game-state transforms, and before PostUpdate
// propagation and drawing.
const PhaseUpdatePixelCamera engine.Phase = "UpdatePixelCamera"

// Steps returns the per-frame steps in the order they must run.
func Steps() []engine.System {
	return []engine.System{
		engine.SystemFunc(SyncCanvasSprite),
		engine.SystemFunc(ResizeTargets),
		engine.SystemFunc(UpdateCameraProjection),
		engine.SystemFunc(ResetCanvasRect),
		engine.SystemFunc(SmoothCanvasRect),
		engine.SystemFunc(SnapCameraPositions),
	}
}

// Plugin inserts PhaseUpdatePixelCamera after engine.Update and registers
// Steps in it. Add it once per App.
type Plugin struct{}

// Build implements engine.Plugin.
func (Plugin) Build(app *engine.App) error {
	if err := app.Schedule.InsertAfter(engine.Update, PhaseUpdatePixelCamera); err != nil {
		return fmt.Errorf("pixelcam: %w", err)
	}
	if err := app.Schedule.AddSystems(PhaseUpdatePixelCamera, Steps()...); err != nil {
		return fmt.Errorf("pixelcam: %w", err)
	}
	return nil
}
