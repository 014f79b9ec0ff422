// Package pixelcam renders chosen layers of an [Ebitengine] game at a low,
// fixed pixel resolution and shows the result as an upscaled sprite inside
// the high-resolution scene.
//
// Three pieces work together:
//
//   - a pixel camera ([CreatePixelCamera]) renders its render layers into
//     an offscreen target image with nearest sampling,
//   - a pixel canvas ([CreatePixelCanvas]) is the sprite that displays that
//     target, sized in world units,
//   - [Plugin] adds the per-frame steps that keep the two in sync.
//
// # Quick start
//
//	app := engine.NewApp()
//	if err := app.AddPlugins(pixelcam.Plugin{}); err != nil {
//		log.Fatal(err)
//	}
//	target := pixelcam.CreateTarget(app)
//	cam := pixelcam.CreatePixelCamera(app, target, engine.Layer(1))
//	canvas := pixelcam.CreatePixelCanvas(app, pixelcam.NewConfig(8, 8, 4), target, cam, engine.Layer(0))
//
// The canvas shows 8x4 world units; one world unit is 8 target pixels. The
// target is allocated 2 pixels larger on each axis than the visible area,
// see [TargetExtent].
//
// # Snapping and smoothing
//
// A pixel camera that follows a moving parent produces a shimmering image
// because the low-resolution scene is resampled at a different sub-pixel
// offset every frame. [EnableSnapping] locks the camera to whole target
// pixels. [EnableSmoothing] then shifts the canvas's crop rectangle by the
// discarded fraction, so the image still moves continuously on screen.
// Both read the position of the entity's parent; parent the camera and the
// canvas to the same entity (usually the main camera).
//
// # Step order
//
// The steps run in [PhaseUpdatePixelCamera], right after engine.Update:
//
//  1. [SyncCanvasSprite]
//  2. [ResizeTargets]
//  3. [UpdateCameraProjection]
//  4. [ResetCanvasRect]
//  5. [SmoothCanvasRect]
//  6. [SnapCameraPositions]
//
// # Configuration
//
// A canvas's [Config] can be changed at runtime with [SetConfig], loaded
// from YAML with [LoadConfig], or hot-reloaded with [Watch]:
//
//	pixels_per_unit: 8
//	display_width: 8
//	display_height: 4
//
// Logging goes through engine.SetLogger; nothing is logged by default.
//
// [Ebitengine]: https://ebitengine.org
package pixelcam
