// Package engine is the host runtime that pixelcam plugs into.
//
// It pairs a [Donburi] world with an Ebitengine game loop:
//
//   - [App] owns the world, an [Assets] table of images and a [Schedule] of
//     named phases (First, PreUpdate, Update, PostUpdate, Last).
//   - Entities carry [Transform], [Depth], [Sprite], [Camera],
//     [Orthographic] and [RenderLayers] components. Transforms and their
//     parent links come from donburi's features/transform package;
//     PropagateTransforms bakes them into [GlobalTransform] for drawing.
//   - Cameras render, in ascending order, the sprites that share a render
//     layer with them, into an asset image or the screen.
//
// Plugins add phases and systems:
//
//	app := engine.NewApp()
//	if err := app.AddPlugins(pixelcam.Plugin{}); err != nil {
//		log.Fatal(err)
//	}
//	app.AddSystems(engine.Update, engine.SystemFunc(move))
//	log.Fatal(app.Run(engine.RunConfig{Title: "demo", Width: 1280, Height: 720}))
//
// The world is Y-up. Image space (sprite source rects, offscreen targets) is
// Y-down with the origin at the top-left pixel corner.
//
// [Donburi]: https://github.com/yohamta/donburi
package engine
