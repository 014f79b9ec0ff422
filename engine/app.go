package engine

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// Plugin bundles setup that registers phases and systems on an App.
type Plugin interface {
	Build(app *App) error
}

// PluginFunc adapts a plain function to Plugin.
type PluginFunc func(app *App) error

// Build calls f(app).
func (f PluginFunc) Build(app *App) error { return f(app) }

// Time tracks frame timing. Delta is fixed at 1/TPS unless FixedDelta is set.
type Time struct {
	Delta      float64
	Elapsed    float64
	Frame      uint64
	FixedDelta float64
}

func (t *Time) advance() {
	dt := t.FixedDelta
	if dt <= 0 {
		dt = 1.0 / float64(ebiten.TPS())
	}
	t.Delta = dt
	t.Elapsed += dt
	t.Frame++
}

// App owns the ECS world, the asset table and the phase schedule, and
// implements ebiten.Game.
type App struct {
	World    donburi.World
	Assets   *Assets
	Schedule *Schedule
	Time     Time

	// ClearColor fills the screen before cameras draw.
	ClearColor Color
	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir string

	screenshotQueue []string
	screenW         int
	screenH         int
	drawBuf         drawBuffers
}

// NewApp creates an App with the default phases, hierarchy tracking and
// transform propagation registered in PostUpdate.
func NewApp() *App {
	app := &App{
		World:         donburi.NewWorld(),
		Assets:        NewAssets(),
		Schedule:      NewSchedule(First, PreUpdate, Update, PostUpdate, Last),
		ScreenshotDir: "screenshots",
	}
	TrackHierarchy(app.World)
	if err := app.Schedule.AddSystems(PostUpdate, SystemFunc(PropagateTransforms)); err != nil {
		panic(err)
	}
	return app
}

// AddPlugins builds each plugin in order, stopping at the first error.
func (a *App) AddPlugins(plugins ...Plugin) error {
	for _, p := range plugins {
		if err := p.Build(a); err != nil {
			return fmt.Errorf("engine: build plugin %T: %w", p, err)
		}
	}
	return nil
}

// AddSystems registers systems in phase p. Panics on unknown phases; use
// Schedule.AddSystems to handle the error.
func (a *App) AddSystems(p Phase, systems ...System) *App {
	if err := a.Schedule.AddSystems(p, systems...); err != nil {
		panic(err)
	}
	return a
}

// Update advances time and runs every phase once.
func (a *App) Update() error {
	a.Time.advance()
	a.Schedule.Run(a)
	return nil
}

// Draw renders all active cameras in order, then flushes screenshots.
func (a *App) Draw(screen *ebiten.Image) {
	if a.ClearColor.A > 0 {
		screen.Fill(a.ClearColor.toRGBA())
	}
	a.render(screen)
	a.flushScreenshots(screen)
}

// Layout reports the outside size as the screen size, so one screen pixel
// is one device-independent pixel.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.screenW, a.screenH = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// RunConfig holds window settings for Run.
type RunConfig struct {
	Title     string
	Width     int
	Height    int
	Resizable bool
	TPS       int
}

// Run opens a window and runs the app's game loop. Blocks until the window
// closes.
func (a *App) Run(cfg RunConfig) error {
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	if cfg.Width > 0 && cfg.Height > 0 {
		ebiten.SetWindowSize(cfg.Width, cfg.Height)
	}
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	if cfg.TPS > 0 {
		ebiten.SetTPS(cfg.TPS)
	}
	return ebiten.RunGame(a)
}
