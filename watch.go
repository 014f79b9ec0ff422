package pixelcam

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/phanxgames/pixelcam/engine"
	"github.com/yohamta/donburi"
)

// reloadDelay coalesces bursts of writes; editors often save in several
// steps.
const reloadDelay = 100 * time.Millisecond

// ConfigWatcher reloads a canvas's Config from a YAML file when the file
// changes. The watcher goroutine only parses; Update applies the newest
// config on the frame goroutine.
type ConfigWatcher struct {
	path    string
	canvas  donburi.Entity
	watcher *fsnotify.Watcher
	pending chan Config
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

// WatchConfig starts watching path for changes targeting canvas. The
// directory is watched rather than the file so that editors replacing the
// file on save keep triggering reloads. Call Update once per frame, or use
// Watch to register it.
func WatchConfig(path string, canvas donburi.Entity) (*ConfigWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("pixelcam: watch %s: %w", path, err)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("pixelcam: watch %s: %w", path, err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("pixelcam: watch %s: %w", path, err)
	}
	cw := &ConfigWatcher{
		path:    abs,
		canvas:  canvas,
		watcher: fw,
		pending: make(chan Config, 1),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go cw.run()
	return cw, nil
}

// Watch is WatchConfig plus registering the watcher's Update in the
// PreUpdate phase of app.
func Watch(app *engine.App, path string, canvas donburi.Entity) (*ConfigWatcher, error) {
	cw, err := WatchConfig(path, canvas)
	if err != nil {
		return nil, err
	}
	if err := app.Schedule.AddSystems(engine.PreUpdate, cw); err != nil {
		_ = cw.Close()
		return nil, fmt.Errorf("pixelcam: %w", err)
	}
	return cw, nil
}

// Path returns the absolute path being watched.
func (cw *ConfigWatcher) Path() string {
	return cw.path
}

// Update applies the most recently reloaded config, if any. It implements
// engine.System.
func (cw *ConfigWatcher) Update(app *engine.App) {
	var cfg Config
	select {
	case cfg = <-cw.pending:
	default:
		return
	}
	if err := SetConfig(app.World, cw.canvas, cfg); err != nil {
		engine.Logger().Warn("pixelcam: apply reloaded config", "path", cw.path, "err", err)
		return
	}
	engine.Logger().Info("pixelcam: config reloaded", "path", cw.path,
		"pixels_per_unit", cfg.PixelsPerUnit, "width", cfg.Width, "height", cfg.Height)
}

// Close stops the watcher. Safe to call more than once.
func (cw *ConfigWatcher) Close() error {
	var err error
	cw.once.Do(func() {
		close(cw.closeCh)
		err = cw.watcher.Close()
		<-cw.done
	})
	return err
}

func (cw *ConfigWatcher) run() {
	defer close(cw.done)

	timer := time.NewTimer(reloadDelay)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case event, ok := <-cw.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != cw.path {
				continue
			}
			timer.Reset(reloadDelay)
		case <-timer.C:
			cw.reload()
		case err, ok := <-cw.watcher.Errors:
			if !ok {
				return
			}
			engine.Logger().Warn("pixelcam: config watcher", "path", cw.path, "err", err)
		case <-cw.closeCh:
			return
		}
	}
}

func (cw *ConfigWatcher) reload() {
	cfg, err := LoadConfig(cw.path)
	if err != nil {
		engine.Logger().Warn("pixelcam: reload config", "err", err)
		return
	}
	cw.offer(cfg)
}

// offer queues cfg for the next Update, replacing any config not yet
// applied.
func (cw *ConfigWatcher) offer(cfg Config) {
	for {
		select {
		case cw.pending <- cfg:
			return
		default:
		}
		select {
		case <-cw.pending:
		default:
		}
	}
}
