package app

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/rimiko/showcase/internal/config"
	"github.com/rimiko/showcase/internal/page"
	"github.com/rimiko/showcase/internal/renderer/backend"
)

// Run starts the application and blocks until the user quits, ctx is
// cancelled or Shutdown is called. Terminal events are read on a separate
// goroutine; everything else happens here.
func (app *Application) Run(ctx context.Context) error {
	if app.backend == nil {
		return ErrNoBackend
	}
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	if err := app.backend.Init(); err != nil {
		return &InitError{Component: "backend", Err: err}
	}
	defer app.backend.Shutdown()
	defer app.shutdown()

	stop := make(chan struct{})
	defer func() {
		close(stop)
		app.backend.Interrupt()
	}()

	w, h := app.backend.Size()
	app.Resize(w, h)
	if anchor := app.cfg.Page.Anchor; anchor != "" {
		app.Navigate(anchor)
	}
	app.lastFrame = app.clock.Now()
	app.Render()

	events := make(chan backend.Event, 64)
	go app.pollEvents(events, stop)

	ticker := time.NewTicker(app.cfg.FrameInterval())
	defer ticker.Stop()

	var updates <-chan config.Update
	if app.watcher != nil {
		updates = app.watcher.Updates()
	}

	app.logger.Info("showcase started",
		zap.Int("width", w),
		zap.Int("height", h),
		zap.String("lang", string(app.tr.Language())),
	)

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-app.done:
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if err := app.HandleEvent(ev); err != nil {
				if errors.Is(err, ErrQuit) {
					return nil
				}
				return err
			}
		case <-ticker.C:
			app.Frame(app.clock.Now())
		case r := <-app.replies:
			app.deliverReply(r)
		case u, ok := <-updates:
			if !ok {
				updates = nil
				continue
			}
			if app.applyUpdate(u) {
				ticker.Reset(app.cfg.FrameInterval())
			}
		}
	}
}

// pollEvents forwards backend events until the backend shuts down or stop
// is closed.
func (app *Application) pollEvents(events chan<- backend.Event, stop <-chan struct{}) {
	defer close(events)
	for {
		ev := app.backend.PollEvent()
		switch ev.Type {
		case backend.EventNone:
			return
		case backend.EventInterrupt:
			select {
			case <-stop:
				return
			default:
				continue
			}
		}
		select {
		case events <- ev:
		case <-stop:
			return
		}
	}
}

// Frame advances every animation to now and redraws when anything
// changed. now is on the frame clock.
func (app *Application) Frame(now time.Duration) {
	dt := now - app.lastFrame
	if dt < 0 {
		dt = 0
	}
	app.lastFrame = now

	if app.loop.Tick(now) > 0 {
		app.dirty = true
	}
	if app.scroller.Update(dt) {
		app.refreshPage()
		app.dirty = true
	}
	if app.typer.Advance(now) {
		app.dirty = true
	}
	for _, c := range app.stats {
		if c.Advance(now) {
			app.dirty = true
		}
	}
	if app.status != "" && now >= app.statusUntil {
		app.status = ""
		app.dirty = true
	}
	if app.dirty {
		app.Render()
	}
}

// refreshPage updates the scroll-driven page state.
func (app *Application) refreshPage() {
	y, vh := app.scroller.Y(), app.viewportHeight()
	app.active.Update(app.layout, y, vh)
	for _, id := range app.reveal.Update(app.layout, y, vh) {
		app.logger.Debug("section revealed", zap.String("section", id))
		if id == sectionResources {
			now := app.clock.Now()
			for _, c := range app.stats {
				c.Start(now)
			}
		}
	}
}

// applyUpdate swaps in a reloaded configuration. Card geometry and chat
// settings are fixed at startup; tuning and page settings apply at once.
func (app *Application) applyUpdate(u config.Update) bool {
	if u.Err != nil {
		app.logger.Warn("config reload failed", zap.Error(u.Err))
		return false
	}
	g, err := page.NewGradient(u.Config.Page.Gradient...)
	if err != nil {
		app.logger.Warn("config reload failed", zap.Error(err))
		return false
	}
	app.cfg = u.Config
	app.gradient = g
	app.carousel.SetConfig(app.cfg.CarouselTuning())
	app.scroller.SetSmoothScroll(app.cfg.Page.SmoothScroll)
	app.dirty = true
	app.logger.Info("configuration reloaded")
	return true
}
