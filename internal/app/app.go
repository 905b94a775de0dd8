package app

import (
	"context"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/rimiko/showcase/internal/carousel"
	"github.com/rimiko/showcase/internal/carousel/frame"
	"github.com/rimiko/showcase/internal/carousel/strip"
	"github.com/rimiko/showcase/internal/chat"
	"github.com/rimiko/showcase/internal/config"
	"github.com/rimiko/showcase/internal/i18n"
	"github.com/rimiko/showcase/internal/input/mouse"
	"github.com/rimiko/showcase/internal/page"
	"github.com/rimiko/showcase/internal/pref"
	"github.com/rimiko/showcase/internal/renderer/backend"
	"github.com/rimiko/showcase/internal/renderer/core"
	"github.com/rimiko/showcase/internal/typewriter"
)

// Application is the interactive showcase. All state below is owned by the
// goroutine running Run; only the chat worker and config watcher run
// elsewhere and they report back through channels.
type Application struct {
	opts   Options
	cfg    *config.Config
	logger *zap.Logger

	backend backend.Backend
	prefs   pref.Store
	tr      *i18n.Translator

	clock    frame.Clock
	loop     *frame.Loop
	strip    *strip.Strip
	carousel *carousel.Controller

	scroller *page.Scroller
	layout   page.Layout
	active   page.ActiveTracker
	reveal   *page.Revealer
	gradient page.Gradient

	typer *typewriter.Typewriter
	stats []*page.Counter

	bot     *chat.Bot
	locale  *chatLocale
	chat    chatWidget
	replies chan chat.Reply

	mouse       *mouse.Handler
	pointerDown bool
	zones       []zone
	chatRect    core.Rect

	width, height int
	lastFrame     time.Duration
	dirty         bool

	status      string
	statusUntil time.Duration

	watcher *config.Watcher

	running atomic.Bool
	done    chan struct{}
}

// Options configures a new Application.
type Options struct {
	// ConfigPath is the TOML config file; empty uses built-in defaults.
	ConfigPath string

	// Config bypasses loading when set.
	Config *config.Config

	// Prefs stores the language preference; nil keeps it in memory.
	Prefs pref.Store

	// Logger overrides the logger built from the config.
	Logger *zap.Logger

	// Clock overrides the frame clock, for tests.
	Clock frame.Clock

	// Completer overrides the remote chat provider from the config.
	Completer chat.Completer

	// Watch reloads the config file when it changes.
	Watch bool

	// OpenLink handles resource links that are not page anchors. When nil
	// the link is only shown on the help line.
	OpenLink func(target string) error
}

// New creates an Application and all of its components.
func New(opts Options) (*Application, error) {
	app := &Application{
		opts:    opts,
		done:    make(chan struct{}),
		replies: make(chan chat.Reply, 1),
		mouse:   mouse.NewHandler(mouse.DefaultConfig()),
	}

	if err := app.bootstrap(); err != nil {
		return nil, err
	}

	return app, nil
}

// SetBackend sets the terminal backend.
// Must be called before Run().
func (app *Application) SetBackend(b backend.Backend) error {
	if app.running.Load() {
		return ErrAlreadyRunning
	}
	app.backend = b
	return nil
}

// Config returns the configuration in effect.
func (app *Application) Config() *config.Config {
	return app.cfg
}

// Translator returns the translator.
func (app *Application) Translator() *i18n.Translator {
	return app.tr
}

// Carousel returns the product carousel controller.
func (app *Application) Carousel() *carousel.Controller {
	return app.carousel
}

// Strip returns the product strip.
func (app *Application) Strip() *strip.Strip {
	return app.strip
}

// Scroller returns the page scroller.
func (app *Application) Scroller() *page.Scroller {
	return app.scroller
}

// Typewriter returns the hero typewriter.
func (app *Application) Typewriter() *typewriter.Typewriter {
	return app.typer
}

// Stats returns the resource counters in display order.
func (app *Application) Stats() []*page.Counter {
	return app.stats
}

// Status returns the transient notice shown on the help line, if any.
func (app *Application) Status() string {
	return app.status
}

// ActiveSection returns the highlighted navigation section.
func (app *Application) ActiveSection() string {
	return app.active.Active()
}

// IsRunning returns true if the application is running.
func (app *Application) IsRunning() bool {
	return app.running.Load()
}

// Shutdown asks Run to return.
func (app *Application) Shutdown() {
	if !app.running.Load() {
		return
	}
	select {
	case <-app.done:
	default:
		close(app.done)
	}
}

// shutdown releases what bootstrap acquired.
func (app *Application) shutdown() {
	app.carousel.Stop()
	if app.watcher != nil {
		if err := app.watcher.Close(); err != nil {
			app.logger.Warn("closing config watcher", zap.Error(err))
		}
	}
	if app.chat.script != nil {
		_ = app.chat.script.Close()
	}
	_ = app.logger.Sync()
}

// withTimeout bounds background chat requests by the remote timeout plus
// a small margin for the local rules.
func (app *Application) withTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), app.cfg.ChatTimeout()+time.Second)
}
