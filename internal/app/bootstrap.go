package app

import (
	"context"

	"go.uber.org/zap"

	"github.com/rimiko/showcase/internal/carousel"
	"github.com/rimiko/showcase/internal/carousel/frame"
	"github.com/rimiko/showcase/internal/carousel/strip"
	"github.com/rimiko/showcase/internal/chat"
	"github.com/rimiko/showcase/internal/config"
	"github.com/rimiko/showcase/internal/i18n"
	"github.com/rimiko/showcase/internal/page"
	"github.com/rimiko/showcase/internal/pref"
	"github.com/rimiko/showcase/internal/typewriter"
)

// bootstrap initializes all components in dependency order.
func (app *Application) bootstrap() error {
	// 1. Configuration
	loader := config.NewLoader(app.opts.ConfigPath)
	app.cfg = app.opts.Config
	if app.cfg == nil {
		cfg, err := loader.Load()
		if err != nil {
			return &InitError{Component: "config", Err: err}
		}
		app.cfg = cfg
	}

	// 2. Logging
	app.logger = app.opts.Logger
	if app.logger == nil {
		logger, err := NewLogger(app.cfg.Log)
		if err != nil {
			return &InitError{Component: "logger", Err: err}
		}
		app.logger = logger
	}

	// 3. Preferences and translations
	app.prefs = app.opts.Prefs
	if app.prefs == nil {
		app.prefs = pref.NewMemoryStore()
	}
	tr, err := i18n.New(app.prefs)
	if err != nil {
		return &InitError{Component: "i18n", Err: err}
	}
	app.tr = tr

	// 4. Frame scheduling and the carousel
	app.clock = app.opts.Clock
	if app.clock == nil {
		app.clock = frame.NewSystemClock()
	}
	app.loop = frame.NewLoop()
	app.strip = strip.New(productCards(), app.cfg.Strip.CardWidth, app.cfg.Strip.Gap, 0)
	app.carousel = carousel.New(app.strip, app.loop, app.clock,
		carousel.WithConfig(app.cfg.CarouselTuning()),
		carousel.WithLogger(WithComponent(app.logger, "carousel")),
		carousel.OnAffordanceChange(func(carousel.Affordance) { app.dirty = true }),
	)

	// 5. Page
	app.layout = pageLayout()
	app.scroller = page.NewScroller(app.layout.Height(), 0)
	app.scroller.SetSmoothScroll(app.cfg.Page.SmoothScroll)
	app.reveal = page.NewRevealer(app.cfg.Page.RevealAllowance)
	app.gradient, err = page.NewGradient(app.cfg.Page.Gradient...)
	if err != nil {
		return &InitError{Component: "page", Err: err}
	}

	// 6. Hero typewriter
	phrases := app.cfg.Typewriter.Phrases
	if len(phrases) == 0 {
		phrases = typewriter.DefaultPhrases
	}
	app.typer = typewriter.New(phrases, app.cfg.TypewriterTimings())
	app.typer.Start(app.clock.Now())
	app.stats = []*page.Counter{
		page.NewCounter(resourceCount, page.DefaultCountDuration),
		page.NewCounter(len(productCards()), page.DefaultCountDuration),
		page.NewCounter(len(i18n.Supported()), page.DefaultCountDuration),
	}

	// 7. Chat
	if err := app.bootstrapChat(); err != nil {
		return &InitError{Component: "chat", Err: err}
	}

	// 8. Config live reload
	if app.opts.Watch && app.opts.ConfigPath != "" {
		w, err := config.NewWatcher(loader, 0)
		if err != nil {
			app.logger.Warn("config live reload disabled", zap.Error(err))
		} else {
			app.watcher = w
		}
	}

	app.tr.OnChange(func(lang i18n.Language) {
		app.locale.set(lang)
		app.dirty = true
	})
	app.dirty = true
	return nil
}

func (app *Application) bootstrapChat() error {
	app.locale = newChatLocale(app.tr)
	logger := WithComponent(app.logger, "chat")

	opts := []chat.Option{
		chat.WithLogger(logger),
		chat.WithTimeout(app.cfg.ChatTimeout()),
		chat.WithSystemPrompt(app.cfg.Chat.SystemPrompt),
	}

	completer := app.opts.Completer
	if completer == nil {
		c, err := chat.NewCompleter(context.Background(), app.cfg.ChatProvider())
		if err != nil {
			// Without a provider the widget still answers from its rules.
			logger.Warn("remote chat disabled", zap.Error(err))
		}
		completer = c
	}
	if completer != nil {
		opts = append(opts, chat.WithCompleter(completer))
	}

	if path := app.cfg.Chat.Script; path != "" {
		s, err := chat.LoadScript(path, 0)
		if err != nil {
			logger.Warn("chat rule script disabled", zap.String("path", path), zap.Error(err))
		} else {
			app.chat.script = s
			opts = append(opts, chat.WithScript(s))
		}
	}

	bot, err := chat.New(app.locale, opts...)
	if err != nil {
		return err
	}
	app.bot = bot
	return nil
}
