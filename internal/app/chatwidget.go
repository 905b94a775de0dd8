package app

import (
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/rimiko/showcase/internal/chat"
	"github.com/rimiko/showcase/internal/i18n"
	"github.com/rimiko/showcase/internal/renderer/backend"
)

// chatLocale is the bot's view of the translator. The bot answers on the
// chat worker goroutine, so it reads the immutable tables through In with
// a language copied under a lock.
type chatLocale struct {
	mu   sync.RWMutex
	lang i18n.Language
	tr   *i18n.Translator
}

func newChatLocale(tr *i18n.Translator) *chatLocale {
	return &chatLocale{lang: tr.Language(), tr: tr}
}

func (l *chatLocale) set(lang i18n.Language) {
	l.mu.Lock()
	l.lang = lang
	l.mu.Unlock()
}

func (l *chatLocale) Language() i18n.Language {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.lang
}

func (l *chatLocale) T(key string) string {
	return l.tr.In(l.Language(), key)
}

// chatLine is one rendered transcript line.
type chatLine struct {
	role chat.Role
	text string
}

// chatWidget is the chat panel state. The bot itself is only touched by
// the worker goroutine while busy is set.
type chatWidget struct {
	open   bool
	busy   bool
	input  []rune
	lines  []chatLine
	script *chat.Script
}

// OpenChat shows the chat panel, greeting on first open.
func (app *Application) OpenChat() {
	if app.chat.open {
		return
	}
	app.chat.open = true
	if len(app.chat.lines) == 0 {
		app.chat.lines = append(app.chat.lines, chatLine{role: chat.RoleBot, text: app.bot.Greeting()})
	}
	app.dirty = true
}

// CloseChat hides the chat panel. A pending reply still lands in the
// transcript.
func (app *Application) CloseChat() {
	app.chat.open = false
	app.dirty = true
}

// ChatOpen reports whether the chat panel is visible.
func (app *Application) ChatOpen() bool {
	return app.chat.open
}

// ChatBusy reports whether a reply is in flight.
func (app *Application) ChatBusy() bool {
	return app.chat.busy
}

// ChatLines returns the visible transcript text.
func (app *Application) ChatLines() []string {
	out := make([]string, len(app.chat.lines))
	for i, l := range app.chat.lines {
		out[i] = l.text
	}
	return out
}

// ResetChat starts a new conversation. Ignored while a reply is pending.
func (app *Application) ResetChat() {
	if app.chat.busy {
		return
	}
	app.bot.Reset()
	app.chat.lines = []chatLine{{role: chat.RoleBot, text: app.bot.Greeting()}}
	app.chat.input = app.chat.input[:0]
	app.dirty = true
}

// SendChat submits the typed message. The reply is computed on a worker
// goroutine and delivered through the replies channel.
func (app *Application) SendChat() bool {
	msg := strings.TrimSpace(string(app.chat.input))
	if msg == "" || app.chat.busy {
		return false
	}
	app.chat.input = app.chat.input[:0]
	app.chat.lines = append(app.chat.lines, chatLine{role: chat.RoleUser, text: msg})
	app.chat.busy = true
	app.dirty = true

	go func() {
		ctx, cancel := app.withTimeout()
		defer cancel()
		app.replies <- app.bot.Reply(ctx, msg)
	}()
	return true
}

// deliverReply appends a finished reply. Runs on the UI goroutine.
func (app *Application) deliverReply(r chat.Reply) {
	app.chat.busy = false
	app.chat.lines = append(app.chat.lines, chatLine{role: chat.RoleBot, text: r.Text})
	app.logger.Debug("chat reply delivered", zap.Stringer("source", r.Source))
	app.dirty = true
}

// AwaitReply blocks until the pending reply arrives and applies it.
// Intended for tests and the headless path.
func (app *Application) AwaitReply() (chat.Reply, bool) {
	if !app.chat.busy {
		return chat.Reply{}, false
	}
	r := <-app.replies
	app.deliverReply(r)
	return r, true
}

func (app *Application) chatKey(ev backend.Event) {
	switch ev.Key {
	case backend.KeyEscape:
		app.CloseChat()
	case backend.KeyEnter:
		app.SendChat()
	case backend.KeyBackspace:
		if n := len(app.chat.input); n > 0 {
			app.chat.input = app.chat.input[:n-1]
			app.dirty = true
		}
	case backend.KeyRune:
		app.chat.input = append(app.chat.input, ev.Rune)
		app.dirty = true
	}
}
