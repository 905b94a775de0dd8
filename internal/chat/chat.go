// Package chat implements the page's chat widget.
//
// A reply comes from the first source that answers: the built-in keyword
// rules, an optional Lua rule script, a remote model, and finally a canned
// message. Remote failures are logged and answered with the canned message
// so the widget never shows an error.
package chat

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rimiko/showcase/internal/i18n"
)

// DefaultTimeout bounds one remote completion.
const DefaultTimeout = 15 * time.Second

// DefaultSystemPrompt frames the remote model.
const DefaultSystemPrompt = "You are the assistant on the Rimiko Development Community website. " +
	"Rimiko publishes RimikoOS, free customized Windows builds, and a collection of Windows optimization resources. " +
	"Answer briefly in the user's language."

// Source identifies where a reply came from.
type Source uint8

const (
	SourceRule Source = iota
	SourceScript
	SourceRemote
	SourceFallback
)

// String returns the source name.
func (s Source) String() string {
	switch s {
	case SourceRule:
		return "rule"
	case SourceScript:
		return "script"
	case SourceRemote:
		return "remote"
	case SourceFallback:
		return "fallback"
	default:
		return "unknown"
	}
}

// Reply is one answer from the bot.
type Reply struct {
	Text   string
	Source Source
}

// Role marks who wrote a message.
type Role uint8

const (
	RoleUser Role = iota
	RoleBot
)

// Message is one line of the transcript.
type Message struct {
	Role Role
	Text string
	At   time.Time
}

// Localizer supplies the current language and UI strings.
type Localizer interface {
	Language() i18n.Language
	T(key string) string
}

// Bot answers chat messages.
type Bot struct {
	rules        Rules
	script       *Script
	completer    Completer
	localizer    Localizer
	systemPrompt string
	timeout      time.Duration
	base         *zap.Logger
	logger       *zap.Logger
	now          func() time.Time

	id         uuid.UUID
	transcript []Message
}

// Option configures a Bot.
type Option func(*Bot)

// WithRules replaces the built-in rule table.
func WithRules(rules Rules) Option {
	return func(b *Bot) { b.rules = rules }
}

// WithScript adds a Lua rule script consulted after the built-in rules.
func WithScript(s *Script) Option {
	return func(b *Bot) { b.script = s }
}

// WithCompleter sets the remote model.
func WithCompleter(c Completer) Option {
	return func(b *Bot) { b.completer = c }
}

// WithSystemPrompt overrides the system prompt sent to the remote model.
func WithSystemPrompt(p string) Option {
	return func(b *Bot) {
		if p != "" {
			b.systemPrompt = p
		}
	}
}

// WithTimeout bounds each remote completion.
func WithTimeout(d time.Duration) Option {
	return func(b *Bot) {
		if d > 0 {
			b.timeout = d
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(b *Bot) {
		if l != nil {
			b.base = l
		}
	}
}

// New creates a bot. The localizer picks the answer language and supplies
// the canned messages.
func New(localizer Localizer, opts ...Option) (*Bot, error) {
	rules, err := DefaultRules()
	if err != nil {
		return nil, err
	}
	b := &Bot{
		rules:        rules,
		localizer:    localizer,
		systemPrompt: DefaultSystemPrompt,
		timeout:      DefaultTimeout,
		base:         zap.NewNop(),
		now:          time.Now,
		id:           uuid.New(),
	}
	for _, opt := range opts {
		opt(b)
	}
	b.logger = b.base.With(zap.String("conversation", b.id.String()))
	return b, nil
}

// ID returns the conversation id.
func (b *Bot) ID() uuid.UUID {
	return b.id
}

// Transcript returns the messages exchanged so far.
func (b *Bot) Transcript() []Message {
	return b.transcript
}

// Reset clears the transcript and starts a new conversation.
func (b *Bot) Reset() {
	b.transcript = nil
	b.id = uuid.New()
	b.logger = b.base.With(zap.String("conversation", b.id.String()))
}

// Greeting returns the widget's opening line.
func (b *Bot) Greeting() string {
	return b.localizer.T("chat.greeting")
}

// Reply answers message and records both in the transcript.
func (b *Bot) Reply(ctx context.Context, message string) Reply {
	message = strings.TrimSpace(message)
	if message == "" {
		return Reply{Text: b.Greeting(), Source: SourceRule}
	}

	b.record(RoleUser, message)
	reply := b.answer(ctx, message)
	b.record(RoleBot, reply.Text)

	b.logger.Debug("chat reply",
		zap.String("source", reply.Source.String()),
		zap.Int("length", len(reply.Text)),
	)
	return reply
}

func (b *Bot) answer(ctx context.Context, message string) Reply {
	lang := b.localizer.Language()

	if r, ok := b.rules.Match(message); ok {
		return Reply{Text: r.Answer(lang), Source: SourceRule}
	}

	if b.script != nil {
		text, ok, err := b.script.Reply(ctx, message, lang)
		if err != nil {
			b.logger.Warn("rule script failed", zap.Error(err))
		} else if ok {
			return Reply{Text: text, Source: SourceScript}
		}
	}

	if b.completer != nil {
		ctx, cancel := context.WithTimeout(ctx, b.timeout)
		defer cancel()

		text, err := b.completer.Complete(ctx, b.systemPrompt, message)
		if err == nil && strings.TrimSpace(text) == "" {
			err = ErrEmptyAnswer
		}
		if err == nil {
			return Reply{Text: text, Source: SourceRemote}
		}
		b.logger.Warn("remote completion failed",
			zap.String("provider", b.completer.Name()),
			zap.Error(err),
		)
	}

	return Reply{Text: b.localizer.T("chat.fallback"), Source: SourceFallback}
}

func (b *Bot) record(role Role, text string) {
	b.transcript = append(b.transcript, Message{Role: role, Text: text, At: b.now()})
}
