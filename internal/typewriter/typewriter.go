// Package typewriter reveals a rotating list of phrases one grapheme
// cluster at a time, then deletes them again.
//
// The effect is clock driven: Advance is called with the current time from
// the frame loop and catches up on every step that became due, so the
// output depends only on elapsed time and never on the frame rate.
package typewriter

import (
	"strings"
	"time"

	"github.com/rivo/uniseg"
)

// Phase is the current step of the cycle.
type Phase uint8

const (
	// PhaseWaiting is the delay before the first phrase.
	PhaseWaiting Phase = iota
	// PhaseTyping appends one cluster per TypeInterval.
	PhaseTyping
	// PhaseHolding keeps the full phrase on screen.
	PhaseHolding
	// PhaseDeleting removes one cluster per DeleteInterval.
	PhaseDeleting
	// PhasePausing is the gap between phrases.
	PhasePausing
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseWaiting:
		return "waiting"
	case PhaseTyping:
		return "typing"
	case PhaseHolding:
		return "holding"
	case PhaseDeleting:
		return "deleting"
	case PhasePausing:
		return "pausing"
	default:
		return "unknown"
	}
}

// Config holds the timings of the cycle.
type Config struct {
	InitialDelay   time.Duration
	TypeInterval   time.Duration
	CompleteDelay  time.Duration
	HoldDelay      time.Duration
	DeleteInterval time.Duration
	PauseDelay     time.Duration
	LoopDelay      time.Duration
}

// DefaultConfig returns the stock timings.
func DefaultConfig() Config {
	return Config{
		InitialDelay:   time.Second,
		TypeInterval:   100 * time.Millisecond,
		CompleteDelay:  time.Second,
		HoldDelay:      2 * time.Second,
		DeleteInterval: 50 * time.Millisecond,
		PauseDelay:     500 * time.Millisecond,
		LoopDelay:      2 * time.Second,
	}
}

// DefaultPhrases are the hero lines of the showcase.
var DefaultPhrases = []string{
	"was founded in June 2024 and focus on user experience",
	"được thành lập vào tháng 6 năm 2024, nhằm hướng đến trải nghiệm của người dùng",
	"thank you for using our service",
	"cảm ơn bạn đã sử dụng dịch vụ của chúng tôi",
	"regards, Riley and Emiko.",
}

// Typewriter cycles through phrases.
type Typewriter struct {
	cfg      Config
	phrases  [][]string
	index    int
	shown    int
	phase    Phase
	deadline time.Duration
	started  bool
}

// New creates a typewriter for phrases. Zero timings take their defaults.
func New(phrases []string, cfg Config) *Typewriter {
	t := &Typewriter{cfg: withDefaults(cfg)}
	for _, p := range phrases {
		t.phrases = append(t.phrases, graphemes(p))
	}
	return t
}

func withDefaults(cfg Config) Config {
	d := DefaultConfig()
	if cfg.InitialDelay <= 0 {
		cfg.InitialDelay = d.InitialDelay
	}
	if cfg.TypeInterval <= 0 {
		cfg.TypeInterval = d.TypeInterval
	}
	if cfg.CompleteDelay <= 0 {
		cfg.CompleteDelay = d.CompleteDelay
	}
	if cfg.HoldDelay <= 0 {
		cfg.HoldDelay = d.HoldDelay
	}
	if cfg.DeleteInterval <= 0 {
		cfg.DeleteInterval = d.DeleteInterval
	}
	if cfg.PauseDelay <= 0 {
		cfg.PauseDelay = d.PauseDelay
	}
	if cfg.LoopDelay <= 0 {
		cfg.LoopDelay = d.LoopDelay
	}
	return cfg
}

func graphemes(s string) []string {
	var out []string
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Start begins the cycle at now. Calling Start again restarts it.
func (t *Typewriter) Start(now time.Duration) {
	t.index = 0
	t.shown = 0
	t.phase = PhaseWaiting
	t.deadline = now + t.cfg.InitialDelay
	t.started = len(t.phrases) > 0
}

// Advance runs every step due at now. Returns true if the text changed.
func (t *Typewriter) Advance(now time.Duration) bool {
	if !t.started {
		return false
	}
	changed := false
	for now >= t.deadline {
		if t.fire() {
			changed = true
		}
	}
	return changed
}

// fire performs the step due at the deadline and schedules the next one.
func (t *Typewriter) fire() bool {
	phrase := t.phrases[t.index]

	switch t.phase {
	case PhaseWaiting, PhasePausing:
		t.phase = PhaseTyping
		t.shown = 0
		return t.typeOne(phrase)

	case PhaseTyping:
		return t.typeOne(phrase)

	case PhaseHolding:
		t.phase = PhaseDeleting
		return t.deleteOne()

	case PhaseDeleting:
		return t.deleteOne()
	}
	return false
}

func (t *Typewriter) typeOne(phrase []string) bool {
	if t.shown < len(phrase) {
		t.shown++
		t.deadline += t.cfg.TypeInterval
		return true
	}
	t.phase = PhaseHolding
	t.deadline += t.cfg.CompleteDelay + t.cfg.HoldDelay
	return false
}

func (t *Typewriter) deleteOne() bool {
	if t.shown > 0 {
		t.shown--
		t.deadline += t.cfg.DeleteInterval
		return true
	}
	t.phase = PhasePausing
	t.deadline += t.cfg.PauseDelay
	t.index++
	if t.index >= len(t.phrases) {
		t.index = 0
		t.deadline += t.cfg.LoopDelay
	}
	return false
}

// Text returns the visible part of the current phrase.
func (t *Typewriter) Text() string {
	if len(t.phrases) == 0 {
		return ""
	}
	return strings.Join(t.phrases[t.index][:t.shown], "")
}

// Width returns the display width of the visible text in cells.
func (t *Typewriter) Width() int {
	return uniseg.StringWidth(t.Text())
}

// Phase returns the current phase.
func (t *Typewriter) Phase() Phase {
	return t.phase
}

// Index returns the index of the current phrase.
func (t *Typewriter) Index() int {
	return t.index
}
