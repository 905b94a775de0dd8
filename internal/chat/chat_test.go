package chat

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/rimiko/showcase/internal/i18n"
)

type fakeLocalizer struct{ lang i18n.Language }

func (f *fakeLocalizer) Language() i18n.Language { return f.lang }
func (f *fakeLocalizer) T(key string) string     { return string(f.lang) + ":" + key }

type fakeCompleter struct {
	answer string
	err    error
	calls  int
	block  bool
}

func (f *fakeCompleter) Name() string { return "fake" }

func (f *fakeCompleter) Complete(ctx context.Context, system, prompt string) (string, error) {
	f.calls++
	if f.block {
		<-ctx.Done()
		return "", ctx.Err()
	}
	return f.answer, f.err
}

func TestRuleReplyIsLocalized(t *testing.T) {
	loc := &fakeLocalizer{lang: i18n.English}
	b, err := New(loc)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	r := b.Reply(context.Background(), "Is it FREE?")
	if r.Source != SourceRule || r.Text != "RimikoOS is completely free of charge." {
		t.Errorf("unexpected reply %+v", r)
	}

	loc.lang = i18n.Vietnamese
	r = b.Reply(context.Background(), "có miễn phí không")
	if r.Text != "RimikoOS hoàn toàn miễn phí." {
		t.Errorf("expected vi answer, got %q", r.Text)
	}
}

func TestKeywordsMatchWholeWords(t *testing.T) {
	rules, _ := DefaultRules()

	if r, ok := rules.Match("this thing"); ok {
		t.Errorf("\"hi\" should not match inside \"this\", matched %s", r.Name)
	}
	if r, ok := rules.Match("Where can I tải về?"); !ok || r.Name != "download" {
		t.Errorf("expected download rule, got %v %v", r.Name, ok)
	}
	if _, ok := rules.Match("   "); ok {
		t.Error("blank message should not match")
	}
}

func TestParseRulesRejectsInvalid(t *testing.T) {
	_, err := ParseRules([]byte("- name: broken\n  en: answer\n"))
	if !errors.Is(err, ErrInvalidRule) {
		t.Errorf("expected ErrInvalidRule, got %v", err)
	}
}

func TestRemoteReply(t *testing.T) {
	c := &fakeCompleter{answer: "remote answer"}
	b, _ := New(&fakeLocalizer{lang: i18n.English}, WithCompleter(c))

	r := b.Reply(context.Background(), "what is the weather")
	if r.Source != SourceRemote || r.Text != "remote answer" {
		t.Errorf("unexpected reply %+v", r)
	}
}

func TestRemoteFailureFallsBack(t *testing.T) {
	tests := []struct {
		name string
		c    *fakeCompleter
	}{
		{"error", &fakeCompleter{err: errors.New("boom")}},
		{"empty", &fakeCompleter{answer: "  "}},
		{"timeout", &fakeCompleter{block: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zap.WarnLevel)
			b, _ := New(&fakeLocalizer{lang: i18n.English},
				WithCompleter(tt.c),
				WithTimeout(10*time.Millisecond),
				WithLogger(zap.New(core)),
			)

			r := b.Reply(context.Background(), "what is the weather")
			if r.Source != SourceFallback || r.Text != "en:chat.fallback" {
				t.Errorf("unexpected reply %+v", r)
			}
			if tt.c.calls != 1 {
				t.Errorf("expected exactly one call, got %d", tt.c.calls)
			}
			if logs.FilterMessage("remote completion failed").Len() != 1 {
				t.Error("expected the failure to be logged")
			}
		})
	}
}

func TestNoCompleterFallsBack(t *testing.T) {
	b, _ := New(&fakeLocalizer{lang: i18n.Vietnamese})
	r := b.Reply(context.Background(), "xyz")
	if r.Source != SourceFallback || r.Text != "vi:chat.fallback" {
		t.Errorf("unexpected reply %+v", r)
	}
}

func TestTranscriptAndReset(t *testing.T) {
	b, _ := New(&fakeLocalizer{lang: i18n.English})
	id := b.ID()

	if r := b.Reply(context.Background(), "  "); r.Text != "en:chat.greeting" {
		t.Errorf("blank message should get the greeting, got %q", r.Text)
	}
	b.Reply(context.Background(), "hello")

	tr := b.Transcript()
	if len(tr) != 2 || tr[0].Role != RoleUser || tr[1].Role != RoleBot {
		t.Fatalf("unexpected transcript %+v", tr)
	}

	b.Reset()
	if len(b.Transcript()) != 0 || b.ID() == id {
		t.Error("reset should clear the transcript and change the id")
	}
}

func TestSourceString(t *testing.T) {
	if SourceScript.String() != "script" || Source(42).String() != "unknown" {
		t.Error("unexpected source names")
	}
}
