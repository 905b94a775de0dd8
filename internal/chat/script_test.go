package chat

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rimiko/showcase/internal/i18n"
)

const testScript = `
function reply(message, lang)
  if string.find(string.lower(message), "pricing page") then
    if lang == "vi" then return "Trang giá" end
    return "Pricing page"
  end
  return nil
end
`

func TestScriptReply(t *testing.T) {
	s, err := LoadScriptString(testScript, 0)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	defer s.Close()

	got, ok, err := s.Reply(context.Background(), "Open the PRICING PAGE", i18n.Vietnamese)
	if err != nil || !ok || got != "Trang giá" {
		t.Errorf("expected vi answer, got %q %v %v", got, ok, err)
	}

	_, ok, err = s.Reply(context.Background(), "unrelated", i18n.English)
	if err != nil || ok {
		t.Errorf("expected no answer, got %v %v", ok, err)
	}
}

func TestScriptSandbox(t *testing.T) {
	s, err := LoadScriptString(`
function reply(message, lang)
  if io ~= nil or os ~= nil or dofile ~= nil or require ~= nil then
    return "unsafe"
  end
  return "safe"
end`, 0)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	defer s.Close()

	got, _, _ := s.Reply(context.Background(), "x", i18n.English)
	if got != "safe" {
		t.Errorf("expected a sandboxed state, got %q", got)
	}
}

func TestScriptTimeout(t *testing.T) {
	s, err := LoadScriptString(`function reply() while true do end end`, 20*time.Millisecond)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	defer s.Close()

	if _, _, err := s.Reply(context.Background(), "x", i18n.English); err == nil {
		t.Error("expected the runaway script to be stopped")
	}
	// The state stays usable after an error.
	if _, _, err := s.Reply(context.Background(), "x", i18n.English); err == nil {
		t.Error("expected the second call to time out too")
	}
}

func TestScriptErrors(t *testing.T) {
	if _, err := LoadScriptString("this is not lua", 0); err == nil {
		t.Error("expected syntax error")
	}

	s, _ := LoadScriptString(`function reply() error("boom") end`, 0)
	if _, _, err := s.Reply(context.Background(), "x", i18n.English); err == nil || !strings.Contains(err.Error(), "boom") {
		t.Errorf("expected runtime error, got %v", err)
	}

	s.Close()
	if _, _, err := s.Reply(context.Background(), "x", i18n.English); err != ErrScriptClosed {
		t.Errorf("expected ErrScriptClosed, got %v", err)
	}
}

func TestLoadScriptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.lua")
	if err := os.WriteFile(path, []byte(testScript), 0o600); err != nil {
		t.Fatal(err)
	}
	s, err := LoadScript(path, 0)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	defer s.Close()

	if got, ok, _ := s.Reply(context.Background(), "pricing page", i18n.English); !ok || got != "Pricing page" {
		t.Errorf("unexpected answer %q", got)
	}
}

func TestBotUsesScriptAfterRules(t *testing.T) {
	s, _ := LoadScriptString(testScript, 0)
	defer s.Close()

	b, _ := New(&fakeLocalizer{lang: i18n.English}, WithScript(s))
	if r := b.Reply(context.Background(), "pricing page please"); r.Source != SourceScript {
		t.Errorf("expected script reply, got %+v", r)
	}
	if r := b.Reply(context.Background(), "free pricing page"); r.Source != SourceRule {
		t.Errorf("built-in rules come first, got %+v", r)
	}
}
