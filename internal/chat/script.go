package chat

import (
	"context"
	"fmt"
	"sync"
	"time"

	lua "github.com/yuin/gopher-lua"

	"github.com/rimiko/showcase/internal/i18n"
)

// DefaultScriptTimeout bounds a single call into a rule script.
const DefaultScriptTimeout = 200 * time.Millisecond

// replyFunc is the global a rule script defines:
//
//	function reply(message, lang) return "answer" or nil end
const replyFunc = "reply"

// Script runs user-defined rules written in Lua.
//
// gopher-lua's LState is not goroutine-safe; the mutex serializes calls.
type Script struct {
	L       *lua.LState
	mu      sync.Mutex
	timeout time.Duration
	closed  bool
}

// LoadScript compiles the rule script at path in a sandboxed state.
func LoadScript(path string, timeout time.Duration) (*Script, error) {
	s := newScript(timeout)
	if err := s.protect(func() error { return s.L.DoFile(path) }); err != nil {
		s.L.Close()
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return s, nil
}

// LoadScriptString compiles a rule script from source.
func LoadScriptString(code string, timeout time.Duration) (*Script, error) {
	s := newScript(timeout)
	if err := s.protect(func() error { return s.L.DoString(code) }); err != nil {
		s.L.Close()
		return nil, fmt.Errorf("loading script: %w", err)
	}
	return s, nil
}

func newScript(timeout time.Duration) *Script {
	if timeout <= 0 {
		timeout = DefaultScriptTimeout
	}
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	openSafeLibraries(L)
	return &Script{L: L, timeout: timeout}
}

// openSafeLibraries opens the side-effect free standard libraries and
// removes the loaders that could reach the file system.
func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)

	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "require"} {
		L.SetGlobal(name, lua.LNil)
	}
}

func (s *Script) protect(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("lua panic: %v", r)
		}
	}()
	return fn()
}

// Reply asks the script for an answer. ok is false when the script has no
// reply function or returns nothing.
func (s *Script) Reply(ctx context.Context, message string, lang i18n.Language) (answer string, ok bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return "", false, ErrScriptClosed
	}

	fn := s.L.GetGlobal(replyFunc)
	if fn.Type() != lua.LTFunction {
		return "", false, nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	s.L.SetContext(ctx)
	defer s.L.RemoveContext()

	top := s.L.GetTop()
	err = s.protect(func() error {
		return s.L.CallByParam(lua.P{Fn: fn, NRet: 1, Protect: true},
			lua.LString(message), lua.LString(string(lang)))
	})
	if err != nil {
		s.L.SetTop(top)
		return "", false, fmt.Errorf("calling %s: %w", replyFunc, err)
	}

	ret := s.L.Get(-1)
	s.L.SetTop(top)
	str, isString := ret.(lua.LString)
	if !isString || str == "" {
		return "", false, nil
	}
	return string(str), true, nil
}

// Close releases the Lua state.
func (s *Script) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.L.Close()
	s.closed = true
	return nil
}
