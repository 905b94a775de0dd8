package chat

import "errors"

var (
	// ErrInvalidRule is returned for a rule without keywords or answer.
	ErrInvalidRule = errors.New("invalid rule")

	// ErrNoAPIKey is returned when a remote provider has no key configured.
	ErrNoAPIKey = errors.New("no api key configured")

	// ErrUnknownProvider is returned for an unsupported provider name.
	ErrUnknownProvider = errors.New("unknown provider")

	// ErrEmptyAnswer is returned when a provider answers with no text.
	ErrEmptyAnswer = errors.New("empty answer")

	// ErrScriptClosed is returned when using a closed script.
	ErrScriptClosed = errors.New("script is closed")
)
