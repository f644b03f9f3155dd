package advisor

import "errors"

var (
	// ErrSessionClosed is returned by any Session call after Close.
	ErrSessionClosed = errors.New("advisor session is closed")

	// ErrInvalidPosition indicates a non-empty position the rules library rejects.
	ErrInvalidPosition = errors.New("invalid position")

	// ErrNoCandidate means the engine offered no move to explain.
	ErrNoCandidate = errors.New("engine returned no candidate move")
)
