package advisor

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"chessAdvisor/bots"
	"chessAdvisor/game"
)

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the session logger; the default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithID overrides the generated session id.
func WithID(id string) Option {
	return func(s *Session) { s.ID = id }
}

// Session owns one engine for its lifetime. It is not safe for concurrent
// use: the engine answers one query at a time.
type Session struct {
	ID         string
	engine     bots.Engine
	dispatcher *Dispatcher
	logger     *zap.Logger
	closed     bool
}

// Open starts a session around an already running engine.
func Open(engine bots.Engine, opts ...Option) *Session {
	s := &Session{
		ID:     uuid.NewString(),
		engine: engine,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With(zap.String("session", s.ID))
	s.dispatcher = NewDispatcher(engine, s.logger)
	s.logger.Info("session opened", zap.String("engine", engine.Name()))
	return s
}

// EngineName describes the evaluation back-end.
func (s *Session) EngineName() string {
	return s.engine.Name()
}

// Handle answers a question about the position in fen. An empty fen yields
// an error Response without touching the engine.
func (s *Session) Handle(fen, query string) (*Response, error) {
	if s.closed {
		return nil, ErrSessionClosed
	}
	if strings.TrimSpace(fen) == "" {
		return ErrorResponse(MissingPositionMessage), nil
	}
	pos, err := parsePosition(fen)
	if err != nil {
		return nil, err
	}

	resp, err := s.dispatcher.Handle(pos, query)
	if err != nil {
		s.logger.Error("query failed", zap.String("fen", fen), zap.String("query", query), zap.Error(err))
		return nil, err
	}
	s.logger.Info("query answered", zap.String("type", string(resp.Kind)))
	return resp, nil
}

// Analysis is the full goal breakdown for a position.
type Analysis struct {
	Tiers Tiers `json:"analysis"`
	Plan  Plan  `json:"plan"`
}

// Analyze returns the goal tiers and the best plan for fen.
func (s *Session) Analyze(fen string) (*Analysis, error) {
	if s.closed {
		return nil, ErrSessionClosed
	}
	pos, err := parsePosition(fen)
	if err != nil {
		return nil, err
	}
	tiers, plan, err := s.dispatcher.Analyze(pos)
	if err != nil {
		s.logger.Error("analysis failed", zap.String("fen", fen), zap.Error(err))
		return nil, err
	}
	return &Analysis{Tiers: tiers, Plan: plan}, nil
}

// Close releases the engine. Only the first call reaches the engine.
func (s *Session) Close() error {
	if s.closed {
		return ErrSessionClosed
	}
	s.closed = true
	s.logger.Info("session closed")
	return s.engine.Close()
}

func parsePosition(fen string) (*game.Position, error) {
	pos, err := game.Parse(fen)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPosition, err)
	}
	return pos, nil
}
