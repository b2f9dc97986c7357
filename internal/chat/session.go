// Package chat wires a query client to a history store for one chat session.
package chat

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/diogo/ollamachat/internal/api"
	apierrors "github.com/diogo/ollamachat/internal/errors"
	"github.com/diogo/ollamachat/internal/history"
)

// Session pairs a query client with the conversation history of one
// interactive session. Submit and Reset are the session's only writes to
// the history. The store given to WithStore or returned by History is
// shared with the caller, not copied.
//
// A Session has a single owner and is not safe for concurrent use.
type Session struct {
	id     string
	client api.QueryClient
	store  *history.Store
	logger *zap.Logger
}

// SessionOption is a function that configures the session
type SessionOption func(*Session)

// WithStore uses an existing history store instead of a fresh one
func WithStore(store *history.Store) SessionOption {
	return func(s *Session) {
		if store != nil {
			s.store = store
		}
	}
}

// WithLogger sets the session logger
func WithLogger(logger *zap.Logger) SessionOption {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewSession creates a session with an empty history
func NewSession(client api.QueryClient, opts ...SessionOption) *Session {
	s := &Session{
		id:     uuid.NewString(),
		client: client,
		store:  history.NewStore(),
		logger: zap.NewNop(),
	}

	for _, opt := range opts {
		opt(s)
	}

	s.logger = s.logger.With(zap.String("session", s.id))
	return s
}

// Submit sends input to the client and records the exchange.
// Empty or whitespace-only input is rejected before the client is called.
// History is left untouched on any error.
func (s *Session) Submit(input string) (history.Exchange, error) {
	if err := api.ValidateQuery(input); err != nil {
		s.logger.Debug("submit rejected", zap.Error(err))
		return history.Exchange{}, err
	}

	if s.client == nil {
		return history.Exchange{}, apierrors.NewBackendUnavailableError("none", "no query client configured")
	}

	response, err := s.client.SendQuery(input)
	if err != nil {
		s.logger.Warn("query failed", zap.Error(err))
		return history.Exchange{}, fmt.Errorf("query failed: %w", err)
	}

	s.store.Append(input, response)
	s.logger.Info("exchange recorded",
		zap.String("model", s.client.ModelName()),
		zap.Int("history_len", s.store.Len()),
	)

	ex, _ := s.store.Last()
	return ex, nil
}

// Reset clears the conversation history
func (s *Session) Reset() {
	s.store.Clear()
	s.logger.Info("history cleared")
}

// Render returns the plain-text rendering of the history
func (s *Session) Render() string {
	return s.store.Render()
}

// History returns the session's history store
func (s *Session) History() *history.Store {
	return s.store
}

// ID returns the session identifier
func (s *Session) ID() string {
	return s.id
}

// ModelName returns the model name of the underlying client
func (s *Session) ModelName() string {
	if s.client == nil {
		return ""
	}
	return s.client.ModelName()
}
