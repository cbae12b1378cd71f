package session

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/aruneshvv/review-intel/internal/model"
	"github.com/aruneshvv/review-intel/pkg/llm"
)

// CommentSource produces the ranked evidence sample for a product.
type CommentSource interface {
	CommentsForProduct(product string) ([]string, error)
}

// StateStore persists the latest state snapshot. Load returns nil
// when no snapshot exists.
type StateStore interface {
	SaveState(state model.AnalysisState) error
	LoadState() (*model.AnalysisState, error)
}

// Listener is notified on every state transition.
type Listener func(state model.AnalysisState)

// Session tracks the lifecycle of one analysis at a time:
// idle -> loading -> success|error, then a new run may begin.
// Runs are not correlated: if two overlap, the last one to finish
// wins the state slot.
type Session struct {
	mu        sync.Mutex
	state     model.AnalysisState
	listeners []Listener

	comments CommentSource
	analyzer llm.Analyzer
	store    StateStore
}

func New(comments CommentSource, analyzer llm.Analyzer, store StateStore) *Session {
	s := &Session{
		state:    model.AnalysisState{Status: model.StatusIdle},
		comments: comments,
		analyzer: analyzer,
		store:    store,
	}

	if store != nil {
		saved, err := store.LoadState()
		if err != nil {
			slog.Warn("failed to load persisted state", "error", err)
		} else if saved != nil {
			s.state = *saved
		}
	}

	return s
}

func (s *Session) State() model.AnalysisState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) Subscribe(l Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, l)
}

// Start begins an analysis asynchronously and returns immediately.
func (s *Session) Start(product string) {
	go s.Analyze(product)
}

// Analyze runs the full pipeline for one product and drives the state
// machine through it. Every failure path ends in an error state; no
// error escapes.
func (s *Session) Analyze(product string) {
	product = strings.TrimSpace(product)

	if product == "" {
		s.setState(model.AnalysisState{
			Status: model.StatusError,
			Error:  "No product name provided",
		})
		return
	}

	s.setState(model.AnalysisState{Status: model.StatusLoading, Product: product})

	comments, err := s.comments.CommentsForProduct(product)
	if err != nil {
		s.setState(model.AnalysisState{
			Status:  model.StatusError,
			Product: product,
			Error:   err.Error(),
		})
		return
	}

	if len(comments) == 0 {
		s.setState(model.AnalysisState{
			Status:  model.StatusError,
			Product: product,
			Error:   "No Reddit discussions found for this product",
		})
		return
	}

	result, err := s.analyzer.Analyze(product, comments)
	if err != nil {
		s.setState(model.AnalysisState{
			Status:  model.StatusError,
			Product: product,
			Error:   err.Error(),
		})
		return
	}

	s.setState(model.AnalysisState{
		Status:  model.StatusSuccess,
		Product: product,
		Result:  result,
	})
}

func (s *Session) setState(state model.AnalysisState) {
	s.mu.Lock()
	s.state = state
	listeners := make([]Listener, len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	if s.store != nil {
		if err := s.store.SaveState(state); err != nil {
			slog.Warn("failed to persist state", "status", state.Status, "error", err)
		}
	}

	for _, l := range listeners {
		notify(l, state)
	}
}

// notify shields the state machine from listener failures.
func notify(l Listener, state model.AnalysisState) {
	defer func() {
		if r := recover(); r != nil {
			slog.Warn("state listener panicked", "recovered", r)
		}
	}()
	l(state)
}
