package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/tatianab/pitch-puzzle/internal/models"
	"github.com/tatianab/pitch-puzzle/internal/progress"
)

// MaxAttempts bounds how often a puzzle may be answered per day.
const MaxAttempts = 3

const (
	defaultTransitionDelay = 1500 * time.Millisecond
	defaultMovementDelay   = 2000 * time.Millisecond
)

// FeedbackKind distinguishes success from error feedback.
type FeedbackKind string

const (
	FeedbackSuccess FeedbackKind = "success"
	FeedbackError   FeedbackKind = "error"
)

// Feedback is the user-facing result of the last submission.
type Feedback struct {
	Kind        FeedbackKind
	Message     string
	Explanation string
}

// Snapshot is the plain-data view of the session the presentation
// layer renders from.
type Snapshot struct {
	Puzzle     models.Puzzle
	State      models.GameState
	Move       models.Move
	Attempts   int
	Feedback   *Feedback
	Movements  []models.PlayerMovement
	MoveNumber int
	MoveCount  int
}

// Session drives a single puzzle attempt cycle:
//
//	PLAYING -> PLAYING            (wrong answer, attempts < 3)
//	PLAYING -> CHAIN_TRANSITION   (correct answer, chain not complete)
//	PLAYING -> COMPLETED          (correct & done, or third wrong answer)
//	CHAIN_TRANSITION -> PLAYING   (transition timer committed the advance)
//
// On COMPLETED a progress record is written keyed by the puzzle date.
// The transition commit runs on a timer the session owns; resetting or
// closing the session cancels it, so a stale timer can never advance a
// replaced puzzle.
type Session struct {
	mu        sync.Mutex
	puzzle    models.Puzzle
	state     models.GameState
	attempts  int
	feedback  *Feedback
	movements []models.PlayerMovement

	store progress.Store
	log   *zap.Logger

	transitionDelay time.Duration
	movementDelay   time.Duration

	timer    *time.Timer
	gen      int
	advanced chan struct{}
}

// Option configures a Session.
type Option func(*Session)

// WithDelays overrides the transition pause and the player-movement
// animation pause.
func WithDelays(transition, movement time.Duration) Option {
	return func(s *Session) {
		s.transitionDelay = transition
		s.movementDelay = movement
	}
}

// WithLogger attaches a structured logger.
func WithLogger(log *zap.Logger) Option {
	return func(s *Session) {
		s.log = log
	}
}

// NewSession starts an attempt cycle for the puzzle. If a progress
// record already exists for the puzzle's date, the completed state is
// restored instead of allowing a replay.
func NewSession(ctx context.Context, puzzle models.Puzzle, store progress.Store, opts ...Option) (*Session, error) {
	s := &Session{
		puzzle:          puzzle,
		state:           models.StatePlaying,
		store:           store,
		log:             zap.NewNop(),
		transitionDelay: defaultTransitionDelay,
		movementDelay:   defaultMovementDelay,
		advanced:        make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(s)
	}

	rec, err := store.Get(ctx, puzzle.Date)
	switch {
	case errors.Is(err, progress.ErrNotFound):
	case err != nil:
		return nil, fmt.Errorf("restore progress: %w", err)
	case rec.Completed:
		s.state = models.StateCompleted
		s.attempts = rec.Attempts
		s.puzzle.Completed = true
		s.puzzle.Attempts = rec.Attempts
		s.feedback = &Feedback{
			Kind:        FeedbackSuccess,
			Message:     "Puzzle already completed today! Come back tomorrow for a new challenge.",
			Explanation: CurrentMove(s.puzzle).Explanation,
		}
		s.log.Debug("restored completed puzzle",
			zap.String("puzzle", puzzle.ID),
			zap.String("date", puzzle.Date),
			zap.Bool("correct", rec.Correct))
	}
	return s, nil
}

// Snapshot returns the current view state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Session) snapshotLocked() Snapshot {
	snap := Snapshot{
		Puzzle:     s.puzzle,
		State:      s.state,
		Move:       CurrentMove(s.puzzle),
		Attempts:   s.attempts,
		Feedback:   s.feedback,
		Movements:  s.movements,
		MoveNumber: 1,
		MoveCount:  1,
	}
	if s.puzzle.IsChain() {
		snap.MoveNumber = s.puzzle.CurrentMoveIndex + 1
		snap.MoveCount = len(s.puzzle.Moves)
	}
	return snap
}

// Advanced signals each committed chain advance. The channel carries
// at most one pending signal.
func (s *Session) Advanced() <-chan struct{} {
	return s.advanced
}

// Submit judges the selected player against the current move. An empty
// selection or a submit outside the PLAYING state is a no-op. The
// returned error only reflects progress-store failures.
func (s *Session) Submit(ctx context.Context, selectedPlayerID string) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != models.StatePlaying || selectedPlayerID == "" {
		return s.snapshotLocked(), nil
	}

	correct := ValidateAnswer(s.puzzle, selectedPlayerID)
	s.attempts++
	s.puzzle.Attempts = s.attempts
	s.puzzle.UserAnswer = selectedPlayerID
	s.log.Debug("answer submitted",
		zap.String("puzzle", s.puzzle.ID),
		zap.String("player", selectedPlayerID),
		zap.Bool("correct", correct),
		zap.Int("attempts", s.attempts))

	var err error
	switch {
	case correct && s.puzzle.IsChain() && !IsChainComplete(s.puzzle):
		s.startTransitionLocked()
	case correct:
		err = s.completeLocked(ctx, true)
	case s.attempts >= MaxAttempts:
		err = s.completeLocked(ctx, false)
	default:
		s.feedback = &Feedback{
			Kind:    FeedbackError,
			Message: fmt.Sprintf("Not quite right. Try again! (Attempt %d/%d)", s.attempts, MaxAttempts),
		}
	}
	return s.snapshotLocked(), err
}

// startTransitionLocked enters CHAIN_TRANSITION, computes the movement
// deltas to the next move, and arms the commit timer. The advance is
// committed atomically by swapping in the fully re-projected next
// puzzle value.
func (s *Session) startTransitionLocked() {
	next, ok := NextMove(s.puzzle)
	if !ok {
		return
	}
	s.movements = PlayerMovements(CurrentMove(s.puzzle).Players, CurrentMove(next).Players)
	s.state = models.StateChainTransition
	s.feedback = &Feedback{
		Kind: FeedbackSuccess,
		Message: fmt.Sprintf("Great! Move %d complete. Setting up next position...",
			s.puzzle.CurrentMoveIndex+1),
	}

	delay := s.transitionDelay
	if len(s.movements) > 0 {
		delay = s.movementDelay
	}
	s.gen++
	gen := s.gen
	s.timer = time.AfterFunc(delay, func() {
		s.commitAdvance(gen, next)
	})
}

func (s *Session) commitAdvance(gen int, next models.Puzzle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen || s.state != models.StateChainTransition {
		return
	}
	s.puzzle = next
	s.state = models.StatePlaying
	s.movements = nil
	s.feedback = nil
	s.log.Debug("chain advanced",
		zap.String("puzzle", s.puzzle.ID),
		zap.Int("move", s.puzzle.CurrentMoveIndex))
	select {
	case s.advanced <- struct{}{}:
	default:
	}
}

func (s *Session) completeLocked(ctx context.Context, correct bool) error {
	s.state = models.StateCompleted
	s.puzzle.Completed = true

	if correct {
		msg := fmt.Sprintf("Excellent! You got it in %d attempt%s!", s.attempts, plural(s.attempts))
		if s.puzzle.IsChain() {
			msg = fmt.Sprintf("Excellent! You completed the entire sequence in %d total attempts!", s.attempts)
		}
		s.feedback = &Feedback{
			Kind:        FeedbackSuccess,
			Message:     msg,
			Explanation: CurrentMove(s.puzzle).Explanation,
		}
	} else {
		s.feedback = &Feedback{
			Kind:        FeedbackError,
			Message:     fmt.Sprintf("Not quite right. Try again! (Attempt %d/%d)", s.attempts, MaxAttempts),
			Explanation: CurrentMove(s.puzzle).Explanation,
		}
	}

	rec := models.Progress{
		Completed:      true,
		Attempts:       s.attempts,
		Date:           s.puzzle.Date,
		Correct:        correct,
		ChainCompleted: correct && s.puzzle.IsChain(),
	}
	if err := s.store.Put(ctx, s.puzzle.Date, rec); err != nil {
		s.log.Error("persist progress", zap.String("date", s.puzzle.Date), zap.Error(err))
		return fmt.Errorf("persist progress: %w", err)
	}
	s.log.Info("puzzle completed",
		zap.String("puzzle", s.puzzle.ID),
		zap.String("date", s.puzzle.Date),
		zap.Bool("correct", correct),
		zap.Int("attempts", s.attempts))
	return nil
}

// ClearFeedback drops the last feedback so the user can try again.
func (s *Session) ClearFeedback() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == models.StatePlaying {
		s.feedback = nil
	}
}

// Reset clears the persisted record for the puzzle's date, rewinds a
// chain to its first move and returns the session to PLAYING with
// zero attempts. Any pending transition is discarded.
func (s *Session) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cancelTimerLocked()
	if err := s.store.Delete(ctx, s.puzzle.Date); err != nil {
		return fmt.Errorf("clear progress: %w", err)
	}
	s.puzzle = Rewind(s.puzzle)
	s.puzzle.Completed = false
	s.puzzle.Attempts = 0
	s.puzzle.UserAnswer = ""
	s.attempts = 0
	s.state = models.StatePlaying
	s.feedback = nil
	s.movements = nil
	s.log.Info("puzzle reset", zap.String("puzzle", s.puzzle.ID), zap.String("date", s.puzzle.Date))
	return nil
}

// Close cancels any pending transition timer.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelTimerLocked()
}

func (s *Session) cancelTimerLocked() {
	s.gen++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
