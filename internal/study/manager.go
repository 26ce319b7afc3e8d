package study

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/amrw/vokab/internal/srs"
	"github.com/amrw/vokab/internal/store"
	"github.com/amrw/vokab/internal/vocab"
)

var (
	// ErrNothingDue means the deck has no due cards right now. It is an
	// expected outcome of Start, not a failure.
	ErrNothingDue = errors.New("no cards due for review")

	// ErrNoSession means an operation needs an active session.
	ErrNoSession = errors.New("no active study session")

	// ErrAnswerNotShown means RecordReview was called before RevealAnswer.
	ErrAnswerNotShown = errors.New("answer not shown yet")

	// ErrSessionCorrupt means the session cursor no longer points at a
	// card. The session is aborted when this is returned.
	ErrSessionCorrupt = errors.New("study session state is inconsistent")
)

// Config holds the tunables of the session manager.
type Config struct {
	// MaxSessionSize caps how many due cards enter one session.
	MaxSessionSize int

	// RequeueOffset is how many positions an "again"-rated card is
	// deferred within the session.
	RequeueOffset int

	// PollInterval is how often an active session should look for cards
	// that became due after it started.
	PollInterval time.Duration
}

// DefaultConfig returns the standard session tunables.
func DefaultConfig() Config {
	return Config{
		MaxSessionSize: 10,
		RequeueOffset:  6,
		PollInterval:   time.Second,
	}
}

// ReviewResult describes the outcome of one RecordReview call, for UI
// feedback.
type ReviewResult struct {
	Card       *vocab.Card
	Difficulty srs.Difficulty
	NextReview time.Time
	Requeued   bool
	Complete   bool
}

// Manager owns the at-most-one active study session and drives its state
// machine. Like the vocab service it assumes a single calling goroutine.
type Manager struct {
	vocab   *vocab.Service
	events  store.EventRepo
	cfg     Config
	rng     *rand.Rand
	session *Session
}

// NewManager creates a session manager on top of the vocab service.
// events may be nil.
func NewManager(svc *vocab.Service, events store.EventRepo, cfg Config) *Manager {
	if cfg.MaxSessionSize <= 0 {
		cfg.MaxSessionSize = DefaultConfig().MaxSessionSize
	}
	if cfg.RequeueOffset <= 0 {
		cfg.RequeueOffset = DefaultConfig().RequeueOffset
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = DefaultConfig().PollInterval
	}
	return &Manager{
		vocab:  svc,
		events: events,
		cfg:    cfg,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Session returns the active session, or nil.
func (m *Manager) Session() *Session {
	return m.session
}

// PollInterval returns the configured newly-due polling cadence.
func (m *Manager) PollInterval() time.Duration {
	return m.cfg.PollInterval
}

// Start begins a session for a deck: selects the due subset, shuffles
// it, caps it at MaxSessionSize, and sets the cursor to the first card.
// If another session is active it is fully torn down first. An empty due
// set refuses the transition with ErrNothingDue and creates no session.
func (m *Manager) Start(ctx context.Context, deckID string, now time.Time) (*Session, error) {
	if m.session != nil {
		if err := m.End(ctx, now); err != nil {
			return nil, fmt.Errorf("tear down previous session: %w", err)
		}
	}

	if _, ok := m.vocab.Deck(deckID); !ok {
		return nil, fmt.Errorf("%w: %s", vocab.ErrDeckNotFound, deckID)
	}

	var due []*vocab.Card
	for _, c := range m.vocab.CardsForDeck(deckID) {
		if c.Due(now) {
			due = append(due, c)
		}
	}
	if len(due) == 0 {
		return nil, ErrNothingDue
	}

	m.rng.Shuffle(len(due), func(i, j int) {
		due[i], due[j] = due[j], due[i]
	})
	if len(due) > m.cfg.MaxSessionSize {
		due = due[:m.cfg.MaxSessionSize]
	}

	sess := &Session{
		ID:           uuid.New().String(),
		DeckID:       deckID,
		CardsToStudy: due,
		StartedAt:    now,
	}
	m.session = sess

	if m.events != nil {
		_ = m.events.AppendSession(ctx, store.SessionEventData{
			SessionID:     sess.ID,
			DeckID:        deckID,
			Action:        "start",
			CardsSelected: len(due),
		})
	}

	return sess, nil
}

// RevealAnswer flips the current card to its back. Revealing twice is a
// no-op; revealing with no session is an error the caller surfaces as a
// warning.
func (m *Manager) RevealAnswer() error {
	if m.session == nil {
		return ErrNoSession
	}
	m.session.AnswerShown = true
	return nil
}

// RecordReview applies a rating to the current card and advances the
// session: the card's schedule is updated through the vocab service, the
// review is logged, and the cursor either moves on or — for "again" —
// stays put while the card is deferred RequeueOffset positions.
func (m *Manager) RecordReview(ctx context.Context, d srs.Difficulty, now time.Time) (*ReviewResult, error) {
	sess := m.session
	if sess == nil {
		return nil, ErrNoSession
	}
	if !sess.AnswerShown {
		return nil, ErrAnswerNotShown
	}

	card := sess.Current()
	if card == nil {
		// The cursor points past the working set. Nothing sane can
		// happen from here; abort the session.
		m.session = nil
		return nil, ErrSessionCorrupt
	}

	next, err := m.vocab.ApplyReview(ctx, card.ID, d, now)
	if err != nil {
		return nil, err
	}

	sess.ReviewedCards = append(sess.ReviewedCards, card.ID)

	result := &ReviewResult{
		Card:       card,
		Difficulty: d,
		NextReview: next,
	}

	if d == srs.Again {
		sess.AgainCount++
		sess.requeue(sess.CurrentIndex, m.cfg.RequeueOffset)
		result.Requeued = true
	} else {
		sess.CurrentIndex++
	}
	sess.AnswerShown = false

	if m.events != nil {
		_ = m.events.AppendReview(ctx, store.ReviewEventData{
			SessionID:  sess.ID,
			DeckID:     sess.DeckID,
			CardID:     card.ID,
			Difficulty: string(d),
			NextReview: next,
		})
	}

	if sess.Complete() {
		result.Complete = true
		if err := m.End(ctx, now); err != nil {
			return result, err
		}
	}

	return result, nil
}

// AbsorbNewlyDue appends same-deck cards that became due after the
// session started and are not already in the working set. Returns how
// many were added. The caller drives this from a repeating timer scoped
// to the session's lifetime.
func (m *Manager) AbsorbNewlyDue(now time.Time) int {
	sess := m.session
	if sess == nil {
		return 0
	}

	added := 0
	for _, c := range m.vocab.CardsForDeck(sess.DeckID) {
		if !c.Due(now) || sess.Contains(c.ID) {
			continue
		}
		sess.CardsToStudy = append(sess.CardsToStudy, c)
		added++
	}
	return added
}

// End tears down the active session and logs the end event. Ending with
// no session is a no-op.
func (m *Manager) End(ctx context.Context, now time.Time) error {
	sess := m.session
	if sess == nil {
		return nil
	}
	m.session = nil

	if m.events != nil {
		err := m.events.AppendSession(ctx, store.SessionEventData{
			SessionID:     sess.ID,
			DeckID:        sess.DeckID,
			Action:        "end",
			CardsReviewed: len(sess.ReviewedCards),
			AgainCount:    sess.AgainCount,
			DurationSecs:  int(now.Sub(sess.StartedAt).Seconds()),
		})
		if err != nil {
			return err
		}
	}
	return nil
}
