package store

import (
	"context"
	"time"
)

// DeckData is the persisted form of a deck. Derived counters are not
// stored; they are recomputed from the card set on load.
type DeckData struct {
	ID          string
	Name        string
	Description string
	Language    string
	CreatedAt   time.Time
}

// CardData is the persisted form of a card. Scheduling fields are nil
// until the card's first review.
type CardData struct {
	ID           string
	DeckID       string
	Front        string
	Back         string
	Language     string
	LastReviewed *time.Time
	NextReview   *time.Time
	Difficulty   string
	CreatedAt    time.Time
}

// CardSchedule carries the mutable scheduling fields written on review.
type CardSchedule struct {
	LastReviewed time.Time
	NextReview   time.Time
	Difficulty   string
}

// DeckRepo persists decks.
type DeckRepo interface {
	Insert(ctx context.Context, d DeckData) error
	All(ctx context.Context) ([]DeckData, error)
}

// CardRepo persists cards and their review schedules.
type CardRepo interface {
	Insert(ctx context.Context, c CardData) error
	InsertBatch(ctx context.Context, cs []CardData) error
	All(ctx context.Context) ([]CardData, error)
	UpdateSchedule(ctx context.Context, cardID string, sched CardSchedule) error
}

// ReviewEventData captures a single recorded review.
type ReviewEventData struct {
	SessionID  string
	DeckID     string
	CardID     string
	Difficulty string
	NextReview time.Time
}

// SessionEventData captures a session lifecycle event.
type SessionEventData struct {
	SessionID     string
	DeckID        string
	Action        string // "start" or "end"
	CardsSelected int
	CardsReviewed int
	AgainCount    int
	DurationSecs  int
}

// EventRepo provides append access to the study event log.
type EventRepo interface {
	AppendReview(ctx context.Context, data ReviewEventData) error
	AppendSession(ctx context.Context, data SessionEventData) error

	// ReviewCountsSince returns per-deck review counts for events at or
	// after the cutoff. Used to derive the studied-today counters.
	ReviewCountsSince(ctx context.Context, cutoff time.Time) (map[string]int, error)
}
