package store

import (
	"context"
	"fmt"
	"time"

	"github.com/amrw/vokab/ent"
	"github.com/amrw/vokab/ent/reviewevent"
)

// eventRepo implements EventRepo using the ent client plus the shared
// sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendReview(ctx context.Context, data ReviewEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.ReviewEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetDeckID(data.DeckID).
		SetCardID(data.CardID).
		SetDifficulty(data.Difficulty).
		SetNextReview(data.NextReview).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save review event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendSession(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetDeckID(data.DeckID).
		SetAction(data.Action).
		SetCardsSelected(data.CardsSelected).
		SetCardsReviewed(data.CardsReviewed).
		SetAgainCount(data.AgainCount).
		SetDurationSecs(data.DurationSecs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) ReviewCountsSince(ctx context.Context, cutoff time.Time) (map[string]int, error) {
	events, err := r.client.ReviewEvent.Query().
		Where(reviewevent.TimestampGTE(cutoff)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query review events: %w", err)
	}

	counts := make(map[string]int)
	for _, e := range events {
		counts[e.DeckID]++
	}
	return counts, nil
}

// StartOfDay returns local midnight for t, the cutoff used for the
// studied-today counters.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
