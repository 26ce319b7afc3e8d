package store

import (
	"context"
	"fmt"

	"github.com/amrw/vokab/ent"
	"github.com/amrw/vokab/ent/card"
)

// cardRepo implements CardRepo using the ent client.
type cardRepo struct {
	client *ent.Client
}

func (r *cardRepo) Insert(ctx context.Context, c CardData) error {
	if err := r.create(c).Exec(ctx); err != nil {
		return fmt.Errorf("insert card %s: %w", c.ID, err)
	}
	return nil
}

func (r *cardRepo) InsertBatch(ctx context.Context, cs []CardData) error {
	if len(cs) == 0 {
		return nil
	}
	builders := make([]*ent.CardCreate, 0, len(cs))
	for _, c := range cs {
		builders = append(builders, r.create(c))
	}
	if _, err := r.client.Card.CreateBulk(builders...).Save(ctx); err != nil {
		return fmt.Errorf("insert %d cards: %w", len(cs), err)
	}
	return nil
}

func (r *cardRepo) create(c CardData) *ent.CardCreate {
	b := r.client.Card.Create().
		SetID(c.ID).
		SetDeckID(c.DeckID).
		SetFront(c.Front).
		SetBack(c.Back).
		SetLanguage(c.Language).
		SetCreatedAt(c.CreatedAt)
	if c.LastReviewed != nil {
		b = b.SetLastReviewed(*c.LastReviewed)
	}
	if c.NextReview != nil {
		b = b.SetNextReview(*c.NextReview)
	}
	if c.Difficulty != "" {
		b = b.SetDifficulty(c.Difficulty)
	}
	return b
}

func (r *cardRepo) All(ctx context.Context) ([]CardData, error) {
	rows, err := r.client.Card.Query().
		Order(ent.Asc(card.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query cards: %w", err)
	}

	out := make([]CardData, 0, len(rows))
	for _, c := range rows {
		out = append(out, CardData{
			ID:           c.ID,
			DeckID:       c.DeckID,
			Front:        c.Front,
			Back:         c.Back,
			Language:     c.Language,
			LastReviewed: c.LastReviewed,
			NextReview:   c.NextReview,
			Difficulty:   c.Difficulty,
			CreatedAt:    c.CreatedAt,
		})
	}
	return out, nil
}

func (r *cardRepo) UpdateSchedule(ctx context.Context, cardID string, sched CardSchedule) error {
	err := r.client.Card.UpdateOneID(cardID).
		SetLastReviewed(sched.LastReviewed).
		SetNextReview(sched.NextReview).
		SetDifficulty(sched.Difficulty).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("update schedule for card %s: %w", cardID, err)
	}
	return nil
}
