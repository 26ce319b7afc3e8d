package store

import (
	"context"
	"fmt"

	"github.com/amrw/vokab/ent"
	"github.com/amrw/vokab/ent/deck"
)

// deckRepo implements DeckRepo using the ent client.
type deckRepo struct {
	client *ent.Client
}

func (r *deckRepo) Insert(ctx context.Context, d DeckData) error {
	_, err := r.client.Deck.Create().
		SetID(d.ID).
		SetName(d.Name).
		SetDescription(d.Description).
		SetLanguage(d.Language).
		SetCreatedAt(d.CreatedAt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("insert deck %s: %w", d.ID, err)
	}
	return nil
}

func (r *deckRepo) All(ctx context.Context) ([]DeckData, error) {
	rows, err := r.client.Deck.Query().
		Order(ent.Asc(deck.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query decks: %w", err)
	}

	out := make([]DeckData, 0, len(rows))
	for _, d := range rows {
		out = append(out, DeckData{
			ID:          d.ID,
			Name:        d.Name,
			Description: d.Description,
			Language:    d.Language,
			CreatedAt:   d.CreatedAt,
		})
	}
	return out, nil
}
