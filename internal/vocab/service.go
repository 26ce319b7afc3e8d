package vocab

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/amrw/vokab/internal/srs"
	"github.com/amrw/vokab/internal/store"
)

var (
	ErrDeckNotFound = errors.New("deck not found")
	ErrCardNotFound = errors.New("card not found")
)

// Service owns the in-memory deck/card set and writes mutations through
// to the repositories. It is the single owner of this state: all calls
// must come from one goroutine (the UI event loop serializes them).
//
// Repositories may be nil, in which case the service is memory-only.
type Service struct {
	decks map[string]*Deck
	cards map[string]*Card

	deckRepo store.DeckRepo
	cardRepo store.CardRepo
	events   store.EventRepo

	validate *validator.Validate
}

// NewService creates an empty service. Call Load to hydrate it from the
// repositories.
func NewService(deckRepo store.DeckRepo, cardRepo store.CardRepo, events store.EventRepo) *Service {
	return &Service{
		decks:    make(map[string]*Deck),
		cards:    make(map[string]*Card),
		deckRepo: deckRepo,
		cardRepo: cardRepo,
		events:   events,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Load hydrates decks and cards from the repositories and recomputes the
// derived counters, including studied-today from the review log.
func (s *Service) Load(ctx context.Context, now time.Time) error {
	if s.deckRepo == nil || s.cardRepo == nil {
		s.Recount(now)
		return nil
	}

	decks, err := s.deckRepo.All(ctx)
	if err != nil {
		return fmt.Errorf("load decks: %w", err)
	}
	for _, d := range decks {
		s.decks[d.ID] = &Deck{
			ID:          d.ID,
			Name:        d.Name,
			Description: d.Description,
			Language:    d.Language,
			CreatedAt:   d.CreatedAt,
		}
	}

	cards, err := s.cardRepo.All(ctx)
	if err != nil {
		return fmt.Errorf("load cards: %w", err)
	}
	for _, c := range cards {
		s.cards[c.ID] = &Card{
			ID:           c.ID,
			DeckID:       c.DeckID,
			Front:        c.Front,
			Back:         c.Back,
			Language:     c.Language,
			LastReviewed: c.LastReviewed,
			NextReview:   c.NextReview,
			Difficulty:   srs.Difficulty(c.Difficulty),
			CreatedAt:    c.CreatedAt,
		}
	}

	s.Recount(now)

	if s.events != nil {
		counts, err := s.events.ReviewCountsSince(ctx, store.StartOfDay(now))
		if err != nil {
			return fmt.Errorf("load studied-today counts: %w", err)
		}
		for deckID, n := range counts {
			if d, ok := s.decks[deckID]; ok {
				d.StudiedToday = n
			}
		}
	}

	return nil
}

// AddDeckInput carries the user-supplied fields for a new deck.
type AddDeckInput struct {
	Name        string `validate:"required,max=120"`
	Description string `validate:"max=500"`
	Language    string `validate:"required,max=60"`
}

// AddDeck creates a deck and returns it.
func (s *Service) AddDeck(ctx context.Context, in AddDeckInput) (*Deck, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	in.Language = strings.TrimSpace(in.Language)
	if err := s.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("validate deck: %w", err)
	}

	d := &Deck{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		Language:    in.Language,
		CreatedAt:   time.Now(),
	}

	if s.deckRepo != nil {
		err := s.deckRepo.Insert(ctx, store.DeckData{
			ID:          d.ID,
			Name:        d.Name,
			Description: d.Description,
			Language:    d.Language,
			CreatedAt:   d.CreatedAt,
		})
		if err != nil {
			return nil, err
		}
	}

	s.decks[d.ID] = d
	return d, nil
}

// AddCardInput carries the user-supplied fields for a new card.
type AddCardInput struct {
	DeckID   string `validate:"required"`
	Front    string `validate:"required,max=500"`
	Back     string `validate:"required,max=500"`
	Language string `validate:"max=60"`
}

// AddCard creates a card in an existing deck. The card starts with no
// scheduling state; it is due immediately.
func (s *Service) AddCard(ctx context.Context, in AddCardInput) (*Card, error) {
	in.Front = strings.TrimSpace(in.Front)
	in.Back = strings.TrimSpace(in.Back)
	in.Language = strings.TrimSpace(in.Language)
	if err := s.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("validate card: %w", err)
	}

	deck, ok := s.decks[in.DeckID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrDeckNotFound, in.DeckID)
	}

	lang := in.Language
	if lang == "" {
		lang = deck.Language
	}

	c := &Card{
		ID:        uuid.New().String(),
		DeckID:    deck.ID,
		Front:     in.Front,
		Back:      in.Back,
		Language:  lang,
		CreatedAt: time.Now(),
	}

	if s.cardRepo != nil {
		if err := s.cardRepo.Insert(ctx, cardData(c)); err != nil {
			return nil, err
		}
	}

	s.cards[c.ID] = c
	s.Recount(time.Now())
	return c, nil
}

// ImportRow is one front/back pair from a bulk import source.
type ImportRow struct {
	Front string
	Back  string
}

// BulkImport creates one card per row with both fields non-empty after
// trimming. Malformed rows are skipped silently; the return value is the
// number of cards actually created.
func (s *Service) BulkImport(ctx context.Context, deckID string, rows []ImportRow) (int, error) {
	deck, ok := s.decks[deckID]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrDeckNotFound, deckID)
	}

	var created []*Card
	for _, row := range rows {
		front := strings.TrimSpace(row.Front)
		back := strings.TrimSpace(row.Back)
		if front == "" || back == "" {
			continue
		}
		created = append(created, &Card{
			ID:        uuid.New().String(),
			DeckID:    deck.ID,
			Front:     front,
			Back:      back,
			Language:  deck.Language,
			CreatedAt: time.Now(),
		})
	}

	if len(created) == 0 {
		return 0, nil
	}

	if s.cardRepo != nil {
		batch := make([]store.CardData, 0, len(created))
		for _, c := range created {
			batch = append(batch, cardData(c))
		}
		if err := s.cardRepo.InsertBatch(ctx, batch); err != nil {
			return 0, err
		}
	}

	for _, c := range created {
		s.cards[c.ID] = c
	}
	s.Recount(time.Now())
	return len(created), nil
}

// Deck returns a deck by id.
func (s *Service) Deck(deckID string) (*Deck, bool) {
	d, ok := s.decks[deckID]
	return d, ok
}

// Decks returns all decks ordered by creation time.
func (s *Service) Decks() []*Deck {
	out := make([]*Deck, 0, len(s.decks))
	for _, d := range s.decks {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// Card returns a card by id.
func (s *Service) Card(cardID string) (*Card, bool) {
	c, ok := s.cards[cardID]
	return c, ok
}

// CardsForDeck returns the deck's cards ordered by creation time.
func (s *Service) CardsForDeck(deckID string) []*Card {
	var out []*Card
	for _, c := range s.cards {
		if c.DeckID == deckID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// ApplyReview records a rating for a card: updates the card's scheduling
// fields, persists them, and bumps the deck's studied-today counter.
// Returns the computed next review time.
func (s *Service) ApplyReview(ctx context.Context, cardID string, d srs.Difficulty, now time.Time) (time.Time, error) {
	c, ok := s.cards[cardID]
	if !ok {
		return time.Time{}, fmt.Errorf("%w: %s", ErrCardNotFound, cardID)
	}

	next, err := srs.ScheduleNext(d, now)
	if err != nil {
		return time.Time{}, err
	}

	if s.cardRepo != nil {
		err := s.cardRepo.UpdateSchedule(ctx, c.ID, store.CardSchedule{
			LastReviewed: now,
			NextReview:   next,
			Difficulty:   string(d),
		})
		if err != nil {
			return time.Time{}, err
		}
	}

	reviewed := now
	c.LastReviewed = &reviewed
	c.NextReview = &next
	c.Difficulty = d

	if deck, ok := s.decks[c.DeckID]; ok {
		deck.StudiedToday++
	}
	s.Recount(now)

	return next, nil
}

// Recount recomputes the cached per-deck counters from the card set.
// StudiedToday is left alone; it derives from the review log, not from
// card state.
func (s *Service) Recount(now time.Time) {
	for _, d := range s.decks {
		d.TotalCards = 0
		d.DueToday = 0
	}
	for _, c := range s.cards {
		d, ok := s.decks[c.DeckID]
		if !ok {
			continue
		}
		d.TotalCards++
		if c.Due(now) {
			d.DueToday++
		}
	}
}

func cardData(c *Card) store.CardData {
	return store.CardData{
		ID:           c.ID,
		DeckID:       c.DeckID,
		Front:        c.Front,
		Back:         c.Back,
		Language:     c.Language,
		LastReviewed: c.LastReviewed,
		NextReview:   c.NextReview,
		Difficulty:   string(c.Difficulty),
		CreatedAt:    c.CreatedAt,
	}
}
