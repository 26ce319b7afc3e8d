package vocab

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/amrw/vokab/internal/srs"
)

func newTestService(t *testing.T) (*Service, *Deck) {
	t.Helper()
	s := NewService(nil, nil, nil)
	d, err := s.AddDeck(context.Background(), AddDeckInput{
		Name:     "Basic German",
		Language: "German",
	})
	if err != nil {
		t.Fatalf("add deck: %v", err)
	}
	return s, d
}

func addCard(t *testing.T, s *Service, deckID, front, back string) *Card {
	t.Helper()
	c, err := s.AddCard(context.Background(), AddCardInput{
		DeckID: deckID,
		Front:  front,
		Back:   back,
	})
	if err != nil {
		t.Fatalf("add card %s: %v", front, err)
	}
	return c
}

func TestAddDeck_Validation(t *testing.T) {
	s := NewService(nil, nil, nil)

	_, err := s.AddDeck(context.Background(), AddDeckInput{Name: "   ", Language: "German"})
	if err == nil {
		t.Error("expected error for blank name")
	}

	_, err = s.AddDeck(context.Background(), AddDeckInput{Name: "Verbs"})
	if err == nil {
		t.Error("expected error for missing language")
	}
}

func TestAddCard_UnknownDeck(t *testing.T) {
	s := NewService(nil, nil, nil)
	_, err := s.AddCard(context.Background(), AddCardInput{
		DeckID: "nope", Front: "a", Back: "b",
	})
	if !errors.Is(err, ErrDeckNotFound) {
		t.Fatalf("err = %v, want ErrDeckNotFound", err)
	}
}

func TestAddCard_InheritsDeckLanguage(t *testing.T) {
	s, d := newTestService(t)
	c := addCard(t, s, d.ID, "sehen", "to see")
	if c.Language != "German" {
		t.Errorf("Language = %q, want German", c.Language)
	}
	if c.NextReview != nil || c.LastReviewed != nil || c.Difficulty != "" {
		t.Error("new card should carry no scheduling state")
	}
	if !c.Due(time.Now()) {
		t.Error("unreviewed card should be due")
	}
}

func TestBulkImport_SkipsMalformedRows(t *testing.T) {
	s, d := newTestService(t)

	// Rows as a CSV collaborator would hand them over, including a blank one.
	rows := []ImportRow{
		{Front: "hello", Back: "hola"},
		{Front: "  ", Back: "  "},
		{Front: "thanks", Back: "gracias"},
	}

	n, err := s.BulkImport(context.Background(), d.ID, rows)
	if err != nil {
		t.Fatalf("bulk import: %v", err)
	}
	if n != 2 {
		t.Errorf("imported = %d, want 2", n)
	}
	if got := len(s.CardsForDeck(d.ID)); got != 2 {
		t.Errorf("cards in deck = %d, want 2", got)
	}
}

func TestBulkImport_AllRowsInvalid(t *testing.T) {
	s, d := newTestService(t)
	n, err := s.BulkImport(context.Background(), d.ID, []ImportRow{
		{Front: "", Back: "x"},
		{Front: "y", Back: ""},
	})
	if err != nil {
		t.Fatalf("bulk import: %v", err)
	}
	if n != 0 {
		t.Errorf("imported = %d, want 0", n)
	}
}

func TestBulkImport_UnknownDeck(t *testing.T) {
	s := NewService(nil, nil, nil)
	_, err := s.BulkImport(context.Background(), "nope", []ImportRow{{Front: "a", Back: "b"}})
	if !errors.Is(err, ErrDeckNotFound) {
		t.Fatalf("err = %v, want ErrDeckNotFound", err)
	}
}

func TestApplyReview_UpdatesScheduleAndCounters(t *testing.T) {
	s, d := newTestService(t)
	c := addCard(t, s, d.ID, "sehen", "to see")

	now := time.Date(2026, 4, 2, 15, 0, 0, 0, time.UTC)
	next, err := s.ApplyReview(context.Background(), c.ID, srs.Easy, now)
	if err != nil {
		t.Fatalf("apply review: %v", err)
	}

	if want := now.Add(4 * 24 * time.Hour); !next.Equal(want) {
		t.Errorf("next = %v, want %v", next, want)
	}
	if c.Difficulty != srs.Easy {
		t.Errorf("Difficulty = %q, want easy", c.Difficulty)
	}
	if c.LastReviewed == nil || !c.LastReviewed.Equal(now) {
		t.Errorf("LastReviewed = %v, want %v", c.LastReviewed, now)
	}
	if c.Due(now) {
		t.Error("card reviewed easy should not be due")
	}

	deck, _ := s.Deck(d.ID)
	if deck.StudiedToday != 1 {
		t.Errorf("StudiedToday = %d, want 1", deck.StudiedToday)
	}
	if deck.DueToday != 0 {
		t.Errorf("DueToday = %d, want 0", deck.DueToday)
	}
}

func TestApplyReview_RejectsInvalidDifficulty(t *testing.T) {
	s, d := newTestService(t)
	c := addCard(t, s, d.ID, "sehen", "to see")

	_, err := s.ApplyReview(context.Background(), c.ID, srs.Difficulty("medium"), time.Now())
	if !errors.Is(err, srs.ErrInvalidDifficulty) {
		t.Fatalf("err = %v, want ErrInvalidDifficulty", err)
	}
	if c.Difficulty != "" {
		t.Error("rejected review must not mutate the card")
	}
}

func TestApplyReview_UnknownCard(t *testing.T) {
	s, _ := newTestService(t)
	_, err := s.ApplyReview(context.Background(), "nope", srs.Good, time.Now())
	if !errors.Is(err, ErrCardNotFound) {
		t.Fatalf("err = %v, want ErrCardNotFound", err)
	}
}

func TestRecount_CountersMatchCardSet(t *testing.T) {
	s, d := newTestService(t)
	now := time.Date(2026, 4, 2, 15, 0, 0, 0, time.UTC)

	a := addCard(t, s, d.ID, "a", "1")
	addCard(t, s, d.ID, "b", "2")
	addCard(t, s, d.ID, "c", "3")

	// Push one card out of the due window.
	if _, err := s.ApplyReview(context.Background(), a.ID, srs.Easy, now); err != nil {
		t.Fatalf("apply review: %v", err)
	}

	deck, _ := s.Deck(d.ID)
	if deck.TotalCards != 3 {
		t.Errorf("TotalCards = %d, want 3", deck.TotalCards)
	}
	if deck.DueToday != 2 {
		t.Errorf("DueToday = %d, want 2", deck.DueToday)
	}

	// One minute past the "again" interval the card is due again.
	if _, err := s.ApplyReview(context.Background(), a.ID, srs.Again, now); err != nil {
		t.Fatalf("apply review: %v", err)
	}
	s.Recount(now.Add(2 * time.Minute))
	if deck.DueToday != 3 {
		t.Errorf("DueToday after again-interval elapsed = %d, want 3", deck.DueToday)
	}
}

func TestDecks_OrderedByCreation(t *testing.T) {
	s := NewService(nil, nil, nil)
	for _, name := range []string{"first", "second", "third"} {
		if _, err := s.AddDeck(context.Background(), AddDeckInput{Name: name, Language: "German"}); err != nil {
			t.Fatalf("add deck %s: %v", name, err)
		}
	}
	decks := s.Decks()
	if len(decks) != 3 {
		t.Fatalf("got %d decks, want 3", len(decks))
	}
	if decks[0].Name != "first" || decks[2].Name != "third" {
		t.Errorf("unexpected order: %s, %s, %s", decks[0].Name, decks[1].Name, decks[2].Name)
	}
}
