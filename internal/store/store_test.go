package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestDeckCardRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	decks := s.DeckRepo()
	cards := s.CardRepo()

	created := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	if err := decks.Insert(ctx, DeckData{
		ID:        "deck-1",
		Name:      "Basic German",
		Language:  "German",
		CreatedAt: created,
	}); err != nil {
		t.Fatalf("insert deck: %v", err)
	}

	if err := cards.Insert(ctx, CardData{
		ID:        "card-1",
		DeckID:    "deck-1",
		Front:     "sehen",
		Back:      "to see",
		Language:  "German",
		CreatedAt: created,
	}); err != nil {
		t.Fatalf("insert card: %v", err)
	}

	got, err := cards.All(ctx)
	if err != nil {
		t.Fatalf("query cards: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d cards, want 1", len(got))
	}
	if got[0].NextReview != nil || got[0].LastReviewed != nil || got[0].Difficulty != "" {
		t.Errorf("new card should have no scheduling state, got %+v", got[0])
	}

	// Review the card and read the schedule back.
	next := created.Add(15 * time.Minute)
	err = cards.UpdateSchedule(ctx, "card-1", CardSchedule{
		LastReviewed: created,
		NextReview:   next,
		Difficulty:   "good",
	})
	if err != nil {
		t.Fatalf("update schedule: %v", err)
	}

	got, err = cards.All(ctx)
	if err != nil {
		t.Fatalf("query cards: %v", err)
	}
	if got[0].NextReview == nil || !got[0].NextReview.Equal(next) {
		t.Errorf("NextReview = %v, want %v", got[0].NextReview, next)
	}
	if got[0].Difficulty != "good" {
		t.Errorf("Difficulty = %q, want good", got[0].Difficulty)
	}
}

func TestReviewCountsSince(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	events, err := s.EventRepo()
	if err != nil {
		t.Fatalf("event repo: %v", err)
	}

	for i := 0; i < 3; i++ {
		err := events.AppendReview(ctx, ReviewEventData{
			SessionID:  "sess-1",
			DeckID:     "deck-1",
			CardID:     "card-1",
			Difficulty: "good",
			NextReview: time.Now().Add(15 * time.Minute),
		})
		if err != nil {
			t.Fatalf("append review: %v", err)
		}
	}

	counts, err := events.ReviewCountsSince(ctx, time.Now().Add(-time.Hour))
	if err != nil {
		t.Fatalf("review counts: %v", err)
	}
	if counts["deck-1"] != 3 {
		t.Errorf("counts[deck-1] = %d, want 3", counts["deck-1"])
	}

	// Cutoff in the future excludes everything.
	counts, err = events.ReviewCountsSince(ctx, time.Now().Add(time.Hour))
	if err != nil {
		t.Fatalf("review counts: %v", err)
	}
	if len(counts) != 0 {
		t.Errorf("expected empty counts, got %v", counts)
	}
}

func TestStartOfDay(t *testing.T) {
	loc := time.FixedZone("X", 2*3600)
	ts := time.Date(2026, 5, 20, 23, 45, 1, 0, loc)
	got := StartOfDay(ts)
	want := time.Date(2026, 5, 20, 0, 0, 0, 0, loc)
	if !got.Equal(want) {
		t.Errorf("StartOfDay = %v, want %v", got, want)
	}
}
