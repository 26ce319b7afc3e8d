package newcard

import (
	"context"
	"strings"
	"testing"

	"github.com/amrw/vokab/internal/vocab"
)

func testScreen(t *testing.T) (*NewCardScreen, *vocab.Service, string) {
	t.Helper()
	svc := vocab.NewService(nil, nil, nil)
	deck, err := svc.AddDeck(context.Background(), vocab.AddDeckInput{
		Name:     "Basics",
		Language: "Spanish",
	})
	if err != nil {
		t.Fatalf("add deck: %v", err)
	}
	return New(svc, deck.ID), svc, deck.ID
}

func TestSubmitAddsCard(t *testing.T) {
	s, svc, deckID := testScreen(t)

	s.inputs[fieldFront].Model.SetValue("hello")
	s.inputs[fieldBack].Model.SetValue("hola")

	cmd := s.submit()
	if cmd == nil {
		t.Fatal("expected a command after submit")
	}

	cards := svc.CardsForDeck(deckID)
	if len(cards) != 1 {
		t.Fatalf("expected 1 card, got %d", len(cards))
	}
	if cards[0].Front != "hello" || cards[0].Back != "hola" {
		t.Errorf("unexpected card: %+v", cards[0])
	}
	if s.added != 1 {
		t.Errorf("expected added counter 1, got %d", s.added)
	}
	if s.inputs[fieldFront].Value() != "" || s.inputs[fieldBack].Value() != "" {
		t.Error("expected inputs cleared for the next card")
	}

	view := s.View(80, 24)
	if !strings.Contains(view, "1 added") {
		t.Errorf("expected added-count feedback, got:\n%s", view)
	}
}

func TestSubmitRejectsBlankFields(t *testing.T) {
	s, svc, deckID := testScreen(t)

	s.inputs[fieldFront].Model.SetValue("hello")

	if cmd := s.submit(); cmd != nil {
		t.Error("expected no command on validation failure")
	}
	if len(svc.CardsForDeck(deckID)) != 0 {
		t.Error("expected no card added")
	}
	if s.errMsg == "" {
		t.Error("expected an error message")
	}
}
