package study

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/amrw/vokab/internal/router"
	studycore "github.com/amrw/vokab/internal/study"
	"github.com/amrw/vokab/internal/vocab"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func spaceKey() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: ' ', Text: " "}
}

func testScreen(t *testing.T, cards int) (*StudyScreen, *studycore.Manager) {
	t.Helper()
	svc := vocab.NewService(nil, nil, nil)
	deck, err := svc.AddDeck(context.Background(), vocab.AddDeckInput{
		Name:     "Basics",
		Language: "Spanish",
	})
	if err != nil {
		t.Fatalf("add deck: %v", err)
	}
	for i := 0; i < cards; i++ {
		_, err := svc.AddCard(context.Background(), vocab.AddCardInput{
			DeckID: deck.ID,
			Front:  "front",
			Back:   "back",
		})
		if err != nil {
			t.Fatalf("add card: %v", err)
		}
	}
	mgr := studycore.NewManager(svc, nil, studycore.DefaultConfig())
	return New(svc, mgr, deck.ID), mgr
}

// start runs the screen's Init command and feeds the result back in.
func start(t *testing.T, s *StudyScreen) *StudyScreen {
	t.Helper()
	msg := s.Init()()
	updated, _ := s.Update(msg)
	return updated.(*StudyScreen)
}

func TestStartWithNothingDueShowsRefusal(t *testing.T) {
	s, _ := testScreen(t, 0)
	s = start(t, s)

	view := s.View(80, 24)
	if !strings.Contains(view, "No cards are due") {
		t.Errorf("expected refusal message, got:\n%s", view)
	}
}

func TestRevealThenRateAdvances(t *testing.T) {
	s, mgr := testScreen(t, 3)
	s = start(t, s)

	if mgr.Session() == nil {
		t.Fatal("expected active session")
	}

	updated, _ := s.Update(spaceKey())
	s = updated.(*StudyScreen)
	if !mgr.Session().AnswerShown {
		t.Fatal("expected answer shown after space")
	}

	updated, _ = s.Update(keyPress('3'))
	s = updated.(*StudyScreen)

	if s.reviewed != 1 {
		t.Errorf("expected 1 review recorded, got %d", s.reviewed)
	}
	if mgr.Session().CurrentIndex != 1 {
		t.Errorf("expected cursor at 1, got %d", mgr.Session().CurrentIndex)
	}
	if mgr.Session().AnswerShown {
		t.Error("expected answer hidden for next card")
	}
}

func TestRatingBeforeRevealIsIgnored(t *testing.T) {
	s, mgr := testScreen(t, 2)
	s = start(t, s)

	updated, _ := s.Update(keyPress('3'))
	s = updated.(*StudyScreen)

	if s.reviewed != 0 {
		t.Errorf("expected no review, got %d", s.reviewed)
	}
	if mgr.Session().CurrentIndex != 0 {
		t.Errorf("expected cursor unmoved, got %d", mgr.Session().CurrentIndex)
	}
	if s.hint == "" {
		t.Error("expected a hint about revealing first")
	}
}

func TestCompletingSessionReplacesWithSummary(t *testing.T) {
	s, mgr := testScreen(t, 1)
	s = start(t, s)

	updated, _ := s.Update(spaceKey())
	s = updated.(*StudyScreen)
	updated, cmd := s.Update(keyPress('4'))
	s = updated.(*StudyScreen)

	if mgr.Session() != nil {
		t.Error("expected session torn down after last card")
	}
	if cmd == nil {
		t.Fatal("expected a navigation command")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Errorf("expected ReplaceScreenMsg, got %T", cmd())
	}
	if s.reviewed != 1 {
		t.Errorf("expected 1 review, got %d", s.reviewed)
	}
}

func TestPollTickAbsorbsNewlyDue(t *testing.T) {
	s, mgr := testScreen(t, 1)
	svc := s.service

	// A second card scheduled slightly in the future.
	card, err := svc.AddCard(context.Background(), vocab.AddCardInput{
		DeckID: s.deckID,
		Front:  "later",
		Back:   "después",
	})
	if err != nil {
		t.Fatalf("add card: %v", err)
	}
	future := time.Now().Add(30 * time.Second)
	card.NextReview = &future

	s = start(t, s)
	if got := len(mgr.Session().CardsToStudy); got != 1 {
		t.Fatalf("expected 1 card in session, got %d", got)
	}

	updated, cmd := s.Update(pollTickMsg(time.Now().Add(time.Minute)))
	s = updated.(*StudyScreen)

	if got := len(mgr.Session().CardsToStudy); got != 2 {
		t.Errorf("expected newly due card absorbed, got %d", got)
	}
	if s.joined != 1 {
		t.Errorf("expected joined counter 1, got %d", s.joined)
	}
	if cmd == nil {
		t.Error("expected the tick to reschedule itself")
	}
}
