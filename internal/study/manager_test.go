package study

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/amrw/vokab/internal/srs"
	"github.com/amrw/vokab/internal/store"
	"github.com/amrw/vokab/internal/vocab"
)

// fakeEventRepo records appended events for assertions.
type fakeEventRepo struct {
	sessions []store.SessionEventData
	reviews  []store.ReviewEventData
}

func (f *fakeEventRepo) AppendReview(_ context.Context, data store.ReviewEventData) error {
	f.reviews = append(f.reviews, data)
	return nil
}

func (f *fakeEventRepo) AppendSession(_ context.Context, data store.SessionEventData) error {
	f.sessions = append(f.sessions, data)
	return nil
}

func (f *fakeEventRepo) ReviewCountsSince(_ context.Context, _ time.Time) (map[string]int, error) {
	return nil, nil
}

var testNow = time.Date(2026, 4, 2, 15, 0, 0, 0, time.UTC)

func newFixture(t *testing.T, cardCount int) (*Manager, *vocab.Service, string, *fakeEventRepo) {
	t.Helper()
	svc := vocab.NewService(nil, nil, nil)
	d, err := svc.AddDeck(context.Background(), vocab.AddDeckInput{
		Name:     "Basic German",
		Language: "German",
	})
	if err != nil {
		t.Fatalf("add deck: %v", err)
	}
	for i := 0; i < cardCount; i++ {
		_, err := svc.AddCard(context.Background(), vocab.AddCardInput{
			DeckID: d.ID,
			Front:  string(rune('a' + i)),
			Back:   string(rune('A' + i)),
		})
		if err != nil {
			t.Fatalf("add card %d: %v", i, err)
		}
	}
	events := &fakeEventRepo{}
	m := NewManager(svc, events, DefaultConfig())
	return m, svc, d.ID, events
}

func startSession(t *testing.T, m *Manager, deckID string) *Session {
	t.Helper()
	sess, err := m.Start(context.Background(), deckID, testNow)
	if err != nil {
		t.Fatalf("start session: %v", err)
	}
	return sess
}

func review(t *testing.T, m *Manager, d srs.Difficulty) *ReviewResult {
	t.Helper()
	if err := m.RevealAnswer(); err != nil {
		t.Fatalf("reveal: %v", err)
	}
	res, err := m.RecordReview(context.Background(), d, testNow)
	if err != nil {
		t.Fatalf("record %s: %v", d, err)
	}
	return res
}

func TestStart_RefusedWhenNothingDue(t *testing.T) {
	m, svc, deckID, _ := newFixture(t, 1)

	// Push the only card out of the due window.
	card := svc.CardsForDeck(deckID)[0]
	if _, err := svc.ApplyReview(context.Background(), card.ID, srs.Easy, testNow); err != nil {
		t.Fatalf("apply review: %v", err)
	}

	_, err := m.Start(context.Background(), deckID, testNow)
	if !errors.Is(err, ErrNothingDue) {
		t.Fatalf("err = %v, want ErrNothingDue", err)
	}
	if m.Session() != nil {
		t.Error("refused start must not create a session")
	}
}

func TestStart_EmptyDeckRefused(t *testing.T) {
	m, _, deckID, _ := newFixture(t, 0)
	_, err := m.Start(context.Background(), deckID, testNow)
	if !errors.Is(err, ErrNothingDue) {
		t.Fatalf("err = %v, want ErrNothingDue", err)
	}
}

func TestStart_UnknownDeck(t *testing.T) {
	m, _, _, _ := newFixture(t, 1)
	_, err := m.Start(context.Background(), "nope", testNow)
	if !errors.Is(err, vocab.ErrDeckNotFound) {
		t.Fatalf("err = %v, want ErrDeckNotFound", err)
	}
}

func TestStart_SelectsDueSubset(t *testing.T) {
	m, svc, deckID, _ := newFixture(t, 5)

	// Two cards leave the due window.
	cards := svc.CardsForDeck(deckID)
	for _, c := range cards[:2] {
		if _, err := svc.ApplyReview(context.Background(), c.ID, srs.Easy, testNow); err != nil {
			t.Fatalf("apply review: %v", err)
		}
	}

	sess := startSession(t, m, deckID)

	// Order is shuffled; compare as a multiset.
	var got, want []string
	for _, c := range sess.CardsToStudy {
		got = append(got, c.ID)
	}
	for _, c := range cards[2:] {
		want = append(want, c.ID)
	}
	sort.Strings(got)
	sort.Strings(want)
	if len(got) != len(want) {
		t.Fatalf("session has %d cards, want %d", len(got), len(want))
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("session cards %v, want %v", got, want)
		}
	}
}

func TestStart_CapsSessionSize(t *testing.T) {
	m, _, deckID, _ := newFixture(t, 15)
	sess := startSession(t, m, deckID)
	if len(sess.CardsToStudy) != DefaultConfig().MaxSessionSize {
		t.Errorf("session size = %d, want %d", len(sess.CardsToStudy), DefaultConfig().MaxSessionSize)
	}
}

func TestStart_TearsDownActiveSession(t *testing.T) {
	m, _, deckID, events := newFixture(t, 3)

	first := startSession(t, m, deckID)
	second := startSession(t, m, deckID)
	if first.ID == second.ID {
		t.Fatal("expected a fresh session")
	}

	// start, end (old), start.
	var actions []string
	for _, e := range events.sessions {
		actions = append(actions, e.Action)
	}
	if len(actions) != 3 || actions[0] != "start" || actions[1] != "end" || actions[2] != "start" {
		t.Errorf("session events = %v, want [start end start]", actions)
	}
	if events.sessions[1].SessionID != first.ID {
		t.Error("end event should belong to the first session")
	}
}

func TestRevealAnswer_NoSession(t *testing.T) {
	m, _, _, _ := newFixture(t, 1)
	if err := m.RevealAnswer(); !errors.Is(err, ErrNoSession) {
		t.Fatalf("err = %v, want ErrNoSession", err)
	}
}

func TestRevealAnswer_Idempotent(t *testing.T) {
	m, _, deckID, _ := newFixture(t, 2)
	sess := startSession(t, m, deckID)

	if err := m.RevealAnswer(); err != nil {
		t.Fatalf("reveal: %v", err)
	}
	if err := m.RevealAnswer(); err != nil {
		t.Fatalf("second reveal: %v", err)
	}
	if !sess.AnswerShown {
		t.Error("AnswerShown should stay true")
	}
	if sess.CurrentIndex != 0 || len(sess.ReviewedCards) != 0 {
		t.Error("reveal must have no other side effect")
	}
}

func TestRecordReview_RequiresReveal(t *testing.T) {
	m, _, deckID, _ := newFixture(t, 2)
	startSession(t, m, deckID)

	_, err := m.RecordReview(context.Background(), srs.Good, testNow)
	if !errors.Is(err, ErrAnswerNotShown) {
		t.Fatalf("err = %v, want ErrAnswerNotShown", err)
	}
}

func TestRecordReview_NoSession(t *testing.T) {
	m, _, _, _ := newFixture(t, 1)
	_, err := m.RecordReview(context.Background(), srs.Good, testNow)
	if !errors.Is(err, ErrNoSession) {
		t.Fatalf("err = %v, want ErrNoSession", err)
	}
}

func TestRecordReview_AdvancesCursorAndResetsReveal(t *testing.T) {
	m, _, deckID, _ := newFixture(t, 3)
	sess := startSession(t, m, deckID)
	first := sess.Current()

	res := review(t, m, srs.Good)

	if res.Card != first {
		t.Error("result should carry the reviewed card")
	}
	if sess.CurrentIndex != 1 {
		t.Errorf("CurrentIndex = %d, want 1", sess.CurrentIndex)
	}
	if sess.AnswerShown {
		t.Error("AnswerShown must reset for the next card")
	}
	if len(sess.ReviewedCards) != 1 || sess.ReviewedCards[0] != first.ID {
		t.Errorf("ReviewedCards = %v, want [%s]", sess.ReviewedCards, first.ID)
	}
	if want := testNow.Add(15 * time.Minute); !res.NextReview.Equal(want) {
		t.Errorf("NextReview = %v, want %v", res.NextReview, want)
	}
}

func TestRecordReview_AgainRequeuesAtOffset(t *testing.T) {
	m, _, deckID, _ := newFixture(t, 10)
	sess := startSession(t, m, deckID)

	failed := sess.Current()
	nextUp := sess.CardsToStudy[1]

	res := review(t, m, srs.Again)

	if !res.Requeued {
		t.Error("expected Requeued result")
	}
	if sess.CurrentIndex != 0 {
		t.Errorf("CurrentIndex = %d, want 0 (cursor stays)", sess.CurrentIndex)
	}
	if sess.Current() != nextUp {
		t.Error("cursor should now point at the next different card")
	}
	if len(sess.CardsToStudy) != 10 {
		t.Errorf("session length = %d, want 10 (card never dropped)", len(sess.CardsToStudy))
	}
	// Removed from 0, reinserted at min(0+6, 9) = 6.
	if sess.CardsToStudy[6] != failed {
		t.Errorf("failed card at index %d, want 6", indexOf(sess, failed.ID))
	}
}

func TestRecordReview_AgainNearEndClamps(t *testing.T) {
	m, _, deckID, _ := newFixture(t, 3)
	sess := startSession(t, m, deckID)

	review(t, m, srs.Good)
	review(t, m, srs.Good)

	failed := sess.Current()
	review(t, m, srs.Again)

	// Removed at 2 from a 3-card list; reinsert at min(2+6, 2) = 2.
	if sess.CardsToStudy[2] != failed {
		t.Errorf("failed card at index %d, want 2", indexOf(sess, failed.ID))
	}
	if sess.Complete() {
		t.Error("session must not complete while the again-card is pending")
	}
}

func TestSession_TerminatesAfterLenPlusAgains(t *testing.T) {
	m, _, deckID, _ := newFixture(t, 5)
	sess := startSession(t, m, deckID)

	// One failure, then everything rated good.
	review(t, m, srs.Again)

	ops := 1
	for m.Session() != nil {
		res := review(t, m, srs.Good)
		ops++
		if res.Complete {
			break
		}
	}

	if want := len(sess.CardsToStudy) + sess.AgainCount; ops != want {
		t.Errorf("session took %d reviews, want %d", ops, want)
	}
	if m.Session() != nil {
		t.Error("session should be torn down on completion")
	}
}

func TestRecordReview_InvalidDifficultyLeavesSessionIntact(t *testing.T) {
	m, _, deckID, _ := newFixture(t, 2)
	sess := startSession(t, m, deckID)

	if err := m.RevealAnswer(); err != nil {
		t.Fatalf("reveal: %v", err)
	}
	_, err := m.RecordReview(context.Background(), srs.Difficulty("medium"), testNow)
	if !errors.Is(err, srs.ErrInvalidDifficulty) {
		t.Fatalf("err = %v, want ErrInvalidDifficulty", err)
	}
	if sess.CurrentIndex != 0 || len(sess.ReviewedCards) != 0 {
		t.Error("rejected rating must not advance the session")
	}
	if m.Session() != sess {
		t.Error("session must survive a rejected rating")
	}
}

func TestRecordReview_CorruptCursorAbortsSession(t *testing.T) {
	m, _, deckID, _ := newFixture(t, 2)
	sess := startSession(t, m, deckID)

	sess.CurrentIndex = len(sess.CardsToStudy)
	sess.AnswerShown = true

	_, err := m.RecordReview(context.Background(), srs.Good, testNow)
	if !errors.Is(err, ErrSessionCorrupt) {
		t.Fatalf("err = %v, want ErrSessionCorrupt", err)
	}
	if m.Session() != nil {
		t.Error("corrupt session must be aborted")
	}
}

// Deck D has card A with no history and card B due in an hour; a session
// at T holds only A, and rating it easy schedules T+4d and completes the
// session.
func TestSingleDueCardEasyScenario(t *testing.T) {
	m, svc, deckID, _ := newFixture(t, 2)

	cards := svc.CardsForDeck(deckID)
	b := cards[1]
	if _, err := svc.ApplyReview(context.Background(), b.ID, srs.Good, testNow.Add(45*time.Minute)); err != nil {
		t.Fatalf("apply review: %v", err) // due at T+1h
	}

	sess := startSession(t, m, deckID)
	if len(sess.CardsToStudy) != 1 || sess.CardsToStudy[0].ID != cards[0].ID {
		t.Fatal("session should hold only the never-reviewed card")
	}

	res := review(t, m, srs.Easy)
	if !res.Complete {
		t.Error("session should complete")
	}
	a, _ := svc.Card(cards[0].ID)
	if want := testNow.Add(4 * 24 * time.Hour); a.NextReview == nil || !a.NextReview.Equal(want) {
		t.Errorf("A.NextReview = %v, want %v", a.NextReview, want)
	}
	if m.Session() != nil {
		t.Error("session should be gone")
	}
}

func TestAbsorbNewlyDue(t *testing.T) {
	m, svc, deckID, _ := newFixture(t, 2)

	// Card B is not due at start.
	cards := svc.CardsForDeck(deckID)
	b := cards[1]
	if _, err := svc.ApplyReview(context.Background(), b.ID, srs.Again, testNow.Add(-30*time.Second)); err != nil {
		t.Fatalf("apply review: %v", err) // due at testNow+30s
	}

	sess := startSession(t, m, deckID)
	if len(sess.CardsToStudy) != 1 {
		t.Fatalf("session size = %d, want 1", len(sess.CardsToStudy))
	}

	// Nothing new yet.
	if added := m.AbsorbNewlyDue(testNow); added != 0 {
		t.Errorf("added = %d, want 0", added)
	}

	// B's interval elapses mid-session.
	if added := m.AbsorbNewlyDue(testNow.Add(time.Minute)); added != 1 {
		t.Errorf("added = %d, want 1", added)
	}
	if !sess.Contains(b.ID) {
		t.Error("B should join the working set")
	}

	// Already present; not added twice.
	if added := m.AbsorbNewlyDue(testNow.Add(2 * time.Minute)); added != 0 {
		t.Errorf("added = %d, want 0 on second poll", added)
	}
}

func TestAbsorbNewlyDue_NoSession(t *testing.T) {
	m, _, _, _ := newFixture(t, 1)
	if added := m.AbsorbNewlyDue(testNow); added != 0 {
		t.Errorf("added = %d, want 0", added)
	}
}

func TestEnd_EmitsSummaryEvent(t *testing.T) {
	m, _, deckID, events := newFixture(t, 3)
	sess := startSession(t, m, deckID)

	review(t, m, srs.Again)
	review(t, m, srs.Good)

	if err := m.End(context.Background(), testNow.Add(90*time.Second)); err != nil {
		t.Fatalf("end: %v", err)
	}

	last := events.sessions[len(events.sessions)-1]
	if last.Action != "end" || last.SessionID != sess.ID {
		t.Fatalf("unexpected final event %+v", last)
	}
	if last.CardsReviewed != 2 {
		t.Errorf("CardsReviewed = %d, want 2", last.CardsReviewed)
	}
	if last.AgainCount != 1 {
		t.Errorf("AgainCount = %d, want 1", last.AgainCount)
	}
	if last.DurationSecs != 90 {
		t.Errorf("DurationSecs = %d, want 90", last.DurationSecs)
	}

	// Ending again is a no-op.
	if err := m.End(context.Background(), testNow); err != nil {
		t.Fatalf("second end: %v", err)
	}
}

func TestConfigurableRequeueOffset(t *testing.T) {
	svc := vocab.NewService(nil, nil, nil)
	d, err := svc.AddDeck(context.Background(), vocab.AddDeckInput{Name: "x", Language: "German"})
	if err != nil {
		t.Fatalf("add deck: %v", err)
	}
	for i := 0; i < 5; i++ {
		if _, err := svc.AddCard(context.Background(), vocab.AddCardInput{
			DeckID: d.ID, Front: string(rune('a' + i)), Back: "x",
		}); err != nil {
			t.Fatalf("add card: %v", err)
		}
	}

	m := NewManager(svc, nil, Config{MaxSessionSize: 10, RequeueOffset: 2})
	sess := startSession(t, m, d.ID)

	failed := sess.Current()
	review(t, m, srs.Again)

	if sess.CardsToStudy[2] != failed {
		t.Errorf("failed card at index %d, want 2", indexOf(sess, failed.ID))
	}
}

func indexOf(s *Session, cardID string) int {
	for i, c := range s.CardsToStudy {
		if c.ID == cardID {
			return i
		}
	}
	return -1
}
