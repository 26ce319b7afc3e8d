package study

import (
	"time"

	"github.com/amrw/vokab/internal/vocab"
)

// Session is the ordered, bounded working set of due cards plus a cursor
// for a single study interaction. It is ephemeral: created by
// Manager.Start, discarded when the cursor exhausts the list or the user
// exits.
type Session struct {
	ID     string
	DeckID string

	// CardsToStudy is the ordered working set. Cards rated "again" are
	// moved later in this slice rather than removed.
	CardsToStudy []*vocab.Card

	// CurrentIndex is the cursor into CardsToStudy. Invariant:
	// 0 <= CurrentIndex <= len(CardsToStudy); equality means complete.
	CurrentIndex int

	// ReviewedCards holds card ids in completion order. A card rated
	// "again" appears once per review.
	ReviewedCards []string

	// AnswerShown is true once the back of the current card is revealed.
	AnswerShown bool

	AgainCount int
	StartedAt  time.Time
}

// Current returns the active card, or nil if the cursor is out of range.
func (s *Session) Current() *vocab.Card {
	if s.CurrentIndex < 0 || s.CurrentIndex >= len(s.CardsToStudy) {
		return nil
	}
	return s.CardsToStudy[s.CurrentIndex]
}

// Complete reports whether the cursor has exhausted the working set.
func (s *Session) Complete() bool {
	return s.CurrentIndex >= len(s.CardsToStudy)
}

// Progress returns the fraction of the working set completed, in [0, 1].
func (s *Session) Progress() float64 {
	if len(s.CardsToStudy) == 0 {
		return 1
	}
	return float64(s.CurrentIndex) / float64(len(s.CardsToStudy))
}

// Contains reports whether a card is in the working set.
func (s *Session) Contains(cardID string) bool {
	for _, c := range s.CardsToStudy {
		if c.ID == cardID {
			return true
		}
	}
	return false
}

// requeue moves the card at index i later in the working set: it is
// removed and reinserted at min(i+offset, length after removal). The
// cursor is left alone, so it now points at the next different card.
func (s *Session) requeue(i, offset int) {
	card := s.CardsToStudy[i]
	rest := append(s.CardsToStudy[:i:i], s.CardsToStudy[i+1:]...)

	at := i + offset
	if at > len(rest) {
		at = len(rest)
	}

	rest = append(rest, nil)
	copy(rest[at+1:], rest[at:])
	rest[at] = card
	s.CardsToStudy = rest
}
