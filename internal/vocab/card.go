package vocab

import (
	"time"

	"github.com/amrw/vokab/internal/srs"
)

// Card is a single front/back vocabulary item. Scheduling fields are nil
// until the first review and are mutated in place on every review after
// that.
type Card struct {
	ID           string
	DeckID       string
	Front        string
	Back         string
	Language     string
	LastReviewed *time.Time
	NextReview   *time.Time
	Difficulty   srs.Difficulty // most recent rating, empty before first review
	CreatedAt    time.Time
}

// Due reports whether the card should enter a study session at now:
// either it has never been reviewed or its next review time has arrived.
func (c *Card) Due(now time.Time) bool {
	return c.NextReview == nil || !c.NextReview.After(now)
}
