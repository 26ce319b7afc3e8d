package vocab

import "time"

// Deck is a named collection of cards sharing a study context.
//
// The three counters are caches recomputed from the card set (and the
// review log for StudiedToday), never sources of truth.
type Deck struct {
	ID          string
	Name        string
	Description string
	Language    string
	CreatedAt   time.Time

	TotalCards   int
	DueToday     int
	StudiedToday int
}
