package srs

import "time"

// Fixed-interval schedule. A simple spaced-repetition approximation:
// the next review depends only on the latest rating, not on the card's
// review history.
var intervals = map[Difficulty]time.Duration{
	Again: 1 * time.Minute,
	Hard:  8 * time.Minute,
	Good:  15 * time.Minute,
	Easy:  4 * 24 * time.Hour,
}

// Interval returns the review interval for a rating.
func Interval(d Difficulty) (time.Duration, error) {
	iv, ok := intervals[d]
	if !ok {
		return 0, ErrInvalidDifficulty
	}
	return iv, nil
}

// ScheduleNext computes the next review time for a rating given at now.
// Pure function of (d, now).
func ScheduleNext(d Difficulty, now time.Time) (time.Time, error) {
	iv, err := Interval(d)
	if err != nil {
		return time.Time{}, err
	}
	return now.Add(iv), nil
}
