package srs

import (
	"errors"
	"fmt"
)

// Difficulty is the learner's self-reported rating for a card review.
type Difficulty string

const (
	Again Difficulty = "again"
	Hard  Difficulty = "hard"
	Good  Difficulty = "good"
	Easy  Difficulty = "easy"
)

// ErrInvalidDifficulty is returned for ratings outside again/hard/good/easy.
// There is deliberately no fallback interval for unknown ratings.
var ErrInvalidDifficulty = errors.New("invalid difficulty rating")

// ParseDifficulty validates a raw rating string.
func ParseDifficulty(s string) (Difficulty, error) {
	switch Difficulty(s) {
	case Again, Hard, Good, Easy:
		return Difficulty(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidDifficulty, s)
}

// Valid reports whether d is one of the four known ratings.
func (d Difficulty) Valid() bool {
	_, err := ParseDifficulty(string(d))
	return err == nil
}
