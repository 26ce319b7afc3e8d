package srs

import (
	"errors"
	"testing"
	"time"
)

func TestScheduleNext_Intervals(t *testing.T) {
	now := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

	tests := []struct {
		difficulty Difficulty
		want       time.Duration
	}{
		{Again, 1 * time.Minute},
		{Hard, 8 * time.Minute},
		{Good, 15 * time.Minute},
		{Easy, 4 * 24 * time.Hour},
	}

	for _, tt := range tests {
		t.Run(string(tt.difficulty), func(t *testing.T) {
			next, err := ScheduleNext(tt.difficulty, now)
			if err != nil {
				t.Fatalf("ScheduleNext(%s): %v", tt.difficulty, err)
			}
			if got := next.Sub(now); got != tt.want {
				t.Errorf("interval = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScheduleNext_RejectsUnknownRating(t *testing.T) {
	_, err := ScheduleNext(Difficulty("medium"), time.Now())
	if !errors.Is(err, ErrInvalidDifficulty) {
		t.Fatalf("err = %v, want ErrInvalidDifficulty", err)
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in      string
		want    Difficulty
		wantErr bool
	}{
		{"again", Again, false},
		{"hard", Hard, false},
		{"good", Good, false},
		{"easy", Easy, false},
		{"", "", true},
		{"Easy", "", true},
		{"medium", "", true},
	}

	for _, tt := range tests {
		got, err := ParseDifficulty(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidDifficulty) {
				t.Errorf("ParseDifficulty(%q) err = %v, want ErrInvalidDifficulty", tt.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseDifficulty(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDifficulty(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
