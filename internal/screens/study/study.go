package study

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/amrw/vokab/internal/router"
	"github.com/amrw/vokab/internal/screen"
	"github.com/amrw/vokab/internal/screens/summary"
	"github.com/amrw/vokab/internal/srs"
	studycore "github.com/amrw/vokab/internal/study"
	"github.com/amrw/vokab/internal/ui/layout"
	"github.com/amrw/vokab/internal/vocab"
)

// ratingKeys maps the 1-4 keys to review difficulties.
var ratingKeys = map[string]srs.Difficulty{
	"1": srs.Again,
	"2": srs.Hard,
	"3": srs.Good,
	"4": srs.Easy,
}

// StudyScreen drives one review session: show front, reveal back, rate.
type StudyScreen struct {
	service *vocab.Service
	manager *studycore.Manager
	deckID  string

	reviewed  int
	agains    int
	startedAt time.Time
	joined    int // cards absorbed mid-session
	errMsg    string
	hint      string
}

var _ screen.Screen = (*StudyScreen)(nil)
var _ screen.KeyHintProvider = (*StudyScreen)(nil)
var _ screen.Closer = (*StudyScreen)(nil)

// New creates a StudyScreen for the given deck.
func New(service *vocab.Service, manager *studycore.Manager, deckID string) *StudyScreen {
	return &StudyScreen{
		service: service,
		manager: manager,
		deckID:  deckID,
	}
}

func (s *StudyScreen) Init() tea.Cmd {
	return s.startSession()
}

func (s *StudyScreen) startSession() tea.Cmd {
	return func() tea.Msg {
		_, err := s.manager.Start(context.Background(), s.deckID, time.Now())
		return sessionStartedMsg{Err: err}
	}
}

func (s *StudyScreen) Title() string {
	return "Study"
}

func (s *StudyScreen) KeyHints() []layout.KeyHint {
	sess := s.manager.Session()
	if sess == nil {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
		}
	}
	if !sess.AnswerShown {
		return []layout.KeyHint{
			{Key: "Space", Description: "Show answer"},
			{Key: "Esc", Description: "End session"},
		}
	}
	return []layout.KeyHint{
		{Key: "1", Description: "Again 1m"},
		{Key: "2", Description: "Hard 8m"},
		{Key: "3", Description: "Good 15m"},
		{Key: "4", Description: "Easy 4d"},
		{Key: "Esc", Description: "End session"},
	}
}

// Close ends the session early, recording what was reviewed so far.
func (s *StudyScreen) Close() tea.Cmd {
	_ = s.manager.End(context.Background(), time.Now())
	return nil
}

func (s *StudyScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionStartedMsg:
		return s.handleStarted(msg)

	case pollTickMsg:
		return s.handlePollTick(time.Time(msg))

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

func (s *StudyScreen) handleStarted(msg sessionStartedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		if errors.Is(msg.Err, studycore.ErrNothingDue) {
			s.errMsg = "No cards are due in this deck right now."
		} else {
			s.errMsg = fmt.Sprintf("Could not start session: %v", msg.Err)
		}
		return s, nil
	}

	s.startedAt = time.Now()
	return s, tickCmd(s.manager.PollInterval())
}

func (s *StudyScreen) handlePollTick(now time.Time) (screen.Screen, tea.Cmd) {
	if s.manager.Session() == nil {
		return s, nil
	}
	if n := s.manager.AbsorbNewlyDue(now); n > 0 {
		s.joined += n
	}
	return s, tickCmd(s.manager.PollInterval())
}

func (s *StudyScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	sess := s.manager.Session()
	if sess == nil {
		return s, nil
	}

	key := msg.String()

	if key == "space" || key == " " || (key == "enter" && !sess.AnswerShown) {
		_ = s.manager.RevealAnswer()
		s.hint = ""
		return s, nil
	}

	d, ok := ratingKeys[key]
	if !ok {
		return s, nil
	}

	result, err := s.manager.RecordReview(context.Background(), d, time.Now())
	if err != nil {
		if errors.Is(err, studycore.ErrAnswerNotShown) {
			s.hint = "Show the answer before rating."
		}
		return s, nil
	}

	s.reviewed++
	if result.Requeued {
		s.agains++
	}
	s.hint = ""

	if result.Complete {
		return s, s.finish()
	}
	return s, nil
}

func (s *StudyScreen) finish() tea.Cmd {
	deckName := s.deckID
	if deck, ok := s.service.Deck(s.deckID); ok {
		deckName = deck.Name
	}

	sum := &summary.Summary{
		DeckName: deckName,
		Reviewed: s.reviewed,
		Agains:   s.agains,
		Duration: time.Since(s.startedAt),
	}
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: summary.New(sum)}
	}
}
