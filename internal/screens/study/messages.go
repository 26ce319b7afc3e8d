package study

import (
	"time"

	tea "charm.land/bubbletea/v2"
)

// sessionStartedMsg is sent when session startup has finished.
type sessionStartedMsg struct {
	Err error
}

// pollTickMsg fires every second while a session is active so cards
// that became due mid-session can join the queue.
type pollTickMsg time.Time

// tickCmd returns a 1-second tick command.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return pollTickMsg(t)
	})
}
