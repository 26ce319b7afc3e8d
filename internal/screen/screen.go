package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/amrw/vokab/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// Closer is an optional interface for screens that hold resources or
// in-flight state needing teardown when dismissed with esc.
type Closer interface {
	Close() tea.Cmd
}

// DataChangedMsg tells a screen that decks or cards were modified while
// it was below another screen on the stack. Screens holding cached
// counters should recompute them on receipt.
type DataChangedMsg struct{}
