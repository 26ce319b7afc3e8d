package newcard

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/amrw/vokab/internal/screen"
	"github.com/amrw/vokab/internal/ui/components"
	"github.com/amrw/vokab/internal/ui/layout"
	"github.com/amrw/vokab/internal/ui/theme"
	"github.com/amrw/vokab/internal/vocab"
)

const (
	fieldFront = iota
	fieldBack
	fieldCount
)

// NewCardScreen adds cards to one deck. It stays open after each add so
// several cards can be entered in a row.
type NewCardScreen struct {
	service *vocab.Service
	deckID  string
	inputs  [fieldCount]components.TextInput
	focused int
	added   int
	errMsg  string
}

var _ screen.Screen = (*NewCardScreen)(nil)
var _ screen.KeyHintProvider = (*NewCardScreen)(nil)

// New creates a NewCardScreen for the given deck.
func New(service *vocab.Service, deckID string) *NewCardScreen {
	s := &NewCardScreen{service: service, deckID: deckID}
	s.inputs[fieldFront] = components.NewTextInput("Front", "hello", 120)
	s.inputs[fieldBack] = components.NewTextInput("Back ", "hola", 120)
	return s
}

func (s *NewCardScreen) Init() tea.Cmd {
	return s.inputs[fieldFront].Focus()
}

func (s *NewCardScreen) Title() string {
	return "Add Card"
}

func (s *NewCardScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Add"},
		{Key: "Esc", Description: "Done"},
	}
}

func (s *NewCardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "tab", "down", "shift+tab", "up":
			return s, s.focusField((s.focused + 1) % fieldCount)
		case "enter":
			return s, s.submit()
		}
	}

	var cmd tea.Cmd
	s.inputs[s.focused], cmd = s.inputs[s.focused].Update(msg)
	return s, cmd
}

func (s *NewCardScreen) focusField(i int) tea.Cmd {
	s.inputs[s.focused].Blur()
	s.focused = i
	return s.inputs[s.focused].Focus()
}

func (s *NewCardScreen) submit() tea.Cmd {
	_, err := s.service.AddCard(context.Background(), vocab.AddCardInput{
		DeckID: s.deckID,
		Front:  s.inputs[fieldFront].Value(),
		Back:   s.inputs[fieldBack].Value(),
	})
	if err != nil {
		s.errMsg = "Front and back are both required."
		return nil
	}

	s.added++
	s.errMsg = ""
	s.inputs[fieldFront].Reset()
	s.inputs[fieldBack].Reset()
	return tea.Sequence(
		s.focusField(fieldFront),
		func() tea.Msg { return screen.DataChangedMsg{} },
	)
}

func (s *NewCardScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render("Add cards"))
	b.WriteString("\n\n")

	var form []string
	for i := range s.inputs {
		form = append(form, s.inputs[i].View())
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		strings.Join(form, "\n\n")))

	b.WriteString("\n\n")
	status := fmt.Sprintf("%d added this visit", s.added)
	if s.errMsg != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(s.errMsg))
	} else if s.added > 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Render(status))
	}

	return b.String()
}
