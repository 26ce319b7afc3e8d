package newdeck

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/amrw/vokab/internal/router"
	"github.com/amrw/vokab/internal/screen"
	"github.com/amrw/vokab/internal/ui/components"
	"github.com/amrw/vokab/internal/ui/layout"
	"github.com/amrw/vokab/internal/ui/theme"
	"github.com/amrw/vokab/internal/vocab"
)

const (
	fieldName = iota
	fieldLanguage
	fieldDescription
	fieldCount
)

// NewDeckScreen is a small form for creating a deck.
type NewDeckScreen struct {
	service *vocab.Service
	inputs  [fieldCount]components.TextInput
	focused int
	errMsg  string
}

var _ screen.Screen = (*NewDeckScreen)(nil)
var _ screen.KeyHintProvider = (*NewDeckScreen)(nil)

// New creates a NewDeckScreen.
func New(service *vocab.Service) *NewDeckScreen {
	s := &NewDeckScreen{service: service}
	s.inputs[fieldName] = components.NewTextInput("Name       ", "Spanish basics", 60)
	s.inputs[fieldLanguage] = components.NewTextInput("Language   ", "Spanish", 40)
	s.inputs[fieldDescription] = components.NewTextInput("Description", "optional", 120)
	return s
}

func (s *NewDeckScreen) Init() tea.Cmd {
	return s.inputs[fieldName].Focus()
}

func (s *NewDeckScreen) Title() string {
	return "New Deck"
}

func (s *NewDeckScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Create"},
		{Key: "Esc", Description: "Cancel"},
	}
}

func (s *NewDeckScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "tab", "down":
			return s, s.focusField((s.focused + 1) % fieldCount)
		case "shift+tab", "up":
			return s, s.focusField((s.focused + fieldCount - 1) % fieldCount)
		case "enter":
			return s, s.submit()
		}
	}

	var cmd tea.Cmd
	s.inputs[s.focused], cmd = s.inputs[s.focused].Update(msg)
	return s, cmd
}

func (s *NewDeckScreen) focusField(i int) tea.Cmd {
	s.inputs[s.focused].Blur()
	s.focused = i
	return s.inputs[s.focused].Focus()
}

func (s *NewDeckScreen) submit() tea.Cmd {
	_, err := s.service.AddDeck(context.Background(), vocab.AddDeckInput{
		Name:        s.inputs[fieldName].Value(),
		Language:    s.inputs[fieldLanguage].Value(),
		Description: s.inputs[fieldDescription].Value(),
	})
	if err != nil {
		s.errMsg = "Name and language are required."
		s.inputs[fieldName].Submit(strings.TrimSpace(s.inputs[fieldName].Value()) != "")
		s.inputs[fieldLanguage].Submit(strings.TrimSpace(s.inputs[fieldLanguage].Value()) != "")
		return nil
	}

	return tea.Sequence(
		func() tea.Msg { return router.PopScreenMsg{} },
		func() tea.Msg { return screen.DataChangedMsg{} },
	)
}

func (s *NewDeckScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render("Create a new deck"))
	b.WriteString("\n\n")

	var form []string
	for i := range s.inputs {
		form = append(form, s.inputs[i].View())
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		strings.Join(form, "\n\n")))

	if s.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(s.errMsg))
	}

	return b.String()
}
