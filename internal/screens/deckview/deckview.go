package deckview

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/amrw/vokab/internal/router"
	"github.com/amrw/vokab/internal/screen"
	"github.com/amrw/vokab/internal/screens/newcard"
	studyscreen "github.com/amrw/vokab/internal/screens/study"
	"github.com/amrw/vokab/internal/study"
	"github.com/amrw/vokab/internal/ui/components"
	"github.com/amrw/vokab/internal/ui/layout"
	"github.com/amrw/vokab/internal/ui/theme"
	"github.com/amrw/vokab/internal/vocab"
)

// maxCardPreview caps how many cards are listed under the deck header.
const maxCardPreview = 8

// DeckScreen shows one deck's counters and cards, and starts study
// sessions for it.
type DeckScreen struct {
	service *vocab.Service
	manager *study.Manager
	deckID  string
	menu    components.Menu
	errMsg  string
}

var _ screen.Screen = (*DeckScreen)(nil)
var _ screen.KeyHintProvider = (*DeckScreen)(nil)

// New creates a DeckScreen for the given deck.
func New(service *vocab.Service, manager *study.Manager, deckID string) *DeckScreen {
	d := &DeckScreen{
		service: service,
		manager: manager,
		deckID:  deckID,
	}
	d.menu = components.NewMenu(d.buildItems())
	return d
}

func (d *DeckScreen) buildItems() []components.MenuItem {
	deck, ok := d.service.Deck(d.deckID)
	if !ok {
		return nil
	}

	studyLabel := "Study now"
	if deck.DueToday > 0 {
		studyLabel = fmt.Sprintf("Study now (%d due)", deck.DueToday)
	}

	return []components.MenuItem{
		{
			Label:    studyLabel,
			Disabled: deck.DueToday == 0,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: studyscreen.New(d.service, d.manager, d.deckID),
					}
				}
			},
		},
		{
			Label: "Add card",
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: newcard.New(d.service, d.deckID)}
				}
			},
		},
		{
			Label: "Back",
			Action: func() tea.Cmd {
				return tea.Sequence(
					func() tea.Msg { return router.PopScreenMsg{} },
					func() tea.Msg { return screen.DataChangedMsg{} },
				)
			},
		},
	}
}

func (d *DeckScreen) Init() tea.Cmd {
	return nil
}

func (d *DeckScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if _, ok := msg.(screen.DataChangedMsg); ok {
		selected := d.menu.Selected
		d.menu = components.NewMenu(d.buildItems())
		if selected < len(d.menu.Items) && !d.menu.Items[selected].Disabled {
			d.menu.Selected = selected
		}
		return d, nil
	}

	var cmd tea.Cmd
	d.menu, cmd = d.menu.Update(msg)
	return d, cmd
}

func (d *DeckScreen) View(width, height int) string {
	deck, ok := d.service.Deck(d.deckID)
	if !ok {
		return theme.Subtitle.Width(width).Render("This deck no longer exists.")
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render(deck.Name))
	b.WriteString("\n")
	if deck.Description != "" {
		b.WriteString(theme.Subtitle.Width(width).Render(deck.Description))
		b.WriteString("\n")
	}

	stats := fmt.Sprintf("%s    %d cards    %d due    %d studied today",
		deck.Language, deck.TotalCards, deck.DueToday, deck.StudiedToday)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(stats))
	b.WriteString("\n\n")

	cards := d.service.CardsForDeck(d.deckID)
	if len(cards) > 0 {
		var lines []string
		shown := cards
		if len(shown) > maxCardPreview {
			shown = shown[:maxCardPreview]
		}
		for _, c := range shown {
			lines = append(lines, fmt.Sprintf("%s — %s", c.Front, c.Back))
		}
		if len(cards) > maxCardPreview {
			lines = append(lines, fmt.Sprintf("… and %d more", len(cards)-maxCardPreview))
		}
		list := lipgloss.NewStyle().Foreground(theme.TextDim).Render(strings.Join(lines, "\n"))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, list))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, d.menu.View()))

	if d.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(d.errMsg))
	}

	return b.String()
}

func (d *DeckScreen) Title() string {
	deck, ok := d.service.Deck(d.deckID)
	if !ok {
		return "Deck"
	}
	return deck.Name
}

func (d *DeckScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Back"},
	}
}
