package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/amrw/vokab/internal/router"
	"github.com/amrw/vokab/internal/screen"
	"github.com/amrw/vokab/internal/screens/deckview"
	"github.com/amrw/vokab/internal/screens/newdeck"
	"github.com/amrw/vokab/internal/study"
	"github.com/amrw/vokab/internal/ui/components"
	"github.com/amrw/vokab/internal/ui/theme"
	"github.com/amrw/vokab/internal/vocab"
)

// HomeScreen lists all decks with their due counts and is the entry
// point for deck creation.
type HomeScreen struct {
	service *vocab.Service
	manager *study.Manager
	menu    components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(service *vocab.Service, manager *study.Manager) *HomeScreen {
	h := &HomeScreen{
		service: service,
		manager: manager,
	}
	h.menu = components.NewMenu(h.buildItems())
	return h
}

func (h *HomeScreen) buildItems() []components.MenuItem {
	decks := h.service.Decks()

	items := make([]components.MenuItem, 0, len(decks)+2)
	for _, d := range decks {
		deck := d
		detail := fmt.Sprintf("%s · %d cards", deck.Language, deck.TotalCards)
		if deck.DueToday > 0 {
			detail += fmt.Sprintf(" · %d due", deck.DueToday)
		}
		items = append(items, components.MenuItem{
			Label:  deck.Name,
			Detail: detail,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: deckview.New(h.service, h.manager, deck.ID),
					}
				}
			},
		})
	}

	items = append(items, components.MenuItem{
		Label: "New deck",
		Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: newdeck.New(h.service)}
			}
		},
	})
	items = append(items, components.MenuItem{
		Label: "Quit",
		Action: func() tea.Cmd {
			return tea.Quit
		},
	})

	return items
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if _, ok := msg.(screen.DataChangedMsg); ok {
		selected := h.menu.Selected
		h.menu = components.NewMenu(h.buildItems())
		if selected < len(h.menu.Items) {
			h.menu.Selected = selected
		}
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render("Your decks"))
	b.WriteString("\n")

	if len(h.service.Decks()) == 0 {
		b.WriteString(theme.Subtitle.Width(width).Render("No decks yet. Create one to get started."))
	}
	b.WriteString("\n")

	menu := h.menu.View()
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Render(menu)))

	return b.String()
}

func (h *HomeScreen) Title() string {
	return "Home"
}
