package study

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/amrw/vokab/internal/ui/components"
	"github.com/amrw/vokab/internal/ui/theme"
)

func (s *StudyScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Subtitle.Render(s.errMsg))
	}

	sess := s.manager.Session()
	if sess == nil {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Subtitle.Render("Starting session..."))
	}

	card := sess.Current()
	if card == nil {
		return ""
	}

	var b strings.Builder

	total := len(sess.CardsToStudy)
	barWidth := min(width-20, 50)
	bar := components.NewProgressBar(
		fmt.Sprintf("Card %d of %d", sess.CurrentIndex+1, total),
		sess.Progress(),
		false, barWidth)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	cardWidth := min(width-10, 60)
	front := theme.Card.Width(cardWidth).Render(
		theme.CardFront.Width(cardWidth - 4).Render(card.Front))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, front))
	b.WriteString("\n")

	if sess.AnswerShown {
		back := theme.Card.Width(cardWidth).Render(
			theme.CardBack.Width(cardWidth - 4).Render(card.Back))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, back))
		b.WriteString("\n\n")
		ratings := "1 Again · 2 Hard · 3 Good · 4 Easy"
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(ratings))
	} else {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Width(width).Align(lipgloss.Center).
			Render("press space to reveal"))
	}

	if s.hint != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Render(s.hint))
	}

	if s.joined > 0 {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("%d card(s) became due and joined this session", s.joined)))
	}

	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Center, b.String())
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
