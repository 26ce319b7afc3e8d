package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/amrw/vokab/internal/config"
	"github.com/amrw/vokab/internal/router"
	"github.com/amrw/vokab/internal/screen"
	"github.com/amrw/vokab/internal/screens/home"
	"github.com/amrw/vokab/internal/store"
	"github.com/amrw/vokab/internal/study"
	"github.com/amrw/vokab/internal/ui/layout"
	"github.com/amrw/vokab/internal/vocab"
)

// AppModel is the root Bubble Tea model.
type AppModel struct {
	service *vocab.Service
	manager *study.Manager
	router  *router.Router
	width   int
	height  int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(service *vocab.Service, manager *study.Manager) AppModel {
	homeScreen := home.New(service, manager)
	return AppModel{
		service: service,
		manager: manager,
		router:  router.New(homeScreen),
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.shutdown()
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				cmds := make([]tea.Cmd, 0, 3)
				if c, ok := m.router.Active().(screen.Closer); ok {
					cmds = append(cmds, c.Close())
				}
				cmds = append(cmds,
					func() tea.Msg { return router.PopScreenMsg{} },
					func() tea.Msg { return screen.DataChangedMsg{} },
				)
				return m, tea.Sequence(cmds...)
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// shutdown ends any in-flight session so its end event is recorded.
func (m AppModel) shutdown() {
	_ = m.manager.End(context.Background(), time.Now())
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	var due, studied int
	for _, d := range m.service.Decks() {
		due += d.DueToday
		studied += d.StudiedToday
	}
	header := layout.RenderHeader(title, due, studied, m.width)

	var footerHints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	}
	if footerHints == nil {
		if m.router.Depth() > 1 {
			footerHints = []layout.KeyHint{
				{Key: "Esc", Description: "Back"},
				{Key: "Ctrl+C", Description: "Quit"},
			}
		} else {
			footerHints = []layout.KeyHint{
				{Key: "↑↓", Description: "Navigate"},
				{Key: "Enter", Description: "Select"},
				{Key: "Ctrl+C", Description: "Quit"},
			}
		}
	}
	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Options carries the dependencies Run needs.
type Options struct {
	Config *config.Config
	Logger *slog.Logger
}

// Run opens the store, hydrates the library, and starts the Bubble Tea
// program.
func Run(opts Options) error {
	cfg := opts.Config
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	if err := store.EnsureDir(cfg.DBPath); err != nil {
		return fmt.Errorf("prepare data dir: %w", err)
	}
	st, err := store.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer func() { _ = st.Close() }()

	events, err := st.EventRepo()
	if err != nil {
		return fmt.Errorf("open event log: %w", err)
	}

	service := vocab.NewService(st.DeckRepo(), st.CardRepo(), events)
	if err := service.Load(context.Background(), time.Now()); err != nil {
		return fmt.Errorf("load library: %w", err)
	}

	manager := study.NewManager(service, events, study.Config{
		MaxSessionSize: cfg.MaxSessionSize,
		RequeueOffset:  cfg.RequeueOffset,
		PollInterval:   cfg.PollInterval,
	})

	logger.Info("starting ui", "db", cfg.DBPath, "decks", len(service.Decks()))

	p := tea.NewProgram(newAppModel(service, manager))
	if _, err := p.Run(); err != nil {
		logger.Error("program exited", "error", err)
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
