package wizard

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/primerdev/primer/pkg/layout"
	"github.com/primerdev/primer/pkg/observability"
	"github.com/primerdev/primer/pkg/page"
)

// Model is the bubbletea model for a wizard run. It owns the current page
// index; every page render derives its button configuration from the
// page's position alone.
type Model struct {
	wiz      *Wizard
	idx      int
	width    int
	height   int
	helpOpen bool
	finished bool
}

func newModel(w *Wizard) Model {
	return Model{wiz: w, width: 80, height: 24}
}

func (m Model) position() page.Position {
	return m.wiz.Deck.Position(m.idx)
}

func (m Model) current() *page.Page {
	return m.wiz.Deck.Pages[m.idx]
}

func (m Model) Init() tea.Cmd {
	observability.Wizard().OnPageShown(context.Background(), m.idx, m.position())
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		// The overlay is transient: any key dismisses it.
		if m.helpOpen {
			m.helpOpen = false
			return m, nil
		}

		cfg := m.position().Buttons()
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "enter", "right", "l", " ":
			return m.dispatch(cfg.RightAction)
		case "left", "h":
			// Dispatched even when the back button is hidden; its action
			// is ActionNone then, so the press is a no-op by construction.
			return m.dispatch(cfg.LeftAction)
		case "?":
			if m.current().HasHelp() {
				m.helpOpen = true
			}
		}
	}
	return m, nil
}

// dispatch fires a navigation action: the delegate is notified once per
// press, then the wizard moves.
func (m Model) dispatch(a page.Action) (tea.Model, tea.Cmd) {
	ctx := context.Background()
	cur := m.current()

	switch a {
	case page.ActionNone:
		return m, nil

	case page.ActionAdvance:
		observability.Wizard().OnNavigate(ctx, a, m.idx)
		m.wiz.logger.Debug("advance", "session", m.wiz.ID, "from", m.idx)
		m.wiz.nav.OnAdvance(cur)
		if m.idx < len(m.wiz.Deck.Pages)-1 {
			m.idx++
			observability.Wizard().OnPageShown(ctx, m.idx, m.position())
		}

	case page.ActionRetreat:
		observability.Wizard().OnNavigate(ctx, a, m.idx)
		m.wiz.logger.Debug("retreat", "session", m.wiz.ID, "from", m.idx)
		m.wiz.nav.OnRetreat(cur)
		if m.idx > 0 {
			m.idx--
			observability.Wizard().OnPageShown(ctx, m.idx, m.position())
		}

	case page.ActionFinish:
		observability.Wizard().OnNavigate(ctx, a, m.idx)
		observability.Wizard().OnFinish(ctx, FinishReason)
		m.wiz.logger.Debug("finish", "session", m.wiz.ID, "reason", FinishReason)
		m.wiz.term.Finish(FinishReason)
		m.finished = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) View() string {
	b := layout.Bounds{Width: m.width, Height: m.height}
	return Frame(m.current(), m.position(), b, m.wiz.styles, m.helpOpen)
}
