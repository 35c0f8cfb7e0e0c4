// Package wizard renders one onboarding page at a time and drives
// navigation between pages.
//
// The per-page pieces are deliberately pure: button state comes from
// page.Position's exhaustive table, space budgeting from layout.Allocate,
// and Frame composes a full page deterministically. This package glues them
// to a bubbletea event loop and reports navigation intent to an injected
// NavigationDelegate. Ownership flows one way: the wizard owns its pages,
// pages never reference the wizard.
package wizard

import (
	"context"
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/primerdev/primer/pkg/deck"
)

// Wizard runs an onboarding deck. Create one with New; a Wizard is good
// for a single Run.
type Wizard struct {
	// ID identifies this wizard instance in logs.
	ID string

	// Deck is the loaded page sequence.
	Deck *deck.Deck

	nav    NavigationDelegate
	term   Terminator
	styles Styles
	logger *log.Logger
}

// Option configures a Wizard.
type Option func(*Wizard)

// WithDelegate installs the navigation delegate. Exactly one delegate
// receives events per wizard instance.
func WithDelegate(d NavigationDelegate) Option {
	return func(w *Wizard) {
		if d != nil {
			w.nav = d
		}
	}
}

// WithTerminator installs the termination receiver.
func WithTerminator(t Terminator) Option {
	return func(w *Wizard) {
		if t != nil {
			w.term = t
		}
	}
}

// WithStyles overrides the default appearance.
func WithStyles(s Styles) Option {
	return func(w *Wizard) { w.styles = s }
}

// WithLogger sets the structured logger. The default discards output.
func WithLogger(l *log.Logger) Option {
	return func(w *Wizard) {
		if l != nil {
			w.logger = l
		}
	}
}

// New creates a wizard for the given deck.
func New(d *deck.Deck, opts ...Option) *Wizard {
	w := &Wizard{
		ID:     uuid.NewString(),
		Deck:   d,
		nav:    noopDelegate{},
		term:   noopTerminator{},
		styles: DefaultStyles(),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Result reports how a wizard run ended.
type Result struct {
	// Completed is true when the finish action fired; false when the user
	// quit early.
	Completed bool

	// LastIndex is the page index shown when the run ended.
	LastIndex int
}

// Run drives the wizard in the terminal until it finishes or the user
// quits. Cancelling ctx tears the run down.
func (w *Wizard) Run(ctx context.Context) (Result, error) {
	w.logger.Debug("wizard starting", "session", w.ID, "pages", len(w.Deck.Pages))

	p := tea.NewProgram(newModel(w), tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return Result{}, ctx.Err()
		}
		return Result{}, fmt.Errorf("run wizard: %w", err)
	}

	m, ok := final.(Model)
	if !ok {
		return Result{}, fmt.Errorf("run wizard: unexpected final model %T", final)
	}
	return Result{Completed: m.finished, LastIndex: m.idx}, nil
}
