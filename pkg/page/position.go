package page

import "fmt"

// =============================================================================
// Position
// =============================================================================

// Position is the ordinal role of a page within its deck. It is the sole
// input to all button-configuration decisions and carries no page content.
//
// The set is closed: adding a variant requires extending Buttons and
// String together.
type Position int

const (
	// First is the opening page of a multi-page deck.
	First Position = iota

	// Middle is any page with neighbors on both sides.
	Middle

	// Last is the closing page of a multi-page deck.
	Last

	// Single is the only page of a one-page deck.
	Single
)

// String returns the position name.
func (p Position) String() string {
	switch p {
	case First:
		return "first"
	case Middle:
		return "middle"
	case Last:
		return "last"
	case Single:
		return "single"
	}
	return fmt.Sprintf("position(%d)", int(p))
}

// Of derives the position for the page at index within a deck of n pages.
// A one-page deck yields Single; otherwise index 0 is First, index n-1 is
// Last, and everything between is Middle.
func Of(index, n int) Position {
	switch {
	case n <= 1:
		return Single
	case index == 0:
		return First
	case index == n-1:
		return Last
	default:
		return Middle
	}
}

// =============================================================================
// Actions
// =============================================================================

// Action is the navigation intent a button press produces.
type Action int

const (
	// ActionNone produces no event. Pressing a hidden button dispatches
	// ActionNone; the state machine does not rely on the UI layer to
	// prevent the press.
	ActionNone Action = iota

	// ActionAdvance requests the next page.
	ActionAdvance

	// ActionRetreat requests the previous page.
	ActionRetreat

	// ActionFinish requests wizard termination.
	ActionFinish
)

// String returns the action name.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionAdvance:
		return "advance"
	case ActionRetreat:
		return "retreat"
	case ActionFinish:
		return "finish"
	}
	return fmt.Sprintf("action(%d)", int(a))
}

// =============================================================================
// Button configuration
// =============================================================================

// Button labels. The right button doubles as the continue and close control
// depending on position; the left button is always the back control.
const (
	LabelContinue = "Continue"
	LabelBack     = "Back"
	LabelClose    = "Close"
)

// ButtonConfig is the observable navigation-control state derived from a
// position: labels, visibility, and the action each button dispatches.
type ButtonConfig struct {
	RightLabel  string
	LeftLabel   string
	RightHidden bool
	LeftHidden  bool
	RightAction Action
	LeftAction  Action
}

// Buttons maps a position to its button configuration. It is a total
// function over the four variants:
//
//	first:  Continue/advance, Back hidden/none
//	middle: Continue/advance, Back/retreat
//	last:   Close/finish,     Back/retreat
//	single: Close/finish,     Back hidden/none
//
// The right button is never hidden.
func (p Position) Buttons() ButtonConfig {
	switch p {
	case First:
		return ButtonConfig{
			RightLabel:  LabelContinue,
			LeftLabel:   LabelBack,
			LeftHidden:  true,
			RightAction: ActionAdvance,
			LeftAction:  ActionNone,
		}
	case Middle:
		return ButtonConfig{
			RightLabel:  LabelContinue,
			LeftLabel:   LabelBack,
			RightAction: ActionAdvance,
			LeftAction:  ActionRetreat,
		}
	case Last:
		return ButtonConfig{
			RightLabel:  LabelClose,
			LeftLabel:   LabelBack,
			RightAction: ActionFinish,
			LeftAction:  ActionRetreat,
		}
	case Single:
		return ButtonConfig{
			RightLabel:  LabelClose,
			LeftLabel:   LabelBack,
			LeftHidden:  true,
			RightAction: ActionFinish,
			LeftAction:  ActionNone,
		}
	}
	panic(fmt.Sprintf("page: unknown position %d", int(p)))
}
