package wizard

import "github.com/primerdev/primer/pkg/page"

// FinishReason is the fixed reason reported when the finish action fires.
const FinishReason = "user completed onboarding"

// NavigationDelegate receives navigation intent from button presses.
// Delivery is synchronous and fire-and-forget: one event per press, no
// debouncing or queuing. The wizard owns its pages; implementations must
// not assume the page outlives the call.
type NavigationDelegate interface {
	// OnAdvance reports that the advance action fired on the given page.
	OnAdvance(from *page.Page)

	// OnRetreat reports that the retreat action fired on the given page.
	OnRetreat(from *page.Page)
}

// Terminator receives the single termination call when the finish action
// fires.
type Terminator interface {
	Finish(reason string)
}

type noopDelegate struct{}

func (noopDelegate) OnAdvance(*page.Page) {}
func (noopDelegate) OnRetreat(*page.Page) {}

type noopTerminator struct{}

func (noopTerminator) Finish(string) {}
