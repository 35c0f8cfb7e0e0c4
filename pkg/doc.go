// Package pkg provides the core libraries for the Primer onboarding wizard.
//
// # Overview
//
// Primer renders multi-page onboarding decks in the terminal. A deck is an
// ordered list of pages; each page carries optional headings, body text,
// media, a top icon, and a help overlay. The pkg directory is organized into
// a few focused areas:
//
//  1. [page] - Page model and the position-driven navigation state machine
//  2. [layout] - Sequential space budgeting and gravity-region composition
//  3. [icon] - Icon resolution with an indistinguishable built-in fallback
//  4. [deck] - TOML deck loading, media verification, and validation
//  5. [wizard] - The interactive TUI: rendering, key handling, delegates
//
// # Architecture
//
// The typical data flow through Primer:
//
//	deck.toml
//	     ↓
//	[deck] package (parse + load media payloads)
//	     ↓
//	[page] package (position → button configuration)
//	     ↓
//	[layout] package (budget rows into top/center/bottom regions)
//	     ↓
//	[wizard] package (compose frames, drive navigation)
//	     ↓
//	terminal output
//
// # Quick Start
//
// Load a deck and run the wizard:
//
//	import (
//	    "context"
//	    "github.com/primerdev/primer/pkg/deck"
//	    "github.com/primerdev/primer/pkg/wizard"
//	)
//
//	d, _ := deck.Load("deck.toml")
//	wiz := wizard.New(d)
//	res, _ := wiz.Run(context.Background())
//	if res.Completed {
//	    // user pressed Close on the final page
//	}
//
// Render a single page without a terminal session:
//
//	b := layout.Bounds{Width: 80, Height: 24}
//	frame := wizard.Frame(d.Pages[0], d.Position(0), b, wizard.DefaultStyles(), false)
//
// # Main Packages
//
// [page] - The page model plus the navigation state machine. A page's
// position (first, middle, last, single) fully determines button labels,
// visibility, and press actions. Pressing a hidden button is always safe:
// its action is none.
//
// [layout] - Pure allocation of page elements into gravity regions against a
// running row budget. Elements that don't fit are dropped in priority order;
// the allocator never clamps and never errors.
//
// [icon] - Resolves icon paths to images, substituting a built-in default on
// any failure so callers cannot tell a custom icon from the fallback. Also
// renders images to half-block terminal art.
//
// [deck] - TOML deck files with relative media/icon paths. Missing or
// undecodable media degrades to a declared-but-empty attachment rather than
// an error; Validate reports such fallbacks as warnings.
//
// [wizard] - Bubble Tea model wiring everything together: frames, key
// handling, the help overlay, and the delegate/terminator callbacks hosts
// use to observe navigation and completion.
//
// ## Supporting Packages
//
// [errors] - Structured errors with machine-readable codes for the CLI.
//
// [observability] - Pluggable hooks fired on page display, navigation, and
// icon fallback. All hooks default to no-ops.
//
// [buildinfo] - Version metadata injected at build time.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...              # All tests
//	go test ./pkg/layout/...       # Specific package
//	go test -run Example           # Examples only
//
// [page]: https://pkg.go.dev/github.com/primerdev/primer/pkg/page
// [layout]: https://pkg.go.dev/github.com/primerdev/primer/pkg/layout
// [icon]: https://pkg.go.dev/github.com/primerdev/primer/pkg/icon
// [deck]: https://pkg.go.dev/github.com/primerdev/primer/pkg/deck
// [wizard]: https://pkg.go.dev/github.com/primerdev/primer/pkg/wizard
// [errors]: https://pkg.go.dev/github.com/primerdev/primer/pkg/errors
// [observability]: https://pkg.go.dev/github.com/primerdev/primer/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/primerdev/primer/pkg/buildinfo
package pkg
