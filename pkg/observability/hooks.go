// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers register hooks
// at startup to receive events about wizard navigation and icon resolution.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// Hooks are registered by main, not by libraries, which avoids import cycles
// and keeps the core free of observability-framework dependencies.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetWizardHooks(&myWizardHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Wizard().OnPageShown(ctx, index, pos)
package observability

import (
	"context"
	"sync"

	"github.com/primerdev/primer/pkg/page"
)

// =============================================================================
// Wizard Hooks
// =============================================================================

// WizardHooks receives navigation events from a running wizard.
type WizardHooks interface {
	// OnPageShown records that the page at index rendered with the given position.
	OnPageShown(ctx context.Context, index int, pos page.Position)

	// OnNavigate records a navigation action fired from the page at index.
	OnNavigate(ctx context.Context, action page.Action, index int)

	// OnFinish records wizard termination.
	OnFinish(ctx context.Context, reason string)
}

// =============================================================================
// Icon Hooks
// =============================================================================

// IconHooks receives events from icon resolution.
type IconHooks interface {
	// OnResolve records a successful custom icon load.
	OnResolve(ctx context.Context, path string)

	// OnFallback records a fall back to the default icon.
	// Cause is one of "unset", "read", or "decode".
	OnFallback(ctx context.Context, path, cause string)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopWizardHooks is a no-op implementation of WizardHooks.
type NoopWizardHooks struct{}

func (NoopWizardHooks) OnPageShown(context.Context, int, page.Position) {}
func (NoopWizardHooks) OnNavigate(context.Context, page.Action, int)    {}
func (NoopWizardHooks) OnFinish(context.Context, string)                {}

// NoopIconHooks is a no-op implementation of IconHooks.
type NoopIconHooks struct{}

func (NoopIconHooks) OnResolve(context.Context, string)          {}
func (NoopIconHooks) OnFallback(context.Context, string, string) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	wizardHooks WizardHooks = NoopWizardHooks{}
	iconHooks   IconHooks   = NoopIconHooks{}
	hooksMu     sync.RWMutex
)

// SetWizardHooks registers custom wizard hooks.
// This should be called once at application startup before any wizard runs.
func SetWizardHooks(h WizardHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		wizardHooks = h
	}
}

// SetIconHooks registers custom icon hooks.
// This should be called once at application startup before any icon resolution.
func SetIconHooks(h IconHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		iconHooks = h
	}
}

// Wizard returns the registered wizard hooks.
func Wizard() WizardHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return wizardHooks
}

// Icon returns the registered icon hooks.
func Icon() IconHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return iconHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	wizardHooks = NoopWizardHooks{}
	iconHooks = NoopIconHooks{}
}
