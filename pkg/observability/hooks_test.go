package observability

import (
	"context"
	"testing"

	"github.com/primerdev/primer/pkg/page"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	// Wizard hooks
	w := NoopWizardHooks{}
	w.OnPageShown(ctx, 0, page.First)
	w.OnNavigate(ctx, page.ActionAdvance, 0)
	w.OnFinish(ctx, "user completed onboarding")

	// Icon hooks
	i := NoopIconHooks{}
	i.OnResolve(ctx, "assets/logo.png")
	i.OnFallback(ctx, "", "unset")
}

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()

	// Verify defaults are noop
	if _, ok := Wizard().(NoopWizardHooks); !ok {
		t.Error("Wizard() should return NoopWizardHooks by default")
	}
	if _, ok := Icon().(NoopIconHooks); !ok {
		t.Error("Icon() should return NoopIconHooks by default")
	}

	// Set custom hooks
	customWizard := &testWizardHooks{}
	SetWizardHooks(customWizard)
	if Wizard() != customWizard {
		t.Error("SetWizardHooks should set custom hooks")
	}

	customIcon := &testIconHooks{}
	SetIconHooks(customIcon)
	if Icon() != customIcon {
		t.Error("SetIconHooks should set custom hooks")
	}

	// Reset and verify
	Reset()
	if _, ok := Wizard().(NoopWizardHooks); !ok {
		t.Error("Reset() should restore NoopWizardHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testWizardHooks{}
	SetWizardHooks(custom)

	// Setting nil should be ignored
	SetWizardHooks(nil)

	if Wizard() != custom {
		t.Error("SetWizardHooks(nil) should be ignored")
	}

	Reset()
}

// Test implementations
type testWizardHooks struct{ NoopWizardHooks }
type testIconHooks struct{ NoopIconHooks }
