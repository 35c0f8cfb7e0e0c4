package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/primerdev/primer/pkg/deck"
	perrors "github.com/primerdev/primer/pkg/errors"
	"github.com/primerdev/primer/pkg/wizard"
)

// runCommand creates the run command for interactive onboarding.
func (c *CLI) runCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [deck.toml]",
		Short: "Run an onboarding deck interactively",
		Long: `Run an onboarding deck interactively.

The run command loads a deck file, verifies it can render, and walks the
user through its pages one at a time in an alternate-screen TUI. Navigation
controls derive from each page's position: the first page hides the back
button, the last page closes the wizard.

Missing media or icon files are not errors; those pages render without the
missing element. Use 'primer check' to list such fallbacks ahead of time.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRun(cmd.Context(), args[0])
		},
	}
	return cmd
}

// runRun loads the deck and drives the wizard to completion or dismissal.
func (c *CLI) runRun(ctx context.Context, path string) error {
	spinner := newSpinnerWithContext(ctx, "Loading deck...")
	spinner.Start()

	d, err := deck.Load(path)
	if err != nil {
		spinner.StopWithError(perrors.UserMessage(err))
		return err
	}
	spinner.Stop()

	warnings, err := d.Validate()
	if err != nil {
		return err
	}
	for _, w := range warnings {
		printDetail("%s", w)
	}

	wiz := wizard.New(d, wizard.WithLogger(c.Logger))
	res, err := wiz.Run(ctx)
	if err != nil {
		return fmt.Errorf("run deck %s: %w", path, err)
	}

	if res.Completed {
		printSuccess("Onboarding complete")
	} else {
		printInfo("Onboarding dismissed at page %d/%d", res.LastIndex+1, len(d.Pages))
	}
	return nil
}
