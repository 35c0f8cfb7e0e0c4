package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/primerdev/primer/pkg/deck"
)

// checkCommand creates the check command for deck validation.
func (c *CLI) checkCommand() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "check [deck.toml]",
		Short: "Validate a deck file",
		Long: `Validate a deck file.

The check command loads a deck and reports everything that would silently
fall back at render time: media files that are missing or do not decode,
and icons that will be replaced by the default. These are warnings, not
errors, matching render behavior. With --strict, warnings fail the check.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCheck(cmd.Context(), args[0], strict)
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "treat warnings as errors")

	return cmd
}

func (c *CLI) runCheck(ctx context.Context, path string, strict bool) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	d, err := deck.Load(path)
	if err != nil {
		return err
	}
	warnings, err := d.Validate()
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Checked %d page(s)", len(d.Pages)))

	for _, w := range warnings {
		printWarning("%s", w)
	}

	if len(warnings) == 0 {
		printSuccess("Deck OK")
	} else {
		printInfo("Deck renders with %d fallback(s)", len(warnings))
	}
	printFile(path)
	printKeyValue("Pages", fmt.Sprintf("%d", len(d.Pages)))
	printNewline()
	printNextStep("Run", appName+" run "+path)

	if strict && len(warnings) > 0 {
		return fmt.Errorf("deck %s has %d warning(s)", path, len(warnings))
	}
	return nil
}
