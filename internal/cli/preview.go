package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/primerdev/primer/pkg/deck"
	perrors "github.com/primerdev/primer/pkg/errors"
	"github.com/primerdev/primer/pkg/layout"
	"github.com/primerdev/primer/pkg/wizard"
)

// previewCommand creates the preview command for non-interactive rendering.
func (c *CLI) previewCommand() *cobra.Command {
	var (
		pageNum int
		width   int
		height  int
	)

	cmd := &cobra.Command{
		Use:   "preview [deck.toml]",
		Short: "Render a single page to stdout",
		Long: `Render a single page to stdout without entering the TUI.

The preview command composes one page exactly as the interactive wizard
would at the given frame size and prints it. Output is deterministic for a
given deck and size, which makes it suitable for golden-file checks in CI.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPreview(args[0], pageNum, width, height)
		},
	}

	cmd.Flags().IntVarP(&pageNum, "page", "p", 1, "page number to render (1-based)")
	cmd.Flags().IntVar(&width, "width", defaultPreviewWidth, "frame width in columns")
	cmd.Flags().IntVar(&height, "height", defaultPreviewHeight, "frame height in rows")

	return cmd
}

func (c *CLI) runPreview(path string, pageNum, width, height int) error {
	d, err := deck.Load(path)
	if err != nil {
		return err
	}
	if _, err := d.Validate(); err != nil {
		return err
	}
	if pageNum < 1 || pageNum > len(d.Pages) {
		return perrors.New(perrors.ErrCodePageNotFound,
			"page %d out of range: deck has %d page(s)", pageNum, len(d.Pages))
	}

	i := pageNum - 1
	b := layout.Bounds{Width: width, Height: height}
	frame := wizard.Frame(d.Pages[i], d.Position(i), b, wizard.DefaultStyles(), false)
	fmt.Println(frame)
	return nil
}
