package wizard

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/primerdev/primer/pkg/icon"
	"github.com/primerdev/primer/pkg/layout"
	"github.com/primerdev/primer/pkg/page"
)

// iconRows is the fixed height of the top icon strip.
const iconRows = 4

// Frame renders one complete page at the given bounds: icon strip, budgeted
// content area, button row, and key hint. When helpOpen is set and the page
// carries an info section, the content area is replaced by the help
// overlay. Frame owns no state; identical inputs produce identical output.
func Frame(pg *page.Page, pos page.Position, b layout.Bounds, st Styles, helpOpen bool) string {
	r := NewRenderer(st)

	art := icon.Fit(icon.Resolve(pg.TopIcon), b.Width, iconRows)
	iconBlock := lipgloss.PlaceHorizontal(b.Width, lipgloss.Center, art)

	cfg := pos.Buttons()
	buttons := buttonRow(cfg, b.Width, st)
	hint := hintRow(pg, cfg, b.Width, st)

	// Icon strip, one gap row, content, one gap row, buttons, hint.
	chrome := lipgloss.Height(iconBlock) + 1 + 1 + lipgloss.Height(buttons) + 1
	content := layout.Bounds{Width: b.Width, Height: b.Height - chrome}

	var body string
	if helpOpen && pg.HasHelp() {
		body = helpOverlay(pg.Info, content, st)
	} else {
		body = layout.Compose(content, layout.Allocate(content, pg, r))
	}

	return strings.Join([]string{iconBlock, "", body, "", buttons, hint}, "\n")
}

// buttonRow lays out the back control on the left edge and the
// continue/close control on the right edge. Hidden buttons leave their
// space empty.
func buttonRow(cfg page.ButtonConfig, width int, st Styles) string {
	var left, right string
	if !cfg.LeftHidden {
		left = st.ButtonLeft.Render(cfg.LeftLabel)
	}
	if !cfg.RightHidden {
		right = st.ButtonRight.Render(cfg.RightLabel)
	}
	pad := width - lipgloss.Width(left) - lipgloss.Width(right)
	if pad < 1 {
		pad = 1
	}
	return left + strings.Repeat(" ", pad) + right
}

// hintRow renders the dim key legend under the buttons.
func hintRow(pg *page.Page, cfg page.ButtonConfig, width int, st Styles) string {
	parts := []string{"enter " + strings.ToLower(cfg.RightLabel)}
	if !cfg.LeftHidden {
		parts = append(parts, "← "+strings.ToLower(cfg.LeftLabel))
	}
	if pg.HasHelp() {
		parts = append(parts, "? help")
	}
	parts = append(parts, "q quit")
	line := st.Hint.Render(strings.Join(parts, " · "))
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, line)
}

// helpOverlay renders the info section in a transient box centered over
// the content area.
func helpOverlay(info *page.Info, b layout.Bounds, st Styles) string {
	boxWidth := b.Width - 8
	if boxWidth > 52 {
		boxWidth = 52
	}
	if boxWidth < 16 {
		boxWidth = b.Width
	}

	var sb strings.Builder
	if info.Title != "" {
		sb.WriteString(lipgloss.NewStyle().Bold(true).Render(info.Title))
		sb.WriteString("\n\n")
	}
	sb.WriteString(info.Body)
	sb.WriteString("\n\n")
	sb.WriteString(st.Hint.Render("press any key to dismiss"))

	box := st.Overlay.Width(boxWidth).Render(sb.String())
	return lipgloss.Place(b.Width, b.Height, lipgloss.Center, lipgloss.Center, box)
}
