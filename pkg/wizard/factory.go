package wizard

import (
	"bytes"
	"image"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/primerdev/primer/pkg/icon"
	"github.com/primerdev/primer/pkg/layout"
	"github.com/primerdev/primer/pkg/page"
)

// =============================================================================
// Styles
// =============================================================================

var (
	colorCyan  = lipgloss.Color("36")  // Teal - headings, primary button
	colorWhite = lipgloss.Color("255") // Bright white - body text
	colorGray  = lipgloss.Color("245") // Gray - subtitles
	colorDim   = lipgloss.Color("240") // Dim gray - hints, borders
)

// Styles collects the lipgloss styles used to render page elements.
type Styles struct {
	Title       lipgloss.Style
	Subtitle    lipgloss.Style
	Body        lipgloss.Style
	MediaBox    lipgloss.Style
	ButtonRight lipgloss.Style
	ButtonLeft  lipgloss.Style
	Hint        lipgloss.Style
	Overlay     lipgloss.Style
}

// DefaultStyles returns the standard wizard appearance.
func DefaultStyles() Styles {
	return Styles{
		Title:       lipgloss.NewStyle().Bold(true).Foreground(colorCyan).Align(lipgloss.Center),
		Subtitle:    lipgloss.NewStyle().Foreground(colorGray).Align(lipgloss.Center),
		Body:        lipgloss.NewStyle().Foreground(colorWhite),
		MediaBox:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorDim).Padding(0, 1),
		ButtonRight: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(colorCyan).Padding(0, 2),
		ButtonLeft:  lipgloss.NewStyle().Foreground(colorGray).Padding(0, 2),
		Hint:        lipgloss.NewStyle().Foreground(colorDim),
		Overlay:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorCyan).Padding(1, 2),
	}
}

// =============================================================================
// Renderer
// =============================================================================

// Renderer creates terminal elements from page content. It implements
// layout.Factory: text is wrapped to the given width and measured in rows,
// media is scaled into the remaining budget.
type Renderer struct {
	styles Styles
}

// NewRenderer creates a renderer with the given styles.
func NewRenderer(s Styles) *Renderer {
	return &Renderer{styles: s}
}

// Title renders the page title wrapped to width.
func (r *Renderer) Title(text string, width int) layout.Element {
	return textElement(r.styles.Title, text, width)
}

// Subtitle renders the page subtitle wrapped to width.
func (r *Renderer) Subtitle(text string, width int) layout.Element {
	return textElement(r.styles.Subtitle, text, width)
}

// Body renders body text wrapped to width and bounded to maxHeight rows.
// An exhausted budget yields an empty element.
func (r *Renderer) Body(text string, width, maxHeight int) layout.Element {
	if maxHeight <= 0 {
		return layout.Element{}
	}
	el := textElement(r.styles.Body, text, width)
	if el.Height > maxHeight {
		lines := strings.Split(el.Content, "\n")[:maxHeight]
		el = layout.Element{Content: strings.Join(lines, "\n"), Height: maxHeight}
	}
	return el
}

// Media renders a media attachment sized to (width, maxHeight). Images
// become half-block art centered in the row; videos become a poster box
// since playback is the host's concern.
func (r *Renderer) Media(m *page.Media, width, maxHeight int) layout.Element {
	if m == nil || maxHeight <= 0 {
		return layout.Element{}
	}
	switch m.Kind {
	case page.MediaImage:
		if img, _, err := image.Decode(bytes.NewReader(m.Payload)); err == nil {
			art := icon.Fit(img, width, maxHeight)
			if art != "" {
				centered := lipgloss.PlaceHorizontal(width, lipgloss.Center, art)
				return layout.Element{Content: centered, Height: lipgloss.Height(centered)}
			}
		}
		return r.posterBox("✦ "+filepath.Base(m.Source), width, maxHeight)
	case page.MediaVideo:
		return r.posterBox("▶ "+filepath.Base(m.Source), width, maxHeight)
	}
	return layout.Element{}
}

// posterBox renders a bordered label box, degrading to a bare label when
// the budget cannot fit the border.
func (r *Renderer) posterBox(label string, width, maxHeight int) layout.Element {
	if maxHeight < 3 {
		content := lipgloss.PlaceHorizontal(width, lipgloss.Center, label)
		return layout.Element{Content: content, Height: 1}
	}
	box := r.styles.MediaBox.Render(label)
	centered := lipgloss.PlaceHorizontal(width, lipgloss.Center, box)
	return layout.Element{Content: centered, Height: lipgloss.Height(centered)}
}

func textElement(st lipgloss.Style, text string, width int) layout.Element {
	content := st.Width(width).Render(text)
	return layout.Element{Content: content, Height: lipgloss.Height(content)}
}
