// Package layout implements the space-budgeting allocator that divides a
// fixed vertical region among a page's optional content blocks.
//
// The allocator is a single pass over the blocks in a fixed order (title,
// subtitle, body, media) threading an explicit remaining-row budget. It
// returns an insertion plan rather than touching any container, which keeps
// the algorithm testable without a terminal.
//
// # Gravity regions
//
// A page body is a single vertical container with three named slots: Top
// stacks downward from the top in insertion order, Bottom stacks upward from
// the bottom, and Center holds at most one dominant block. Content pins to
// the extremes; flexible filler sits in the middle.
//
// # Budget strategy
//
// When media is present, body text competes with it for the same budget: the
// body is bounded to whatever remains after title and subtitle, and media
// takes the rest at the bottom, so fixed-aspect media is never crushed by
// long text. Without media, body simply flows with title and subtitle in one
// top-anchored stack.
//
// The budget is never clamped. Measured heights are intrinsic to content; a
// negative remainder means the content overflows the container, which is a
// rendering concern outside this package.
package layout

import (
	"strings"

	"github.com/primerdev/primer/pkg/page"
)

// =============================================================================
// Types
// =============================================================================

// Region names a slot in the gravity-area container.
type Region int

const (
	// Top stacks downward from the top of the container.
	Top Region = iota

	// Center holds at most one dominant content block.
	Center

	// Bottom stacks upward from the bottom of the container.
	Bottom
)

// String returns the region name.
func (r Region) String() string {
	switch r {
	case Top:
		return "top"
	case Center:
		return "center"
	case Bottom:
		return "bottom"
	}
	return "unknown"
}

// Bounds is the cell size of the container being filled.
type Bounds struct {
	Width  int
	Height int
}

// Element is a created content block: its rendered cells and measured
// height in rows.
type Element struct {
	Content string
	Height  int
}

// Insertion records one element placed into a region. Index orders elements
// within their region's stack.
type Insertion struct {
	Region  Region
	Index   int
	Element Element
}

// Plan is the full ordered insertion sequence for one render, plus the
// budget left over after all subtractions.
type Plan struct {
	Insertions []Insertion
	Remaining  int
}

// Gap is the spacing in rows between stacked blocks.
const Gap = 1

// Factory creates sized elements from page content. Implementations own
// text wrapping and media scaling; the allocator only consumes the measured
// heights. A maxHeight at or below zero means the budget is already
// exhausted; implementations render what they can, typically nothing.
type Factory interface {
	Title(text string, width int) Element
	Subtitle(text string, width int) Element
	Body(text string, width, maxHeight int) Element
	Media(m *page.Media, width, maxHeight int) Element
}

// =============================================================================
// Allocation
// =============================================================================

// Allocate runs the budget pass for one page and returns the insertion plan.
//
// Every optional block that is absent is skipped silently. A declared media
// attachment whose payload is nil (upstream decode failure) is skipped
// entirely: no placeholder, no error. Identical inputs produce identical
// plans.
func Allocate(b Bounds, pg *page.Page, f Factory) Plan {
	remaining := b.Height
	if pg == nil {
		return Plan{Remaining: remaining}
	}

	var ins []Insertion
	topIdx := 0

	if pg.Title != "" {
		el := f.Title(pg.Title, b.Width)
		ins = append(ins, Insertion{Region: Top, Index: topIdx, Element: el})
		topIdx++
		remaining -= el.Height + Gap
	}

	if pg.Subtitle != "" {
		el := f.Subtitle(pg.Subtitle, b.Width)
		ins = append(ins, Insertion{Region: Top, Index: topIdx, Element: el})
		topIdx++
		remaining -= el.Height + Gap
	}

	if pg.Media != nil {
		// Body becomes a caption near the media, bounded to what is left.
		if pg.Body != "" {
			el := f.Body(pg.Body, b.Width, remaining)
			ins = append(ins, Insertion{Region: Center, Index: 0, Element: el})
			remaining -= el.Height + Gap
		}
		if pg.Media.Payload != nil {
			el := f.Media(pg.Media, b.Width, remaining)
			ins = append(ins, Insertion{Region: Bottom, Index: 0, Element: el})
		}
		return Plan{Insertions: ins, Remaining: remaining}
	}

	if pg.Body != "" {
		el := f.Body(pg.Body, b.Width, remaining)
		ins = append(ins, Insertion{Region: Top, Index: topIdx, Element: el})
	}
	return Plan{Insertions: ins, Remaining: remaining}
}

// =============================================================================
// Composition
// =============================================================================

// Compose renders a plan into a single frame of the given bounds: the top
// stack pinned to the top, the bottom stack pinned to the bottom, and the
// center block floating in the leftover space. Overflowing content is
// emitted as-is; Compose never truncates.
func Compose(b Bounds, p Plan) string {
	var top, center, bottom []string
	for _, in := range p.Insertions {
		switch in.Region {
		case Top:
			top = append(top, in.Element.Content)
		case Center:
			center = append(center, in.Element.Content)
		case Bottom:
			bottom = append(bottom, in.Element.Content)
		}
	}

	// Bottom gravity: the first insertion sits closest to the bottom edge.
	for i, j := 0, len(bottom)-1; i < j; i, j = i+1, j-1 {
		bottom[i], bottom[j] = bottom[j], bottom[i]
	}

	topLines := stackLines(top)
	centerLines := stackLines(center)
	bottomLines := stackLines(bottom)

	filler := b.Height - len(topLines) - len(bottomLines)
	pre := filler
	post := 0
	if len(centerLines) > 0 {
		pre = (filler - len(centerLines)) / 2
		post = filler - len(centerLines) - pre
	}
	if pre < 0 {
		pre = 0
	}
	if post < 0 {
		post = 0
	}

	lines := make([]string, 0, b.Height)
	lines = append(lines, topLines...)
	lines = append(lines, blankLines(pre)...)
	lines = append(lines, centerLines...)
	lines = append(lines, blankLines(post)...)
	lines = append(lines, bottomLines...)
	return strings.Join(lines, "\n")
}

// stackLines joins a region's blocks with Gap blank rows between them and
// splits the result into lines.
func stackLines(blocks []string) []string {
	var lines []string
	for i, blk := range blocks {
		if i > 0 {
			lines = append(lines, blankLines(Gap)...)
		}
		lines = append(lines, strings.Split(blk, "\n")...)
	}
	return lines
}

func blankLines(n int) []string {
	if n <= 0 {
		return nil
	}
	return make([]string, n)
}
