package icon

import (
	"fmt"
	"image"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Art renders an image as half-block cells: each cell shows two vertically
// stacked pixels via the upper-half-block glyph, foreground for the top
// pixel and background for the bottom. cols and rows are the output size in
// cells; the image is resampled nearest-neighbor. Fully transparent cell
// pairs render as plain spaces.
func Art(img image.Image, cols, rows int) string {
	if img == nil || cols <= 0 || rows <= 0 {
		return ""
	}
	b := img.Bounds()
	var sb strings.Builder
	for y := 0; y < rows; y++ {
		if y > 0 {
			sb.WriteString("\n")
		}
		for x := 0; x < cols; x++ {
			top, topOK := sample(img, b, x, 2*y, cols, 2*rows)
			bot, botOK := sample(img, b, x, 2*y+1, cols, 2*rows)
			if !topOK && !botOK {
				sb.WriteString(" ")
				continue
			}
			st := lipgloss.NewStyle()
			if topOK {
				st = st.Foreground(lipgloss.Color(top))
			}
			if botOK {
				st = st.Background(lipgloss.Color(bot))
			}
			sb.WriteString(st.Render("▀"))
		}
	}
	return sb.String()
}

// Fit renders an image scaled to fit within a cell box, preserving aspect
// ratio. A cell is half as wide as it is tall, which the half-block
// rendering compensates for: one cell covers one pixel column and two pixel
// rows. Returns the empty string when the box has no room.
func Fit(img image.Image, maxCols, maxRows int) string {
	if img == nil || maxCols <= 0 || maxRows <= 0 {
		return ""
	}
	b := img.Bounds()
	pw, ph := b.Dx(), b.Dy()
	if pw == 0 || ph == 0 {
		return ""
	}

	sw := float64(maxCols) / float64(pw)
	sh := float64(2*maxRows) / float64(ph)
	s := sw
	if sh < s {
		s = sh
	}

	cols := int(float64(pw) * s)
	rows := int(float64(ph) * s / 2)
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return Art(img, cols, rows)
}

// sample nearest-neighbor samples the pixel for output cell (x, y) in a
// grid of (w, h) samples. The second return is false for fully transparent
// pixels.
func sample(img image.Image, b image.Rectangle, x, y, w, h int) (string, bool) {
	px := b.Min.X + x*b.Dx()/w
	py := b.Min.Y + y*b.Dy()/h
	if px >= b.Max.X {
		px = b.Max.X - 1
	}
	if py >= b.Max.Y {
		py = b.Max.Y - 1
	}
	r, g, bl, a := img.At(px, py).RGBA()
	if a == 0 {
		return "", false
	}
	return fmt.Sprintf("#%02x%02x%02x", uint8(r>>8), uint8(g>>8), uint8(bl>>8)), true
}
