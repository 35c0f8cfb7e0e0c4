package icon

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTestPNG(t *testing.T, dir string, w, h int) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 200, G: 40, B: 40, A: 255})
		}
	}
	path := filepath.Join(dir, "icon.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return path
}

func TestResolveCustomIcon(t *testing.T) {
	path := writeTestPNG(t, t.TempDir(), 8, 8)

	got := Resolve(path)
	if got == Default() {
		t.Fatal("valid custom icon should not fall back to the default")
	}
	if b := got.Bounds(); b.Dx() != 8 || b.Dy() != 8 {
		t.Errorf("decoded bounds = %v, want 8x8", b)
	}
}

func TestResolveFallbacksAreIndistinguishable(t *testing.T) {
	// Unset path, missing file, and undecodable bytes must all produce
	// the same result.
	garbage := filepath.Join(t.TempDir(), "not-an-image.png")
	if err := os.WriteFile(garbage, []byte("plain text"), 0o644); err != nil {
		t.Fatal(err)
	}

	unset := Resolve("")
	missing := Resolve(filepath.Join(t.TempDir(), "nope.png"))
	corrupt := Resolve(garbage)

	if unset != Default() {
		t.Error("Resolve(\"\") should return the default icon")
	}
	if missing != unset {
		t.Error("missing file should be indistinguishable from unset path")
	}
	if corrupt != unset {
		t.Error("decode failure should be indistinguishable from unset path")
	}
}

func TestDefaultIsStable(t *testing.T) {
	if Default() != Default() {
		t.Error("Default() should return the same image every call")
	}
	if Default() == nil {
		t.Error("Default() should never be nil")
	}
}

func TestArtRendersHalfBlocks(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 10, G: 200, B: 10, A: 255})
		}
	}

	out := Art(img, 2, 1)
	if !strings.Contains(out, "▀") {
		t.Errorf("opaque image should render half-block cells, got %q", out)
	}
	if strings.Contains(out, "\n") {
		t.Errorf("single-row art should have no newline, got %q", out)
	}
}

func TestArtTransparentCellsAreSpaces(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2)) // zero value: fully transparent
	out := Art(img, 2, 1)
	if out != "  " {
		t.Errorf("transparent image should render spaces, got %q", out)
	}
}

func TestArtEmptyInputs(t *testing.T) {
	if Art(nil, 4, 4) != "" {
		t.Error("nil image should render nothing")
	}
	if Art(Default(), 0, 4) != "" {
		t.Error("zero columns should render nothing")
	}
}

func TestFitPreservesAspect(t *testing.T) {
	// A 10x10 image in a wide 40x3 box is height-bound: 3 rows cover 6
	// pixel rows, so the width lands at 6 columns.
	img := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 50, G: 50, B: 220, A: 255})
		}
	}

	out := Fit(img, 40, 3)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d rows, want 3", len(lines))
	}
}

func TestFitEmptyBox(t *testing.T) {
	if Fit(Default(), 0, 10) != "" || Fit(Default(), 10, 0) != "" {
		t.Error("empty box should render nothing")
	}
}
