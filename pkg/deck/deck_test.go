package deck

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/primerdev/primer/pkg/errors"
	"github.com/primerdev/primer/pkg/page"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func writePNG(t *testing.T, path string) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 9, G: 9, B: 9, A: 255})
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
}

func TestLoadDeck(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "tour.png"))

	deckPath := filepath.Join(dir, "deck.toml")
	writeFile(t, deckPath, `
title = "Welcome"

[[page]]
title = "Hello"
subtitle = "Getting started"
body = "First things first."
icon = "tour.png"

[page.info]
title = "More"
body = "Extra help."

[[page]]
title = "Tour"

[page.media]
kind = "image"
path = "tour.png"

[[page]]
title = "Done"
`)

	d, err := Load(deckPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if d.Title != "Welcome" {
		t.Errorf("deck title = %q, want Welcome", d.Title)
	}
	if len(d.Pages) != 3 {
		t.Fatalf("got %d pages, want 3", len(d.Pages))
	}

	first := d.Pages[0]
	if first.Title != "Hello" || first.Subtitle != "Getting started" {
		t.Errorf("first page headings = %q/%q", first.Title, first.Subtitle)
	}
	if !first.HasHelp() {
		t.Error("first page should carry an info section")
	}
	// Icon path resolves relative to the deck file.
	if first.TopIcon != filepath.Join(dir, "tour.png") {
		t.Errorf("icon path = %q, want %q", first.TopIcon, filepath.Join(dir, "tour.png"))
	}

	second := d.Pages[1]
	if second.Media == nil {
		t.Fatal("second page should declare media")
	}
	if second.Media.Kind != page.MediaImage {
		t.Errorf("media kind = %s, want image", second.Media.Kind)
	}
	if second.Media.Payload == nil {
		t.Error("decodable media should carry a payload")
	}
}

func TestLoadPositions(t *testing.T) {
	dir := t.TempDir()

	multi := filepath.Join(dir, "multi.toml")
	writeFile(t, multi, `
[[page]]
title = "a"
[[page]]
title = "b"
[[page]]
title = "c"
`)
	d, err := Load(multi)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := []page.Position{page.First, page.Middle, page.Last}
	for i, w := range want {
		if got := d.Position(i); got != w {
			t.Errorf("Position(%d) = %s, want %s", i, got, w)
		}
	}

	single := filepath.Join(dir, "single.toml")
	writeFile(t, single, `
[[page]]
title = "only"
`)
	d, err = Load(single)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := d.Position(0); got != page.Single {
		t.Errorf("Position(0) = %s, want single", got)
	}
}

func TestLoadMissingMediaKeepsDeclaration(t *testing.T) {
	dir := t.TempDir()
	deckPath := filepath.Join(dir, "deck.toml")
	writeFile(t, deckPath, `
[[page]]
title = "Tour"

[page.media]
kind = "image"
path = "does-not-exist.png"
`)

	d, err := Load(deckPath)
	if err != nil {
		t.Fatalf("Load should not fail on missing media: %v", err)
	}
	m := d.Pages[0].Media
	if m == nil {
		t.Fatal("media should stay declared")
	}
	if m.Payload != nil {
		t.Error("missing media file should leave a nil payload")
	}
}

func TestLoadCorruptImageLeavesNilPayload(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "bad.png"), "definitely not a png")
	deckPath := filepath.Join(dir, "deck.toml")
	writeFile(t, deckPath, `
[[page]]

[page.media]
kind = "image"
path = "bad.png"
`)

	d, err := Load(deckPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if d.Pages[0].Media.Payload != nil {
		t.Error("undecodable image should leave a nil payload")
	}
}

func TestLoadUnknownMediaKind(t *testing.T) {
	dir := t.TempDir()
	deckPath := filepath.Join(dir, "deck.toml")
	writeFile(t, deckPath, `
[[page]]

[page.media]
kind = "hologram"
path = "x"
`)

	_, err := Load(deckPath)
	if err == nil {
		t.Fatal("unknown media kind should fail Load")
	}
	if !errors.Is(err, errors.ErrCodeInvalidMedia) {
		t.Errorf("error code = %s, want %s", errors.GetCode(err), errors.ErrCodeInvalidMedia)
	}
}

func TestValidate(t *testing.T) {
	dir := t.TempDir()
	deckPath := filepath.Join(dir, "deck.toml")
	writeFile(t, deckPath, `
[[page]]
title = "a"
icon = "missing-icon.png"

[page.media]
kind = "video"
path = "missing.mp4"
`)

	d, err := Load(deckPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	warnings, err := d.Validate()
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if len(warnings) != 2 {
		t.Fatalf("got %d warnings, want 2 (media + icon): %v", len(warnings), warnings)
	}
}

func TestValidateEmptyDeck(t *testing.T) {
	d := &Deck{Path: "empty.toml"}
	_, err := d.Validate()
	if err == nil {
		t.Fatal("empty deck should fail validation")
	}
	if !errors.Is(err, errors.ErrCodeEmptyDeck) {
		t.Errorf("error code = %s, want %s", errors.GetCode(err), errors.ErrCodeEmptyDeck)
	}
}
