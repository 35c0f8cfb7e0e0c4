// Package deck loads onboarding decks from TOML files.
//
// A deck is an ordered list of pages. Each page's navigation position is
// derived purely from its ordinal: a one-page deck yields Single, otherwise
// First/Middle.../Last. Anything beyond linear ordering is the host's
// concern.
//
// # Format
//
//	title = "Welcome to Primer"
//
//	[[page]]
//	title = "Hello"
//	subtitle = "Let's get you set up"
//	body = """
//	Primer walks you through first-run setup.
//	"""
//	icon = "assets/logo.png"
//
//	[page.media]
//	kind = "image"
//	path = "assets/tour.png"
//
//	[page.info]
//	title = "More detail"
//	body = "Extra help shown in the overlay."
//
// Media and icon paths are resolved relative to the deck file. Media
// payloads are read and verified at load time; a file that is missing or
// does not decode leaves the attachment declared with a nil payload, which
// layout later skips silently. Load only fails on unreadable deck files,
// malformed TOML, or an unknown media kind.
package deck

import (
	"bytes"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/primerdev/primer/pkg/errors"
	"github.com/primerdev/primer/pkg/page"
)

// =============================================================================
// File format
// =============================================================================

type deckFile struct {
	Title string     `toml:"title"`
	Pages []pageFile `toml:"page"`
}

type pageFile struct {
	Title    string     `toml:"title"`
	Subtitle string     `toml:"subtitle"`
	Body     string     `toml:"body"`
	Icon     string     `toml:"icon"`
	Media    *mediaFile `toml:"media"`
	Info     *infoFile  `toml:"info"`
}

type mediaFile struct {
	Kind string `toml:"kind"`
	Path string `toml:"path"`
}

type infoFile struct {
	Title string `toml:"title"`
	Body  string `toml:"body"`
}

// =============================================================================
// Deck
// =============================================================================

// Deck is a loaded onboarding deck.
type Deck struct {
	Title string
	Path  string // deck file path
	Pages []*page.Page
}

// Position returns the navigation position of the page at index i.
func (d *Deck) Position(i int) page.Position {
	return page.Of(i, len(d.Pages))
}

// Load reads and parses a deck file and loads its media payloads.
func Load(path string) (*Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeDeckNotFound, err, "read deck %s", path)
	}

	var df deckFile
	if err := toml.Unmarshal(data, &df); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDeck, err, "parse deck %s", path)
	}

	dir := filepath.Dir(path)
	d := &Deck{Title: df.Title, Path: path}
	for i, pf := range df.Pages {
		pg, err := buildPage(pf, dir)
		if err != nil {
			// Keep the page error's own code visible to callers.
			code := errors.GetCode(err)
			if code == "" {
				code = errors.ErrCodeInvalidDeck
			}
			return nil, errors.Wrap(code, err, "deck %s: page %d", path, i+1)
		}
		d.Pages = append(d.Pages, pg)
	}
	return d, nil
}

func buildPage(pf pageFile, dir string) (*page.Page, error) {
	pg := &page.Page{
		Title:    pf.Title,
		Subtitle: pf.Subtitle,
		Body:     pf.Body,
	}
	if pf.Icon != "" {
		pg.TopIcon = resolvePath(dir, pf.Icon)
	}
	if pf.Info != nil {
		pg.Info = &page.Info{Title: pf.Info.Title, Body: pf.Info.Body}
	}
	if pf.Media != nil {
		m, err := buildMedia(pf.Media, dir)
		if err != nil {
			return nil, err
		}
		pg.Media = m
	}
	return pg, nil
}

func buildMedia(mf *mediaFile, dir string) (*page.Media, error) {
	var kind page.MediaKind
	switch mf.Kind {
	case "image":
		kind = page.MediaImage
	case "video":
		kind = page.MediaVideo
	default:
		return nil, errors.New(errors.ErrCodeInvalidMedia, "unknown media kind %q", mf.Kind)
	}

	src := resolvePath(dir, mf.Path)
	m := &page.Media{Kind: kind, Source: src}
	m.Payload = loadPayload(kind, src)
	return m, nil
}

// loadPayload reads and verifies a media file. Read or decode failures
// yield nil: the attachment stays declared but empty, and layout skips it.
func loadPayload(kind page.MediaKind, src string) []byte {
	data, err := os.ReadFile(src)
	if err != nil {
		return nil
	}
	if kind == page.MediaImage {
		if _, _, err := image.Decode(bytes.NewReader(data)); err != nil {
			return nil
		}
	}
	return data
}

func resolvePath(dir, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}

// =============================================================================
// Validation
// =============================================================================

// Validate checks a loaded deck and returns human-readable warnings for
// content that will silently fall back at render time (missing media
// payloads, unloadable icons). It returns an error only for decks that
// cannot render at all.
func (d *Deck) Validate() ([]string, error) {
	if len(d.Pages) == 0 {
		return nil, errors.New(errors.ErrCodeEmptyDeck, "deck %s has no pages", d.Path)
	}

	var warnings []string
	for i, pg := range d.Pages {
		if pg.Media != nil && pg.Media.Payload == nil {
			warnings = append(warnings, fmt.Sprintf(
				"page %d: %s media %s could not be loaded; it will be skipped",
				i+1, pg.Media.Kind, pg.Media.Source))
		}
		if pg.TopIcon != "" && !iconLoads(pg.TopIcon) {
			warnings = append(warnings, fmt.Sprintf(
				"page %d: icon %s could not be loaded; the default icon will be used",
				i+1, pg.TopIcon))
		}
	}
	return warnings, nil
}

func iconLoads(path string) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	_, _, err = image.Decode(bytes.NewReader(data))
	return err == nil
}
