// Package page defines the content model for a single onboarding page and
// the position-driven navigation state machine.
//
// A Page is externally supplied and immutable for the duration of a render.
// Every field is optional: absence of a title, body, media, icon, or info
// section is a normal branch everywhere in this module, never an error.
package page

// MediaKind identifies the variant of a media attachment.
type MediaKind int

const (
	// MediaImage is a still image attachment.
	MediaImage MediaKind = iota

	// MediaVideo is a video attachment. Playback is delegated to the host;
	// this module only reserves layout space and renders a poster box.
	MediaVideo
)

// String returns the kind name as used in deck files.
func (k MediaKind) String() string {
	switch k {
	case MediaImage:
		return "image"
	case MediaVideo:
		return "video"
	}
	return "unknown"
}

// Media is an optional media attachment on a page.
//
// Payload holds the raw bytes as loaded and verified upstream. A nil Payload
// models an upstream read or decode failure: the attachment is still
// declared, but layout skips it entirely (no placeholder, no error).
type Media struct {
	Kind    MediaKind
	Source  string // original file path, informational
	Payload []byte
}

// Info is an optional structured help section shown in a transient overlay.
type Info struct {
	Title string
	Body  string
}

// Page is the content of one onboarding page.
type Page struct {
	Title    string
	Subtitle string
	Body     string // formatted text, wrapped by the renderer
	Media    *Media
	TopIcon  string // file path to a custom icon, resolved per render
	Info     *Info
}

// HasHelp reports whether the page carries an info section. Help is
// available exactly when this returns true.
func (p *Page) HasHelp() bool {
	return p != nil && p.Info != nil
}
