// Package icon resolves a page's optional custom icon with a built-in
// fallback.
//
// Resolution never fails: an unset path, an unreadable file, and bytes that
// do not decode as an image all collapse to the same default icon, so the
// caller cannot distinguish "no custom icon requested" from "custom icon
// failed to load".
package icon

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"os"
	"sync"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/primerdev/primer/pkg/observability"
)

// Resolve returns the decoded image at path, or the default icon when path
// is unset, the file is missing, or its bytes do not decode. All three
// failure modes are indistinguishable to the caller.
func Resolve(path string) image.Image {
	ctx := context.Background()
	if path == "" {
		observability.Icon().OnFallback(ctx, path, "unset")
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		observability.Icon().OnFallback(ctx, path, "read")
		return Default()
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		observability.Icon().OnFallback(ctx, path, "decode")
		return Default()
	}
	observability.Icon().OnResolve(ctx, path)
	return img
}

var (
	defaultOnce sync.Once
	defaultImg  image.Image
)

// Default returns the built-in fallback icon, a small teal gradient tile.
// The same image is returned on every call.
func Default() image.Image {
	defaultOnce.Do(func() {
		const size = 16
		img := image.NewNRGBA(image.Rect(0, 0, size, size))
		for y := 0; y < size; y++ {
			for x := 0; x < size; x++ {
				// Corner cells stay transparent for a rounded look.
				if corner(x, y, size) {
					continue
				}
				t := uint8(255 * (x + y) / (2 * (size - 1)))
				img.SetNRGBA(x, y, color.NRGBA{
					R: 32,
					G: 160 - t/4,
					B: 140 + t/3,
					A: 255,
				})
			}
		}
		defaultImg = img
	})
	return defaultImg
}

func corner(x, y, size int) bool {
	m := size - 1
	dx := min(x, m-x)
	dy := min(y, m-y)
	return dx == 0 && dy == 0
}
