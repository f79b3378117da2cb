//go:build !cgo

package codec

import (
	"image"
	"io"
)

// WebP encoding needs the libwebp bindings, which require cgo. Builds
// without cgo keep the format tag but cannot write it.
func encodeWebP(io.Writer, image.Image, int) error {
	return &UnsupportedFormatError{Format: FormatWebP}
}
