package codec

import (
	"bufio"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp" // register WebP decoder
)

// Decode reads an image from r, auto-detecting its format. It returns the
// decoded image and the detected format tag.
func Decode(r io.Reader) (image.Image, Format, error) {
	img, name, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode image: %w", err)
	}
	return img, Format(name), nil
}

// Open loads and decodes the image file at path.
func Open(path string) (image.Image, Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Encode writes img to w in the format named by out.
//
// Formats from the closed set that have no registered encoder fail with an
// *UnsupportedFormatError. WebP encoding is only available in cgo builds.
func Encode(w io.Writer, img image.Image, out Output) error {
	switch out.Format {
	case FormatPNG:
		return png.Encode(w, img)
	case FormatJPEG:
		return jpeg.Encode(w, img, &jpeg.Options{Quality: out.Quality})
	case FormatGIF:
		return gif.Encode(w, img, nil)
	case FormatBMP:
		return bmp.Encode(w, img)
	case FormatTIFF:
		return tiff.Encode(w, img, nil)
	case FormatWebP:
		return encodeWebP(w, img, out.Quality)
	default:
		return &UnsupportedFormatError{Format: out.Format}
	}
}

// Save encodes img to the file at path, buffering writes.
func Save(path string, img image.Image, out Output) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	w := bufio.NewWriter(f)
	if err := Encode(w, img, out); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode image: %w", err)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return f.Close()
}
