package codec

import "fmt"

// Format identifies a raster container format. The set is closed: the
// pipeline core passes tags through without interpreting them, and the
// encoder table in this package decides which tags can actually be written.
type Format string

const (
	FormatPNG      Format = "png"
	FormatJPEG     Format = "jpeg"
	FormatGIF      Format = "gif"
	FormatICO      Format = "ico"
	FormatBMP      Format = "bmp"
	FormatFarbfeld Format = "farbfeld"
	FormatTGA      Format = "tga"
	FormatOpenEXR  Format = "openexr"
	FormatTIFF     Format = "tiff"
	FormatAVIF     Format = "avif"
	FormatQOI      Format = "qoi"
	FormatWebP     Format = "webp"
)

var formats = map[Format]bool{
	FormatPNG:      true,
	FormatJPEG:     true,
	FormatGIF:      true,
	FormatICO:      true,
	FormatBMP:      true,
	FormatFarbfeld: true,
	FormatTGA:      true,
	FormatOpenEXR:  true,
	FormatTIFF:     true,
	FormatAVIF:     true,
	FormatQOI:      true,
	FormatWebP:     true,
}

// ParseFormat maps a configuration spelling onto a Format tag.
func ParseFormat(s string) (Format, error) {
	f := Format(s)
	if !formats[f] {
		return "", fmt.Errorf("unknown output format %q", s)
	}
	return f, nil
}

// Output describes how the final image is written: a format tag plus the
// quality used by lossy encoders (0-100).
type Output struct {
	Format  Format
	Quality int
}

// UnsupportedFormatError reports a format tag that has no registered
// encoder. The tag itself is still a valid member of the closed set.
type UnsupportedFormatError struct {
	Format Format
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("no encoder registered for format %q", e.Format)
}
