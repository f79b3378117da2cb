package codec

import (
	"image"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// HSLColor represents a color in HSL (Hue, Saturation, Lightness) space.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-360 degrees
	S int `json:"s"` // Saturation: 0-100 percent
	L int `json:"l"` // Lightness: 0-100 percent
}

// AverageColor is the mean color of an image in two representations.
type AverageColor struct {
	Hex string   `json:"hex"` // Hex format "#rrggbb"
	HSL HSLColor `json:"hsl"`
}

// Description contains metadata about a decoded image.
type Description struct {
	// Width and Height are the pixel dimensions.
	Width  int `json:"width"`
	Height int `json:"height"`

	// Format is the detected container format, when known.
	Format string `json:"format,omitempty"`

	// ColorDepth indicates the bit depth per channel: "8-bit" or "16-bit".
	ColorDepth string `json:"color_depth"`

	// HasAlpha indicates whether the image carries an alpha channel.
	HasAlpha bool `json:"has_alpha"`

	// AverageColor is the mean color over all pixels.
	AverageColor AverageColor `json:"average_color"`
}

// Describe reports metadata for an already decoded image. The format tag is
// whatever the decoder detected and may be empty for images constructed in
// memory.
func Describe(img image.Image, format Format) *Description {
	bounds := img.Bounds()

	hasAlpha := false
	colorDepth := "8-bit"
	switch img.(type) {
	case *image.RGBA, *image.NRGBA:
		hasAlpha = true
	case *image.RGBA64, *image.NRGBA64:
		hasAlpha = true
		colorDepth = "16-bit"
	case *image.Gray16:
		colorDepth = "16-bit"
	}

	return &Description{
		Width:        bounds.Dx(),
		Height:       bounds.Dy(),
		Format:       string(format),
		ColorDepth:   colorDepth,
		HasAlpha:     hasAlpha,
		AverageColor: averageColor(img),
	}
}

func averageColor(img image.Image) AverageColor {
	bounds := img.Bounds()
	count := bounds.Dx() * bounds.Dy()
	if count == 0 {
		return AverageColor{Hex: "#000000"}
	}

	var rSum, gSum, bSum float64
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			rSum += float64(r) / 0xffff
			gSum += float64(g) / 0xffff
			bSum += float64(b) / 0xffff
		}
	}

	n := float64(count)
	c := colorful.Color{R: rSum / n, G: gSum / n, B: bSum / n}
	h, s, l := c.Hsl()

	return AverageColor{
		Hex: c.Hex(),
		HSL: HSLColor{
			H: int(math.Round(h)),
			S: int(math.Round(s * 100)),
			L: int(math.Round(l * 100)),
		},
	}
}
