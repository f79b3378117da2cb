package operation

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	"github.com/imageless/imageless/internal/unit"
)

// Filter names a resampling kernel. The kernel is passed through to the
// imaging library unchanged; no resampling math lives here.
type Filter int

const (
	// FilterNearest is nearest-neighbor sampling, the configuration default.
	FilterNearest Filter = iota
	// FilterTriangle is linear interpolation.
	FilterTriangle
	// FilterCatmullRom is a cubic filter.
	FilterCatmullRom
	// FilterGaussian is a Gaussian blurring filter.
	FilterGaussian
	// FilterLanczos3 is a Lanczos filter with window 3.
	FilterLanczos3
)

func (f Filter) String() string {
	switch f {
	case FilterNearest:
		return "nearest"
	case FilterTriangle:
		return "triangle"
	case FilterCatmullRom:
		return "catmull-rom"
	case FilterGaussian:
		return "gaussian"
	case FilterLanczos3:
		return "lanczos3"
	default:
		return fmt.Sprintf("filter(%d)", int(f))
	}
}

func (f Filter) resample() imaging.ResampleFilter {
	switch f {
	case FilterTriangle:
		return imaging.Linear
	case FilterCatmullRom:
		return imaging.CatmullRom
	case FilterGaussian:
		return imaging.Gaussian
	case FilterLanczos3:
		return imaging.Lanczos
	default:
		return imaging.NearestNeighbor
	}
}

// Mode selects how the resolved target box is honored.
type Mode int

const (
	// ModePreserve fits the image inside the target box, keeping the aspect
	// ratio; one axis may come out smaller than the box.
	ModePreserve Mode = iota
	// ModeFill covers the target box, keeping the aspect ratio, and crops
	// the overflow so the result is exactly the box.
	ModeFill
	// ModeExact forces the output to exactly the target box, ignoring the
	// aspect ratio.
	ModeExact
)

func (m Mode) String() string {
	switch m {
	case ModePreserve:
		return "preserve"
	case ModeFill:
		return "fill"
	case ModeExact:
		return "exact"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Resize scales the image to the target box given by Width and Height,
// resolved against the current image dimensions.
//
// Never fails on its own; a resolved dimension of zero is handed to the
// imaging library as-is.
type Resize struct {
	Width  unit.Unit
	Height unit.Unit
	Filter Filter
	Mode   Mode
}

func (Resize) Name() string { return "resize" }

func (r Resize) Apply(img image.Image) (image.Image, error) {
	bounds := img.Bounds()
	w := int(r.Width.ToPixels(unit.Pixels(bounds.Dx())))
	h := int(r.Height.ToPixels(unit.Pixels(bounds.Dy())))

	switch r.Mode {
	case ModeFill:
		return imaging.Fill(img, w, h, imaging.Center, r.Filter.resample()), nil
	case ModeExact:
		return imaging.Resize(img, w, h, r.Filter.resample()), nil
	default:
		return imaging.Fit(img, w, h, r.Filter.resample()), nil
	}
}
