package operation

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	"github.com/imageless/imageless/internal/unit"
)

// Anchor selects how a crop's far corner is derived from its coordinate.
type Anchor int

const (
	// AnchorMinimum: the coordinate is the far corner, resolved directly
	// against the image dimensions.
	AnchorMinimum Anchor = iota

	// AnchorMaximum: the coordinate is an inset from the far edges; the far
	// corner is (width - x, height - y).
	AnchorMaximum

	// AnchorCropStart: the coordinate is a width/height delta added to the
	// near corner.
	AnchorCropStart
)

func (a Anchor) String() string {
	switch a {
	case AnchorMinimum:
		return "minimum"
	case AnchorMaximum:
		return "maximum"
	case AnchorCropStart:
		return "crop-start"
	default:
		return fmt.Sprintf("anchor(%d)", int(a))
	}
}

// CropOrigin is the far-corner policy of a crop: an anchor plus the
// coordinate it interprets.
type CropOrigin struct {
	Anchor Anchor
	At     unit.Coordinate
}

func (o CropOrigin) String() string {
	return fmt.Sprintf("%s%s", o.Anchor, o.At)
}

// farCorner resolves the origin to a concrete far corner, given the already
// resolved near corner and the image dimensions. Both corners resolve X
// against the width and Y against the height.
func (o CropOrigin) farCorner(nearX, nearY, width, height unit.Pixels) (x, y unit.Pixels, err error) {
	cx, cy := o.At.Resolve(width, height)
	switch o.Anchor {
	case AnchorMinimum:
		return cx, cy, nil
	case AnchorMaximum:
		// Validate before subtracting; unit.Pixels.Sub panics on underflow
		// and these insets come from configuration.
		if cx > width {
			return 0, 0, fmt.Errorf("x inset %d exceeds image width %d", cx, width)
		}
		if cy > height {
			return 0, 0, fmt.Errorf("y inset %d exceeds image height %d", cy, height)
		}
		return width.Sub(cx), height.Sub(cy), nil
	case AnchorCropStart:
		return nearX.Add(cx), nearY.Add(cy), nil
	default:
		return 0, 0, fmt.Errorf("unknown crop anchor %s", o.Anchor)
	}
}

// Crop extracts the pixel rectangle spanned by the near corner From and the
// far corner derived from To.
//
// Both corners resolve against the current image dimensions. The operation
// fails with an *OperationError when the far corner ends up above or left of
// the near corner; nothing is cropped in that case. The crop itself is
// immutable: it produces a new image holding only the selected pixels.
type Crop struct {
	From unit.Coordinate
	To   CropOrigin
}

func (Crop) Name() string { return "crop" }

func (c Crop) Apply(img image.Image) (image.Image, error) {
	bounds := img.Bounds()
	width := unit.Pixels(bounds.Dx())
	height := unit.Pixels(bounds.Dy())

	left, top := c.From.Resolve(width, height)

	right, bottom, err := c.To.farCorner(left, top, width, height)
	if err != nil {
		return nil, opErrorf(c.Name(), "%v for crop from %s to %s", err, c.From, c.To)
	}

	if bottom < top {
		return nil, opErrorf(c.Name(),
			"bottom %d cannot be less than top %d for crop from %s to %s", bottom, top, c.From, c.To)
	}
	if right < left {
		return nil, opErrorf(c.Name(),
			"right %d cannot be less than left %d for crop from %s to %s", right, left, c.From, c.To)
	}

	rect := image.Rect(int(left), int(top), int(right), int(bottom))
	return imaging.Crop(img, rect), nil
}
