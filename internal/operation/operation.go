package operation

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/effect"
	"github.com/disintegration/imaging"
)

// Operation is a single named transformation step.
//
// Apply consumes img and returns a new image; the input must not be used by
// the caller afterwards and is never retained by the operation. Failures are
// reported as *OperationError.
type Operation interface {
	// Name identifies the operation in logs and error messages.
	Name() string

	// Apply transforms img, returning the result or an *OperationError.
	Apply(img image.Image) (image.Image, error)
}

// OperationError reports an operation that failed its own precondition. It
// carries the operation name and a message describing the offending
// parameters. Any failure is terminal for the pipeline run.
type OperationError struct {
	Op      string
	Message string
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("operation %s: %s", e.Op, e.Message)
}

func opErrorf(op, format string, args ...interface{}) *OperationError {
	return &OperationError{Op: op, Message: fmt.Sprintf(format, args...)}
}

// Grayscale converts the image to grayscale. It has no parameters, never
// fails, and is idempotent.
type Grayscale struct{}

func (Grayscale) Name() string { return "grayscale" }

func (Grayscale) Apply(img image.Image) (image.Image, error) {
	return imaging.Grayscale(img), nil
}

// Blur applies a Gaussian blur with the given sigma. Never fails.
type Blur struct {
	Sigma float64
}

func (Blur) Name() string { return "blur" }

func (b Blur) Apply(img image.Image) (image.Image, error) {
	return imaging.Blur(img, b.Sigma), nil
}

// AdjustBrightness shifts every channel by Delta (negative values darken).
// The magnitude fits in 16 bits; the config layer enforces that bound.
// Never fails.
type AdjustBrightness struct {
	Delta int
}

func (AdjustBrightness) Name() string { return "adjust-brightness" }

func (a AdjustBrightness) Apply(img image.Image) (image.Image, error) {
	// imaging expresses brightness as a percentage of the 8-bit channel
	// range; delta/255*100 keeps the additive per-channel semantics.
	return imaging.AdjustBrightness(img, float64(a.Delta)/255*100), nil
}

// Invert negates every color channel. Not reachable from configuration;
// kept as a building block for a future operation variant.
type Invert struct{}

func (Invert) Name() string { return "invert" }

func (Invert) Apply(img image.Image) (image.Image, error) {
	return effect.Invert(img), nil
}

// Unsharpen sharpens via an unsharp mask with the given blur radius and
// strength. Not reachable from configuration; kept as a building block for
// a future operation variant.
type Unsharpen struct {
	Radius float64
	Amount float64
}

func (Unsharpen) Name() string { return "unsharpen" }

func (u Unsharpen) Apply(img image.Image) (image.Image, error) {
	return effect.UnsharpMask(img, u.Radius, u.Amount), nil
}
