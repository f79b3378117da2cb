package unit

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Pixels is an exact, non-negative pixel count along one axis.
type Pixels int

// Add returns the sum of two pixel counts.
func (p Pixels) Add(q Pixels) Pixels {
	return p + q
}

// Sub returns p - q.
//
// Subtracting a larger count from a smaller one is a contract violation and
// panics; callers validate ordering before subtracting. Equal operands are
// allowed and yield zero.
func (p Pixels) Sub(q Pixels) Pixels {
	if q > p {
		panic(fmt.Sprintf("unit: pixel underflow: %d - %d", p, q))
	}
	return p - q
}

// Percentage is a validated fraction in [0, 1] of a reference dimension.
//
// Values only come from NewPercentage, so a Percentage in hand is always in
// range and needs no further checks at use.
type Percentage float64

// PercentageRangeError reports a percentage outside [0, 1] supplied at
// construction time. It carries the offending value.
type PercentageRangeError struct {
	Value float64
}

func (e *PercentageRangeError) Error() string {
	return fmt.Sprintf("percentage out of range: %v", e.Value)
}

// NewPercentage validates v and returns it as a Percentage.
// Values outside [0, 1], including NaN, fail with a *PercentageRangeError.
func NewPercentage(v float64) (Percentage, error) {
	if math.IsNaN(v) || v < 0 || v > 1 {
		return 0, &PercentageRangeError{Value: v}
	}
	return Percentage(v), nil
}

// Unit is a size or position along one axis: either an absolute pixel count
// or a percentage of a reference dimension. The zero value is 0 pixels.
type Unit struct {
	pixels  Pixels
	percent Percentage
	isPct   bool
}

// Px returns a Unit holding an absolute pixel count.
func Px(n Pixels) Unit {
	return Unit{pixels: n}
}

// Pct returns a Unit holding a percentage of the reference dimension.
func Pct(p Percentage) Unit {
	return Unit{percent: p, isPct: true}
}

// ToPixels resolves the unit against the given axis length.
//
// Pixel units are returned as-is. Percentage units resolve to
// floor(dimension * percentage), truncating toward zero. Never fails.
func (u Unit) ToPixels(dimension Pixels) Pixels {
	if !u.isPct {
		return u.pixels
	}
	return Pixels(float64(dimension) * float64(u.percent))
}

func (u Unit) String() string {
	if u.isPct {
		return fmt.Sprintf("%v%%", float64(u.percent)*100)
	}
	return fmt.Sprintf("%dpx", int(u.pixels))
}

// Parse converts the configuration spelling of a unit into a Unit.
//
// Accepted forms:
//   - "120" or "120px": an absolute pixel count
//   - "35%": a percentage, scaled to the fraction 0.35
//
// Percentages outside [0%, 100%] fail with a *PercentageRangeError carrying
// the fraction. Negative or non-integer pixel counts are rejected.
func Parse(s string) (Unit, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Unit{}, fmt.Errorf("empty unit")
	}

	if rest, ok := strings.CutSuffix(s, "%"); ok {
		v, err := strconv.ParseFloat(rest, 64)
		if err != nil {
			return Unit{}, fmt.Errorf("invalid percentage %q: %w", s, err)
		}
		p, err := NewPercentage(v / 100)
		if err != nil {
			return Unit{}, err
		}
		return Pct(p), nil
	}

	rest := strings.TrimSuffix(s, "px")
	n, err := strconv.Atoi(rest)
	if err != nil {
		return Unit{}, fmt.Errorf("invalid pixel count %q: %w", s, err)
	}
	if n < 0 {
		return Unit{}, fmt.Errorf("negative pixel count %q", s)
	}
	return Px(Pixels(n)), nil
}

// Coordinate is an unresolved 2D point: a pair of Units that only becomes a
// pixel position once resolved against concrete image dimensions.
type Coordinate struct {
	X Unit
	Y Unit
}

// Resolve converts the coordinate to pixel values: X against the image
// width, Y against the image height.
func (c Coordinate) Resolve(width, height Pixels) (x, y Pixels) {
	return c.X.ToPixels(width), c.Y.ToPixels(height)
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%s, %s)", c.X, c.Y)
}
