// Package unit implements the measurement system used by image operations.
//
// A position or size in a configuration document can be given either as an
// absolute pixel count or as a percentage of the image's current dimensions.
// Both forms are carried around unresolved as a Unit and only converted to
// concrete pixels when an operation runs, against whatever the image
// dimensions are at that point in the pipeline.
//
// # Resolution
//
// Percentage units resolve as floor(dimension * percentage): the product is
// computed in floating point and truncated toward zero, never rounded. A
// 99% unit against a 3-pixel axis therefore resolves to 2 pixels, not 3.
//
// # Axis mapping
//
// A Coordinate's X component always resolves against the image width and its
// Y component against the image height, for every caller. Percentage-based
// coordinates on non-square images depend on this mapping being uniform.
package unit
