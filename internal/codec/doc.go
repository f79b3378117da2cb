// Package codec is the image source and sink for the pipeline.
//
// Decoding auto-detects the raster format from the byte stream; PNG, JPEG,
// GIF, BMP, TIFF and WebP decoders are registered. Encoding is driven by an
// Output tag from the closed Format set plus a quality parameter used by the
// lossy formats. Tags without a registered encoder fail with a typed
// *UnsupportedFormatError rather than shrinking the tag set.
//
// The package also produces image descriptions (dimensions, color depth,
// alpha, average color) without running any pipeline operations.
package codec
