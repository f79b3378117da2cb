// Package operation defines the closed set of image transformations and the
// pipeline that applies them.
//
// Each transformation is a value implementing Operation: it is handed an
// image, produces a new image or an *OperationError, and never retains the
// input. The Pipeline applies an ordered list of operations sequentially,
// feeding each step's output into the next and stopping at the first failure.
// Exactly one image buffer is live at any point in a run.
//
// The configuration-reachable set is AdjustBrightness, Blur, Crop, Grayscale
// and Resize. Invert and Unsharpen exist as additional building blocks with
// the same contract; wiring one into configuration is a single change in the
// config package's operation table.
//
// Declarative geometry (percentage or pixel units) is resolved against the
// dimensions of the image each operation actually receives, so a 50% resize
// after a crop refers to the cropped size. The pixel math itself — blur
// kernels, resampling, brightness curves — is delegated to the
// disintegration/imaging and anthonynsimon/bild libraries.
package operation
