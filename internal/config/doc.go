// Package config loads the declarative processing document.
//
// A document is a TOML file naming the output format and an ordered list of
// operations. Each operation table carries a "type" discriminator from the
// closed set (grayscale, blur, adjust-brightness, crop, resize) plus its
// parameters; geometry fields use the unit spellings from the unit package
// ("120", "120px", "35%"). Missing resize fields fall back to explicit
// defaults (nearest-neighbor filter, preserve mode), and decoded values are
// validated before any operation is built.
package config
