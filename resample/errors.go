package resample

import "errors"

// ErrNilRand indicates Uniform was called without a source of
// randomness; callers must inject one explicitly (never a package-level
// default) so resampling stays reproducible under a caller-chosen seed.
var ErrNilRand = errors.New("resample: rng is nil")
