// Package resample implements the Cartesian and Uniform resamplers
// (spec.md §4.5): converting generalized categorical cells back into
// concrete rows, either by full expansion or by random single-value
// selection.
//
// Grounded on original_source/privacy/postprocessing.py. RNG injection
// follows katalvlaran/lvlath's builder package functional-options
// discipline (an explicit *rand.Rand, never a package-global source).
package resample
