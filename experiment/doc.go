// Package experiment implements the sweep-over-k experiment driver,
// its named attribute-configuration registry, and the persisted file
// layout (SPEC_FULL.md §4.7). None of this is part of the core
// anonymization algorithm — spec.md §1 explicitly calls the sweep
// loop, directory layout and CLI "out of scope" for algorithmic
// specification — but spec.md §6 requires the concrete file contract,
// so it has to live somewhere for the repository to be runnable
// end-to-end.
//
// Grounded on original_source/experiments/{conf,main,evaluate,resample}.py
// and original_source/config.py.
package experiment
