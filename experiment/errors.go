package experiment

import "errors"

// ErrUnknownAttrs indicates a Config.Attrs key not present in Registry.
var ErrUnknownAttrs = errors.New("experiment: unknown attrs key")

// ErrInvalidQIMap indicates a Config.QIMap outside {AI, A, I}.
var ErrInvalidQIMap = errors.New("experiment: invalid qi map")

// ErrInvalidMode indicates a Config.Mode outside {G, S, GS}.
var ErrInvalidMode = errors.New("experiment: invalid mode")

// ErrEmptyResult marks that Sweep stopped because an anonymization
// pass returned an empty table (spec.md §7's EmptyResult condition).
// It is returned alongside a valid, partial SweepResult — callers
// (cmd/kanonymize) must treat it as a normal stop, not a failure exit.
var ErrEmptyResult = errors.New("experiment: sweep stopped: empty result")

// ErrIO marks a persistence failure (file create/write/read) in
// Persist, WriteCSV or LoadCSV.
var ErrIO = errors.New("experiment: io failure")
