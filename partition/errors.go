package partition

import "errors"

// ErrInvalidConfig indicates QI and the grouping attribute set G
// overlap (spec.md §4.3: "The driver enforces that QI ∩ G = ∅").
var ErrInvalidConfig = errors.New("partition: QI and grouping attributes overlap")
