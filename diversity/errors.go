package diversity

import "errors"

// ErrInsufficientDiversity indicates the table-wide sensitive-attribute
// diversity is already below l, so no merge sequence can succeed
// (spec.md §4.4, step 1).
var ErrInsufficientDiversity = errors.New("diversity: table-wide diversity below l")
