package encode

import "errors"

// ErrEmptyTable indicates the table has zero rows; a domain cannot be
// enumerated from an empty dataset.
var ErrEmptyTable = errors.New("encode: table has no rows")

// ErrUnknownAttribute indicates a requested QI attribute is not a column
// of the table.
var ErrUnknownAttribute = errors.New("encode: unknown attribute")

// ErrNoAttributes indicates an empty QI list was supplied.
var ErrNoAttributes = errors.New("encode: no attributes given")
