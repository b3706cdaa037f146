package table

import "errors"

// ErrUnknownColumn indicates a referenced column name is not part of the
// table's schema.
var ErrUnknownColumn = errors.New("table: unknown column")

// ErrRowArity indicates a row passed to AddRow does not have one value per
// schema column.
var ErrRowArity = errors.New("table: row arity mismatch")

// ErrRowOutOfRange indicates a row index outside [0, Len()).
var ErrRowOutOfRange = errors.New("table: row index out of range")

// ErrDuplicateColumn indicates a schema with a repeated column name.
var ErrDuplicateColumn = errors.New("table: duplicate column name")
