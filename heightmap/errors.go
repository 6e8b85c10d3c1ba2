package heightmap

import "errors"

var (
	// ErrEmptyInput indicates the input contained no rows.
	ErrEmptyInput = errors.New("heightmap: input has no rows")
	// ErrNonDigit indicates a row contains a character other than '0'..'9'.
	ErrNonDigit = errors.New("heightmap: non-digit character")
	// ErrRaggedRow indicates a row whose length differs from the first row.
	ErrRaggedRow = errors.New("heightmap: row length differs from first row")
)
