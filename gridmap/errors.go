package gridmap

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedGrid is matched by every grid construction failure.
	ErrMalformedGrid = errors.New("gridmap: malformed grid")
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("gridmap: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridmap: all rows must have the same length")
	// ErrNonDigit indicates a text row contains a character other than 0-9.
	ErrNonDigit = errors.New("gridmap: cell is not a decimal digit")
	// ErrNegativeCost indicates a cell cost below zero.
	ErrNegativeCost = errors.New("gridmap: cell cost must be non-negative")
)

// MalformedGridError reports where grid construction failed.
// Row and Col are zero-based; Col is -1 when the whole row is at fault.
type MalformedGridError struct {
	Row, Col int
	Err      error
}

func (e *MalformedGridError) Error() string {
	if e.Col < 0 {
		return fmt.Sprintf("%v (row %d)", e.Err, e.Row)
	}
	return fmt.Sprintf("%v (row %d, col %d)", e.Err, e.Row, e.Col)
}

// Unwrap exposes both the specific cause and ErrMalformedGrid to errors.Is.
func (e *MalformedGridError) Unwrap() []error {
	return []error{e.Err, ErrMalformedGrid}
}

func malformed(row, col int, err error) error {
	return &MalformedGridError{Row: row, Col: col, Err: err}
}
