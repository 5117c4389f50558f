package billiards

import "errors"

var (
	// ErrDegenerateBoundary is returned for boundaries with fewer than three
	// edges or segments, or whose segments don't join up.
	ErrDegenerateBoundary = errors.New("degenerate boundary")
	// ErrInvalidStart is returned for start locators that don't name an edge
	// or segment of the boundary.
	ErrInvalidStart = errors.New("invalid start position")
)
