// Package attendance implements the attendance recording and aggregation
// core: the transactional write path that records a day's marks for a course
// roster, and the read path that derives percentage summaries from the
// running totals.
package attendance

import "errors"

// Sentinel errors for the handler layer to map onto HTTP statuses.
var (
	// ErrValidation covers malformed input rejected before any write.
	ErrValidation = errors.New("invalid attendance data")
	// ErrNotFound covers references to a course or student that does not exist.
	ErrNotFound = errors.New("not found")
	// ErrPersistence covers transactional failures; the whole batch was rolled back.
	ErrPersistence = errors.New("persistence failure")
)
