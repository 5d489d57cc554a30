package refresh

import "sync/atomic"

// Signal is a monotonically increasing version stamp shared between editing
// views and the summary view. Its absolute value carries no meaning; a change
// in value means "something was mutated, re-fetch derived data". It is never
// reset or decremented for the lifetime of one mounted trip shell.
type Signal struct {
	v atomic.Int64
}

// Advance bumps the version stamp and returns the new value.
func (s *Signal) Advance() int64 {
	return s.v.Add(1)
}

// Value returns the current version stamp.
func (s *Signal) Value() int64 {
	return s.v.Load()
}
