package ids

import (
	"strconv"

	"github.com/google/uuid"
)

// Generator produces opaque identifiers for cards and columns
type Generator interface {
	NewID() string
}

// UUIDGenerator issues random (v4) UUIDs
type UUIDGenerator struct{}

// NewID returns a new random identifier
func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}

// Sequence issues prefix1, prefix2, ... in order.
// Useful where identifiers need to be predictable, e.g. tests and fixtures.
type Sequence struct {
	Prefix string
	next   int
}

// NewID returns the next identifier in the sequence
func (s *Sequence) NewID() string {
	s.next++
	return s.Prefix + strconv.Itoa(s.next)
}
