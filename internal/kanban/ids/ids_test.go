package ids

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDGenerator_Unique(t *testing.T) {
	gen := UUIDGenerator{}
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := gen.NewID()
		_, err := uuid.Parse(id)
		require.NoError(t, err)
		require.False(t, seen[id], "duplicate id %q", id)
		seen[id] = true
	}
}

func TestSequence(t *testing.T) {
	seq := &Sequence{Prefix: "card-"}
	assert.Equal(t, "card-1", seq.NewID())
	assert.Equal(t, "card-2", seq.NewID())
	assert.Equal(t, "card-3", seq.NewID())
}
