package collision

import (
	"testing"

	"github.com/arloliu/vach/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTracker_Track(t *testing.T) {
	tr := NewTracker()

	require.NoError(t, tr.Track("a.bin"))
	require.NoError(t, tr.Track("b.bin"))
	assert.Equal(t, 2, tr.Count())

	err := tr.Track("a.bin")
	require.ErrorIs(t, err, errs.ErrDuplicateID)
	assert.Equal(t, 2, tr.Count())
}

func TestTracker_EmptyIsFine(t *testing.T) {
	tr := NewTracker()
	assert.Equal(t, 0, tr.Count())
}
