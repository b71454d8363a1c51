package pathfind

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrontier_OfferAndPop(t *testing.T) {
	f := newFrontier(TieBreakRowMajor)

	added, lowered := f.offer(8, 3)
	assert.True(t, added)
	assert.False(t, lowered)

	f.offer(2, 3)
	f.offer(5, 1)

	// equal distance keeps the existing entry
	added, lowered = f.offer(8, 3)
	assert.False(t, added)
	assert.False(t, lowered)
	assert.Equal(t, 3, f.Len())

	// lower distance updates in place
	added, lowered = f.offer(8, 0)
	assert.False(t, added)
	assert.True(t, lowered)
	assert.Equal(t, 3, f.Len())

	var order []int
	for f.Len() > 0 {
		order = append(order, f.popMin().idx)
	}
	assert.Equal(t, []int{8, 5, 2}, order)
	assert.Empty(t, f.byCell)
}

func TestFrontier_TieKeys(t *testing.T) {
	row := newFrontier(TieBreakRowMajor)
	ins := newFrontier(TieBreakInsertion)
	for _, idx := range []int{7, 1, 4} {
		row.offer(idx, 2)
		ins.offer(idx, 2)
	}

	var gotRow, gotIns []int
	for row.Len() > 0 {
		gotRow = append(gotRow, row.popMin().idx)
		gotIns = append(gotIns, ins.popMin().idx)
	}
	assert.Equal(t, []int{1, 4, 7}, gotRow)
	assert.Equal(t, []int{7, 1, 4}, gotIns)
}

func TestFrontier_DecreaseKeepsTieKey(t *testing.T) {
	f := newFrontier(TieBreakInsertion)
	f.offer(3, 5) // seq 1
	f.offer(9, 2) // seq 2
	f.offer(3, 2) // lowered, still seq 1

	assert.Equal(t, 3, f.popMin().idx)
	assert.Equal(t, 9, f.popMin().idx)
}

// A corrupted distance chain must surface as ErrReconstructionFailed and
// leave the engine failed.
func TestTrace_ReconstructionFailed(t *testing.T) {
	g, err := NewGrid(1, 3, Coord{0, 0}, Coord{0, 2})
	require.NoError(t, err)
	e, err := New(g)
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		st, err := e.Next()
		require.NoError(t, err)
		require.Equal(t, PhaseExpand, st.Phase)
	}
	require.True(t, e.destDone)

	g.cells[g.index(Coord{0, 1})].dist = 5

	_, err = e.Next()
	require.ErrorIs(t, err, ErrReconstructionFailed)
	assert.Equal(t, StatusFailed, e.Status())

	_, err = e.Next()
	assert.ErrorIs(t, err, ErrReconstructionFailed)
	_, err = e.Result()
	assert.ErrorIs(t, err, ErrReconstructionFailed)
	assert.Equal(t, gridSearched, g.phase)
}
