package ashintersect

import (
	"testing"

	"github.com/Borislavv/go-ash-intersect/model"
	"github.com/stretchr/testify/require"
)

// TestSize_Example times and counts caller-owned data.
func TestSize_Example(t *testing.T) {
	res, err := Size([]int{1, 2, 6}, []int{10, 2, 5, 1}, model.HashA)
	require.NoError(t, err)
	require.Equal(t, uint64(2), res.Cardinality)
	require.GreaterOrEqual(t, res.Elapsed.Nanoseconds(), int64(0))
}

// TestSet_Example returns the same elements for either side.
func TestSet_Example(t *testing.T) {
	for _, side := range []model.HashSide{model.HashA, model.HashB} {
		res, err := Set([]int{1, 2, 6}, []int{10, 2, 5, 1}, side)
		require.NoError(t, err)
		require.Equal(t, []int{1, 2}, model.Sorted(res.Elements))
	}
}

// TestSize_Fault surfaces the computation fault.
func TestSize_Fault(t *testing.T) {
	_, err := Size([]any{map[string]int{}}, []any{1}, model.HashA)
	require.ErrorIs(t, err, model.ErrComputationFault)

	_, err = Set([]any{1}, []any{[]byte("x")}, model.HashA)
	require.ErrorIs(t, err, model.ErrComputationFault)
}

// TestSizeBytes_Example intersects byte-slice elements.
func TestSizeBytes_Example(t *testing.T) {
	a := [][]byte{[]byte("k1"), []byte("k2")}
	b := [][]byte{[]byte("k2"), []byte("k3"), []byte("k2")}

	res, err := SizeBytes(a, b, model.HashB)
	require.NoError(t, err)
	require.Equal(t, uint64(1), res.Cardinality)

	set, err := SetBytes(a, b, model.HashA)
	require.NoError(t, err)
	require.Equal(t, [][]byte{[]byte("k2")}, set.Elements)
	require.GreaterOrEqual(t, set.Elapsed.Nanoseconds(), int64(0))

	_, err = SetBytes(a, b, "C")
	require.ErrorIs(t, err, model.ErrInvalidRequest)
}
