package engine

import (
	"sort"
	"testing"

	"github.com/Borislavv/go-ash-intersect/model"
	"github.com/stretchr/testify/require"
)

func toBytes(vals ...string) [][]byte {
	out := make([][]byte, len(vals))
	for i, v := range vals {
		out[i] = []byte(v)
	}
	return out
}

func toStrings(vals [][]byte) []string {
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = string(v)
	}
	sort.Strings(out)
	return out
}

// TestSizeBytes_Scenarios mirrors the comparable variant for byte slices.
func TestSizeBytes_Scenarios(t *testing.T) {
	a := toBytes("alpha", "beta", "beta", "gamma")
	b := toBytes("delta", "beta", "alpha", "alpha")

	for _, side := range bothSides {
		n, err := SizeBytes(a, b, side)
		require.NoError(t, err)
		require.Equal(t, uint64(2), n)

		set, err := SetBytes(a, b, side)
		require.NoError(t, err)
		require.Equal(t, []string{"alpha", "beta"}, toStrings(set))
	}
}

// TestSizeBytes_Empty returns zero and an empty, non-nil set.
func TestSizeBytes_Empty(t *testing.T) {
	n, err := SizeBytes(nil, toBytes("x"), model.HashA)
	require.NoError(t, err)
	require.Zero(t, n)

	set, err := SetBytes(toBytes("x"), [][]byte{}, model.HashB)
	require.NoError(t, err)
	require.NotNil(t, set)
	require.Empty(t, set)
}

// TestSizeBytes_EmptyElement treats the zero-length value as a regular element.
func TestSizeBytes_EmptyElement(t *testing.T) {
	n, err := SizeBytes([][]byte{{}, []byte("a")}, [][]byte{nil}, model.HashA)
	require.NoError(t, err)
	require.Equal(t, uint64(1), n)
}

// TestSizeBytes_UnknownSide is an invalid request.
func TestSizeBytes_UnknownSide(t *testing.T) {
	_, err := SizeBytes(toBytes("a"), toBytes("a"), "X")
	require.ErrorIs(t, err, model.ErrInvalidRequest)
}
