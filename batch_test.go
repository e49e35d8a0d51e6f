package ashintersect

import (
	"context"
	"testing"
	"time"

	"github.com/Borislavv/go-ash-intersect/internal/help"
	"github.com/Borislavv/go-ash-intersect/model"
	"github.com/stretchr/testify/require"
)

// TestRunBatch_Order keeps results aligned with requests.
func TestRunBatch_Order(t *testing.T) {
	i := newIntersector(t)

	reqs := make([]model.Request, 12)
	for n := range reqs {
		reqs[n] = model.Request{SizeA: int64(100 * (n + 1)), SizeB: 300, HashSide: model.HashA}
	}

	results := i.RunBatch(t.Context(), reqs)
	require.Len(t, results, len(reqs))
	for n, res := range results {
		require.NoError(t, res.Err)
		require.NotNil(t, res.Report)
		require.Equal(t, reqs[n], res.Report.Request)
		require.True(t, res.Report.Outcome.Admitted)
	}
}

// TestRunBatch_PerEntryErrors does not let one failed entry cancel the others.
func TestRunBatch_PerEntryErrors(t *testing.T) {
	i := New(t.Context(), help.StaticMemoryCfg(10_000), help.Discard())
	defer i.Close()

	results := i.RunBatch(t.Context(), []model.Request{
		{SizeA: 10, SizeB: 10, HashSide: model.HashA},
		{SizeA: -1, SizeB: 10, HashSide: model.HashA},
		{SizeA: 100_000, SizeB: 10, HashSide: model.HashA},
		{SizeA: 20, SizeB: 10, HashSide: model.HashB, Mode: model.ModeSet},
	})

	require.NoError(t, results[0].Err)
	require.ErrorIs(t, results[1].Err, model.ErrInvalidRequest)
	require.ErrorIs(t, results[2].Err, model.ErrAdmissionRejected)
	require.NoError(t, results[3].Err)
	require.Equal(t, uint64(len(results[3].Report.Elements)), results[3].Report.Cardinality)
}

// TestRunBatch_Cancelled starts nothing once the context is done.
func TestRunBatch_Cancelled(t *testing.T) {
	gen := &countingGenerator{}
	i := newIntersector(t, WithGenerator(gen))

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	results := i.RunBatch(ctx, []model.Request{
		{SizeA: 10, SizeB: 10, HashSide: model.HashA},
		{SizeA: 10, SizeB: 10, HashSide: model.HashB},
	})
	for _, res := range results {
		require.ErrorIs(t, res.Err, context.Canceled)
		require.NotNil(t, res.Report)
	}
	require.Zero(t, gen.calls.Load())
}

// TestRunBatch_Paced spreads starts over time.
func TestRunBatch_Paced(t *testing.T) {
	i := New(t.Context(), help.PacedCfg(2, 20), help.Discard())
	defer i.Close()

	reqs := make([]model.Request, 5)
	for n := range reqs {
		reqs[n] = model.Request{SizeA: 50, SizeB: 50, HashSide: model.HashA}
	}

	start := time.Now()
	results := i.RunBatch(t.Context(), reqs)
	require.GreaterOrEqual(t, time.Since(start), 150*time.Millisecond)
	for _, res := range results {
		require.NoError(t, res.Err)
	}
}

// TestRunBatch_Empty returns an empty slice.
func TestRunBatch_Empty(t *testing.T) {
	require.Empty(t, newIntersector(t).RunBatch(t.Context(), nil))
}
