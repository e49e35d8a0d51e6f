package ashintersect

import (
	"context"

	"github.com/Borislavv/go-ash-intersect/internal/shared/rate"
	"github.com/Borislavv/go-ash-intersect/model"
	"golang.org/x/sync/errgroup"
)

// BatchResult pairs the report of one batch entry with its error.
type BatchResult struct {
	Report *model.Report
	Err    error
}

// RunBatch runs independent invocations in parallel, at most cfg.Batch.Workers at a
// time and, when cfg.Batch.Rate is set, no faster than Rate starts per second.
// Each entry is admitted on its own memory snapshot. Results keep the order of reqs.
// Once ctx is done no new invocation starts; the unstarted ones report ctx's error.
func (i *Intersector) RunBatch(ctx context.Context, reqs []model.Request) []BatchResult {
	results := make([]BatchResult, len(reqs))
	if len(reqs) == 0 {
		return results
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(i.cfg.Batch.EffectiveWorkers)

	var jitter *rate.Jitter
	if i.cfg.Batch.Paced() {
		jitter = rate.NewJitter(gctx, i.cfg.Batch.Rate)
	}

	started := 0
	for idx, req := range reqs {
		if jitter != nil && !jitter.Take(gctx) {
			break
		}
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			report, err := i.Run(gctx, req)
			results[idx] = BatchResult{Report: report, Err: err}
			return nil
		})
		started++
	}
	_ = g.Wait()

	for idx := started; idx < len(reqs); idx++ {
		results[idx] = BatchResult{
			Report: &model.Report{Request: reqs[idx]},
			Err:    context.Cause(ctx),
		}
	}

	i.logger.Info("batch finished", "requested", len(reqs), "started", started)
	return results
}
