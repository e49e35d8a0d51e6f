package telemetry

import (
	"context"
	"log/slog"
	"time"

	"github.com/Borislavv/go-ash-intersect/config"
)

type Logger interface {
	Interval() time.Duration
	Close() error
}

// Logs periodically writes per-interval deltas of the counters.
type Logs struct {
	ctx      context.Context
	cancel   context.CancelFunc
	cfg      config.TelemetryCfg
	logger   *slog.Logger
	counters *Counters
}

func New(ctx context.Context, cfg config.TelemetryCfg, logger *slog.Logger, counters *Counters) *Logs {
	ctx, cancel := context.WithCancel(ctx)
	return (&Logs{
		ctx:      ctx,
		cancel:   cancel,
		cfg:      cfg,
		logger:   logger,
		counters: counters,
	}).run()
}

func (l *Logs) Interval() time.Duration {
	return l.cfg.LogsInterval
}

func (l *Logs) Close() error {
	l.cancel()
	return nil
}

func (l *Logs) run() *Logs {
	if l.cfg.LogsEnabled && l.cfg.LogsInterval > 0 {
		go l.loop()
	}
	return l
}

func (l *Logs) loop() {
	ticker := time.NewTicker(l.cfg.LogsInterval)
	defer ticker.Stop()

	prev := sample(l.counters)

	for {
		select {
		case <-l.ctx.Done():
			return

		case <-ticker.C:
			cur := sample(l.counters)
			d := deltaSnapshot(prev, cur)
			prev = cur
			l.write(d)
		}
	}
}

func (l *Logs) write(d snapshot) {
	common := []any{"interval", l.cfg.LogsInterval.String()}

	l.logger.Info("admission_controller",
		append(common,
			"admitted", int64(d.admitted),
			"rejected_switch_side", int64(d.rejectedSwitch),
			"rejected_reduce_sizes", int64(d.rejectedShrink),
			"invalid_requests", int64(d.invalid),
		)...,
	)

	var avg time.Duration
	if d.computations > 0 {
		avg = time.Duration(d.computeNanos / d.computations)
	}
	l.logger.Info("intersection_engine",
		append(common,
			"computations", int64(d.computations),
			"faults", int64(d.faults),
			"avg_elapsed", avg.String(),
		)...,
	)
}
