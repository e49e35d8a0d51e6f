package ashintersect

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/Borislavv/go-ash-intersect/config"
	"github.com/Borislavv/go-ash-intersect/internal/admission"
	"github.com/Borislavv/go-ash-intersect/internal/generator"
	"github.com/Borislavv/go-ash-intersect/internal/memory"
	"github.com/Borislavv/go-ash-intersect/internal/telemetry"
	"github.com/Borislavv/go-ash-intersect/model"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
)

type AshIntersect interface {
	Admit(req model.Request) (model.Outcome, error)
	Run(ctx context.Context, req model.Request) (*model.Report, error)
	RunBatch(ctx context.Context, reqs []model.Request) []BatchResult
	telemetry.Logger
	io.Closer
}

// Intersector runs the two-step contract: admit the request against a memory
// snapshot, then populate and intersect. It keeps no per-invocation state, so one
// instance may serve many concurrent invocations.
type Intersector struct {
	cfg       *config.Intersect
	logger    *slog.Logger
	admitter  admission.Controller
	probe     memory.Probe
	generator generator.Generator
	counters  *telemetry.Counters
	metrics   *telemetry.Metrics // nil when metrics are disabled
	telemetry.Logger
	cls context.CancelFunc
}

type Option func(*Intersector)

// WithProbe replaces the memory probe selected by cfg.Memory.
func WithProbe(p memory.Probe) Option {
	return func(i *Intersector) { i.probe = p }
}

// WithGenerator replaces the data generator built from cfg.Generator.
func WithGenerator(g generator.Generator) Option {
	return func(i *Intersector) { i.generator = g }
}

func New(ctx context.Context, cfg *config.Intersect, logger *slog.Logger, opts ...Option) *Intersector {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = slog.Default()
	}
	cfg.AdjustConfig()
	ctx, cancel := context.WithCancel(ctx)

	i := &Intersector{
		cfg:       cfg,
		logger:    logger,
		admitter:  admission.NewAdmissionControl(cfg.Admission),
		probe:     memory.New(cfg.Memory),
		generator: generator.New(cfg.Generator),
		counters:  telemetry.NewCounters(),
		cls:       cancel,
	}
	if cfg.Telemetry.MetricsEnabled {
		i.metrics = telemetry.NewMetrics()
	}
	for _, opt := range opts {
		opt(i)
	}
	i.Logger = telemetry.New(ctx, cfg.Telemetry, logger, i.counters)

	return i
}

func (i *Intersector) Close() error {
	i.cls()
	return i.Logger.Close()
}

// Registry returns the prometheus registry, or nil when metrics are disabled.
func (i *Intersector) Registry() *prometheus.Registry {
	if i.metrics == nil {
		return nil
	}
	return i.metrics.Registry()
}

// Admit validates req, takes a snapshot of available memory and runs the admission check.
// A rejection is a regular Outcome, not an error; errors mean invalid input or a failed probe.
func (i *Intersector) Admit(req model.Request) (model.Outcome, error) {
	if err := i.validate(req); err != nil {
		return model.Outcome{}, err
	}

	available, err := i.probe.Available()
	if err != nil {
		return model.Outcome{}, fmt.Errorf("probe available memory: %w", err)
	}

	return i.admit(req, available), nil
}

// AdmitWithin is Admit with a caller-supplied memory snapshot.
func (i *Intersector) AdmitWithin(req model.Request, available uint64) (model.Outcome, error) {
	if err := i.validate(req); err != nil {
		return model.Outcome{}, err
	}
	return i.admit(req, available), nil
}

// Run performs one full invocation. On rejection the report carries the outcome and the
// error is a *model.RejectionError. Cancelling ctx before population aborts the run;
// an admitted computation always runs to completion.
func (i *Intersector) Run(ctx context.Context, req model.Request) (*model.Report, error) {
	report := &model.Report{ID: uuid.NewString(), Request: req}

	outcome, err := i.Admit(req)
	if err != nil {
		return report, err
	}
	report.Outcome = outcome
	if !outcome.Admitted {
		return report, outcome.Err()
	}

	if err = ctx.Err(); err != nil {
		return report, err
	}

	a := i.generator.Ints(int(req.SizeA))
	b := i.generator.Ints(int(req.SizeB))

	mode := req.Mode.OrDefault()
	switch mode {
	case model.ModeSet:
		res, err := Set(a, b, req.HashSide)
		if err != nil {
			return report, i.fault(report, err)
		}
		report.Elements = model.Sorted(res.Elements)
		report.Cardinality = uint64(res.Elements.Len())
		report.Elapsed = res.Elapsed
	default:
		res, err := Size(a, b, req.HashSide)
		if err != nil {
			return report, i.fault(report, err)
		}
		report.Cardinality = res.Cardinality
		report.Elapsed = res.Elapsed
	}

	i.counters.Computed(report.Elapsed.Nanoseconds())
	if i.metrics != nil {
		i.metrics.Computed(string(mode), report.Elapsed.Seconds())
	}
	i.logger.Info("intersection computed",
		"id", report.ID,
		"mode", mode,
		"size_a", req.SizeA,
		"size_b", req.SizeB,
		"hash_side", req.HashSide,
		"cardinality", report.Cardinality,
		"elapsed", report.Elapsed.String(),
	)

	return report, nil
}

/**
 * Private API.
 */

func (i *Intersector) validate(req model.Request) error {
	if err := req.Validate(); err != nil {
		i.counters.InvalidRequest()
		if i.metrics != nil {
			i.metrics.InvalidRequest()
		}
		i.logger.Warn("invalid request", "error", err.Error())
		return err
	}
	return nil
}

func (i *Intersector) admit(req model.Request, available uint64) model.Outcome {
	outcome := i.admitter.Admit(uint64(req.SizeA), uint64(req.SizeB), req.HashSide, available)

	if outcome.Admitted {
		i.counters.Admitted()
		if i.metrics != nil {
			i.metrics.Admitted()
		}
		return outcome
	}

	i.counters.Rejected(outcome.AlternativeFits)
	if i.metrics != nil {
		i.metrics.Rejected(outcome.AlternativeFits)
	}
	i.logger.Warn("admission rejected",
		"size_a", req.SizeA,
		"size_b", req.SizeB,
		"hash_side", req.HashSide,
		"alternative_fits", outcome.AlternativeFits,
		"suggested", outcome.Suggested,
		"reason", outcome.Reason,
	)
	return outcome
}

func (i *Intersector) fault(report *model.Report, err error) error {
	if errors.Is(err, model.ErrComputationFault) {
		i.counters.Fault()
		if i.metrics != nil {
			i.metrics.Fault()
		}
	}
	i.logger.Error("intersection failed", "id", report.ID, "error", err.Error())
	return err
}
