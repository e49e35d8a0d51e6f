// Command intersect admits and runs set intersections from the command line,
// or serves them over HTTP with -serve.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	ashintersect "github.com/Borislavv/go-ash-intersect"
	"github.com/Borislavv/go-ash-intersect/config"
	"github.com/Borislavv/go-ash-intersect/internal/api"
	"github.com/Borislavv/go-ash-intersect/internal/shared/bytes"
	"github.com/Borislavv/go-ash-intersect/model"
	"github.com/rs/zerolog"
)

const (
	exitOK       = 0
	exitFailure  = 1
	exitRejected = 2
)

type options struct {
	configPath string
	envFile    string
	sizeA      int64
	sizeB      int64
	hash       string
	mode       string
	repeat     int
	demo       bool
	serve      bool
	verbose    bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	out := zerolog.New(zerolog.ConsoleWriter{Out: stdout, NoColor: true, TimeFormat: time.TimeOnly}).
		With().Timestamp().Logger()

	opts, err := parseFlags(args, stderr)
	if err != nil {
		return exitFailure
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		out.Error().Err(err).Msg("load config")
		return exitFailure
	}

	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(stderr, &slog.HandlerOptions{Level: level})).
		With(slog.String("service", "ashIntersect"))

	if opts.demo {
		return demo(out, opts)
	}

	i := ashintersect.New(ctx, cfg, logger)
	defer i.Close()

	if opts.serve {
		var gatherer api.Gatherer
		if reg := i.Registry(); reg != nil {
			gatherer = reg
		}
		if err = api.NewServer(cfg.Server, i, gatherer, logger).Run(ctx); err != nil {
			out.Error().Err(err).Msg("serve")
			return exitFailure
		}
		return exitOK
	}

	side, err := model.ParseHashSide(opts.hash)
	if err != nil {
		out.Error().Err(err).Msg("invalid -hash")
		return exitFailure
	}
	req := model.Request{SizeA: opts.sizeA, SizeB: opts.sizeB, HashSide: side, Mode: model.Mode(opts.mode)}

	if opts.repeat > 1 {
		reqs := make([]model.Request, opts.repeat)
		for n := range reqs {
			reqs[n] = req
		}
		code := exitOK
		for _, res := range i.RunBatch(ctx, reqs) {
			if c := report(out, res.Report, res.Err); c > code {
				code = c
			}
		}
		return code
	}

	rep, err := i.Run(ctx, req)
	return report(out, rep, err)
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("intersect", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.configPath, "config", "", "path to a yaml config file")
	fs.StringVar(&o.envFile, "env", ".env", "path to a .env file with ASH_INTERSECT_* overrides")
	fs.Int64Var(&o.sizeA, "a", 1000, "number of elements in collection A")
	fs.Int64Var(&o.sizeB, "b", 1000, "number of elements in collection B")
	fs.StringVar(&o.hash, "hash", "A", "side to build the hash index over (A or B)")
	fs.StringVar(&o.mode, "mode", string(model.ModeSize), "size or set")
	fs.IntVar(&o.repeat, "repeat", 1, "run the same request N times in parallel")
	fs.BoolVar(&o.demo, "demo", false, "intersect the built-in example collections and exit")
	fs.BoolVar(&o.serve, "serve", false, "serve the HTTP api")
	fs.BoolVar(&o.verbose, "v", false, "log library events at info level")
	return o, fs.Parse(args)
}

func loadConfig(o options) (*config.Intersect, error) {
	cfg := config.Default()
	if o.configPath != "" {
		var err error
		if cfg, err = config.LoadConfig(o.configPath); err != nil {
			return nil, err
		}
	}
	if err := config.LoadEnv(cfg, o.envFile); err != nil {
		return nil, err
	}
	cfg.AdjustConfig()
	return cfg, nil
}

func demo(out zerolog.Logger, o options) int {
	a, b := []int{1, 2, 6}, []int{10, 2, 5, 1}

	side, err := model.ParseHashSide(o.hash)
	if err != nil {
		out.Error().Err(err).Msg("invalid -hash")
		return exitFailure
	}

	res, err := ashintersect.Set(a, b, side)
	if err != nil {
		out.Error().Err(err).Msg("demo failed")
		return exitFailure
	}
	out.Info().
		Ints("a", a).
		Ints("b", b).
		Str("hash_side", side.String()).
		Ints("intersection", model.Sorted(res.Elements)).
		Int("cardinality", res.Elements.Len()).
		Str("elapsed", seconds(res.Elapsed)).
		Msg("demo")
	return exitOK
}

func report(out zerolog.Logger, rep *model.Report, err error) int {
	var rejection *model.RejectionError
	switch {
	case errors.As(err, &rejection):
		o := rejection.Outcome
		ev := out.Warn().
			Str("requested", bytes.FmtMemExact(o.Requested.Total)).
			Str("available", bytes.FmtMemExact(o.Available)).
			Bool("alternative_fits", o.AlternativeFits)
		if o.AlternativeFits {
			ev = ev.Str("suggested", o.Suggested.String())
		}
		ev.Msg(o.Reason)
		return exitRejected
	case err != nil:
		out.Error().Err(err).Msg("intersection failed")
		return exitFailure
	}

	ev := out.Info().
		Str("id", rep.ID).
		Int64("size_a", rep.Request.SizeA).
		Int64("size_b", rep.Request.SizeB).
		Str("hash_side", rep.Request.HashSide.String()).
		Str("estimated", bytes.FmtMem(rep.Outcome.Requested.Total)).
		Uint64("cardinality", rep.Cardinality)
	if rep.Elements != nil {
		ev = ev.Ints("intersection", rep.Elements)
	}
	ev.Str("elapsed", seconds(rep.Elapsed)).Msg("intersection computed")
	return exitOK
}

func seconds(d time.Duration) string {
	return fmt.Sprintf("%.6fs", d.Seconds())
}
