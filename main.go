package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"flag"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/grafana/dskit/flagext"
	"github.com/grafana/go-redblack/internal/bst"
	"github.com/grafana/go-redblack/internal/cfg"
	"github.com/grafana/go-redblack/internal/console"
	"github.com/grafana/go-redblack/internal/input"
	"github.com/grafana/go-redblack/internal/loki"
	"github.com/grafana/go-redblack/internal/metrics"
	"github.com/grafana/go-redblack/internal/render"
	"github.com/grafana/go-redblack/internal/tracing"
	"github.com/grafana/go-redblack/internal/tree"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

type stoppable interface {
	Stop()
}

// tee fans every record out to all loggers.
type tee []log.Logger

func (t tee) Log(keyvals ...any) error {
	var errs []error
	for _, l := range t {
		errs = append(errs, l.Log(keyvals...))
	}
	return errors.Join(errs...)
}

func main() {
	conf := cfg.Config{}
	fields := cfg.Tags{}
	values := flagext.StringSliceCSV{"1", "2", "3", "4", "5", "6", "7", "8"}
	flag.Var(&fields, "t", "Add a key=value pair to every log line of the run")
	flag.Var(&values, "values", "Comma-separated integers to insert, in order")
	file := flag.String("c", "", "Path to configuration file")
	stdin := flag.Bool("stdin", false, "Read values as JSON lines from stdin instead of -values")
	compare := flag.Bool("compare", false, "Also build an unbalanced tree and report its height")
	verify := flag.Bool("verify", false, "Check every tree invariant after building")
	dumpMetrics := flag.Bool("metrics", false, "Write tree metrics to stderr before exiting")
	debug := flag.Bool("debug", false, "Log every insert")
	flag.Parse()

	logger := log.NewLogfmtLogger(os.Stderr)

	if *file != "" {
		f, err := os.Open(*file)
		if err != nil {
			level.Error(logger).Log("msg", "Failed to open configuration file", "filename", *file, "error", err)
			os.Exit(-1)
		}
		conf, err = conf.Parse(*file, f)
		f.Close()
		if err != nil {
			level.Error(logger).Log("msg", "Failed to parse configuration file", "filename", *file, "error", err)
			os.Exit(-1)
		}
	}

	tracingOptions, traceErr := conf.Tracing()
	lokiOptions, lokiErr := conf.Loki()
	consoleOptions, consoleErr := conf.Console()
	grafanaOptions, grafanaErr := conf.Grafana()
	if err := errors.Join(traceErr, lokiErr, consoleErr, grafanaErr); err != nil {
		level.Error(logger).Log("msg", "Failed to parse configuration for services", "error", err)
		os.Exit(-1)
	}

	tp, shutdownTracing, err := tracing.Provider(tracingOptions)
	if err != nil {
		level.Error(logger).Log("msg", "Failed to initialize tracing", "error", err)
		os.Exit(-1)
	}
	ctx, span := tp.Tracer(tracing.TracerName).Start(context.Background(), "rbtree/run")

	runID := newRunID()
	if span.SpanContext().IsValid() {
		runID = span.SpanContext().TraceID().String()
	}

	var stoppers []stoppable
	exit := func(code int) {
		finish(span, shutdownTracing, stoppers, logger)
		os.Exit(code)
	}

	var runLogger log.Logger = logger
	if lokiOptions.Enabled() {
		logClient, err := loki.New(lokiOptions, fields)
		if err != nil {
			level.Error(logger).Log("msg", "Failed to initialize Loki sender", "error", err)
			exit(-1)
		}
		runLogger = tee{logger, logClient}
		stoppers = append(stoppers, logClient)
	}
	allowed := level.AllowInfo()
	if *debug {
		allowed = level.AllowDebug()
	}
	runLogger = level.NewFilter(runLogger, allowed)
	runLogger = log.With(runLogger, append([]any{"run", runID}, fields.KeyValues()...)...)

	out := console.New(os.Stdout, runID, consoleOptions, grafanaOptions, lokiOptions.Enabled())
	stoppers = append(stoppers, out)

	reg := prometheus.NewRegistry()
	collector, err := metrics.New(reg)
	if err != nil {
		level.Error(runLogger).Log("msg", "Failed to register metrics", "error", err)
		exit(-1)
	}

	var source func() ([]int, error)
	if *stdin {
		source = input.NewJSONLines(os.Stdin).ReadLine
	} else {
		parsed, err := parseValues(values)
		if err != nil {
			level.Error(runLogger).Log("msg", "Failed to parse values", "error", err)
			exit(-1)
		}
		done := false
		source = func() ([]int, error) {
			if done {
				return nil, io.EOF
			}
			done = true
			return parsed, nil
		}
	}

	rb := tree.New[int](tree.WithObserver(collector))
	baseline := &bst.Tree[int]{}

	_, buildSpan := tp.Tracer(tracing.TracerName).Start(ctx, "rbtree/build")
	inserted, duplicates, failCount := 0, 0, 0
	for {
		vs, err := source()
		if err != nil {
			if err == io.EOF {
				break
			}
			failCount++
			level.Warn(runLogger).Log("msg", "Error reading values", "error", err)
			if failCount > 9 {
				level.Error(runLogger).Log("msg", "Too many subsequent read errors, stopping", "error", err)
				exit(-1)
			}
			continue
		}
		failCount = 0

		for _, v := range vs {
			if *compare {
				baseline.Insert(v)
			}
			if rb.Insert(v) {
				inserted++
				level.Debug(runLogger).Log("msg", "Inserted value", "value", v, "height", rb.Height())
			} else {
				duplicates++
				level.Info(runLogger).Log("msg", "Value already present", "value", v)
			}
		}
	}
	buildSpan.SetAttributes(
		attribute.Int("inserted", inserted),
		attribute.Int("duplicates", duplicates),
		attribute.Int("height", rb.Height()),
	)
	buildSpan.End()
	collector.SetShape(rb.Len(), rb.Height())
	level.Info(runLogger).Log("msg", "Built tree", "nodes", rb.Len(), "height", rb.Height(), "duplicates", duplicates)

	exitCode := 0
	if *verify {
		_, verifySpan := tp.Tracer(tracing.TracerName).Start(ctx, "rbtree/verify")
		if err := rb.Check(); err != nil {
			verifySpan.SetStatus(codes.Error, "invariant violated")
			level.Error(runLogger).Log("msg", "Tree invariants violated", "error", err)
			exitCode = 1
		} else {
			verifySpan.SetStatus(codes.Ok, "all invariants hold")
			level.Info(runLogger).Log("msg", "Tree invariants hold")
		}
		verifySpan.End()
	}

	out.Tree(func(colored bool) string {
		return render.Tree(rb.Root(), colored)
	})
	summary := console.Summary{Nodes: rb.Len(), Height: rb.Height()}
	if rb.Len() > 0 {
		summary.Min, summary.Max = rb.MinMax()
	}
	if *compare {
		summary.BaselineHeight = baseline.Height()
	}
	out.Summary(summary)

	if *dumpMetrics {
		if err := metrics.WriteText(os.Stderr, reg); err != nil {
			level.Error(runLogger).Log("msg", "Failed to write metrics", "error", err)
		}
	}

	exit(exitCode)
}

// finish ends the run span, flushes traces and stops every stopper in the
// order they were added, so buffered log lines are pushed before exiting.
func finish(span trace.Span, shutdownTracing func(context.Context) error, stoppers []stoppable, logger log.Logger) {
	span.End()
	if err := shutdownTracing(context.Background()); err != nil {
		level.Error(logger).Log("msg", "Failed to flush traces", "error", err)
	}
	for _, stopper := range stoppers {
		stopper.Stop()
	}
}

func parseValues(raw []string) ([]int, error) {
	values := make([]int, 0, len(raw))
	var errs []error
	for _, s := range raw {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		v, err := strconv.Atoi(s)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		values = append(values, v)
	}
	return values, errors.Join(errs...)
}

func newRunID() string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		return "unknown"
	}
	return hex.EncodeToString(b)
}
