package bfs

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// Package-level tracer and meter for traversal operations.
var (
	tracer = otel.Tracer("github.com/katalvlaran/parbfs/bfs")
	meter  = otel.Meter("github.com/katalvlaran/parbfs/bfs")
)

// Metrics for traversal runs.
var (
	traversalsTotal  metric.Int64Counter
	verticesFinished metric.Int64Counter
	levelWidth       metric.Int64Histogram

	metricsOnce sync.Once
	metricsErr  error
)

// initMetrics initializes the instruments. Safe to call multiple times.
func initMetrics() error {
	metricsOnce.Do(func() {
		var err error

		traversalsTotal, err = meter.Int64Counter(
			"bfs_traversals_total",
			metric.WithDescription("Number of completed or failed traversals"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		verticesFinished, err = meter.Int64Counter(
			"bfs_vertices_finished_total",
			metric.WithDescription("Number of vertices moved to Black"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		levelWidth, err = meter.Int64Histogram(
			"bfs_level_width",
			metric.WithDescription("Number of vertices processed per BFS level"),
		)
		if err != nil {
			metricsErr = err
			return
		}
	})
	return metricsErr
}

// startSpan opens the traversal span for engine.
func (w *walker) startSpan(engine string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	attrs = append(attrs,
		attribute.String("engine", engine),
		attribute.Int("start", w.start),
		attribute.Int("vertex_count", w.n),
	)
	return tracer.Start(w.opts.Ctx, "bfs."+engine, trace.WithAttributes(attrs...))
}

// endSpan records the outcome of a traversal on span, metrics and log.
func (w *walker) endSpan(ctx context.Context, span trace.Span, engine string, levels int, err error) {
	defer span.End()

	finished := w.finished.Load()
	span.SetAttributes(
		attribute.Int64("vertices_finished", finished),
		attribute.Int("levels", levels),
	)
	outcome := "ok"
	if err != nil {
		outcome = "error"
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}

	if initMetrics() == nil {
		engineAttr := metric.WithAttributes(attribute.String("engine", engine))
		traversalsTotal.Add(ctx, 1, metric.WithAttributes(
			attribute.String("engine", engine),
			attribute.String("outcome", outcome),
		))
		verticesFinished.Add(ctx, finished, engineAttr)
	}

	w.opts.Logger.Debug("bfs traversal finished",
		"engine", engine,
		"start", w.start,
		"levels", levels,
		"vertices_finished", finished,
		"outcome", outcome,
	)
}

// levelDone records one completed level of width vertices at depth.
func (w *walker) levelDone(ctx context.Context, span trace.Span, engine string, depth, width int) {
	span.AddEvent("level", trace.WithAttributes(
		attribute.Int("depth", depth),
		attribute.Int("width", width),
	))
	if initMetrics() == nil {
		levelWidth.Record(ctx, int64(width), metric.WithAttributes(attribute.String("engine", engine)))
	}
	w.opts.Logger.Debug("bfs level done", "engine", engine, "depth", depth, "width", width)
}
