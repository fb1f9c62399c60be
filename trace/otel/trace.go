// Package otel provides an OpenTelemetry tracer for gqlfmt.
package otel

import (
	"context"

	"github.com/graph-gophers/gqlfmt/errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// DefaultTracer creates a tracer using a default name.
func DefaultTracer() *Tracer {
	return &Tracer{
		Tracer: otel.Tracer("gqlfmt"),
	}
}

// Tracer is an OpenTelemetry implementation for gqlfmt. Set the Tracer
// property to your tracer instance as required.
type Tracer struct {
	Tracer oteltrace.Tracer
}

func (t *Tracer) TraceFormat(ctx context.Context, queryString string) (context.Context, func(*errors.QueryError)) {
	spanCtx, span := t.Tracer.Start(ctx, "GraphQL Format")
	span.SetAttributes(attribute.String("graphql.query", queryString))

	return spanCtx, finish(span)
}

func (t *Tracer) TraceParse(ctx context.Context) func(*errors.QueryError) {
	_, span := t.Tracer.Start(ctx, "Parse Query")

	return finish(span)
}

func finish(span oteltrace.Span) func(*errors.QueryError) {
	return func(err *errors.QueryError) {
		if err != nil {
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}
}
