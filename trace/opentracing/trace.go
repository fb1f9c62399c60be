package opentracing

import (
	"context"

	"github.com/graph-gophers/gqlfmt/errors"
	opentracing "github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
)

// Tracer implements the gqlfmt Tracer interface and creates OpenTracing spans.
type Tracer struct{}

func (Tracer) TraceFormat(ctx context.Context, queryString string) (context.Context, func(*errors.QueryError)) {
	span, spanCtx := opentracing.StartSpanFromContext(ctx, "GraphQL format")
	span.SetTag("graphql.query", queryString)

	return spanCtx, finish(span)
}

func (Tracer) TraceParse(ctx context.Context) func(*errors.QueryError) {
	span, _ := opentracing.StartSpanFromContext(ctx, "Parse Query")

	return finish(span)
}

func finish(span opentracing.Span) func(*errors.QueryError) {
	return func(err *errors.QueryError) {
		if err != nil {
			ext.Error.Set(span, true)
			span.SetTag("graphql.error", err.Error())
		}
		span.Finish()
	}
}
