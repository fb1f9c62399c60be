// Package noop defines a no-op tracer implementation.
package noop

import (
	"context"

	"github.com/graph-gophers/gqlfmt/errors"
)

// Tracer is a no-op tracer that does nothing.
type Tracer struct{}

func (Tracer) TraceFormat(ctx context.Context, queryString string) (context.Context, func(*errors.QueryError)) {
	return ctx, func(*errors.QueryError) {}
}

func (Tracer) TraceParse(ctx context.Context) func(*errors.QueryError) {
	return func(*errors.QueryError) {}
}
