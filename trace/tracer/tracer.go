// The tracer package provides tracing functionality.
package tracer

import (
	"context"

	"github.com/graph-gophers/gqlfmt/errors"
)

type FormatFinishFunc = func(*errors.QueryError)
type ParseFinishFunc = func(*errors.QueryError)

// Tracer is notified once per gqlfmt.FormatQuery call.
type Tracer interface {
	TraceFormat(ctx context.Context, queryString string) (context.Context, FormatFinishFunc)
}

// ParseTracer is implemented by tracers that also want a span around parsing.
type ParseTracer interface {
	TraceParse(ctx context.Context) ParseFinishFunc
}
