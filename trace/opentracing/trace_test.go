package opentracing_test

import (
	"context"
	"testing"

	opentracing "github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/mocktracer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graph-gophers/gqlfmt"
	gqlopentracing "github.com/graph-gophers/gqlfmt/trace/opentracing"
	"github.com/graph-gophers/gqlfmt/trace/tracer"
)

func TestInterfaceImplementation(t *testing.T) {
	var _ tracer.ParseTracer = &gqlopentracing.Tracer{}
	var _ tracer.Tracer = &gqlopentracing.Tracer{}
}

func TestTracerOption(t *testing.T) {
	mt := mocktracer.New()
	prev := opentracing.GlobalTracer()
	opentracing.SetGlobalTracer(mt)
	t.Cleanup(func() { opentracing.SetGlobalTracer(prev) })

	const query = "{ hero { name } }"
	_, err := gqlfmt.FormatQuery(context.Background(), query, gqlfmt.Tracer(gqlopentracing.Tracer{}))
	require.NoError(t, err)

	spans := mt.FinishedSpans()
	require.Len(t, spans, 2)
	assert.Equal(t, "Parse Query", spans[0].OperationName)
	assert.Equal(t, "GraphQL format", spans[1].OperationName)
	assert.Equal(t, query, spans[1].Tag("graphql.query"))
	assert.Equal(t, spans[1].SpanContext.SpanID, spans[0].ParentID)
}

func TestTracerSyntaxError(t *testing.T) {
	mt := mocktracer.New()
	prev := opentracing.GlobalTracer()
	opentracing.SetGlobalTracer(mt)
	t.Cleanup(func() { opentracing.SetGlobalTracer(prev) })

	_, err := gqlfmt.FormatQuery(context.Background(), "{ hero ", gqlfmt.Tracer(gqlopentracing.Tracer{}))
	require.Error(t, err)

	spans := mt.FinishedSpans()
	require.Len(t, spans, 2)
	for _, span := range spans {
		assert.Equal(t, true, span.Tag("error"))
		assert.NotEmpty(t, span.Tag("graphql.error"))
	}
}
