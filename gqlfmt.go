// Package gqlfmt prints GraphQL query documents as canonical, indented text.
//
// Documents can be built by hand with package ast, parsed with ParseQuery, or
// converted from github.com/vektah/gqlparser/v2 with package gqlconv.
package gqlfmt

import (
	"context"

	"github.com/graph-gophers/gqlfmt/ast"
	"github.com/graph-gophers/gqlfmt/errors"
	"github.com/graph-gophers/gqlfmt/format"
	"github.com/graph-gophers/gqlfmt/log"
	"github.com/graph-gophers/gqlfmt/trace/noop"
	"github.com/graph-gophers/gqlfmt/trace/tracer"
)

// Style describes layout preferences of the printer.
type Style = format.Style

// DefaultStyle returns a Style with an indent width of two spaces.
func DefaultStyle() Style {
	return format.DefaultStyle()
}

// Format renders doc using style.
func Format(doc *ast.Document, style Style) string {
	return format.Document(doc, style)
}

// ToString renders doc using the default style.
func ToString(doc *ast.Document) string {
	return Format(doc, DefaultStyle())
}

// Opt is an option for FormatQuery.
type Opt func(*options)

type options struct {
	style        Style
	tracer       tracer.Tracer
	logger       log.Logger
	panicHandler errors.PanicHandler
}

// IndentWidth sets the number of spaces per nesting level. The default is 2.
func IndentWidth(n int) Opt {
	return func(o *options) {
		o.style.IndentWidth = n
	}
}

// Tracer is used to trace parsing and printing. The default is noop.Tracer.
func Tracer(t tracer.Tracer) Opt {
	return func(o *options) {
		o.tracer = t
	}
}

// Logger is used to log panics while printing. The default is log.DefaultLogger.
func Logger(logger log.Logger) Opt {
	return func(o *options) {
		o.logger = logger
	}
}

// PanicHandler is used to turn a panic while printing into the returned error.
// The default is errors.DefaultPanicHandler.
func PanicHandler(panicHandler errors.PanicHandler) Opt {
	return func(o *options) {
		o.panicHandler = panicHandler
	}
}

// FormatQuery parses queryString and renders it. Syntax errors are returned as
// *errors.QueryError.
func FormatQuery(ctx context.Context, queryString string, opts ...Opt) (string, error) {
	o := newOptions(opts)
	traceCtx, finish := o.tracer.TraceFormat(ctx, queryString)

	var parseFinish tracer.ParseFinishFunc = func(*errors.QueryError) {}
	if pt, ok := o.tracer.(tracer.ParseTracer); ok {
		parseFinish = pt.TraceParse(traceCtx)
	}
	doc, qErr := ParseQuery(queryString)
	parseFinish(qErr)
	if qErr != nil {
		finish(qErr)
		return "", qErr
	}

	out, qErr := o.render(traceCtx, doc)
	finish(qErr)
	if qErr != nil {
		return "", qErr
	}
	return out, nil
}

// FormatDocument renders doc like Format, but returns an error instead of
// panicking on a malformed tree, such as an argument without a value.
func FormatDocument(ctx context.Context, doc *ast.Document, opts ...Opt) (string, error) {
	o := newOptions(opts)
	out, qErr := o.render(ctx, doc)
	if qErr != nil {
		return "", qErr
	}
	return out, nil
}

func newOptions(opts []Opt) *options {
	o := &options{
		style:        DefaultStyle(),
		tracer:       noop.Tracer{},
		logger:       &log.DefaultLogger{},
		panicHandler: &errors.DefaultPanicHandler{},
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (o *options) render(ctx context.Context, doc *ast.Document) (out string, qErr *errors.QueryError) {
	defer func() {
		if value := recover(); value != nil {
			o.logger.LogPanic(ctx, value)
			qErr = o.panicHandler.MakePanicError(ctx, value)
		}
	}()
	return Format(doc, o.style), nil
}
