package cli

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var cliTracer = otel.Tracer("fantasy-hockey/internal/interfaces/cli")

// startCommandSpan opens the root span of one invocation; usecase spans hang
// off it.
func startCommandSpan(ctx context.Context, verb string) (context.Context, trace.Span) {
	return cliTracer.Start(ctx, "cli.Command."+verb, trace.WithSpanKind(trace.SpanKindInternal))
}

func recordSpanError(span trace.Span, err error) {
	if err == nil {
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
