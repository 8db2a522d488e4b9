package telemetry

import (
	"bytes"
	"context"
	"log"
	"os"
	"strings"
	"testing"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestWarnRecordsSpanEvent(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	ctx, span := Tracer("test").Start(context.Background(), "load")
	Warn(ctx, "chunk %s: %s", "1,2", "bad label")
	span.End()

	if !strings.Contains(buf.String(), "Warning: chunk 1,2: bad label") {
		t.Errorf("log output = %q, want the warning", buf.String())
	}

	spans := recorder.Ended()
	if len(spans) != 1 {
		t.Fatalf("recorded %d spans, want 1", len(spans))
	}
	events := spans[0].Events()
	if len(events) != 1 || events[0].Name != "warning" {
		t.Fatalf("events = %v, want one warning", events)
	}
	attrs := events[0].Attributes
	if len(attrs) != 1 || attrs[0].Value.AsString() != "chunk 1,2: bad label" {
		t.Errorf("event attributes = %v", attrs)
	}
}

func TestWarnWithoutSpan(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	Warn(context.Background(), "no span %d", 1)
	if !strings.Contains(buf.String(), "Warning: no span 1") {
		t.Errorf("log output = %q, want the warning", buf.String())
	}
}

func TestSetupWithoutEndpoint(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	t.Setenv("OTEL_EXPORTER_OTLP_TRACES_ENDPOINT", "")

	shutdown, err := Setup(context.Background())
	if err != nil {
		t.Fatalf("Setup() error = %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Errorf("shutdown() error = %v", err)
	}
}
