package slogobs

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/docsift/docsift/providers/observability"
)

func newTestObserver(level slog.Level) (*Observer, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: level}))
	return New(logger), &buf
}

func TestStartSpan_AttachesToContext(t *testing.T) {
	observer, _ := newTestObserver(slog.LevelDebug)

	ctx, span := observer.StartSpan(context.Background(), "extract.invoice")
	if span == nil {
		t.Fatal("StartSpan() returned nil span")
	}
	if observability.SpanFromContext(ctx) != span {
		t.Error("span not attached to the returned context")
	}
}

func TestSpanLifecycle(t *testing.T) {
	observer, buf := newTestObserver(slog.LevelDebug)

	_, span := observer.StartSpan(context.Background(), "extract.invoice",
		observability.String("llm.provider", "openai"),
	)
	span.SetAttributes(observability.Int("extraction.input_size", 1024))
	span.AddEvent("llm.request.start")
	span.SetStatus(observability.StatusOK, "")
	span.End()

	out := buf.String()
	for _, fragment := range []string{"Span started", "Span event", "Span ended", "extract.invoice", "llm.provider=openai", "extraction.input_size=1024", "status=ok"} {
		if !strings.Contains(out, fragment) {
			t.Errorf("log output is missing %q:\n%s", fragment, out)
		}
	}
}

func TestSpan_RecordError(t *testing.T) {
	observer, buf := newTestObserver(slog.LevelDebug)

	_, span := observer.StartSpan(context.Background(), "op")
	span.RecordError(errors.New("backend exploded"))
	span.End()

	out := buf.String()
	if !strings.Contains(out, "Span error") || !strings.Contains(out, "backend exploded") {
		t.Errorf("error not recorded:\n%s", out)
	}
}

// Span completion logs at info so it survives the default level; span start
// and events are debug-only noise.
func TestSpanEnd_VisibleAtInfoLevel(t *testing.T) {
	observer, buf := newTestObserver(slog.LevelInfo)

	_, span := observer.StartSpan(context.Background(), "op")
	span.AddEvent("something")
	span.End()

	out := buf.String()
	if strings.Contains(out, "Span started") || strings.Contains(out, "Span event") {
		t.Errorf("debug entries leaked at info level:\n%s", out)
	}
	if !strings.Contains(out, "Span ended") {
		t.Errorf("span end missing at info level:\n%s", out)
	}
}

func TestLoggerLevels(t *testing.T) {
	observer, buf := newTestObserver(slog.LevelDebug - 4)
	ctx := context.Background()

	observer.Trace(ctx, "trace message")
	observer.Debug(ctx, "debug message")
	observer.Info(ctx, "info message", observability.String("k", "v"))
	observer.Warn(ctx, "warn message")
	observer.Error(ctx, "error message")

	out := buf.String()
	for _, fragment := range []string{"trace message", "debug message", "info message", "warn message", "error message", "k=v"} {
		if !strings.Contains(out, fragment) {
			t.Errorf("log output is missing %q:\n%s", fragment, out)
		}
	}
}

func TestTrace_FilteredAtDebugLevel(t *testing.T) {
	observer, buf := newTestObserver(slog.LevelDebug)

	observer.Trace(context.Background(), "very verbose")
	if strings.Contains(buf.String(), "very verbose") {
		t.Error("trace output must be below debug level")
	}
}

func TestNew_NilLoggerFallsBack(t *testing.T) {
	if New(nil) == nil {
		t.Fatal("New(nil) returned nil")
	}
}
