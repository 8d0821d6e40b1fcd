package observability

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"chi-calculator/internal/testutil"
)

func TestRecordErrorWritesStandardizedErrorResponse(t *testing.T) {
	ctx := ContextWithRequestID(context.Background(), "req-1")
	span := trace.SpanFromContext(ctx)
	core, logs := observer.New(zap.ErrorLevel)

	counter, err := otel.Meter("test").Int64Counter("test.errors.total")
	if err != nil {
		t.Fatalf("creating counter: %v", err)
	}

	w := httptest.NewRecorder()

	RecordError(
		ctx,
		span,
		zap.New(core),
		counter,
		"digit",
		"invalid digit",
		errors.New(`invalid digit: 'a'`),
		http.StatusBadRequest,
		w,
	)

	resp := w.Result()
	testutil.CheckResponseCode(t, http.StatusBadRequest, resp.StatusCode)

	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected Content-Type application/json, got %q", ct)
	}

	var body map[string]string
	testutil.DecodeJSONBody(t, resp.Body, &body)

	if got := body["error"]; got != "invalid digit" {
		t.Fatalf("expected error %q, got %q", "invalid digit", got)
	}

	if _, ok := body["request_id"]; ok {
		t.Fatal("did not expect request_id field in JSON body")
	}

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["action"] != "digit" || fields["request_id"] != "req-1" {
		t.Fatalf("unexpected log fields %#v", fields)
	}
}
