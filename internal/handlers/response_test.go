package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"chi-calculator/internal/testutil"
)

func TestWriteErrorWritesStandardizedJSON(t *testing.T) {
	w := httptest.NewRecorder()

	WriteError(w, http.StatusBadRequest, "something went wrong")

	resp := w.Result()
	testutil.CheckResponseCode(t, http.StatusBadRequest, resp.StatusCode)

	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected Content-Type application/json, got %q", ct)
	}

	var body map[string]string
	testutil.DecodeJSONBody(t, resp.Body, &body)

	if got := body["error"]; got != "something went wrong" {
		t.Fatalf("expected error %q, got %q", "something went wrong", got)
	}

	if _, ok := body["request_id"]; ok {
		t.Fatal("did not expect request_id field in JSON body")
	}
}

func TestWriteJSON(t *testing.T) {
	w := httptest.NewRecorder()

	WriteJSON(w, http.StatusCreated, map[string]int{"n": 3})

	resp := w.Result()
	testutil.CheckResponseCode(t, http.StatusCreated, resp.StatusCode)

	var body map[string]int
	testutil.DecodeJSONBody(t, resp.Body, &body)
	if body["n"] != 3 {
		t.Fatalf("expected n=3, got %#v", body)
	}
}

func TestHealth(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := testutil.ExecuteRequest(r, http.HandlerFunc(Health))

	testutil.CheckResponseCode(t, http.StatusOK, w.Code)
	if body := w.Body.String(); body != "ok" {
		t.Fatalf("expected body %q, got %q", "ok", body)
	}
}
