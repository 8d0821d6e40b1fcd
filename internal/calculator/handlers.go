package calculator

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/trace"

	"chi-calculator/internal/handlers"
	"chi-calculator/internal/observability"
)

// Handler serves one Calculator over HTTP.
type Handler struct {
	calc *Calculator
}

func NewHandler(calc *Calculator) *Handler {
	return &Handler{calc: calc}
}

// ---------------------------------------------------------------------------
// Readable state
// ---------------------------------------------------------------------------

// State handles GET /calculator/state
func (h *Handler) State(w http.ResponseWriter, r *http.Request) {
	handlers.WriteJSON(w, http.StatusOK, h.calc.Snapshot())
}

// ---------------------------------------------------------------------------
// Actions
// ---------------------------------------------------------------------------

// Digit handles POST /calculator/digit/{digit}
func (h *Handler) Digit(w http.ResponseWriter, r *http.Request) {
	a, err := DigitAction(urlParam(r, "digit"))
	if err != nil {
		h.fail(w, r, ActionDigit.String(), "invalid digit", err)
		return
	}
	h.apply(w, r, a)
}

// Operator handles POST /calculator/operator/{op}. The operator is a name
// (add, subtract, multiply, divide) or a glyph.
func (h *Handler) Operator(w http.ResponseWriter, r *http.Request) {
	a, err := OperatorAction(urlParam(r, "op"))
	if err != nil {
		h.fail(w, r, ActionOperator.String(), "unknown operator", err)
		return
	}
	h.apply(w, r, a)
}

// Press returns a handler for an action that takes no argument.
func (h *Handler) Press(kind ActionKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.apply(w, r, Press(kind))
	}
}

// Keys handles POST /calculator/keys. The whole key sequence is applied under one lock.
// Every key is validated before any is applied.
func (h *Handler) Keys(w http.ResponseWriter, r *http.Request) {
	const action = "keys"

	var req KeysRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.fail(w, r, action, "invalid request body", err)
		return
	}

	if len(req.Keys) == 0 {
		h.fail(w, r, action, "no keys provided", errors.New("keys array is empty"))
		return
	}

	actions, err := ActionsForKeys(req.Keys)
	if err != nil {
		h.fail(w, r, action, err.Error(), err)
		return
	}

	snap, err := h.calc.DoSequence(r.Context(), actions)
	if err != nil {
		h.fail(w, r, action, err.Error(), err)
		return
	}
	handlers.WriteJSON(w, http.StatusOK, snap)
}

func (h *Handler) apply(w http.ResponseWriter, r *http.Request, a Action) {
	snap, err := h.calc.Do(r.Context(), a)
	if err != nil {
		h.fail(w, r, a.Kind.String(), err.Error(), err)
		return
	}
	handlers.WriteJSON(w, http.StatusOK, snap)
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, action, msg string, err error) {
	ctx := r.Context()
	observability.RecordError(ctx, trace.SpanFromContext(ctx), observability.LoggerWithTrace(ctx),
		errorCounter, action, msg, err, http.StatusBadRequest, w)
}

func urlParam(r *http.Request, key string) string {
	raw := chi.URLParam(r, key)
	if v, err := url.PathUnescape(raw); err == nil {
		return v
	}
	return raw
}
