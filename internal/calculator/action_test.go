package calculator

import (
	"errors"
	"testing"

	"chi-calculator/internal/engine"
)

func TestActionForKey(t *testing.T) {
	tests := []struct {
		key  string
		want Action
	}{
		{key: "7", want: Action{Kind: ActionDigit, Digit: '7'}},
		{key: "+", want: Action{Kind: ActionOperator, Operator: engine.OpAdd}},
		{key: "-", want: Action{Kind: ActionOperator, Operator: engine.OpSubtract}},
		{key: "*", want: Action{Kind: ActionOperator, Operator: engine.OpMultiply}},
		{key: "÷", want: Action{Kind: ActionOperator, Operator: engine.OpDivide}},
		{key: ".", want: Action{Kind: ActionDecimal}},
		{key: "enter", want: Action{Kind: ActionEquals}},
		{key: "esc", want: Action{Kind: ActionClear}},
		{key: "ctrl+l", want: Action{Kind: ActionClearHistory}},
		{key: "n", want: Action{Kind: ActionToggleSign}},
		{key: "%", want: Action{Kind: ActionPercent}},
		{key: "t", want: Action{Kind: ActionToggleTheme}},
		{key: "tab", want: Action{Kind: ActionToggleHistory}},
	}

	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			got, err := ActionForKey(tc.key)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %+v, got %+v", tc.want, got)
			}
		})
	}
}

func TestActionForKeyRejectsUnbound(t *testing.T) {
	for _, key := range []string{"add", "q", "12", ""} {
		if _, err := ActionForKey(key); !errors.Is(err, ErrUnknownKey) {
			t.Fatalf("key %q: expected ErrUnknownKey, got %v", key, err)
		}
	}
}

func TestActionsForKeysFailsWithoutPartialResult(t *testing.T) {
	actions, err := ActionsForKeys([]string{"1", "+", "?"})
	if !errors.Is(err, ErrUnknownKey) {
		t.Fatalf("expected ErrUnknownKey, got %v", err)
	}
	if actions != nil {
		t.Fatalf("expected no actions, got %v", actions)
	}
}

func TestDigitAction(t *testing.T) {
	if _, err := DigitAction("5"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, s := range []string{"", "55", "a", "٣"} {
		if _, err := DigitAction(s); !errors.Is(err, engine.ErrInvalidDigit) {
			t.Fatalf("%q: expected ErrInvalidDigit, got %v", s, err)
		}
	}
}

func TestActionKindString(t *testing.T) {
	if got := ActionClearHistory.String(); got != "clear_history" {
		t.Fatalf("expected %q, got %q", "clear_history", got)
	}
	if got := ActionKind(42).String(); got != "action(42)" {
		t.Fatalf("expected %q, got %q", "action(42)", got)
	}
}
