package calculator

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"chi-calculator/internal/engine"
)

var (
	// ErrUnknownKey is returned by ActionForKey for keys with no binding.
	ErrUnknownKey = errors.New("unknown key")
	// ErrUnknownAction is returned by Do for an ActionKind it does not know.
	ErrUnknownAction = errors.New("unknown action")
)

// ActionKind enumerates the invocable actions of the calculator.
type ActionKind int

const (
	ActionDigit ActionKind = iota + 1
	ActionDecimal
	ActionOperator
	ActionEquals
	ActionClear
	ActionClearHistory
	ActionToggleSign
	ActionPercent
	ActionToggleTheme
	ActionToggleHistory
)

var actionNames = map[ActionKind]string{
	ActionDigit:         "digit",
	ActionDecimal:       "decimal",
	ActionOperator:      "operator",
	ActionEquals:        "equals",
	ActionClear:         "clear",
	ActionClearHistory:  "clear_history",
	ActionToggleSign:    "toggle_sign",
	ActionPercent:       "percent",
	ActionToggleTheme:   "toggle_theme",
	ActionToggleHistory: "toggle_history",
}

func (k ActionKind) String() string {
	if name, ok := actionNames[k]; ok {
		return name
	}
	return fmt.Sprintf("action(%d)", int(k))
}

// Action is one press on the calculator. Digit is set for ActionDigit and
// Operator for ActionOperator.
type Action struct {
	Kind     ActionKind
	Digit    rune
	Operator engine.Operator
}

// Press returns an action that takes no argument.
func Press(kind ActionKind) Action {
	return Action{Kind: kind}
}

// DigitAction parses a single decimal digit.
func DigitAction(s string) (Action, error) {
	r, size := utf8.DecodeRuneInString(s)
	if size != len(s) || r < '0' || r > '9' {
		return Action{}, fmt.Errorf("%w: %q", engine.ErrInvalidDigit, s)
	}
	return Action{Kind: ActionDigit, Digit: r}, nil
}

// OperatorAction parses an operator name or glyph.
func OperatorAction(s string) (Action, error) {
	op, err := engine.ParseOperator(s)
	if err != nil {
		return Action{}, err
	}
	return Action{Kind: ActionOperator, Operator: op}, nil
}

var keyBindings = map[string]Action{
	"+":      {Kind: ActionOperator, Operator: engine.OpAdd},
	"-":      {Kind: ActionOperator, Operator: engine.OpSubtract},
	"*":      {Kind: ActionOperator, Operator: engine.OpMultiply},
	"x":      {Kind: ActionOperator, Operator: engine.OpMultiply},
	"×":      {Kind: ActionOperator, Operator: engine.OpMultiply},
	"/":      {Kind: ActionOperator, Operator: engine.OpDivide},
	"÷":      {Kind: ActionOperator, Operator: engine.OpDivide},
	".":      {Kind: ActionDecimal},
	"=":      {Kind: ActionEquals},
	"enter":  {Kind: ActionEquals},
	"c":      {Kind: ActionClear},
	"esc":    {Kind: ActionClear},
	"ctrl+l": {Kind: ActionClearHistory},
	"s":      {Kind: ActionToggleSign},
	"n":      {Kind: ActionToggleSign},
	"%":      {Kind: ActionPercent},
	"t":      {Kind: ActionToggleTheme},
	"h":      {Kind: ActionToggleHistory},
	"tab":    {Kind: ActionToggleHistory},
}

// ActionForKey maps a keyboard key, named the way bubbletea names keys, to
// the action it triggers.
func ActionForKey(key string) (Action, error) {
	if a, err := DigitAction(key); err == nil {
		return a, nil
	}
	if a, ok := keyBindings[key]; ok {
		return a, nil
	}
	return Action{}, fmt.Errorf("%w: %q", ErrUnknownKey, key)
}

// ActionsForKeys maps every key or fails on the first unknown one.
func ActionsForKeys(keys []string) ([]Action, error) {
	actions := make([]Action, 0, len(keys))
	for i, key := range keys {
		a, err := ActionForKey(key)
		if err != nil {
			return nil, fmt.Errorf("key %d: %w", i, err)
		}
		actions = append(actions, a)
	}
	return actions, nil
}
