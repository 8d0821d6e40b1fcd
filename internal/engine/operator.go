package engine

import (
	"errors"
	"fmt"
)

// ErrUnknownOperator is returned when an operator name or glyph is not recognised.
var ErrUnknownOperator = errors.New("unknown operator")

// Operator is one of the four binary operations the keypad offers.
type Operator int

const (
	OpNone Operator = iota
	OpAdd
	OpSubtract
	OpMultiply
	OpDivide
)

// Glyph returns the symbol shown in expression text.
func (o Operator) Glyph() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSubtract:
		return "-"
	case OpMultiply:
		return "×"
	case OpDivide:
		return "÷"
	default:
		return ""
	}
}

func (o Operator) String() string {
	switch o {
	case OpAdd:
		return "add"
	case OpSubtract:
		return "subtract"
	case OpMultiply:
		return "multiply"
	case OpDivide:
		return "divide"
	default:
		return "none"
	}
}

// ParseOperator accepts either the operation name ("add") or a glyph ("+").
// "*", "x", "/" are accepted as keyboard aliases for × and ÷.
func ParseOperator(s string) (Operator, error) {
	switch s {
	case "add", "+":
		return OpAdd, nil
	case "subtract", "-":
		return OpSubtract, nil
	case "multiply", "×", "*", "x":
		return OpMultiply, nil
	case "divide", "÷", "/":
		return OpDivide, nil
	}
	return OpNone, fmt.Errorf("%w: %q", ErrUnknownOperator, s)
}
