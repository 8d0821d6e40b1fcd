package engine

import "math"

// Evaluate applies op to a and b. Division by zero yields NaN rather than an
// error, and an unknown operator returns b unchanged.
func Evaluate(a, b float64, op Operator) float64 {
	switch op {
	case OpAdd:
		return a + b
	case OpSubtract:
		return a - b
	case OpMultiply:
		return a * b
	case OpDivide:
		if b == 0 {
			return math.NaN()
		}
		return a / b
	default:
		return b
	}
}

// Evaluation describes one binary computation performed by the machine.
type Evaluation struct {
	Left   float64
	Right  float64
	Op     Operator
	Result float64
}

// Invalid reports whether the result is the NaN sentinel.
func (e Evaluation) Invalid() bool {
	return math.IsNaN(e.Result)
}
