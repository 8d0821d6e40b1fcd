package engine

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"
)

// ErrInvalidDigit is returned when a digit press is not in '0'..'9'.
var ErrInvalidDigit = errors.New("invalid digit")

// Phase names the state the machine is in.
type Phase int

const (
	// PhaseIdle: no operation pending.
	PhaseIdle Phase = iota
	// PhaseOperatorPending: an operator was pressed and the next digit starts
	// the second operand.
	PhaseOperatorPending
	// PhaseSecondOperand: the second operand is being typed.
	PhaseSecondOperand
)

func (p Phase) String() string {
	switch p {
	case PhaseOperatorPending:
		return "operator_pending"
	case PhaseSecondOperand:
		return "second_operand"
	default:
		return "idle"
	}
}

// phase is the tagged state of the machine. Only the non-idle variants carry
// a first operand and an operator.
type phase interface {
	kind() Phase
}

// idle carries whether the display holds a completed result, in which case
// the next digit or point starts a fresh entry.
type idle struct {
	result bool
}

type operatorPending struct {
	first float64
	op    Operator
}

type secondOperand struct {
	first float64
	op    Operator
}

func (idle) kind() Phase            { return PhaseIdle }
func (operatorPending) kind() Phase { return PhaseOperatorPending }
func (secondOperand) kind() Phase   { return PhaseSecondOperand }

var trailingOperator = regexp.MustCompile(`[+\-×÷]\s*$`)

// Machine is the left-to-right accumulator behind the keypad.
// It is not safe for concurrent use.
type Machine struct {
	display    string
	expression string
	state      phase
}

// NewMachine returns a machine showing "0".
func NewMachine() *Machine {
	return &Machine{display: "0", state: idle{}}
}

func (m *Machine) Display() string    { return m.display }
func (m *Machine) Expression() string { return m.expression }
func (m *Machine) Phase() Phase       { return m.state.kind() }

// PendingOperator returns the operator awaiting its second operand, if any.
func (m *Machine) PendingOperator() (Operator, bool) {
	switch s := m.state.(type) {
	case operatorPending:
		return s.op, true
	case secondOperand:
		return s.op, true
	}
	return OpNone, false
}

// FirstOperand returns the left-hand value of the pending operation, if any.
func (m *Machine) FirstOperand() (float64, bool) {
	switch s := m.state.(type) {
	case operatorPending:
		return s.first, true
	case secondOperand:
		return s.first, true
	}
	return 0, false
}

// PressDigit enters d. Right after an operator or a result it starts a new
// number; otherwise it extends the display, replacing a lone "0".
func (m *Machine) PressDigit(d rune) error {
	if d < '0' || d > '9' {
		return fmt.Errorf("%w: %q", ErrInvalidDigit, d)
	}

	switch s := m.state.(type) {
	case operatorPending:
		m.display = string(d)
		m.state = secondOperand(s)
		return nil
	case idle:
		if s.result {
			m.display = string(d)
			m.state = idle{}
			return nil
		}
	}

	if m.display == "0" {
		m.display = string(d)
	} else {
		m.display += string(d)
	}
	return nil
}

// PressDecimal starts "0." after an operator or a result, otherwise appends a
// point if the display has none.
func (m *Machine) PressDecimal() {
	switch s := m.state.(type) {
	case operatorPending:
		m.display = "0."
		m.state = secondOperand(s)
		return
	case idle:
		if s.result {
			m.display = "0."
			m.state = idle{}
			return
		}
	}
	if !strings.Contains(m.display, ".") {
		m.display += "."
	}
}

// PressOperator records op as the pending operator. When a second operand has
// been typed, the previous operation is evaluated first and its result
// becomes both the display and the new first operand. It returns that
// evaluation and true, or false when nothing was computed.
func (m *Machine) PressOperator(op Operator) (Evaluation, bool) {
	glyph := op.Glyph()
	if glyph == "" {
		return Evaluation{}, false
	}

	switch s := m.state.(type) {
	case operatorPending:
		if !trailingOperator.MatchString(m.expression) {
			panic(fmt.Sprintf("engine: expression %q has no trailing operator", m.expression))
		}
		m.expression = trailingOperator.ReplaceAllLiteralString(m.expression, glyph+" ")
		m.state = operatorPending{first: s.first, op: op}
		return Evaluation{}, false

	case secondOperand:
		second := ParseNumber(m.display)
		m.expression += m.display + " " + glyph + " "
		ev := Evaluation{Left: s.first, Right: second, Op: s.op, Result: Evaluate(s.first, second, s.op)}
		m.display = FormatNumber(ev.Result)
		m.state = operatorPending{first: ev.Result, op: op}
		return ev, true

	default:
		m.expression = m.display + " " + glyph + " "
		m.state = operatorPending{first: ParseNumber(m.display), op: op}
		return Evaluation{}, false
	}
}

// Equals completes the pending operation. It returns the history entry for
// the completed expression and the evaluation, or false when no second
// operand has been entered.
func (m *Machine) Equals() (string, Evaluation, bool) {
	s, ok := m.state.(secondOperand)
	if !ok {
		return "", Evaluation{}, false
	}

	second := ParseNumber(m.display)
	ev := Evaluation{Left: s.first, Right: second, Op: s.op, Result: Evaluate(s.first, second, s.op)}
	result := FormatNumber(ev.Result)

	var entry string
	if m.expression != "" {
		entry = m.expression + m.display + " = " + result
	} else {
		entry = FormatNumber(s.first) + " " + s.op.Glyph() + " " + FormatNumber(second) + " = " + result
	}

	m.display = result
	m.expression = ""
	m.state = idle{result: true}
	return entry, ev, true
}

// ClearAll resets the entry state. History lives elsewhere and is untouched.
func (m *Machine) ClearAll() {
	m.display = "0"
	m.expression = ""
	m.state = idle{}
}

// ToggleSign adds or removes a leading minus on the display text.
func (m *Machine) ToggleSign() {
	if m.display == "0" {
		return
	}
	if strings.HasPrefix(m.display, "-") {
		m.display = m.display[1:]
	} else {
		m.display = "-" + m.display
	}
}

// Percent divides the display by 100. An unparseable display is left alone.
func (m *Machine) Percent() {
	v := ParseNumber(m.display)
	if math.IsNaN(v) {
		return
	}
	m.display = FormatNumber(v / 100)
}
