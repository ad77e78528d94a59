package calculator

import (
	"fmt"
	"math"
)

// apply computes a op b
func (op Operator) apply(a, b float64) (float64, error) {
	var result float64
	switch op {
	case OpAdd:
		result = a + b
	case OpSubtract:
		result = a - b
	case OpMultiply:
		result = a * b
	case OpDivide:
		result = a / b
		if math.IsInf(result, 0) || math.IsNaN(result) {
			return 0, fmt.Errorf("%w: %v / %v", ErrDivideByZero, a, b)
		}
	default:
		return 0, fmt.Errorf("no pending operation")
	}
	return result, nil
}

// pressBinary records op as the pending operation, first executing the
// previous one when both of its operands are present
func (e *Engine) pressBinary(op Operator) {
	if e.regs.first == "" {
		e.regs.first = zero
	}

	if e.regs.second != "" && e.regs.pending != NoOperator {
		if result, err := e.executeBinary(); err != nil {
			e.fail(err)
		} else {
			e.regs.first = result
		}
	}

	e.regs.pending = op
}

// executeBinary runs the pending operation. A missing second operand repeats
// the first. On success the result is displayed, the pending operation and
// second operand are cleared and the rounded result is returned.
func (e *Engine) executeBinary() (string, error) {
	a, err := parseOperand(e.regs.first)
	if err != nil {
		return "", err
	}
	b := a
	if e.regs.second != "" {
		if b, err = parseOperand(e.regs.second); err != nil {
			return "", err
		}
	}

	value, err := e.regs.pending.apply(a, b)
	if err != nil {
		return "", err
	}

	text, err := formatResult(value)
	if err != nil {
		return "", err
	}
	result, err := Round(text)
	if err != nil {
		return "", err
	}

	e.regs.display = result
	e.regs.pending = NoOperator
	e.regs.second = ""
	return result, nil
}
