package calculator

import (
	"fmt"
	"math"
)

// apply evaluates the function at x. SignChange works on text and is
// handled by toggleSign instead.
func (u UnaryOp) apply(x float64) (float64, error) {
	switch u {
	case Sine:
		return math.Sin(x), nil
	case Cosine:
		return math.Cos(x), nil
	case Tangent:
		return math.Tan(x), nil
	case Square:
		return x * x, nil
	case SquareRoot:
		if x < 0 {
			return 0, fmt.Errorf("%w: square root of %v", ErrDomain, x)
		}
		return math.Sqrt(x), nil
	case Reciprocal:
		if x == 0 {
			return 0, fmt.Errorf("%w: reciprocal of zero", ErrDivideByZero)
		}
		return 1 / x, nil
	default:
		return 0, fmt.Errorf("unknown unary operation %q", rune(u))
	}
}

func (e *Engine) pressUnary(u UnaryOp) {
	if u == SignChange {
		e.changeSign()
		return
	}

	result, err := e.executeUnary(u)
	if err != nil {
		e.fail(err)
		return
	}

	switch {
	case e.regs.pending == NoOperator:
		*e.regs.active() = result
	case e.regs.second != "":
		e.regs.second = result
	}
	e.regs.display = result
}

func (e *Engine) executeUnary(u UnaryOp) (string, error) {
	operand := e.regs.firstOrZero()
	if e.regs.pending != NoOperator && e.regs.second != "" {
		operand = e.regs.second
	}

	x, err := parseOperand(operand)
	if err != nil {
		return "", err
	}
	value, err := u.apply(x)
	if err != nil {
		return "", err
	}
	text, err := formatResult(value)
	if err != nil {
		return "", err
	}
	return Round(text)
}

// changeSign toggles the operand being entered. When rounding fails the
// register is left holding the error marker.
func (e *Engine) changeSign() {
	target := &e.regs.second
	if e.regs.pending == NoOperator && e.regs.second == "" {
		e.regs.first = e.regs.firstOrZero()
		target = &e.regs.first
	}
	if *target == ErrorMarker {
		e.fail(fmt.Errorf("%w: %s", ErrInvalidOperand, ErrorMarker))
		return
	}

	result, err := Round(toggleSign(*target))
	if err != nil {
		*target = ErrorMarker
		e.fail(err)
		return
	}
	*target = result
	e.regs.display = result
}
