package calculator

import "errors"

// ErrorMarker is shown on the display whenever an operation fails
const ErrorMarker = "-E-"

var (
	ErrInvalidKey     = errors.New("invalid key")
	ErrInvalidOperand = errors.New("invalid operand")
	ErrDivideByZero   = errors.New("division by zero")
	ErrDomain         = errors.New("argument outside function domain")
	ErrOverflow       = errors.New("result does not fit the display")
	ErrUnroundable    = errors.New("decimal separator falls on the display boundary")
)
