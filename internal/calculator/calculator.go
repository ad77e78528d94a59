// Package calculator implements the key-driven state machine of a pocket
// calculator: operand entry, deferred binary operations, unary functions,
// a memory register and a fixed-width display.
//
// An Engine is not safe for concurrent use. Callers that share one must
// serialize Press and Display.
package calculator

import (
	"io"
	"log/slog"

	"github.com/averycrespi/calcpad/pkg/types"
)

var _ types.Calculator = &Engine{}

// Engine is a single calculator instance
type Engine struct {
	regs   registers
	logger *slog.Logger
}

// Option configures an Engine
type Option func(*Engine)

// WithLogger sets the logger used to report rejected keys and failed
// operations at debug level
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// New creates a calculator showing "0" with every register unset
func New(opts ...Option) *Engine {
	e := &Engine{
		regs:   newRegisters(),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Press feeds one key to the calculator. Errors are never returned; they
// replace the display with ErrorMarker.
func (e *Engine) Press(key rune) {
	kind, err := Classify(key)
	if err != nil {
		e.fail(err)
		return
	}

	switch kind {
	case KindNumber:
		e.pressNumber(key)
	case KindUnary:
		e.pressUnary(UnaryOp(key))
	case KindBinary:
		e.pressBinary(Operator(key))
	case KindMemory:
		e.pressMemory(MemoryOp(key))
	case KindEquals:
		e.pressEquals()
	case KindClear:
		e.regs.clearLast()
	case KindOnOff:
		e.regs.reset()
	}
}

// Display returns the normalized display text. The normalized text is kept,
// so repeated calls return the same value.
func (e *Engine) Display() string {
	e.regs.display = NormalizeDisplay(e.regs.display)
	return e.regs.display
}

// Snapshot returns a copy of the registers without normalizing the display
func (e *Engine) Snapshot() types.Snapshot {
	return e.regs.snapshot()
}

func (e *Engine) pressNumber(key rune) {
	display := e.regs.display
	if display == ErrorMarker {
		display = ""
	}
	display = collapseLeadingZeros(display)

	if e.regs.entryTargetsFirst() {
		e.regs.first += string(key)
	} else {
		e.regs.second += string(key)
	}
	e.regs.display = display + string(key)
}

func (e *Engine) pressEquals() {
	if e.regs.pending == NoOperator {
		e.regs.display = stripZeroFraction(e.regs.firstOrZero())
		return
	}
	if _, err := e.executeBinary(); err != nil {
		e.fail(err)
	}
}

// fail shows the error marker and leaves every other register as it is
func (e *Engine) fail(err error) {
	e.logger.Debug("Calculator operation failed", "error", err, "registers", e.regs.snapshot())
	e.regs.display = ErrorMarker
}
