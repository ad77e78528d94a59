package calculator

import "github.com/averycrespi/calcpad/pkg/types"

const zero = "0"

// registers is the calculator's register bank. Empty strings mean unset.
type registers struct {
	first   string
	second  string
	pending Operator
	memory  string
	display string
}

func newRegisters() registers {
	return registers{display: zero}
}

// firstOrZero is the first operand with an unset register reading as zero
func (r *registers) firstOrZero() string {
	if r.first == "" {
		return zero
	}
	return r.first
}

// entryTargetsFirst reports whether typed digits go to the first operand
func (r *registers) entryTargetsFirst() bool {
	return r.first == "" || r.pending == NoOperator
}

// active is the operand that memory operations read and write
func (r *registers) active() *string {
	if r.second != "" {
		return &r.second
	}
	return &r.first
}

// clearLast clears the most recently filled register
func (r *registers) clearLast() {
	switch {
	case r.second != "":
		r.second = ""
	case r.pending != NoOperator:
		r.pending = NoOperator
	default:
		r.first = ""
	}
	r.display = zero
}

// reset clears everything but memory
func (r *registers) reset() {
	r.first = ""
	r.second = ""
	r.pending = NoOperator
	r.display = zero
}

func (r *registers) snapshot() types.Snapshot {
	return types.Snapshot{
		FirstOperand:  r.first,
		SecondOperand: r.second,
		Pending:       r.pending.String(),
		Memory:        r.memory,
		Display:       r.display,
	}
}
