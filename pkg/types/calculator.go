package types

// Calculator defines the keypad-driven calculator engine interface
type Calculator interface {
	Press(key rune)
	Display() string
	Snapshot() Snapshot
}

// Snapshot is a read-only copy of a calculator's registers
type Snapshot struct {
	FirstOperand  string `json:"first_operand"`
	SecondOperand string `json:"second_operand"`
	Pending       string `json:"pending_operation"`
	Memory        string `json:"memory"`
	Display       string `json:"display"`
}
