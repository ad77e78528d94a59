package calculator

import "fmt"

func (e *Engine) pressMemory(op MemoryOp) {
	switch op {
	case MemoryStore:
		if e.regs.second != "" {
			e.regs.memory = e.regs.second
		} else {
			e.regs.memory = e.regs.firstOrZero()
		}
	case MemoryRecall:
		if e.regs.memory == "" {
			e.regs.display = zero
			return
		}
		*e.regs.active() = e.regs.memory
		e.regs.display = e.regs.memory
	default:
		e.fail(fmt.Errorf("%w: %q", ErrInvalidKey, rune(op)))
	}
}
