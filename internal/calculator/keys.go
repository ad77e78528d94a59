package calculator

import (
	"fmt"
	"strings"
)

// KeyKind is the category a key press falls into
type KeyKind int

const (
	KindNumber KeyKind = iota
	KindUnary
	KindBinary
	KindMemory
	KindEquals
	KindClear
	KindOnOff
)

func (k KeyKind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindUnary:
		return "unary"
	case KindBinary:
		return "binary"
	case KindMemory:
		return "memory"
	case KindEquals:
		return "equals"
	case KindClear:
		return "clear"
	case KindOnOff:
		return "on_off"
	default:
		return "unknown"
	}
}

// Separator is the decimal separator used in operands and on the display
const Separator = ','

// Control keys
const (
	KeyEquals = '='
	KeyClear  = 'C'
	KeyOnOff  = 'O'
)

// Operator is a binary operation awaiting its second operand
type Operator rune

const (
	NoOperator Operator = 0
	OpAdd      Operator = '+'
	OpSubtract Operator = '-'
	OpMultiply Operator = '*'
	OpDivide   Operator = '/'
)

func (op Operator) String() string {
	if op == NoOperator {
		return ""
	}
	return string(op)
}

// UnaryOp is a single-operand function key
type UnaryOp rune

const (
	SignChange UnaryOp = 'M'
	Sine       UnaryOp = 'S'
	Cosine     UnaryOp = 'K'
	Tangent    UnaryOp = 'T'
	Square     UnaryOp = 'Q'
	SquareRoot UnaryOp = 'R'
	Reciprocal UnaryOp = 'I'
)

// MemoryOp is a memory register key
type MemoryOp rune

const (
	MemoryStore  MemoryOp = 'P'
	MemoryRecall MemoryOp = 'G'
)

// KeyInfo describes one recognized key
type KeyInfo struct {
	Key         rune
	Kind        KeyKind
	Description string
}

var keyTable = []KeyInfo{
	{'0', KindNumber, "digit 0"},
	{'1', KindNumber, "digit 1"},
	{'2', KindNumber, "digit 2"},
	{'3', KindNumber, "digit 3"},
	{'4', KindNumber, "digit 4"},
	{'5', KindNumber, "digit 5"},
	{'6', KindNumber, "digit 6"},
	{'7', KindNumber, "digit 7"},
	{'8', KindNumber, "digit 8"},
	{'9', KindNumber, "digit 9"},
	{Separator, KindNumber, "decimal separator"},
	{rune(SignChange), KindUnary, "change sign"},
	{rune(Sine), KindUnary, "sine (radians)"},
	{rune(Cosine), KindUnary, "cosine (radians)"},
	{rune(Tangent), KindUnary, "tangent (radians)"},
	{rune(Square), KindUnary, "square"},
	{rune(SquareRoot), KindUnary, "square root"},
	{rune(Reciprocal), KindUnary, "reciprocal"},
	{rune(OpAdd), KindBinary, "add"},
	{rune(OpSubtract), KindBinary, "subtract"},
	{rune(OpMultiply), KindBinary, "multiply"},
	{rune(OpDivide), KindBinary, "divide"},
	{KeyEquals, KindEquals, "execute pending operation"},
	{KeyClear, KindClear, "clear last register"},
	{KeyOnOff, KindOnOff, "reset calculator"},
	{rune(MemoryStore), KindMemory, "store to memory"},
	{rune(MemoryRecall), KindMemory, "recall from memory"},
}

// Keys returns every recognized key in classification order
func Keys() []KeyInfo {
	keys := make([]KeyInfo, len(keyTable))
	copy(keys, keyTable)
	return keys
}

// Classify returns the kind of the given key, or ErrInvalidKey
func Classify(key rune) (KeyKind, error) {
	switch {
	case isDigit(key) || key == Separator:
		return KindNumber, nil
	case isUnary(key):
		return KindUnary, nil
	case isBinary(key):
		return KindBinary, nil
	case key == KeyEquals:
		return KindEquals, nil
	case key == KeyClear:
		return KindClear, nil
	case key == KeyOnOff:
		return KindOnOff, nil
	case key == rune(MemoryStore), key == rune(MemoryRecall):
		return KindMemory, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
}

func isDigit(key rune) bool {
	return key >= '0' && key <= '9'
}

func isUnary(key rune) bool {
	return strings.ContainsRune("MSKTQRI", key)
}

func isBinary(key rune) bool {
	return strings.ContainsRune("+-*/", key)
}
