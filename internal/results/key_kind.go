package results

import "github.com/averycrespi/calcpad/internal/calculator"

// KeyKind represents the category of a calculator key as an enum
type KeyKind string

const (
	KeyKindNumber  KeyKind = "number"
	KeyKindUnary   KeyKind = "unary"
	KeyKindBinary  KeyKind = "binary"
	KeyKindMemory  KeyKind = "memory"
	KeyKindEquals  KeyKind = "equals"
	KeyKindClear   KeyKind = "clear"
	KeyKindOnOff   KeyKind = "on_off"
	KeyKindInvalid KeyKind = "invalid"
)

var keyKindMap = map[calculator.KeyKind]KeyKind{
	calculator.KindNumber: KeyKindNumber,
	calculator.KindUnary:  KeyKindUnary,
	calculator.KindBinary: KeyKindBinary,
	calculator.KindMemory: KeyKindMemory,
	calculator.KindEquals: KeyKindEquals,
	calculator.KindClear:  KeyKindClear,
	calculator.KindOnOff:  KeyKindOnOff,
}

// NewKeyKind returns the KeyKind for a given calculator key kind
func NewKeyKind(kind calculator.KeyKind) KeyKind {
	keyKind, ok := keyKindMap[kind]
	if !ok {
		return KeyKindInvalid
	}
	return keyKind
}

// KeyKindOf classifies a key, returning KeyKindInvalid for unrecognized keys
func KeyKindOf(key rune) KeyKind {
	kind, err := calculator.Classify(key)
	if err != nil {
		return KeyKindInvalid
	}
	return NewKeyKind(kind)
}
