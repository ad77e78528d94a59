package results

import (
	"fmt"
	"strings"
	"unicode"
)

// MaxKeySequenceLength bounds the number of keys accepted in one request
const MaxKeySequenceLength = 256

// KeySequence represents keys typed by a client, optionally spaced out for
// readability ("12 + 3 =")
type KeySequence string

// IsValid checks if the sequence can be pressed
func (k KeySequence) IsValid() bool {
	_, err := k.Parse()
	return err == nil
}

// String returns the sequence with whitespace removed
func (k KeySequence) String() string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, string(k))
}

// Parse returns the keys to press. Unrecognized keys are kept; the
// calculator reports them on its display.
func (k KeySequence) Parse() ([]rune, error) {
	keys := []rune(k.String())
	if len(keys) == 0 {
		return nil, fmt.Errorf("empty key sequence: %q", string(k))
	}
	if len(keys) > MaxKeySequenceLength {
		return nil, fmt.Errorf("key sequence too long, expected at most %d keys, got %d", MaxKeySequenceLength, len(keys))
	}
	return keys, nil
}
