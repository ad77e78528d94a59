package calculator

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

var (
	digitKeys  = []rune("0123456789")
	validKeys  = []rune("0123456789,+-*/MSKTQRIPG=CO")
	sampleKeys = append([]rune("0123456789+-*/MSKTQRIPG=CO"), 'x', '.')
)

// TestDigitEntry_Property proves that typing only digits shows those digits
// with leading zeros collapsed.
func TestDigitEntry_Property(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		digits := string(rapid.SliceOfN(rapid.SampledFrom(digitKeys), 1, 20).Draw(rt, "digits"))

		e := New()
		pressAll(e, digits)

		expected := strings.TrimLeft(digits, "0")
		if expected == "" {
			expected = "0"
		}
		assert.Equal(rt, expected, e.Display())
	})
}

// TestSignToggle_Property proves that changing sign twice restores the
// operand text.
func TestSignToggle_Property(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		integer := string(rapid.SliceOfN(rapid.SampledFrom(digitKeys), 1, 6).Draw(rt, "integer"))
		fraction := string(rapid.SliceOfN(rapid.SampledFrom(digitKeys), 0, 3).Draw(rt, "fraction"))
		keys := integer
		if fraction != "" {
			keys += "," + fraction
		}

		e := New()
		pressAll(e, keys)
		before := e.Snapshot().FirstOperand

		pressAll(e, "MM")

		assert.Equal(rt, before, e.Snapshot().FirstOperand)
	})
}

// TestDisplayIdempotent_Property proves that reading the display twice
// without pressing a key returns the same text.
func TestDisplayIdempotent_Property(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		keys := rapid.SliceOfN(rapid.SampledFrom(validKeys), 0, 30).Draw(rt, "keys")

		e := New()
		for _, key := range keys {
			e.Press(key)
		}

		first := e.Display()
		assert.Equal(rt, first, e.Display())
	})
}

// TestDisplayShape_Property proves that short key sequences without the
// separator always leave either the error marker or a well-formed number on
// the display.
func TestDisplayShape_Property(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		keys := rapid.SliceOfN(rapid.SampledFrom(sampleKeys), 0, 10).Draw(rt, "keys")

		e := New()
		for _, key := range keys {
			e.Press(key)
		}

		display := e.Display()
		if display == ErrorMarker {
			return
		}
		_, err := ParseNumeral(display)
		assert.NoError(rt, err, "display %q after %q", display, string(keys))
	})
}

// TestRound_Property proves that rounded text fits the display and never
// moves further from the input than the last kept digit.
func TestRound_Property(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		negative := rapid.Bool().Draw(rt, "negative")
		integer := string(rapid.SliceOfN(rapid.SampledFrom(digitKeys[1:]), 1, 1).Draw(rt, "lead")) +
			string(rapid.SliceOfN(rapid.SampledFrom(digitKeys), 0, 8).Draw(rt, "integer"))
		fraction := string(rapid.SliceOfN(rapid.SampledFrom(digitKeys), 1, 15).Draw(rt, "fraction"))

		text := integer + string(Separator) + fraction
		if negative {
			text = "-" + text
		}

		rounded, err := Round(text)
		if err != nil {
			// Only a carry out of ten integer digits may fail here.
			assert.ErrorIs(rt, err, ErrOverflow)
			return
		}

		limit := MaxUnsignedLength
		if negative {
			limit = MaxSignedLength
		}
		assert.LessOrEqual(rt, len(rounded), limit)

		in, err := ParseNumeral(text)
		assert.NoError(rt, err)
		out, err := ParseNumeral(rounded)
		assert.NoError(rt, err)

		inValue, _ := in.Decimal()
		outValue, _ := out.Decimal()
		places := len(out.Fraction)
		step := inValue.Sub(outValue).Abs().Shift(int32(places))
		assert.True(rt, step.LessThanOrEqual(decimal.NewFromInt(1)), "%s rounded to %s", text, rounded)
	})
}
