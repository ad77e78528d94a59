package calculator

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Numeral is numeric display text split into sign, integer digits and
// fraction digits. Integer may be empty (",5") and so may the whole value
// ("" or "-" while an operand is still being typed).
type Numeral struct {
	Negative     bool
	Integer      string
	Fraction     string
	HasSeparator bool
}

// ParseNumeral splits numeric text into its parts. Text with anything other
// than an optional leading minus, digits and at most one separator is
// rejected.
func ParseNumeral(text string) (Numeral, error) {
	var n Numeral
	rest := text
	if strings.HasPrefix(rest, "-") {
		n.Negative = true
		rest = rest[1:]
	}

	integer, fraction, found := strings.Cut(rest, string(Separator))
	if !onlyDigits(integer) || !onlyDigits(fraction) {
		return Numeral{}, fmt.Errorf("%w: %q", ErrInvalidOperand, text)
	}

	n.Integer = integer
	n.Fraction = fraction
	n.HasSeparator = found
	return n, nil
}

func onlyDigits(s string) bool {
	for _, r := range s {
		if !isDigit(r) {
			return false
		}
	}
	return true
}

// String returns the display text of the numeral
func (n Numeral) String() string {
	var b strings.Builder
	if n.Negative {
		b.WriteByte('-')
	}
	b.WriteString(n.Integer)
	if n.HasSeparator {
		b.WriteRune(Separator)
		b.WriteString(n.Fraction)
	}
	return b.String()
}

// Len is the number of display characters, sign and separator included
func (n Numeral) Len() int {
	return len(n.String())
}

// SeparatorIndex is the display position of the separator, or -1
func (n Numeral) SeparatorIndex() int {
	if !n.HasSeparator {
		return -1
	}
	index := len(n.Integer)
	if n.Negative {
		index++
	}
	return index
}

// IntegerDigits is the number of digits before the separator
func (n Numeral) IntegerDigits() int {
	return len(n.Integer)
}

// Negate flips the sign
func (n Numeral) Negate() Numeral {
	n.Negative = !n.Negative
	return n
}

// Truncate keeps the first length display characters. A separator left with
// no fraction digits after it is dropped.
func (n Numeral) Truncate(length int) Numeral {
	text := n.String()
	if length >= len(text) {
		return n
	}
	// The prefix of a valid numeral is itself valid.
	truncated, _ := ParseNumeral(text[:length])
	if truncated.HasSeparator && truncated.Fraction == "" {
		truncated.HasSeparator = false
	}
	return truncated
}

// Decimal converts the numeral to a decimal value
func (n Numeral) Decimal() (decimal.Decimal, error) {
	d, err := decimal.NewFromString(n.plainText())
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %v", ErrInvalidOperand, err)
	}
	return d, nil
}

// Float64 converts the numeral to a float for arithmetic
func (n Numeral) Float64() (float64, error) {
	v, err := strconv.ParseFloat(n.plainText(), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidOperand, err)
	}
	return v, nil
}

// plainText renders the numeral with a dot separator and no empty parts
func (n Numeral) plainText() string {
	integer := n.Integer
	if integer == "" {
		integer = "0"
	}
	text := integer
	if n.Fraction != "" {
		text += "." + n.Fraction
	}
	if n.Negative {
		text = "-" + text
	}
	return text
}

// numeralFromPlain parses dot-separated text produced by strconv or decimal
func numeralFromPlain(text string) (Numeral, error) {
	return ParseNumeral(strings.Replace(text, ".", string(Separator), 1))
}
