package calculator

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Display capacity
const (
	MaxDigits         = 10
	MaxUnsignedLength = 11
	MaxSignedLength   = 12

	roundingDigit     = '5'
	significantDigits = 15
)

var (
	leadingZeros = regexp.MustCompile(`^0+`)
	zeroFraction = regexp.MustCompile(string(Separator) + `0+$`)
)

// Round fits numeric text to the display. Text that already fits is returned
// unchanged.
func Round(text string) (string, error) {
	negative := strings.HasPrefix(text, "-")
	if strings.ContainsRune(text, Separator) {
		return roundFraction(text, allowedLength(negative, true))
	}
	return roundInteger(text, allowedLength(negative, false))
}

func allowedLength(negative, fractional bool) int {
	length := MaxUnsignedLength
	if negative {
		length = MaxSignedLength
	}
	if !fractional {
		length--
	}
	return length
}

func roundFraction(text string, allowed int) (string, error) {
	if len(text) <= allowed {
		return text, nil
	}

	n, err := ParseNumeral(text)
	if err != nil {
		return "", err
	}

	separator := n.SeparatorIndex()
	switch {
	case separator == allowed:
		return "", fmt.Errorf("%w: %q", ErrUnroundable, text)
	case separator > allowed:
		return "", fmt.Errorf("%w: %q", ErrOverflow, text)
	}

	places := allowed - separator - 1
	if n.Fraction[places] < roundingDigit {
		return n.Truncate(allowed).String(), nil
	}

	d, err := n.Decimal()
	if err != nil {
		return "", err
	}
	// Midpoints round to even. Trailing zeros are kept.
	rounded, err := numeralFromPlain(d.StringFixedBank(int32(places)))
	if err != nil {
		return "", err
	}
	rounded = rounded.Truncate(allowed)
	if rounded.IntegerDigits() > MaxDigits {
		return "", fmt.Errorf("%w: %q", ErrOverflow, text)
	}
	return rounded.String(), nil
}

func roundInteger(text string, allowed int) (string, error) {
	if len(text) <= allowed {
		return text, nil
	}

	n, err := ParseNumeral(text)
	if err != nil {
		return "", err
	}

	truncated := n.Truncate(allowed)
	if text[allowed] < roundingDigit {
		return truncated.String(), nil
	}

	d, err := truncated.Decimal()
	if err != nil {
		return "", err
	}
	if n.Negative {
		d = d.Sub(decimal.NewFromInt(1))
	} else {
		d = d.Add(decimal.NewFromInt(1))
	}

	carried, err := numeralFromPlain(d.String())
	if err != nil {
		return "", err
	}
	if carried.IntegerDigits() > MaxDigits {
		return "", fmt.Errorf("%w: %q", ErrOverflow, text)
	}
	return carried.String(), nil
}

// NormalizeDisplay collapses leading zeros, drops an all-zero fraction and
// turns negative zero into zero
func NormalizeDisplay(text string) string {
	text = collapseLeadingZeros(text)
	text = stripZeroFraction(text)
	if text == "-0" {
		text = "0"
	}
	return text
}

// collapseLeadingZeros turns a run of leading zeros into a single zero, and
// drops that zero too unless a fraction follows it
func collapseLeadingZeros(text string) string {
	text = leadingZeros.ReplaceAllString(text, "0")
	if len(text) > 1 && text[0] == '0' && !strings.ContainsRune(text, Separator) {
		text = text[1:]
	}
	return text
}

func stripZeroFraction(text string) string {
	return zeroFraction.ReplaceAllString(text, "")
}

// formatResult renders a computed value as display text, with at most 15
// significant digits and never in exponent form
func formatResult(v float64) (string, error) {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return "", fmt.Errorf("%w: %v", ErrOverflow, v)
	}

	// Round trip through 'g' to drop binary noise such as 0.30000000000000004.
	v, err := strconv.ParseFloat(strconv.FormatFloat(v, 'g', significantDigits, 64), 64)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrOverflow, err)
	}

	n, err := numeralFromPlain(strconv.FormatFloat(v, 'f', -1, 64))
	if err != nil {
		return "", err
	}
	if n.IntegerDigits() > MaxDigits {
		return "", fmt.Errorf("%w: %s", ErrOverflow, n)
	}
	return n.String(), nil
}

// parseOperand reads an operand register. Empty text and a lone minus read
// as zero.
func parseOperand(text string) (float64, error) {
	if text == "" || text == "-" {
		return 0, nil
	}
	n, err := ParseNumeral(text)
	if err != nil {
		return 0, err
	}
	return n.Float64()
}

// toggleSign strips a leading minus or prepends one. The text is not
// validated; a register may hold partial entry such as "" or ",".
func toggleSign(text string) string {
	if strings.HasPrefix(text, "-") {
		return text[1:]
	}
	return "-" + text
}
