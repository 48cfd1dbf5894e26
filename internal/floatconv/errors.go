package floatconv

import "errors"

// Ошибки разбора. Тексты фиксированы: их сверяют внешние потребители.
var (
	// ErrConversion is the generic failure: empty input, malformed literal,
	// or trailing bytes in strict mode.
	ErrConversion = errors.New("Floating point conversion error")

	// ErrUnexpectedEnd reports input that stops right after a sign or an
	// exponent marker.
	ErrUnexpectedEnd = errors.New("Unexpected end of input")

	// ErrRange reports a hexadecimal binary exponent too large to represent.
	ErrRange = errors.New("Range error")

	// errNoDigits: the decimal grammar matched no significand digits.
	errNoDigits = errors.New("no digits seen")

	// errNoHexDigits: the hexadecimal grammar matched no significand digits.
	errNoHexDigits = errors.New("No digits seen.")

	// errBadSpecial: a token starting like inf/infinity/nan did not finish.
	errBadSpecial = errors.New("error converting input to floating point")
)
