package fraction

import (
	"strconv"
	"strings"
)

// Parse parses "n/d" or a bare integer "n", both base 10. Only n may carry a
// sign. The result is reduced, so "2/4" parses to 1/2.
func Parse(s string) (Rational, error) {
	numText, denText, hasDen := strings.Cut(s, "/")

	num, err := strconv.ParseInt(numText, 10, 64)
	if err != nil {
		return Rational{}, &SyntaxError{Input: s, Err: err}
	}
	if !hasDen {
		return FromInt64(num), nil
	}

	if strings.HasPrefix(denText, "+") || strings.HasPrefix(denText, "-") {
		return Rational{}, &SyntaxError{Input: s}
	}
	den, err := strconv.ParseInt(denText, 10, 64)
	if err != nil {
		return Rational{}, &SyntaxError{Input: s, Err: err}
	}
	return newRational(num, den)
}

// MarshalText implements encoding.TextMarshaler.
func (r Rational) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Rational) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*r = v
	return nil
}
