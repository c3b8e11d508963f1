package floats

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// Fraction is a relative tolerance expressed as a fraction of the
// compared operands' magnitude, conventionally in the range [0, 1].
//
// The range is not enforced.
// A Fraction greater than 1 produces an extremely loose comparison;
// a negative Fraction produces a comparison that no pair of operands
// can satisfy, since neither an absolute difference nor a magnitude
// is ever below a negative bound.
type Fraction float64

// Precision is an absolute tolerance, conventionally non-negative.
//
// The range is not enforced.
// A negative Precision produces a comparison that no pair of operands
// can satisfy, since an absolute difference is never negative.
type Precision float64

// DefaultFraction is the relative tolerance used by [EqApproximate]
// and [NeqApproximate]: one part per million.
const DefaultFraction Fraction = 1e-6

// Parse interprets the leading numeric prefix of s as a float64.
//
// Leading whitespace is skipped and trailing non-numeric content is
// ignored, so "  1.2 ??" parses to 1.2.
// The formal EBNF grammar for the scanned prefix is as follows:
//
//	sign     ::= '+' | '-'
//	digits   ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	mantissa ::= digits '.' digits | '.' digits | digits '.' | digits
//	exponent ::= ('e' | 'E') [sign] digits
//	number   ::= [sign] mantissa [exponent]
//
// The textual special values "inf", "infinity", and "nan" (in any
// case, optionally signed) are scanned as well, but they never make
// it into a result: Parse reports false whenever the scanned value is
// not finite, including literals such as "1e999" that overflow to an
// infinity.
// Literals that underflow, such as "1e-999", flush toward zero and
// are reported as present.
//
// Parse reports false:
//   - if s contains no valid numeric prefix.
//   - if the scanned value is NaN or an infinity.
//
// The two causes are not distinguished, and Parse never panics.
func Parse(s string) (float64, bool) {
	start := 0
	for start < len(s) && isSpace(s[start]) {
		start++
	}
	width := scanFloat(s[start:])
	if width == 0 {
		return 0, false
	}
	f, err := strconv.ParseFloat(s[start:start+width], 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	// Out-of-range literals saturate to an infinity or flush toward
	// zero; the finiteness check decides which survive.
	if !IsFinite(f) {
		return 0, false
	}
	return f, true
}

// scanFloat returns the length of the longest prefix of s that forms
// a valid floating-point literal, or 0 if there is none.
func scanFloat(s string) int {
	pos := 0
	if pos < len(s) && (s[pos] == '+' || s[pos] == '-') {
		pos++
	}
	if n := scanSpecial(s[pos:]); n > 0 {
		return pos + n
	}
	digits := 0
	for pos < len(s) && isDigit(s[pos]) {
		pos++
		digits++
	}
	if pos < len(s) && s[pos] == '.' {
		pos++
		for pos < len(s) && isDigit(s[pos]) {
			pos++
			digits++
		}
	}
	if digits == 0 {
		return 0
	}
	// The exponent marker is consumed only if at least one exponent
	// digit follows, so "1e?" scans as "1".
	if pos < len(s) && (s[pos] == 'e' || s[pos] == 'E') {
		end := pos + 1
		if end < len(s) && (s[end] == '+' || s[end] == '-') {
			end++
		}
		expDigits := 0
		for end < len(s) && isDigit(s[end]) {
			end++
			expDigits++
		}
		if expDigits > 0 {
			pos = end
		}
	}
	return pos
}

// scanSpecial returns the length of a textual non-finite literal at
// the start of s, or 0. The sign, if any, was already consumed.
func scanSpecial(s string) int {
	for _, w := range [...]string{"infinity", "inf", "nan"} {
		if len(s) >= len(w) && strings.EqualFold(s[:len(w)], w) {
			return len(w)
		}
	}
	return 0
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\v' || c == '\f' || c == '\r'
}

// EqRelative reports whether x and y are equal within the relative
// tolerance frac:
//
//   - if x is exactly 0, the result is |y| <= frac.
//   - if y is exactly 0, the result is |x| <= frac.
//   - otherwise, the result is |x - y| <= frac * |x + y| / 2, that
//     is, the absolute difference is compared against the tolerance
//     scaled by the average magnitude of the two operands.
//
// Scaling by the average, rather than by |x| or |y| alone, keeps the
// relation symmetric in its two numeric arguments.
// The zero special cases exist because relative error is undefined
// when the reference value is zero; for that branch the magnitude of
// the non-zero operand is compared against the tolerance directly.
//
// EqRelative is reflexive for any finite x and frac >= 0, and
// symmetric in x and y.
// It is not transitive: three pairwise-close values may not form a
// close chain overall.
// It is scale invariant only when both operands are nonzero and both
// are multiplied by the same nonzero factor; if either operand is
// exactly zero, scaling the other one changes the outcome.
func EqRelative(frac Fraction, x, y float64) bool {
	switch {
	case x == 0:
		return math.Abs(y) <= float64(frac)
	case y == 0:
		return math.Abs(x) <= float64(frac)
	default:
		return math.Abs(x-y) <= float64(frac)*math.Abs(x+y)/2
	}
}

// EqAbsolute reports whether x and y are equal within the absolute
// tolerance prec, that is, whether |x - y| <= prec.
//
// Unlike [EqRelative], EqAbsolute is not scale invariant: the same
// tolerance applies regardless of operand magnitude.
// It is reflexive for any finite x and prec >= 0, symmetric in x and
// y, and not transitive.
func EqAbsolute(prec Precision, x, y float64) bool {
	return math.Abs(x-y) <= float64(prec)
}

// EqApproximate reports whether x and y are equal within
// [DefaultFraction], one part per million, using [EqRelative].
// It is the package's default equality for floating-point round-off
// noise, so EqApproximate(0.1+0.2, 0.3) is true.
func EqApproximate(x, y float64) bool {
	return EqRelative(DefaultFraction, x, y)
}

// NeqApproximate reports whether x and y differ by more than
// [DefaultFraction]. It is the negation of [EqApproximate].
func NeqApproximate(x, y float64) bool {
	return !EqApproximate(x, y)
}

// NaN returns the canonical quiet NaN.
// NaN compares unequal to everything, including itself; use [IsNaN]
// to test for it.
func NaN() float64 {
	return math.NaN()
}

// IsNaN reports whether x is NaN.
func IsNaN(x float64) bool {
	return math.IsNaN(x)
}

// Inf returns positive infinity.
// Negative infinity is -Inf(); it is not separately named.
func Inf() float64 {
	return math.Inf(1)
}

// IsFinite reports whether x is neither NaN nor an infinity.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
