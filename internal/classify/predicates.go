package classify

import (
	"math/big"
	"regexp"
	"strings"
)

// numericRe accepts the string forms that numeric coercion turns into a
// number: signed decimals with optional fraction and exponent, signed
// Infinity, and unsigned hex/octal/binary literals.
var numericRe = regexp.MustCompile(
	`^(?:[+-]?(?:(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?|Infinity)|0[xX][0-9a-fA-F]+|0[oO][0-7]+|0[bB][01]+)$`,
)

var alphabeticRe = regexp.MustCompile(`^[A-Za-z]+$`)

// IsNumeric reports whether s, after trimming, is a complete numeric literal.
func IsNumeric(s string) bool {
	s = strings.TrimSpace(s)
	return s != "" && numericRe.MatchString(s)
}

// IsAlphabetic reports whether s consists of one or more ASCII letters.
func IsAlphabetic(s string) bool {
	return alphabeticRe.MatchString(s)
}

// IsSpecial reports whether s is non-blank and neither numeric nor
// alphabetic.
func IsSpecial(s string) bool {
	return strings.TrimSpace(s) != "" && !IsNumeric(s) && !IsAlphabetic(s)
}

// TruncInt parses the leading integer of s the way a truncating integer
// parse does: "3.7" is 3, "1e3" is 1, "-4.5" is -4 and "0x1A" is 26.
// Strings without an integer prefix (".5", "Infinity") yield 0.
func TruncInt(s string) *big.Int {
	s = strings.TrimSpace(s)

	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}

	base := 10
	if len(s) > 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		base = 16
		s = s[2:]
	}

	end := 0
	for end < len(s) && digitIn(s[end], base) {
		end++
	}

	n := new(big.Int)
	if end == 0 {
		return n
	}
	n.SetString(s[:end], base)
	if neg {
		n.Neg(n)
	}
	return n
}

func digitIn(c byte, base int) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case base == 16 && c >= 'a' && c <= 'f', base == 16 && c >= 'A' && c <= 'F':
		return true
	}
	return false
}

func isDigit(c rune) bool  { return c >= '0' && c <= '9' }
func isLetter(c rune) bool { return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' }
