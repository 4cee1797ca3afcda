// Package classify sorts a sequence of string tokens into numbers, letters
// and special characters, sums the numeric values and derives the
// alternating-case concat string from the letters.
//
// Usage:
//
//	res := classify.Tokens([]string{"1", "2", "a", "@"})
//	// res.OddNumbers = ["1"], res.Sum = 3, res.ConcatString = "A"
package classify

import (
	"math/big"
	"strings"
	"unicode"
)

// Result holds everything derived from one token sequence. Slices are
// never nil so they serialise as empty JSON arrays.
type Result struct {
	OddNumbers        []string
	EvenNumbers       []string
	Alphabets         []string
	SpecialCharacters []string
	Sum               *big.Int
	ConcatString      string
}

// Tokens classifies tokens in input order. It never fails; whitespace-only
// tokens contribute nothing.
func Tokens(tokens []string) Result {
	res := Result{
		OddNumbers:        []string{},
		EvenNumbers:       []string{},
		Alphabets:         []string{},
		SpecialCharacters: []string{},
		Sum:               new(big.Int),
	}

	for _, raw := range tokens {
		tok := strings.TrimSpace(raw)
		switch {
		case tok == "":
			continue
		case IsNumeric(tok):
			res.addNumber(tok)
		case IsAlphabetic(tok):
			res.Alphabets = append(res.Alphabets, strings.ToUpper(tok))
		default:
			res.decompose(tok)
		}
	}

	res.ConcatString = ConcatString(res.Alphabets)
	return res
}

// addNumber adds the truncated integer value of tok to the sum and files
// the original text under its parity.
func (r *Result) addNumber(tok string) {
	n := TruncInt(tok)
	r.Sum.Add(r.Sum, n)
	if n.Bit(0) == 0 {
		r.EvenNumbers = append(r.EvenNumbers, tok)
	} else {
		r.OddNumbers = append(r.OddNumbers, tok)
	}
}

// decompose handles tokens that are neither wholly numeric nor wholly
// alphabetic. A lone character is special by elimination.
func (r *Result) decompose(tok string) {
	chars := []rune(tok)
	if len(chars) == 1 {
		r.SpecialCharacters = append(r.SpecialCharacters, tok)
		return
	}
	for _, c := range chars {
		s := string(c)
		switch {
		case isDigit(c):
			r.addNumber(s)
		case isLetter(c):
			r.Alphabets = append(r.Alphabets, strings.ToUpper(s))
		case IsSpecial(s):
			r.SpecialCharacters = append(r.SpecialCharacters, s)
		}
	}
}

// ConcatString flattens the collected letters, reverses them and
// alternates case starting with upper case at position 0.
func ConcatString(alphabets []string) string {
	var chars []rune
	for _, a := range alphabets {
		chars = append(chars, []rune(a)...)
	}

	var b strings.Builder
	b.Grow(len(chars))
	for i := len(chars) - 1; i >= 0; i-- {
		pos := len(chars) - 1 - i
		if pos%2 == 0 {
			b.WriteRune(unicode.ToUpper(chars[i]))
		} else {
			b.WriteRune(unicode.ToLower(chars[i]))
		}
	}
	return b.String()
}
