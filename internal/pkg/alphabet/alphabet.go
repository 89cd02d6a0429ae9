// Package alphabet converts between letter text and the symbol vectors the
// cipher operates on: 'A'..'Z' (either case) map to 0..25.
package alphabet

import "fmt"

// Encode converts letter text to a symbol vector. Any rune outside A-Z and
// a-z is an error; use EncodeFilter to drop such runes instead.
func Encode(text string) ([]byte, error) {
	out := make([]byte, 0, len(text))
	for i, r := range text {
		switch {
		case r >= 'A' && r <= 'Z':
			out = append(out, byte(r-'A'))
		case r >= 'a' && r <= 'z':
			out = append(out, byte(r-'a'))
		default:
			return nil, fmt.Errorf("character %q at position %d is not a letter", r, i)
		}
	}
	return out, nil
}

// EncodeFilter converts letter text to a symbol vector, silently dropping
// spaces, punctuation, and anything else outside the alphabet.
func EncodeFilter(text string) []byte {
	out := make([]byte, 0, len(text))
	for _, r := range text {
		switch {
		case r >= 'A' && r <= 'Z':
			out = append(out, byte(r-'A'))
		case r >= 'a' && r <= 'z':
			out = append(out, byte(r-'a'))
		}
	}
	return out
}

// Decode converts a symbol vector back to uppercase letter text.
func Decode(symbols []byte) (string, error) {
	out := make([]byte, len(symbols))
	for i, s := range symbols {
		if s > 25 {
			return "", fmt.Errorf("symbol %d at position %d is outside [0,25]", s, i)
		}
		out[i] = 'A' + s
	}
	return string(out), nil
}
