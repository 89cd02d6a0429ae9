// Package analysis provides letter-frequency statistics over symbol vectors.
// Frequency analysis is the classical attack this cipher family is taught
// against, and it is how the ECB mode's block-repetition weakness shows up
// in practice.
package analysis

import "github.com/Tiburonboy/Character-based-cipher/internal/pkg/encryption"

// EnglishFrequencies holds relative letter frequencies of English text,
// indexed by symbol (A..Z).
var EnglishFrequencies = [encryption.Alphabet]float64{
	0.0817, 0.0149, 0.0278, 0.0425, 0.1270, 0.0223, 0.0202, 0.0609,
	0.0697, 0.0015, 0.0077, 0.0403, 0.0241, 0.0675, 0.0751, 0.0193,
	0.0010, 0.0599, 0.0633, 0.0906, 0.0276, 0.0098, 0.0236, 0.0015,
	0.0197, 0.0007,
}

// Counts tallies each symbol in the message. Symbols outside [0,25] are
// folded modulo 26, matching the cipher core's reduction policy.
func Counts(msg []byte) [encryption.Alphabet]int {
	var counts [encryption.Alphabet]int
	for _, s := range msg {
		counts[s%encryption.Alphabet]++
	}
	return counts
}

// Frequencies returns the relative frequency of each symbol in the message.
func Frequencies(msg []byte) [encryption.Alphabet]float64 {
	var freqs [encryption.Alphabet]float64
	if len(msg) == 0 {
		return freqs
	}
	counts := Counts(msg)
	total := float64(len(msg))
	for i, c := range counts {
		freqs[i] = float64(c) / total
	}
	return freqs
}

// ChiSquared scores how far the message's letter distribution is from the
// expected one; lower means closer. A well-enciphered message scored against
// EnglishFrequencies should look far from English, while plaintext (or a
// weak cipher's output) scores low.
func ChiSquared(msg []byte, expected [encryption.Alphabet]float64) float64 {
	if len(msg) == 0 {
		return 0
	}
	counts := Counts(msg)
	total := float64(len(msg))

	score := 0.0
	for i, c := range counts {
		want := expected[i] * total
		if want == 0 {
			continue
		}
		diff := float64(c) - want
		score += diff * diff / want
	}
	return score
}
