package encryption

import (
	"errors"
	"fmt"
)

// Alphabet is the size of the symbol domain. A symbol is one letter of a
// 26-letter alphabet represented as an integer in [0,25].
const Alphabet = 26

// Rounds is the number of Feistel rounds, fixed by the cipher definition.
const Rounds = 4

var (
	ErrInvalidLength    = errors.New("invalid length")
	ErrOutOfRangeSymbol = errors.New("symbol out of range")
)

// SymbolCipher is the interface that block ciphers over the symbol domain
// must implement. Encrypt and Decrypt operate on exactly one block.
type SymbolCipher interface {
	// Encrypt encrypts a single plaintext block with the given key
	Encrypt(key []byte, plaintext []byte) ([]byte, error)

	// Decrypt decrypts a single ciphertext block with the given key
	Decrypt(key []byte, ciphertext []byte) ([]byte, error)

	// BlockSize returns the block size in symbols
	BlockSize() int

	// KeySize returns the required key size in symbols
	KeySize() int

	// Name returns the algorithm name
	Name() string
}

// Params holds the externally supplied, fixed configuration of a cipher
// instance. The tables are read-only once the cipher is constructed and may
// be shared across concurrent calls without locking.
type Params struct {
	// BlockSize is the block length N in symbols. It must be positive and
	// divisible by 4: the master key is one block long, and the key schedule
	// splits it into halves and rotates it by a quarter of its length.
	BlockSize int

	// Mixer is the (N/2)x(N/2) linear-diffusion matrix. Entries are reduced
	// modulo 26 when the cipher is constructed.
	Mixer [][]byte

	// SBox holds one substitution row per half-block position: (N/2) rows of
	// 26 entries, each in [0,25].
	SBox [][]byte

	// PTable is a permutation of [0, N/2) applied after substitution.
	PTable []int
}

func LengthError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidLength, fmt.Sprintf(format, args...))
}
