package encryption

import (
	"crypto/rand"
	"fmt"

	"golang.org/x/crypto/argon2"
)

// maxUnbiased is the largest multiple of 26 that fits in a byte. Random bytes
// at or above it are redrawn so every symbol is equally likely.
const maxUnbiased = 234

// GenerateKey creates a uniformly random symbol vector of the given size,
// suitable as a master key.
func GenerateKey(size int) ([]byte, error) {
	if size <= 0 {
		return nil, LengthError("key size must be positive, got %d", size)
	}

	out := make([]byte, size)
	buf := make([]byte, size)
	filled := 0
	for filled < size {
		if _, err := rand.Read(buf[:size-filled]); err != nil {
			return nil, fmt.Errorf("reading random source: %w", err)
		}
		for _, b := range buf[:size-filled] {
			if b < maxUnbiased {
				out[filled] = b % Alphabet
				filled++
			}
		}
	}
	return out, nil
}

// GenerateIV creates a random initialization vector of the given size.
func GenerateIV(size int) ([]byte, error) {
	return GenerateKey(size)
}

// PassphraseKey derives a symbol-vector key of the given size from a
// passphrase using argon2id. The same passphrase, salt, and size always yield
// the same key, so two parties sharing a passphrase derive matching keys.
func PassphraseKey(passphrase, salt string, size int) ([]byte, error) {
	if size <= 0 {
		return nil, LengthError("key size must be positive, got %d", size)
	}
	if passphrase == "" {
		return nil, fmt.Errorf("passphrase must not be empty")
	}

	raw := argon2.IDKey([]byte(passphrase), []byte(salt), 1, 64*1024, 4, uint32(size))
	key := make([]byte, size)
	for i, b := range raw {
		key[i] = b % Alphabet
	}
	return key, nil
}
