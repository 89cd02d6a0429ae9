package modes

import (
	"sync"

	"github.com/Tiburonboy/Character-based-cipher/internal/pkg/encryption"
)

// Mode interface defines the chaining mode contract over symbol vectors
type Mode interface {
	Encrypt(cipher encryption.SymbolCipher, key []byte, plaintext []byte, iv []byte) ([]byte, error)
	Decrypt(cipher encryption.SymbolCipher, key []byte, ciphertext []byte, iv []byte) ([]byte, error)
	RequiresIV() bool
	Name() string
}

// ECBMode - Electronic Code Book mode (no IV required). Every block is
// enciphered independently, so identical plaintext blocks produce identical
// ciphertext blocks under the same key. That weakness is part of the cipher's
// teaching value and is preserved, not fixed.
type ECBMode struct{}

func (e *ECBMode) Name() string {
	return "ECB"
}

func (e *ECBMode) RequiresIV() bool {
	return false
}

func (e *ECBMode) Encrypt(cipher encryption.SymbolCipher, key []byte, plaintext []byte, iv []byte) ([]byte, error) {
	blockSize := cipher.BlockSize()
	if len(plaintext)%blockSize != 0 {
		return nil, encryption.LengthError("message length %d is not a multiple of block size %d", len(plaintext), blockSize)
	}

	return processBlocksParallel(plaintext, blockSize, func(block []byte) ([]byte, error) {
		return cipher.Encrypt(key, block)
	})
}

func (e *ECBMode) Decrypt(cipher encryption.SymbolCipher, key []byte, ciphertext []byte, iv []byte) ([]byte, error) {
	blockSize := cipher.BlockSize()
	if len(ciphertext)%blockSize != 0 {
		return nil, encryption.LengthError("message length %d is not a multiple of block size %d", len(ciphertext), blockSize)
	}

	return processBlocksParallel(ciphertext, blockSize, func(block []byte) ([]byte, error) {
		return cipher.Decrypt(key, block)
	})
}

// CBCMode - Cipher Block Chaining mode. The previous ciphertext block (or the
// IV for the first block) is added modulo 26 into each plaintext block before
// encryption, so identical plaintext blocks at different positions encrypt
// differently.
type CBCMode struct{}

func (c *CBCMode) Name() string {
	return "CBC"
}

func (c *CBCMode) RequiresIV() bool {
	return true
}

func (c *CBCMode) Encrypt(cipher encryption.SymbolCipher, key []byte, plaintext []byte, iv []byte) ([]byte, error) {
	blockSize := cipher.BlockSize()
	if len(iv) != blockSize {
		return nil, encryption.LengthError("IV must be %d symbols, got %d", blockSize, len(iv))
	}
	if len(plaintext)%blockSize != 0 {
		return nil, encryption.LengthError("message length %d is not a multiple of block size %d", len(plaintext), blockSize)
	}

	// Each block depends on the previous ciphertext block, so the encrypt
	// path is inherently sequential.
	ciphertext := make([]byte, len(plaintext))
	prev := make([]byte, blockSize)
	copy(prev, iv)

	for i := 0; i < len(plaintext); i += blockSize {
		mixed, err := encryption.AddMod26(plaintext[i:i+blockSize], prev)
		if err != nil {
			return nil, err
		}

		block, err := cipher.Encrypt(key, mixed)
		if err != nil {
			return nil, err
		}
		copy(ciphertext[i:], block)
		copy(prev, block)
	}

	return ciphertext, nil
}

func (c *CBCMode) Decrypt(cipher encryption.SymbolCipher, key []byte, ciphertext []byte, iv []byte) ([]byte, error) {
	blockSize := cipher.BlockSize()
	if len(iv) != blockSize {
		return nil, encryption.LengthError("IV must be %d symbols, got %d", blockSize, len(iv))
	}
	if len(ciphertext)%blockSize != 0 {
		return nil, encryption.LengthError("message length %d is not a multiple of block size %d", len(ciphertext), blockSize)
	}

	// Every previous-ciphertext input is known up front on the decrypt path,
	// so the block decryptions can run in parallel; only the final modular
	// subtraction ties a block to its predecessor.
	decrypted, err := processBlocksParallel(ciphertext, blockSize, func(block []byte) ([]byte, error) {
		return cipher.Decrypt(key, block)
	})
	if err != nil {
		return nil, err
	}

	plaintext := make([]byte, len(ciphertext))
	prev := iv
	for i := 0; i < len(ciphertext); i += blockSize {
		block, err := encryption.SubMod26(decrypted[i:i+blockSize], prev)
		if err != nil {
			return nil, err
		}
		copy(plaintext[i:], block)
		prev = ciphertext[i : i+blockSize]
	}

	return plaintext, nil
}

// processBlocksParallel applies blockFunc to every block concurrently and
// concatenates the results in order. The caller must have verified that data
// is a whole number of blocks.
func processBlocksParallel(data []byte, blockSize int, blockFunc func([]byte) ([]byte, error)) ([]byte, error) {
	numBlocks := len(data) / blockSize
	result := make([]byte, len(data))

	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error

	for b := 0; b < numBlocks; b++ {
		wg.Add(1)
		go func(offset int) {
			defer wg.Done()

			out, err := blockFunc(data[offset : offset+blockSize])
			if err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
				return
			}
			copy(result[offset:], out)
		}(b * blockSize)
	}

	wg.Wait()
	if firstErr != nil {
		return nil, firstErr
	}
	return result, nil
}

// GetMode returns a Mode implementation for the given mode name
func GetMode(modeName string) Mode {
	switch modeName {
	case "ECB":
		return &ECBMode{}
	case "CBC":
		return &CBCMode{}
	default:
		return nil
	}
}
