package padding

import (
	"fmt"

	"github.com/Tiburonboy/Character-based-cipher/internal/pkg/encryption"
)

// Padder interface defines the padding contract over symbol vectors. The
// cipher core never pads on its own; callers whose message is not a whole
// number of blocks apply a Padder first.
type Padder interface {
	Pad(data []byte, blockSize int) []byte
	Unpad(data []byte) ([]byte, error)
	Name() string
}

// BlockCountPadding - PKCS#7 carried over to the symbol domain: every pad
// symbol holds the pad length. The block size must stay below 26 so the
// length fits in one symbol.
type BlockCountPadding struct{}

func (b *BlockCountPadding) Name() string {
	return "BLOCK_COUNT"
}

func (b *BlockCountPadding) Pad(data []byte, blockSize int) []byte {
	padLen := blockSize - (len(data) % blockSize)
	if padLen == 0 {
		padLen = blockSize
	}
	padding := make([]byte, padLen)
	for i := range padding {
		padding[i] = byte(padLen)
	}
	return append(data, padding...)
}

func (b *BlockCountPadding) Unpad(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("invalid padded data")
	}

	padLen := int(data[len(data)-1])
	if padLen == 0 || padLen >= encryption.Alphabet || padLen > len(data) {
		return nil, fmt.Errorf("invalid padding length")
	}

	// Verify padding
	for i := len(data) - padLen; i < len(data); i++ {
		if data[i] != byte(padLen) {
			return nil, fmt.Errorf("invalid padding")
		}
	}

	return data[:len(data)-padLen], nil
}

// XPadding - classical telegram fill: pad with the symbol for 'X'. Unpad
// strips every trailing X, so a message that genuinely ends in X loses it.
type XPadding struct{}

const xSymbol = 'X' - 'A'

func (x *XPadding) Name() string {
	return "X_FILL"
}

func (x *XPadding) Pad(data []byte, blockSize int) []byte {
	padLen := blockSize - (len(data) % blockSize)
	if padLen == blockSize && len(data) > 0 {
		return data
	}
	padding := make([]byte, padLen)
	for i := range padding {
		padding[i] = xSymbol
	}
	return append(data, padding...)
}

func (x *XPadding) Unpad(data []byte) ([]byte, error) {
	i := len(data) - 1
	for i >= 0 && data[i] == xSymbol {
		i--
	}
	return data[:i+1], nil
}

// GetPadder returns a Padder implementation for the given padding name
func GetPadder(paddingName string) Padder {
	switch paddingName {
	case "BLOCK_COUNT":
		return &BlockCountPadding{}
	case "X_FILL":
		return &XPadding{}
	default:
		return nil
	}
}
