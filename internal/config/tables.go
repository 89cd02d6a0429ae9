package config

import (
	"crypto/rand"
	"encoding/json"
	"fmt"
	"math/big"
	"os"

	"github.com/Tiburonboy/Character-based-cipher/internal/pkg/encryption"
)

// TableSet is the on-disk form of a cipher parameter set: the mixing matrix,
// substitution rows, and permutation table that fix one cipher instance.
// Two parties must share the same table set (and key) to interoperate.
type TableSet struct {
	BlockSize int     `json:"block_size"`
	Mixer     [][]int `json:"mixer"`
	SBox      [][]int `json:"s_box"`
	PTable    []int   `json:"p_table"`
}

// Params converts the table set into the cipher core's parameter struct.
// Range validation is the cipher constructor's job; this only reshapes.
func (t *TableSet) Params() (encryption.Params, error) {
	p := encryption.Params{
		BlockSize: t.BlockSize,
		PTable:    t.PTable,
	}

	p.Mixer = make([][]byte, len(t.Mixer))
	for i, row := range t.Mixer {
		p.Mixer[i] = make([]byte, len(row))
		for j, e := range row {
			if e < 0 {
				return encryption.Params{}, fmt.Errorf("mixer entry [%d][%d] is negative", i, j)
			}
			p.Mixer[i][j] = byte(e % encryption.Alphabet)
		}
	}

	p.SBox = make([][]byte, len(t.SBox))
	for i, row := range t.SBox {
		p.SBox[i] = make([]byte, len(row))
		for j, e := range row {
			if e < 0 || e > 255 {
				return encryption.Params{}, fmt.Errorf("s-box entry [%d][%d] = %d does not fit a symbol", i, j, e)
			}
			p.SBox[i][j] = byte(e)
		}
	}

	return p, nil
}

// LoadTables reads a table set from a JSON file.
func LoadTables(path string) (*TableSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading table file: %w", err)
	}
	return ParseTables(data)
}

// ParseTables decodes a table set from JSON.
func ParseTables(data []byte) (*TableSet, error) {
	var t TableSet
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing table file: %w", err)
	}
	return &t, nil
}

// SaveTables writes a table set to a JSON file.
func SaveTables(path string, t *TableSet) error {
	data, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding table file: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing table file: %w", err)
	}
	return nil
}

// GenerateTableSet mints a random parameter set for the given block size:
// a random mixing matrix, one shuffled substitution alphabet per half-block
// position, and a random permutation table.
func GenerateTableSet(blockSize int) (*TableSet, error) {
	if blockSize <= 0 || blockSize%4 != 0 {
		return nil, fmt.Errorf("block size must be positive and divisible by 4, got %d", blockSize)
	}
	half := blockSize / 2

	mixer := make([][]int, half)
	for i := range mixer {
		mixer[i] = make([]int, half)
		for j := range mixer[i] {
			v, err := randomInt(encryption.Alphabet)
			if err != nil {
				return nil, err
			}
			mixer[i][j] = v
		}
	}

	sbox := make([][]int, half)
	for i := range sbox {
		row, err := randomPermutation(encryption.Alphabet)
		if err != nil {
			return nil, err
		}
		sbox[i] = row
	}

	ptable, err := randomPermutation(half)
	if err != nil {
		return nil, err
	}

	return &TableSet{
		BlockSize: blockSize,
		Mixer:     mixer,
		SBox:      sbox,
		PTable:    ptable,
	}, nil
}

// randomInt returns a uniform value in [0, n) from crypto/rand.
func randomInt(n int) (int, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("reading random source: %w", err)
	}
	return int(v.Int64()), nil
}

// randomPermutation returns a Fisher-Yates shuffle of [0, n).
func randomPermutation(n int) ([]int, error) {
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	for i := n - 1; i > 0; i-- {
		j, err := randomInt(i + 1)
		if err != nil {
			return nil, err
		}
		perm[i], perm[j] = perm[j], perm[i]
	}
	return perm, nil
}
