package encryption

import "fmt"

// piDigits are the leading digits of pi. Consecutive two-digit groups, taken
// modulo 26, form the round constants of the key schedule. The digit budget
// caps the half-block size at 32 symbols (4 constants of up to 32 groups).
const piDigits = "3" +
	"1415926535" + "8979323846" + "2643383279" + "5028841971" + "6939937510" +
	"5820974944" + "5923078164" + "0628620899" + "8628034825" + "3421170679" +
	"8214808651" + "3282306647" + "0938446095" + "5058223172" + "5359408128" +
	"4811174502" + "8410270193" + "8521105559" + "6446229489" + "5493038196" +
	"4428810975" + "6659334461" + "2847564823" + "3786783165" + "2712019091" +
	"4564856692"

// Feistel is a four-round Feistel network over the 26-symbol alphabet. The
// diffusion, substitution, and permutation tables are fixed per instance and
// never mutated; all per-call state (round keys, half-blocks) is local, so a
// single instance is safe for concurrent use.
//
// Out-of-range policy: data and key symbols outside [0,25] are reduced modulo
// 26 rather than rejected, as the modular arithmetic already guarantees
// reduced outputs. Table entries are validated once, at construction.
type Feistel struct {
	blockSize int
	half      int
	mixer     [][]byte
	sbox      [][]byte
	ptable    []int
	consts    [Rounds][]byte
}

// NewFeistel creates a cipher instance from externally supplied parameters,
// validating table shapes up front.
func NewFeistel(p Params) (*Feistel, error) {
	if p.BlockSize <= 0 || p.BlockSize%4 != 0 {
		return nil, LengthError("block size must be positive and divisible by 4, got %d", p.BlockSize)
	}
	half := p.BlockSize / 2

	if len(p.Mixer) != half {
		return nil, LengthError("mixer must have %d rows, got %d", half, len(p.Mixer))
	}
	mixer := make([][]byte, half)
	for i, row := range p.Mixer {
		if len(row) != half {
			return nil, LengthError("mixer row %d must have %d entries, got %d", i, half, len(row))
		}
		mixer[i] = make([]byte, half)
		for j, e := range row {
			mixer[i][j] = e % Alphabet
		}
	}

	if len(p.SBox) != half {
		return nil, LengthError("s-box must have %d rows, got %d", half, len(p.SBox))
	}
	sbox := make([][]byte, half)
	for i, row := range p.SBox {
		if len(row) != Alphabet {
			return nil, LengthError("s-box row %d must have %d entries, got %d", i, Alphabet, len(row))
		}
		sbox[i] = make([]byte, Alphabet)
		for j, e := range row {
			if e >= Alphabet {
				return nil, fmt.Errorf("%w: s-box entry [%d][%d] = %d, want [0,25]", ErrOutOfRangeSymbol, i, j, e)
			}
			sbox[i][j] = e
		}
	}

	if len(p.PTable) != half {
		return nil, LengthError("p-table must have %d entries, got %d", half, len(p.PTable))
	}
	seen := make([]bool, half)
	ptable := make([]int, half)
	for i, idx := range p.PTable {
		if idx < 0 || idx >= half || seen[idx] {
			return nil, LengthError("p-table is not a permutation of [0,%d)", half)
		}
		seen[idx] = true
		ptable[i] = idx
	}

	consts, err := roundConstants(half)
	if err != nil {
		return nil, err
	}

	return &Feistel{
		blockSize: p.BlockSize,
		half:      half,
		mixer:     mixer,
		sbox:      sbox,
		ptable:    ptable,
		consts:    consts,
	}, nil
}

// BlockSize returns the block size in symbols.
func (f *Feistel) BlockSize() int {
	return f.blockSize
}

// KeySize returns the master key size in symbols. The key is one block long:
// the round function ties the half-key length to the mixer dimension.
func (f *Feistel) KeySize() int {
	return f.blockSize
}

// Name returns the cipher name.
func (f *Feistel) Name() string {
	return "CharFeistel"
}

// roundConstants derives the four key-schedule constants from pi: consecutive
// two-digit groups modulo 26, in four chunks of half symbols each. For a
// 16-symbol block this reproduces 31 41 59 26 ... exactly.
func roundConstants(half int) ([Rounds][]byte, error) {
	var consts [Rounds][]byte
	if Rounds*half*2 > len(piDigits) {
		return consts, LengthError("half-block size %d exceeds the pi digit budget", half)
	}
	for i := 0; i < Rounds; i++ {
		c := make([]byte, half)
		for j := 0; j < half; j++ {
			off := (i*half + j) * 2
			group := 10*int(piDigits[off]-'0') + int(piDigits[off+1]-'0')
			c[j] = byte(group % Alphabet)
		}
		consts[i] = c
	}
	return consts, nil
}

// roundFunction is the keyed non-linear transform used by both the key
// schedule and every Feistel round: key-mix, diffuse through the mixer
// matrix, substitute per position, permute. It is not invertible; the
// surrounding Feistel structure is what gets inverted.
func (f *Feistel) roundFunction(data, subkey []byte) []byte {
	mixed, _ := AddMod26(data, subkey)

	// Matrix-vector product makes every output symbol depend on several
	// input symbols. int accumulator: half*25*25 stays far below overflow.
	diffused := make([]byte, f.half)
	for i := 0; i < f.half; i++ {
		sum := 0
		for j := 0; j < f.half; j++ {
			sum += int(f.mixer[i][j]) * int(mixed[j])
		}
		diffused[i] = byte(sum % Alphabet)
	}

	substituted := make([]byte, f.half)
	for i := 0; i < f.half; i++ {
		substituted[i] = f.sbox[i][diffused[i]]
	}

	out := make([]byte, f.half)
	for i := 0; i < f.half; i++ {
		out[i] = substituted[f.ptable[i]]
	}
	return out
}

// deriveRoundKeys expands the master key into the four round keys. Each
// intermediate key mixes both halves of the master key, so every round key is
// a non-linear function of the whole key. The schedule is pure: encrypt and
// decrypt re-derive identical keys from the same master key.
func (f *Feistel) deriveRoundKeys(key []byte) [Rounds][]byte {
	h := f.half
	left := key[:h]
	right := key[h:]

	a0, _ := AddMod26(left, right)
	a1, _ := AddMod26(rotateRight(left, 1), rotateRight(right, -1))

	// A quarter rotation makes both remaining intermediates straddle the
	// original left and right halves.
	rotated := rotateRight(key, len(key)/4)
	a2 := rotated[:h]
	a3 := rotated[h:]

	return [Rounds][]byte{
		f.roundFunction(a0, f.consts[0]),
		f.roundFunction(a1, f.consts[1]),
		f.roundFunction(a2, f.consts[2]),
		f.roundFunction(a3, f.consts[3]),
	}
}

func (f *Feistel) checkBlockAndKey(block, key []byte) error {
	if len(block) != f.blockSize {
		return LengthError("block must be %d symbols, got %d", f.blockSize, len(block))
	}
	if len(key) != f.blockSize {
		return LengthError("key must be %d symbols, got %d", f.blockSize, len(key))
	}
	return nil
}

// Encrypt encrypts a single block.
func (f *Feistel) Encrypt(key []byte, plaintext []byte) ([]byte, error) {
	if err := f.checkBlockAndKey(plaintext, key); err != nil {
		return nil, err
	}

	roundKeys := f.deriveRoundKeys(key)

	left := reduce(plaintext[:f.half])
	right := reduce(plaintext[f.half:])

	for r := 0; r < Rounds; r++ {
		next, _ := AddMod26(left, f.roundFunction(right, roundKeys[r]))
		left = right
		right = next
	}

	// No terminal swap: the output is left_4 || right_4 as produced.
	return append(left, right...), nil
}

// Decrypt decrypts a single block, running the rounds in reverse with
// SubMod26 undoing the per-round AddMod26.
func (f *Feistel) Decrypt(key []byte, ciphertext []byte) ([]byte, error) {
	if err := f.checkBlockAndKey(ciphertext, key); err != nil {
		return nil, err
	}

	roundKeys := f.deriveRoundKeys(key)

	left := reduce(ciphertext[:f.half])
	right := reduce(ciphertext[f.half:])

	for r := Rounds - 1; r >= 0; r-- {
		prev, _ := SubMod26(right, f.roundFunction(left, roundKeys[r]))
		right = left
		left = prev
	}

	return append(left, right...), nil
}

// reduce copies a symbol vector, folding each entry into [0,25].
func reduce(v []byte) []byte {
	out := make([]byte, len(v))
	for i, s := range v {
		out[i] = s % Alphabet
	}
	return out
}
