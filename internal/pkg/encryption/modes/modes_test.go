package modes

import (
	"bytes"
	"errors"
	"testing"

	"github.com/Tiburonboy/Character-based-cipher/internal/pkg/encryption"
)

// Test tables: dense enough that neighboring blocks do not collide by
// accident, small enough to reason about.
func getTestCipher(t *testing.T) encryption.SymbolCipher {
	t.Helper()

	half := 8
	mixer := make([][]byte, half)
	sbox := make([][]byte, half)
	ptable := make([]int, half)
	for i := 0; i < half; i++ {
		mixer[i] = make([]byte, half)
		for j := 0; j < half; j++ {
			mixer[i][j] = byte((3*i + 5*j + 1) % encryption.Alphabet)
		}

		sbox[i] = make([]byte, encryption.Alphabet)
		for j := 0; j < encryption.Alphabet; j++ {
			sbox[i][j] = byte((7*j + i) % encryption.Alphabet)
		}

		ptable[i] = (i + 3) % half
	}

	cipher, err := encryption.NewFeistel(encryption.Params{
		BlockSize: 16,
		Mixer:     mixer,
		SBox:      sbox,
		PTable:    ptable,
	})
	if err != nil {
		t.Fatalf("Failed to create test cipher: %v", err)
	}
	return cipher
}

var (
	testKey = []byte{3, 7, 11, 0, 25, 13, 2, 19, 8, 21, 5, 16, 9, 1, 24, 14}
	testIV  = []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
)

func testMessage(blocks int) []byte {
	msg := make([]byte, 16*blocks)
	for i := range msg {
		msg[i] = byte((i*i + 3*i) % encryption.Alphabet)
	}
	return msg
}

func TestECBRoundTrip(t *testing.T) {
	cipher := getTestCipher(t)
	mode := &ECBMode{}

	plaintext := testMessage(5)

	encrypted, err := mode.Encrypt(cipher, testKey, plaintext, nil)
	if err != nil {
		t.Fatalf("ECB encryption failed: %v", err)
	}
	if len(encrypted) != len(plaintext) {
		t.Fatalf("ECB ciphertext length %d, expected %d", len(encrypted), len(plaintext))
	}

	decrypted, err := mode.Decrypt(cipher, testKey, encrypted, nil)
	if err != nil {
		t.Fatalf("ECB decryption failed: %v", err)
	}
	if !bytes.Equal(plaintext, decrypted) {
		t.Fatalf("ECB round-trip failed: expected %v, got %v", plaintext, decrypted)
	}
}

func TestCBCRoundTrip(t *testing.T) {
	cipher := getTestCipher(t)
	mode := &CBCMode{}

	plaintext := testMessage(5)

	encrypted, err := mode.Encrypt(cipher, testKey, plaintext, testIV)
	if err != nil {
		t.Fatalf("CBC encryption failed: %v", err)
	}

	decrypted, err := mode.Decrypt(cipher, testKey, encrypted, testIV)
	if err != nil {
		t.Fatalf("CBC decryption failed: %v", err)
	}
	if !bytes.Equal(plaintext, decrypted) {
		t.Fatalf("CBC round-trip failed: expected %v, got %v", plaintext, decrypted)
	}
}

// TestECBRepeatedBlocksLeak documents the ECB weakness this cipher family is
// taught with: identical plaintext blocks encrypt to identical ciphertext
// blocks.
func TestECBRepeatedBlocksLeak(t *testing.T) {
	cipher := getTestCipher(t)
	mode := &ECBMode{}

	block := testMessage(1)
	plaintext := append(append([]byte{}, block...), block...)

	encrypted, err := mode.Encrypt(cipher, testKey, plaintext, nil)
	if err != nil {
		t.Fatalf("ECB encryption failed: %v", err)
	}

	if !bytes.Equal(encrypted[:16], encrypted[16:]) {
		t.Fatalf("ECB should repeat ciphertext blocks for repeated plaintext blocks")
	}
}

// TestCBCHidesRepeatedBlocks checks the chaining breaks up block repetition.
func TestCBCHidesRepeatedBlocks(t *testing.T) {
	cipher := getTestCipher(t)
	mode := &CBCMode{}

	block := testMessage(1)
	plaintext := append(append([]byte{}, block...), block...)

	encrypted, err := mode.Encrypt(cipher, testKey, plaintext, testIV)
	if err != nil {
		t.Fatalf("CBC encryption failed: %v", err)
	}

	if bytes.Equal(encrypted[:16], encrypted[16:]) {
		t.Fatalf("CBC repeated ciphertext blocks for repeated plaintext blocks")
	}
}

func TestECBRejectsPartialBlock(t *testing.T) {
	cipher := getTestCipher(t)
	mode := &ECBMode{}

	if _, err := mode.Encrypt(cipher, testKey, testMessage(2)[:20], nil); !errors.Is(err, encryption.ErrInvalidLength) {
		t.Fatalf("expected ErrInvalidLength, got %v", err)
	}
	if _, err := mode.Decrypt(cipher, testKey, testMessage(2)[:20], nil); !errors.Is(err, encryption.ErrInvalidLength) {
		t.Fatalf("expected ErrInvalidLength, got %v", err)
	}
}

func TestCBCRejectsBadIV(t *testing.T) {
	cipher := getTestCipher(t)
	mode := &CBCMode{}
	plaintext := testMessage(2)

	if _, err := mode.Encrypt(cipher, testKey, plaintext, testIV[:8]); !errors.Is(err, encryption.ErrInvalidLength) {
		t.Fatalf("short IV on encrypt: expected ErrInvalidLength, got %v", err)
	}
	if _, err := mode.Decrypt(cipher, testKey, plaintext, nil); !errors.Is(err, encryption.ErrInvalidLength) {
		t.Fatalf("missing IV on decrypt: expected ErrInvalidLength, got %v", err)
	}
	if _, err := mode.Encrypt(cipher, testKey, plaintext[:20], testIV); !errors.Is(err, encryption.ErrInvalidLength) {
		t.Fatalf("partial block: expected ErrInvalidLength, got %v", err)
	}
}

// TestCBCDifferentIVsDiverge: the same message under two IVs must not share
// a prefix.
func TestCBCDifferentIVsDiverge(t *testing.T) {
	cipher := getTestCipher(t)
	mode := &CBCMode{}
	plaintext := testMessage(3)

	otherIV := make([]byte, len(testIV))
	copy(otherIV, testIV)
	otherIV[0] = (otherIV[0] + 1) % encryption.Alphabet

	a, err := mode.Encrypt(cipher, testKey, plaintext, testIV)
	if err != nil {
		t.Fatalf("CBC encryption failed: %v", err)
	}
	b, err := mode.Encrypt(cipher, testKey, plaintext, otherIV)
	if err != nil {
		t.Fatalf("CBC encryption failed: %v", err)
	}
	if bytes.Equal(a[:16], b[:16]) {
		t.Fatalf("different IVs produced the same first ciphertext block")
	}
}

// TestECBParallelMatchesSequential pins the fan-out against a plain loop.
func TestECBParallelMatchesSequential(t *testing.T) {
	cipher := getTestCipher(t)
	mode := &ECBMode{}

	plaintext := testMessage(32)

	encrypted, err := mode.Encrypt(cipher, testKey, plaintext, nil)
	if err != nil {
		t.Fatalf("ECB encryption failed: %v", err)
	}

	want := make([]byte, 0, len(plaintext))
	for i := 0; i < len(plaintext); i += 16 {
		block, err := cipher.Encrypt(testKey, plaintext[i:i+16])
		if err != nil {
			t.Fatalf("block encryption failed: %v", err)
		}
		want = append(want, block...)
	}

	if !bytes.Equal(encrypted, want) {
		t.Fatalf("parallel ECB differs from sequential block encryption")
	}
}

func TestModesArePure(t *testing.T) {
	cipher := getTestCipher(t)
	plaintext := testMessage(4)

	for _, mode := range []Mode{&ECBMode{}, &CBCMode{}} {
		a, err := mode.Encrypt(cipher, testKey, plaintext, testIV)
		if err != nil {
			t.Fatalf("%s encryption failed: %v", mode.Name(), err)
		}
		b, err := mode.Encrypt(cipher, testKey, plaintext, testIV)
		if err != nil {
			t.Fatalf("%s encryption failed: %v", mode.Name(), err)
		}
		if !bytes.Equal(a, b) {
			t.Fatalf("%s is not deterministic for fixed inputs", mode.Name())
		}
	}
}

func TestGetMode(t *testing.T) {
	for _, name := range []string{"ECB", "CBC"} {
		mode := GetMode(name)
		if mode == nil {
			t.Fatalf("GetMode returned nil for mode: %s", name)
		}
		if mode.Name() != name {
			t.Fatalf("Mode name mismatch: expected %s, got %s", name, mode.Name())
		}
	}
	if GetMode("CTR") != nil {
		t.Fatalf("GetMode should return nil for unsupported modes")
	}

	if GetMode("ECB").RequiresIV() {
		t.Fatalf("ECB must not require an IV")
	}
	if !GetMode("CBC").RequiresIV() {
		t.Fatalf("CBC must require an IV")
	}
}
