package padding

import (
	"bytes"
	"testing"
)

func TestBlockCountPadding(t *testing.T) {
	padder := &BlockCountPadding{}

	data := []byte{0, 1, 2, 3, 4}
	padded := padder.Pad(data, 8)
	if len(padded) != 8 {
		t.Fatalf("expected padded length 8, got %d", len(padded))
	}
	for _, s := range padded[5:] {
		if s != 3 {
			t.Fatalf("expected pad symbol 3, got %d", s)
		}
	}

	unpadded, err := padder.Unpad(padded)
	if err != nil {
		t.Fatalf("Unpad failed: %v", err)
	}
	if !bytes.Equal(unpadded, data) {
		t.Fatalf("round-trip mismatch: expected %v, got %v", data, unpadded)
	}
}

// A whole-block message still gains a full block of padding, so Unpad can
// never mistake real symbols for pad symbols.
func TestBlockCountPaddingFullBlock(t *testing.T) {
	padder := &BlockCountPadding{}

	data := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	padded := padder.Pad(data, 8)
	if len(padded) != 16 {
		t.Fatalf("expected padded length 16, got %d", len(padded))
	}

	unpadded, err := padder.Unpad(padded)
	if err != nil {
		t.Fatalf("Unpad failed: %v", err)
	}
	if !bytes.Equal(unpadded, data) {
		t.Fatalf("round-trip mismatch: expected %v, got %v", data, unpadded)
	}
}

func TestBlockCountUnpadRejectsCorruption(t *testing.T) {
	padder := &BlockCountPadding{}

	cases := []struct {
		name string
		data []byte
	}{
		{"empty", []byte{}},
		{"zero pad length", []byte{1, 2, 0}},
		{"pad length exceeds data", []byte{1, 5}},
		{"inconsistent pad symbols", []byte{1, 2, 3, 2, 3, 3}},
		{"pad length at alphabet size", []byte{1, 2, 26}},
	}
	for _, tc := range cases {
		if _, err := padder.Unpad(tc.data); err == nil {
			t.Fatalf("%s: expected error, got none", tc.name)
		}
	}
}

func TestXPadding(t *testing.T) {
	padder := &XPadding{}

	data := []byte{0, 1, 2, 3, 4}
	padded := padder.Pad(data, 8)
	if len(padded) != 8 {
		t.Fatalf("expected padded length 8, got %d", len(padded))
	}
	for _, s := range padded[5:] {
		if s != xSymbol {
			t.Fatalf("expected pad symbol %d, got %d", xSymbol, s)
		}
	}

	unpadded, err := padder.Unpad(padded)
	if err != nil {
		t.Fatalf("Unpad failed: %v", err)
	}
	if !bytes.Equal(unpadded, data) {
		t.Fatalf("round-trip mismatch: expected %v, got %v", data, unpadded)
	}
}

func TestXPaddingWholeBlockUnchanged(t *testing.T) {
	padder := &XPadding{}

	data := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	padded := padder.Pad(data, 8)
	if !bytes.Equal(padded, data) {
		t.Fatalf("whole-block message should not be padded: got %v", padded)
	}
}

// X fill is lossy: trailing X symbols in the real message are stripped too.
func TestXPaddingLossyTrailingX(t *testing.T) {
	padder := &XPadding{}

	data := []byte{5, 6, xSymbol}
	padded := padder.Pad(data, 4)

	unpadded, err := padder.Unpad(padded)
	if err != nil {
		t.Fatalf("Unpad failed: %v", err)
	}
	if !bytes.Equal(unpadded, []byte{5, 6}) {
		t.Fatalf("expected trailing X to be stripped, got %v", unpadded)
	}
}

func TestGetPadder(t *testing.T) {
	for _, name := range []string{"BLOCK_COUNT", "X_FILL"} {
		padder := GetPadder(name)
		if padder == nil {
			t.Fatalf("GetPadder returned nil for: %s", name)
		}
		if padder.Name() != name {
			t.Fatalf("Padder name mismatch: expected %s, got %s", name, padder.Name())
		}
	}
	if GetPadder("ZERO") != nil {
		t.Fatalf("GetPadder should return nil for unsupported padding")
	}
}
