package encryption

// AddMod26 adds two symbol vectors element-wise modulo 26. It stands in for
// the bitwise XOR found in binary ciphers. Inputs need not already be reduced;
// the output always is.
func AddMod26(a, b []byte) ([]byte, error) {
	if len(a) != len(b) {
		return nil, LengthError("add: vectors must have equal length, got %d and %d", len(a), len(b))
	}

	out := make([]byte, len(a))
	for i := range a {
		out[i] = (a[i]%Alphabet + b[i]%Alphabet) % Alphabet
	}
	return out, nil
}

// SubMod26 subtracts b from a element-wise modulo 26. It is the exact inverse
// of AddMod26. The conditional +26 keeps the byte subtraction from wrapping,
// so the result is always in [0,25].
func SubMod26(a, b []byte) ([]byte, error) {
	if len(a) != len(b) {
		return nil, LengthError("sub: vectors must have equal length, got %d and %d", len(a), len(b))
	}

	out := make([]byte, len(a))
	for i := range a {
		x := a[i] % Alphabet
		y := b[i] % Alphabet
		if x < y {
			x += Alphabet
		}
		out[i] = x - y
	}
	return out, nil
}

// rotateRight rotates a symbol vector right by n positions, returning a new
// vector. Negative n rotates left.
func rotateRight(v []byte, n int) []byte {
	size := len(v)
	out := make([]byte, size)
	n = ((n % size) + size) % size
	for i, s := range v {
		out[(i+n)%size] = s
	}
	return out
}
