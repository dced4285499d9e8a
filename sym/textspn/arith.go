package textspn

// Symbol arithmetic over the ring of integers mod 26. Reduction is a true
// modulo: a value that would go negative wraps to the positive residue, so
// every element keeps an additive inverse and decryption stays an exact
// algebraic inverse of encryption.

func modAdd(a, b byte) byte {
	return (a + b) % AlphabetSize
}

func modSub(a, b byte) byte {
	return (a + AlphabetSize - b) % AlphabetSize
}

func modMul(a, b int) byte {
	return modReduce(a * b)
}

// modReduce maps any integer into [0,26), wrapping negative values up.
func modReduce(v int) byte {
	v %= AlphabetSize
	if v < 0 {
		v += AlphabetSize
	}
	return byte(v)
}
