package rijndael

// reducingPolynomial is x^8+x^4+x^3+x+1 with the x^8 term implicit.
const reducingPolynomial = 0x1B

// gfAdd is addition in GF(2^8): bit-wise exclusive-or.
func gfAdd(a, b byte) byte {
	return a ^ b
}

// gfMul multiplies two field elements as polynomials over GF(2), reduced
// modulo the Rijndael polynomial after every doubling.
func gfMul(a, b byte) byte {
	var result byte
	for i := 0; i < 8; i++ {
		if b&1 == 1 {
			result ^= a
		}
		highBit := a & 0x80
		a <<= 1
		if highBit != 0 {
			a ^= reducingPolynomial
		}
		b >>= 1
	}
	return result
}
