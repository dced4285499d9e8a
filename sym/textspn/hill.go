package textspn

import (
	"SPNBox"
	"SPNBox/sym/spn"
)

// Column mixing uses a Hill-cipher matrix over Z/26Z in place of the
// GF(2^8) circulant. The inverse is the circulant with first row
// [14 9 19 25]: det(hillMatrix) = 17 mod 26, and 17*23 = 1 mod 26. Their
// product is the identity, which init verifies once at startup.

var hillMatrix = SPNBox.Matrix{
	{2, 3, 1, 1},
	{1, 2, 3, 1},
	{1, 1, 2, 3},
	{3, 1, 1, 2},
}

var invHillMatrix = SPNBox.Matrix{
	{14, 9, 19, 25},
	{25, 14, 9, 19},
	{19, 25, 14, 9},
	{9, 19, 25, 14},
}

func mulHill(col SPNBox.Word, mat SPNBox.Matrix) {
	var in [spn.WordSize]byte
	copy(in[:], col)
	for r := 0; r < spn.WordSize; r++ {
		acc := 0
		for c := 0; c < spn.WordSize; c++ {
			acc += int(mat[r][c]) * int(in[c])
		}
		col[r] = modReduce(acc)
	}
}

func init() {
	for r := 0; r < spn.WordSize; r++ {
		for c := 0; c < spn.WordSize; c++ {
			acc := 0
			for k := 0; k < spn.WordSize; k++ {
				acc += int(hillMatrix[r][k]) * int(invHillMatrix[k][c])
			}
			want := byte(0)
			if r == c {
				want = 1
			}
			if modReduce(acc) != want {
				panic("textspn: Hill matrices are not inverse under mod-26 arithmetic")
			}
		}
	}
}
