// Package spn implements the substitution-permutation-network skeleton that
// the byte-domain rijndael engine and the mod-26 text engine share: the
// column-major 4x4 state view, row rotation, the forward/backward round
// pipeline and the generalized key schedule. Everything that distinguishes
// the two engines (symbol arithmetic, substitution tables, mixing matrices,
// round constants) is injected through the Algebra interface.
package spn

import (
	"SPNBox"
)

const (
	// BlockSize is the number of symbols in a state or round key.
	BlockSize = 16
	// WordSize is the number of symbols in a schedule word, and the side
	// of the square state view.
	WordSize = 4
)

// Algebra supplies the arithmetic and substitution strategy of one engine.
// Add and Sub combine a state symbol with a round-key symbol and must be
// exact inverses of each other. MixColumn and InvMixColumn multiply a
// 4-symbol column by the engine's mixing matrix and its inverse, in place.
// SubState and InvSubState apply the engine's substitution to a full
// 16-symbol state, in place; SubWord applies the forward substitution to a
// single schedule word. Rcon returns the first symbol of round-constant
// word j (the remaining symbols are the additive identity).
type Algebra interface {
	Add(x, k byte) byte
	Sub(x, k byte) byte
	MixColumn(col SPNBox.Word)
	InvMixColumn(col SPNBox.Word)
	SubState(state SPNBox.Block)
	InvSubState(state SPNBox.Block)
	SubWord(word SPNBox.Word)
	Rcon(j int) byte
}

// EncryptBlock runs the forward round pipeline over state, in place.
// keys holds rounds+1 round keys of BlockSize symbols each; the final
// round omits column mixing.
func EncryptBlock(alg Algebra, state SPNBox.Block, keys []SPNBox.Block) {
	last := len(keys) - 1
	addRoundKey(alg, state, keys[0])
	for r := 1; r < last; r++ {
		alg.SubState(state)
		ShiftRows(state)
		mixColumns(alg, state, false)
		addRoundKey(alg, state, keys[r])
	}
	alg.SubState(state)
	ShiftRows(state)
	addRoundKey(alg, state, keys[last])
}

// DecryptBlock runs the exact mirror of EncryptBlock: each primitive is
// inverted in the reverse order it was applied.
func DecryptBlock(alg Algebra, state SPNBox.Block, keys []SPNBox.Block) {
	last := len(keys) - 1
	subRoundKey(alg, state, keys[last])
	InvShiftRows(state)
	alg.InvSubState(state)
	for r := last - 1; r > 0; r-- {
		subRoundKey(alg, state, keys[r])
		mixColumns(alg, state, true)
		InvShiftRows(state)
		alg.InvSubState(state)
	}
	subRoundKey(alg, state, keys[0])
}

// ShiftRows rotates row r of the column-major state (row r, column c at
// index c*4+r) left by r positions. Row 0 is untouched.
func ShiftRows(state SPNBox.Block) {
	shiftRows(state, false)
}

// InvShiftRows rotates row r right by r positions.
func InvShiftRows(state SPNBox.Block) {
	shiftRows(state, true)
}

func shiftRows(state SPNBox.Block, inverse bool) {
	var row [WordSize]byte
	for r := 1; r < WordSize; r++ {
		for c := 0; c < WordSize; c++ {
			row[c] = state[c*WordSize+r]
		}
		offset := r
		if inverse {
			offset = WordSize - r
		}
		SPNBox.RotateSlice(row[:], offset)
		for c := 0; c < WordSize; c++ {
			state[c*WordSize+r] = row[c]
		}
	}
}

// mixColumns multiplies each of the 4 contiguous columns by the engine's
// mixing matrix (or its inverse).
func mixColumns(alg Algebra, state SPNBox.Block, inverse bool) {
	for c := 0; c < WordSize; c++ {
		col := SPNBox.Word(state[c*WordSize : (c+1)*WordSize])
		if inverse {
			alg.InvMixColumn(col)
		} else {
			alg.MixColumn(col)
		}
	}
}

func addRoundKey(alg Algebra, state SPNBox.Block, key SPNBox.Block) {
	for i := 0; i < BlockSize; i++ {
		state[i] = alg.Add(state[i], key[i])
	}
}

func subRoundKey(alg Algebra, state SPNBox.Block, key SPNBox.Block) {
	for i := 0; i < BlockSize; i++ {
		state[i] = alg.Sub(state[i], key[i])
	}
}
