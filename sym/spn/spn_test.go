package spn

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"SPNBox"
)

// testAlgebra is a deliberately trivial strategy: byte-wrapping add and
// subtract, a shift-by-37 substitution and a column rotation for mixing.
// Every piece is invertible, so the skeleton's ordering is the only thing
// under test.
type testAlgebra struct{}

func (testAlgebra) Add(x, k byte) byte { return x + k }
func (testAlgebra) Sub(x, k byte) byte { return x - k }

func (testAlgebra) MixColumn(col SPNBox.Word)    { SPNBox.RotateSlice(col, 1) }
func (testAlgebra) InvMixColumn(col SPNBox.Word) { SPNBox.RotateSlice(col, 3) }

func (testAlgebra) SubState(state SPNBox.Block) {
	for i := range state {
		state[i] += 37
	}
}
func (testAlgebra) InvSubState(state SPNBox.Block) {
	for i := range state {
		state[i] -= 37
	}
}
func (testAlgebra) SubWord(word SPNBox.Word) {
	for i := range word {
		word[i] += 37
	}
}

func (testAlgebra) Rcon(j int) byte { return byte(j) }

func TestShiftRowsLayout(t *testing.T) {
	state := make(SPNBox.Block, BlockSize)
	for i := range state {
		state[i] = byte(i)
	}
	ShiftRows(state)

	// Row r of the column-major view is rotated left by r: position
	// (r, c) now holds the symbol that sat at (r, c+r).
	for r := 0; r < WordSize; r++ {
		for c := 0; c < WordSize; c++ {
			want := byte(((c+r)%WordSize)*WordSize + r)
			assert.Equal(t, want, state[c*WordSize+r])
		}
	}
}

func TestShiftRowsInverse(t *testing.T) {
	state := make(SPNBox.Block, BlockSize)
	for i := range state {
		state[i] = byte(rand.Intn(256))
	}
	want := make(SPNBox.Block, BlockSize)
	copy(want, state)

	ShiftRows(state)
	assert.NotEqual(t, want, state)
	InvShiftRows(state)
	assert.Equal(t, want, state)
}

func TestExpandKeyShape(t *testing.T) {
	for _, keySize := range []int{16, 24, 32, 64} {
		for _, rounds := range []int{1, 10, 22} {
			t.Run(fmt.Sprintf("KeySize=%d/Rounds=%d", keySize, rounds), func(t *testing.T) {
				key := make(SPNBox.Key, keySize)
				for i := range key {
					key[i] = byte(i * 3)
				}
				keys := ExpandKey(testAlgebra{}, key, rounds)
				require.Len(t, keys, rounds+1)
				for _, rk := range keys {
					assert.Len(t, rk, BlockSize)
				}
				// The first Nk words are the key itself.
				nk := keySize / WordSize
				for i := 0; i < nk && i < WordSize*(rounds+1); i++ {
					word := keys[i/WordSize][(i%WordSize)*WordSize : (i%WordSize+1)*WordSize]
					assert.Equal(t, SPNBox.Block(key[i*WordSize:(i+1)*WordSize]), word)
				}
			})
		}
	}
}

func TestExpandKeyRejectsBadInput(t *testing.T) {
	assert.Panics(t, func() { ExpandKey(testAlgebra{}, make(SPNBox.Key, 15), 10) })
	assert.Panics(t, func() { ExpandKey(testAlgebra{}, nil, 10) })
	assert.Panics(t, func() { ExpandKey(testAlgebra{}, make(SPNBox.Key, 16), 0) })
}

func TestPipelineRoundTrip(t *testing.T) {
	alg := testAlgebra{}
	for _, rounds := range []int{1, 2, 7, 14} {
		t.Run(fmt.Sprintf("Rounds=%d", rounds), func(t *testing.T) {
			key := make(SPNBox.Key, 16)
			state := make(SPNBox.Block, BlockSize)
			for i := range key {
				key[i] = byte(rand.Intn(256))
			}
			for i := range state {
				state[i] = byte(rand.Intn(256))
			}
			want := make(SPNBox.Block, BlockSize)
			copy(want, state)

			keys := ExpandKey(alg, key, rounds)
			EncryptBlock(alg, state, keys)
			assert.NotEqual(t, want, state)
			DecryptBlock(alg, state, keys)
			assert.Equal(t, want, state)
		})
	}
}
