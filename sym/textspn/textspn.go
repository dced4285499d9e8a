// Package textspn implements the 26-letter sibling of the rijndael engine:
// the same SPN skeleton (round sequencing, key schedule, row rotation)
// applied to symbols 0..25, with Galois-field arithmetic replaced by
// integer arithmetic mod 26. Substitution works on bigrams through a
// frozen 676-entry permutation, column mixing is a Hill-cipher matrix, and
// round-key combination is the Vigenere analogue of XOR: modular addition
// forward, modular subtraction backward. A classroom cipher, not a secure
// one.
package textspn

import (
	"SPNBox"
)

type TextSPN interface {
	NewEncryptor() Encryptor
}

type textSPN struct {
	params    Parameter
	secretKey SPNBox.Key
}

// NewTextSPN returns a new instance of the text cipher for the given key
// letters and parameters.
func NewTextSPN(secretKey string, params Parameter) (TextSPN, error) {
	if len(secretKey) != params.GetKeySize() {
		return nil, KeySizeError(len(secretKey))
	}
	key, err := toSymbols(secretKey)
	if err != nil {
		return nil, err
	}
	tsp := &textSPN{
		params:    params,
		secretKey: SPNBox.Key(key),
	}
	return tsp, nil
}

func (tsp *textSPN) NewEncryptor() Encryptor {
	return &encryptor{tsp: *tsp}
}

// algebra is the mod-26 strategy injected into the shared SPN skeleton.
// Unlike the byte engine, Add and Sub are distinct operations.
type algebra struct{}

func (algebra) Add(x, k byte) byte {
	return modAdd(x, k)
}

func (algebra) Sub(x, k byte) byte {
	return modSub(x, k)
}

func (algebra) MixColumn(col SPNBox.Word) {
	mulHill(col, hillMatrix)
}

func (algebra) InvMixColumn(col SPNBox.Word) {
	mulHill(col, invHillMatrix)
}

func (algebra) SubState(state SPNBox.Block) {
	subBigrams(state, bigramSBox)
}

func (algebra) InvSubState(state SPNBox.Block) {
	subBigrams(state, bigramSBoxInverse)
}

func (algebra) SubWord(word SPNBox.Word) {
	subBigrams(SPNBox.Block(word), bigramSBox)
}

// Rcon encodes round index j as the j-th letter of the alphabet, cycling
// A, B, C, ... The remaining word symbols are zero.
func (algebra) Rcon(j int) byte {
	return modReduce(j - 1)
}

// subBigrams substitutes each adjacent pair independently and in place:
// pair (a,b) is encoded as a*26+b, looked up, and decoded back.
func subBigrams(state SPNBox.Block, table SPNBox.SBox) {
	for p := 0; p+1 < len(state); p += 2 {
		v := table[int(state[p])*AlphabetSize+int(state[p+1])]
		state[p] = byte(v / AlphabetSize)
		state[p+1] = byte(v % AlphabetSize)
	}
}
