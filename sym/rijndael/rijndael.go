// Package rijndael implements the byte-domain SPN engine: the Rijndael
// cipher over GF(2^8) with a 16-byte block, generalized to arbitrary word
// aligned key lengths and caller-supplied round counts. With the
// ParamsAES128/192/256 presets it is exactly AES. This is an unprotected
// reference implementation: no constant-time guarantees, no key zeroing.
package rijndael

import (
	"SPNBox"
	"SPNBox/sym/spn"
)

type Rijndael interface {
	NewEncryptor() Encryptor
}

type rijndael struct {
	params    Parameter
	secretKey SPNBox.Key
}

// NewRijndael returns a new instance of the rijndael cipher for the given
// key material and parameters.
func NewRijndael(secretKey SPNBox.Key, params Parameter) (Rijndael, error) {
	if len(secretKey) != params.GetKeySize() {
		return nil, KeySizeError(len(secretKey))
	}
	key := make(SPNBox.Key, len(secretKey))
	copy(key, secretKey)
	rij := &rijndael{
		params:    params,
		secretKey: key,
	}
	return rij, nil
}

func (rij *rijndael) NewEncryptor() Encryptor {
	return &encryptor{rij: *rij}
}

// algebra is the GF(2^8) strategy injected into the shared SPN skeleton.
// Round-key combination is exclusive-or, so Add and Sub coincide.
type algebra struct{}

var mixMatrix = SPNBox.Matrix{
	{0x02, 0x03, 0x01, 0x01},
	{0x01, 0x02, 0x03, 0x01},
	{0x01, 0x01, 0x02, 0x03},
	{0x03, 0x01, 0x01, 0x02},
}

var invMixMatrix = SPNBox.Matrix{
	{0x0E, 0x0B, 0x0D, 0x09},
	{0x09, 0x0E, 0x0B, 0x0D},
	{0x0D, 0x09, 0x0E, 0x0B},
	{0x0B, 0x0D, 0x09, 0x0E},
}

func (algebra) Add(x, k byte) byte {
	return gfAdd(x, k)
}

func (algebra) Sub(x, k byte) byte {
	return gfAdd(x, k)
}

func (algebra) MixColumn(col SPNBox.Word) {
	mulMatrix(col, mixMatrix)
}

func (algebra) InvMixColumn(col SPNBox.Word) {
	mulMatrix(col, invMixMatrix)
}

func mulMatrix(col SPNBox.Word, mat SPNBox.Matrix) {
	var in [spn.WordSize]byte
	copy(in[:], col)
	for r := 0; r < spn.WordSize; r++ {
		var acc byte
		for c := 0; c < spn.WordSize; c++ {
			acc = gfAdd(acc, gfMul(mat[r][c], in[c]))
		}
		col[r] = acc
	}
}

func (algebra) SubState(state SPNBox.Block) {
	for i, v := range state {
		state[i] = sBox[v]
	}
}

func (algebra) InvSubState(state SPNBox.Block) {
	for i, v := range state {
		state[i] = sBoxInverse[v]
	}
}

func (algebra) SubWord(word SPNBox.Word) {
	for i, v := range word {
		word[i] = sBox[v]
	}
}

// Rcon is 0x01 doubled j-1 times in the field: 01, 02, 04, 08, 10, ...
func (algebra) Rcon(j int) byte {
	rc := byte(0x01)
	for i := 1; i < j; i++ {
		rc = gfMul(rc, 0x02)
	}
	return rc
}
