package textspn

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"SPNBox"
	"SPNBox/sym/spn"
)

func testString(opName string, p Parameter) string {
	return fmt.Sprintf("%s/KeySize=%d/Rounds=%d", opName, p.GetKeySize(), p.GetRounds())
}

func newEncryptor(t *testing.T, key string) Encryptor {
	t.Helper()
	tspCipher, err := NewTextSPN(key, ParamsDefault)
	require.NoError(t, err)
	return tspCipher.NewEncryptor()
}

func TestTextSPNKnownVectors(t *testing.T) {
	logger := SPNBox.NewLogger(SPNBox.DEBUG)
	for _, tc := range testVector {
		t.Run(testString(tc.Name, tc.Params), func(t *testing.T) {
			encryptor := newEncryptor(t, tc.Key)

			ciphertext, err := encryptor.EncryptBlock(tc.Plaintext)
			require.NoError(t, err)
			assert.Equal(t, tc.Ciphertext, ciphertext)

			plaintext, err := encryptor.DecryptBlock(ciphertext)
			require.NoError(t, err)
			assert.Equal(t, tc.Plaintext, plaintext)
			logger.PrintFormatted("%s -> %s", tc.Plaintext, ciphertext)
		})
	}
}

func TestTextSPNRoundTrip(t *testing.T) {
	for i := 0; i < 32; i++ {
		key, err := GenerateRandomKey()
		require.NoError(t, err)
		plaintext, err := GenerateRandomKey() // any 16 uniform letters will do
		require.NoError(t, err)

		encryptor := newEncryptor(t, key)
		ciphertext, err := encryptor.EncryptBlock(plaintext)
		require.NoError(t, err)
		decrypted, err := encryptor.DecryptBlock(ciphertext)
		require.NoError(t, err)
		assert.Equal(t, plaintext, decrypted)
	}
}

func TestTextSPNKeyIndependence(t *testing.T) {
	key1, err := GenerateRandomKey()
	require.NoError(t, err)
	key2, err := GenerateRandomKey()
	require.NoError(t, err)
	require.NotEqual(t, key1, key2)

	const plaintext = "HELLOXWORLDXTHIS"
	ct1, err := newEncryptor(t, key1).EncryptBlock(plaintext)
	require.NoError(t, err)
	ct2, err := newEncryptor(t, key2).EncryptBlock(plaintext)
	require.NoError(t, err)
	assert.NotEqual(t, ct1, ct2)
}

func TestTextSPNECBVector(t *testing.T) {
	tc := ecbVector
	encryptor := newEncryptor(t, tc.Key)

	ciphertext, err := encryptor.EncryptECB(tc.Plaintext)
	require.NoError(t, err)
	assert.Equal(t, tc.Ciphertext, ciphertext)

	// 48 letters are already block aligned: no filler appended.
	plaintext, err := encryptor.DecryptECB(ciphertext)
	require.NoError(t, err)
	assert.Equal(t, tc.Plaintext, plaintext)
}

func TestTextSPNECBPadding(t *testing.T) {
	encryptor := newEncryptor(t, "MYSECRETAESKEYAB")

	// 63 letters need exactly one filler 'X' to reach 64; the filler is
	// part of the decrypted plaintext, never stripped.
	input := strings.Repeat("HELLOWORLDABCDEFGHIJK", 3)
	require.Len(t, input, 63)

	ciphertext, err := encryptor.EncryptECB(input)
	require.NoError(t, err)
	require.Len(t, ciphertext, 64)

	plaintext, err := encryptor.DecryptECB(ciphertext)
	require.NoError(t, err)
	assert.Equal(t, input+"X", plaintext)
}

func TestTextSPNECBLengthValidation(t *testing.T) {
	encryptor := newEncryptor(t, "MYSECRETAESKEYAB")
	for _, n := range []int{1, 15, 17, 63} {
		_, err := encryptor.DecryptECB(strings.Repeat("A", n))
		assert.ErrorIs(t, err, BlockSizeError(n))
	}
}

func TestTextSPNBlockLengthValidation(t *testing.T) {
	encryptor := newEncryptor(t, "MYSECRETAESKEYAB")
	for _, n := range []int{0, 15, 17} {
		input := strings.Repeat("A", n)
		_, err := encryptor.EncryptBlock(input)
		assert.ErrorIs(t, err, BlockSizeError(n))
		_, err = encryptor.DecryptBlock(input)
		assert.ErrorIs(t, err, BlockSizeError(n))
	}
}

func TestTextSPNInvalidSymbols(t *testing.T) {
	encryptor := newEncryptor(t, "MYSECRETAESKEYAB")
	for _, input := range []string{"helloxworldxthis", "HELLO WORLD THIS", "HELLO1WORLD2THIS"} {
		_, err := encryptor.EncryptBlock(input)
		assert.Error(t, err)
		var symErr InvalidSymbolError
		assert.ErrorAs(t, err, &symErr)
	}

	_, err := NewTextSPN("MYSECRETAESKEY-!", ParamsDefault)
	assert.Error(t, err)
}

func TestTextSPNKeySizeError(t *testing.T) {
	_, err := NewTextSPN("TOOSHORT", ParamsDefault)
	assert.ErrorIs(t, err, KeySizeError(8))
}

func TestGenerateRandomKey(t *testing.T) {
	key, err := GenerateRandomKey()
	require.NoError(t, err)
	require.Len(t, key, spn.BlockSize)
	for i := 0; i < len(key); i++ {
		assert.True(t, key[i] >= 'A' && key[i] <= 'Z')
	}
}

func TestBigramSBoxIsPermutation(t *testing.T) {
	var seen [bigramSpace]bool
	for i := 0; i < bigramSpace; i++ {
		v := bigramSBox[i]
		require.Less(t, int(v), bigramSpace)
		assert.False(t, seen[v])
		seen[v] = true
		assert.Equal(t, uint16(i), bigramSBoxInverse[v])
	}
}

func TestBigramSBoxMatchesGenerator(t *testing.T) {
	// The frozen tables must stay bit-exact reproductions of the recorded
	// SHAKE128 draw.
	assert.Equal(t, generateBigramSBox(), bigramSBox)
}

func TestHillMatrixInverseLaw(t *testing.T) {
	alg := algebra{}
	for a := 0; a < AlphabetSize; a++ {
		col := SPNBox.Word{byte(a), byte((a * 7) % 26), byte((a * 11) % 26), byte((a * 17) % 26)}
		want := make(SPNBox.Word, spn.WordSize)
		copy(want, col)
		alg.MixColumn(col)
		alg.InvMixColumn(col)
		assert.Equal(t, want, col)
	}
}

func TestRoundKeyCombinationAsymmetry(t *testing.T) {
	alg := algebra{}
	for x := byte(0); x < AlphabetSize; x++ {
		for k := byte(0); k < AlphabetSize; k++ {
			assert.Equal(t, x, alg.Sub(alg.Add(x, k), k))
		}
	}
}

func TestRconCyclesThroughAlphabet(t *testing.T) {
	alg := algebra{}
	assert.Equal(t, byte(0), alg.Rcon(1)) // A
	assert.Equal(t, byte(1), alg.Rcon(2)) // B
	assert.Equal(t, byte(25), alg.Rcon(26))
	assert.Equal(t, byte(0), alg.Rcon(27)) // cycles back to A
}
