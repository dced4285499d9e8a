package rijndael

import (
	"encoding/hex"

	"SPNBox"
)

type TestContext struct {
	Name       string
	Params     Parameter
	Key        SPNBox.Key
	Plaintext  SPNBox.Block
	Ciphertext SPNBox.Block
}

func mustHex(s string) []byte {
	data, err := hex.DecodeString(s)
	SPNBox.HandleError(err)
	return data
}

// Known-answer vectors: the all-zero AES-128 vector plus the FIPS-197
// appendix C examples for the three declared key lengths, and one
// extended-mode vector (512-bit key, 22 rounds) pinned against this
// implementation so the non-standard mode cannot drift silently.
var testVector = []TestContext{
	{
		Name:       "AES128-AllZero",
		Params:     ParamsAES128,
		Key:        mustHex("00000000000000000000000000000000"),
		Plaintext:  mustHex("00000000000000000000000000000000"),
		Ciphertext: mustHex("66E94BD4EF8A2C3B884CFA59CA342B2E"),
	},
	{
		Name:       "AES128-FIPS197",
		Params:     ParamsAES128,
		Key:        mustHex("000102030405060708090A0B0C0D0E0F"),
		Plaintext:  mustHex("00112233445566778899AABBCCDDEEFF"),
		Ciphertext: mustHex("69C4E0D86A7B0430D8CDB78070B4C55A"),
	},
	{
		Name:       "AES192-FIPS197",
		Params:     ParamsAES192,
		Key:        mustHex("000102030405060708090A0B0C0D0E0F1011121314151617"),
		Plaintext:  mustHex("00112233445566778899AABBCCDDEEFF"),
		Ciphertext: mustHex("DDA97CA4864CDFE06EAF70A0EC0D7191"),
	},
	{
		Name:       "AES256-FIPS197",
		Params:     ParamsAES256,
		Key:        mustHex("000102030405060708090A0B0C0D0E0F101112131415161718191A1B1C1D1E1F"),
		Plaintext:  mustHex("00112233445566778899AABBCCDDEEFF"),
		Ciphertext: mustHex("8EA2B7CA516745BFEAFC49904B496089"),
	},
	{
		Name:   "Extended512-R22",
		Params: Parameter{KeySize: 64, Rounds: 22},
		Key: mustHex("000102030405060708090A0B0C0D0E0F101112131415161718191A1B1C1D1E1F" +
			"202122232425262728292A2B2C2D2E2F303132333435363738393A3B3C3D3E3F"),
		Plaintext:  mustHex("00112233445566778899AABBCCDDEEFF"),
		Ciphertext: mustHex("D0CE9A7BB9F617EABA289269C04F4399"),
	},
}
