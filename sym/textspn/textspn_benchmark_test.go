package textspn

import (
	"testing"

	"SPNBox"
)

func BenchmarkTextSPN(b *testing.B) {
	for _, tc := range testVector {
		benchmarkTextSPN(&tc, b)
	}
}

func benchmarkTextSPN(tc *TestContext, b *testing.B) {
	logger := SPNBox.NewLogger(SPNBox.DEBUG)
	logger.PrintHeader(testString(tc.Name, tc.Params))
	if testing.Short() {
		b.Skip("skipping benchmark in short mode.")
	}

	var tspCipher TextSPN
	var encryptor Encryptor
	var newCiphertext string
	var err error

	b.Run("TextSPN/NewTextSPN", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			tspCipher, err = NewTextSPN(tc.Key, tc.Params)
		}
		SPNBox.HandleError(err)
	})

	b.Run("TextSPN/NewEncryptor", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			encryptor = tspCipher.NewEncryptor()
		}
	})

	b.Run("TextSPN/EncryptBlock", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			newCiphertext, err = encryptor.EncryptBlock(tc.Plaintext)
		}
		SPNBox.HandleError(err)
	})

	b.Run("TextSPN/DecryptBlock", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, err = encryptor.DecryptBlock(newCiphertext)
		}
		SPNBox.HandleError(err)
	})

	b.Run("TextSPN/EncryptECB", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, err = encryptor.EncryptECB(ecbVector.Plaintext)
		}
		SPNBox.HandleError(err)
		logger.PrintMemUsage("TextSPN/EncryptECB")
	})
}
