package rijndael

import (
	"testing"

	"SPNBox"
)

func BenchmarkRijndael(b *testing.B) {
	for _, tc := range testVector {
		benchmarkRijndael(&tc, b)
	}
}

func benchmarkRijndael(tc *TestContext, b *testing.B) {
	logger := SPNBox.NewLogger(SPNBox.DEBUG)
	logger.PrintHeader(testString(tc.Name, tc.Params))
	if testing.Short() {
		b.Skip("skipping benchmark in short mode.")
	}

	var rijCipher Rijndael
	var encryptor Encryptor
	var newCiphertext SPNBox.Block
	var err error

	b.Run("Rijndael/NewRijndael", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			rijCipher, err = NewRijndael(tc.Key, tc.Params)
		}
		SPNBox.HandleError(err)
	})

	b.Run("Rijndael/NewEncryptor", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			encryptor = rijCipher.NewEncryptor()
		}
	})

	b.Run("Rijndael/Encrypt", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			newCiphertext, err = encryptor.Encrypt(tc.Plaintext)
		}
		SPNBox.HandleError(err)
		logger.PrintMemUsage("Rijndael/Encrypt")
	})

	b.Run("Rijndael/Decrypt", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, err = encryptor.Decrypt(newCiphertext)
		}
		SPNBox.HandleError(err)
		logger.PrintMemUsage("Rijndael/Decrypt")
	})
}
