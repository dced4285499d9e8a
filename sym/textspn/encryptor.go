package textspn

import (
	"strconv"

	"github.com/tuneinsight/lattigo/v4/utils/sampling"

	"SPNBox"
	"SPNBox/sym/spn"
)

type Encryptor interface {
	EncryptBlock(plaintext string) (string, error)
	DecryptBlock(ciphertext string) (string, error)
	EncryptECB(plaintext string) (string, error)
	DecryptECB(ciphertext string) (string, error)
}

type encryptor struct {
	tsp textSPN
}

type KeySizeError int

func (k KeySizeError) Error() string {
	return "textspn: invalid key size " + strconv.Itoa(int(k))
}

type BlockSizeError int

func (b BlockSizeError) Error() string {
	return "textspn: invalid block size " + strconv.Itoa(int(b))
}

// EncryptBlock transforms exactly 16 letters. The round-key schedule is
// derived from the raw key on every call and discarded afterwards.
func (enc encryptor) EncryptBlock(plaintext string) (string, error) {
	if len(plaintext) != spn.BlockSize {
		return "", BlockSizeError(len(plaintext))
	}
	state, err := toSymbols(plaintext)
	if err != nil {
		return "", err
	}
	enc.cryptState(state, false)
	return toLetters(state), nil
}

// DecryptBlock is the exact inverse of EncryptBlock.
func (enc encryptor) DecryptBlock(ciphertext string) (string, error) {
	if len(ciphertext) != spn.BlockSize {
		return "", BlockSizeError(len(ciphertext))
	}
	state, err := toSymbols(ciphertext)
	if err != nil {
		return "", err
	}
	enc.cryptState(state, true)
	return toLetters(state), nil
}

// EncryptECB pads the plaintext on the right with 'X' up to the next
// multiple of the block size, then encrypts each block independently
// under the same key.
func (enc encryptor) EncryptECB(plaintext string) (string, error) {
	symbols, err := toSymbols(plaintext)
	if err != nil {
		return "", err
	}
	for len(symbols)%spn.BlockSize != 0 {
		symbols = append(symbols, padSymbol)
	}
	for off := 0; off < len(symbols); off += spn.BlockSize {
		enc.cryptState(symbols[off:off+spn.BlockSize], false)
	}
	return toLetters(symbols), nil
}

// DecryptECB decrypts block-wise. The ciphertext length must already be a
// multiple of the block size; padding is never stripped, so the filler
// letters remain visible in the decrypted plaintext.
func (enc encryptor) DecryptECB(ciphertext string) (string, error) {
	if len(ciphertext)%spn.BlockSize != 0 {
		return "", BlockSizeError(len(ciphertext))
	}
	symbols, err := toSymbols(ciphertext)
	if err != nil {
		return "", err
	}
	for off := 0; off < len(symbols); off += spn.BlockSize {
		enc.cryptState(symbols[off:off+spn.BlockSize], true)
	}
	return toLetters(symbols), nil
}

// cryptState runs one block through the pipeline in place. Each block
// re-derives its own schedule; nothing is cached across blocks.
func (enc encryptor) cryptState(state SPNBox.Block, decrypt bool) {
	keys := spn.ExpandKey(algebra{}, enc.tsp.secretKey, enc.tsp.params.GetRounds())
	if decrypt {
		spn.DecryptBlock(algebra{}, state, keys)
	} else {
		spn.EncryptBlock(algebra{}, state, keys)
	}
}

// GenerateRandomKey draws 16 letters uniformly from the alphabet, backed
// by a keyed blake2b XOF seeded from crypto/rand. A convenience for tests
// and demos, not a key-derivation function.
func GenerateRandomKey() (string, error) {
	prng, err := sampling.NewPRNG()
	if err != nil {
		return "", err
	}

	key := make(SPNBox.Block, spn.BlockSize)
	var draw [1]byte
	for i := 0; i < len(key); {
		if _, err := prng.Read(draw[:]); err != nil {
			return "", err
		}
		// rejection sampling: 234 is the largest multiple of 26 below 256
		if draw[0] >= 234 {
			continue
		}
		key[i] = draw[0] % AlphabetSize
		i++
	}
	return toLetters(key), nil
}
