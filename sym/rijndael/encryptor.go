package rijndael

import (
	"strconv"

	"SPNBox"
	"SPNBox/sym/spn"
)

type Encryptor interface {
	Encrypt(plaintext SPNBox.Block) (SPNBox.Block, error)
	Decrypt(ciphertext SPNBox.Block) (SPNBox.Block, error)
}

type encryptor struct {
	rij rijndael
}

type KeySizeError int

func (k KeySizeError) Error() string {
	return "rijndael: invalid key size " + strconv.Itoa(int(k))
}

type BlockSizeError int

func (b BlockSizeError) Error() string {
	return "rijndael: invalid block size " + strconv.Itoa(int(b))
}

// Encrypt transforms one 16-byte block. The round-key schedule is derived
// from the raw key on every call and discarded afterwards.
func (enc encryptor) Encrypt(plaintext SPNBox.Block) (SPNBox.Block, error) {
	if len(plaintext) != spn.BlockSize {
		return nil, BlockSizeError(len(plaintext))
	}
	keys := spn.ExpandKey(algebra{}, enc.rij.secretKey, enc.rij.params.GetRounds())
	state := make(SPNBox.Block, spn.BlockSize)
	copy(state, plaintext)
	spn.EncryptBlock(algebra{}, state, keys)
	return state, nil
}

// Decrypt is the exact inverse of Encrypt.
func (enc encryptor) Decrypt(ciphertext SPNBox.Block) (SPNBox.Block, error) {
	if len(ciphertext) != spn.BlockSize {
		return nil, BlockSizeError(len(ciphertext))
	}
	keys := spn.ExpandKey(algebra{}, enc.rij.secretKey, enc.rij.params.GetRounds())
	state := make(SPNBox.Block, spn.BlockSize)
	copy(state, ciphertext)
	spn.DecryptBlock(algebra{}, state, keys)
	return state, nil
}
