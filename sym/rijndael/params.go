package rijndael

import (
	"fmt"

	"SPNBox/sym/spn"
)

// Parameter fixes the key length in bytes and the round count of one
// cipher instance.
type Parameter struct {
	KeySize int
	Rounds  int
}

func (params Parameter) GetKeySize() int {
	return params.KeySize
}
func (params Parameter) GetRounds() int {
	return params.Rounds
}

// Declared standard modes, with the usual Nk+6 round counts.
var (
	ParamsAES128 = Parameter{KeySize: 16, Rounds: 10}
	ParamsAES192 = Parameter{KeySize: 24, Rounds: 12}
	ParamsAES256 = Parameter{KeySize: 32, Rounds: 14}
)

// NewParameter builds an extended-mode parameter set for a non-standard key
// length with a caller-supplied round count. The Nk+6 relationship is not
// enforced; a round count that matches no cipher standard is the caller's
// risk.
func NewParameter(keySize, rounds int) (Parameter, error) {
	if keySize < spn.BlockSize || keySize%spn.WordSize != 0 {
		return Parameter{}, fmt.Errorf("rijndael: key size %d is not a whole number of words of at least %d bytes", keySize, spn.BlockSize)
	}
	if rounds < 1 {
		return Parameter{}, fmt.Errorf("rijndael: round count %d must be positive", rounds)
	}
	return Parameter{KeySize: keySize, Rounds: rounds}, nil
}
