package textspn

// Parameter fixes the key length in letters and the round count of one
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

// ParamsDefault is the declared mode of the text engine: a 16-letter key
// (Nk = 4) with the standard Nk+6 = 10 rounds.
var ParamsDefault = Parameter{KeySize: 16, Rounds: 10}
