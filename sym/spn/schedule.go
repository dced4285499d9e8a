package spn

import (
	"SPNBox"
)

// ExpandKey derives rounds+1 round keys of BlockSize symbols from key using
// the generalized Rijndael schedule. The key length fixes Nk = len(key)/4.
//
// Word i is copied from the key for i < Nk. For i >= Nk:
//
//	i%Nk == 0          W[i] = W[i-Nk] + SubWord(RotWord(W[i-1])) + Rcon(i/Nk)
//	Nk > 6, i%Nk == 4  W[i] = W[i-Nk] + SubWord(W[i-1])
//	otherwise          W[i] = W[i-Nk] + W[i-1]
//
// where + is the engine's Add applied symbol-wise. The schedule is derived
// from scratch on every call; its length depends on rounds, so schedules
// must not be reused across different round counts.
//
// Engines validate key material before calling; a key that is not a whole
// number of words or a round count below one is a programming error and
// panics.
func ExpandKey(alg Algebra, key SPNBox.Key, rounds int) []SPNBox.Block {
	if len(key) == 0 || len(key)%WordSize != 0 {
		panic("spn: key is not a whole number of words")
	}
	if rounds < 1 {
		panic("spn: round count must be positive")
	}

	nk := len(key) / WordSize
	total := WordSize * (rounds + 1)

	w := make([]SPNBox.Word, total)
	for i := 0; i < nk && i < total; i++ {
		w[i] = make(SPNBox.Word, WordSize)
		copy(w[i], key[i*WordSize:(i+1)*WordSize])
	}

	temp := make(SPNBox.Word, WordSize)
	for i := nk; i < total; i++ {
		copy(temp, w[i-1])
		if i%nk == 0 {
			// RotWord: left-rotate the 4 symbols by one position.
			SPNBox.RotateSlice(temp, 1)
			alg.SubWord(temp)
			temp[0] = alg.Add(temp[0], alg.Rcon(i/nk))
		} else if nk > 6 && i%nk == 4 {
			alg.SubWord(temp)
		}
		w[i] = make(SPNBox.Word, WordSize)
		for j := 0; j < WordSize; j++ {
			w[i][j] = alg.Add(w[i-nk][j], temp[j])
		}
	}

	// Word c of round r becomes column c of round key r.
	keys := make([]SPNBox.Block, rounds+1)
	for r := range keys {
		keys[r] = make(SPNBox.Block, BlockSize)
		for c := 0; c < WordSize; c++ {
			copy(keys[r][c*WordSize:(c+1)*WordSize], w[r*WordSize+c])
		}
	}
	return keys
}
