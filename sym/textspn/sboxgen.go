package textspn

import (
	"encoding/binary"

	"golang.org/x/crypto/sha3"

	"SPNBox"
)

// bigramSBoxSeed pins the SHAKE128 stream the frozen tables in sbox.go
// were drawn from.
const bigramSBoxSeed = "textspn/bigram-sbox/v1"

// generateBigramSBox rebuilds the bigram permutation from the recorded
// seed: a Fisher-Yates shuffle of the identity permutation driven by
// SHAKE128, drawing two big-endian bytes per step with rejection sampling
// so each swap index stays uniform. Regeneration is an offline tooling
// concern; the cipher itself only ever reads the frozen tables.
func generateBigramSBox() SPNBox.SBox {
	shake := sha3.NewShake128()
	if _, err := shake.Write([]byte(bigramSBoxSeed)); err != nil {
		panic("Failed to init SHAKE128!")
	}

	perm := make(SPNBox.SBox, bigramSpace)
	for i := range perm {
		perm[i] = uint16(i)
	}

	var draw [2]byte
	for i := bigramSpace - 1; i > 0; i-- {
		n := uint32(i + 1)
		limit := 65536 - 65536%n
		for {
			if _, err := shake.Read(draw[:]); err != nil {
				panic("SHAKE128 squeeze failed")
			}
			v := uint32(binary.BigEndian.Uint16(draw[:]))
			if v >= limit {
				continue
			}
			j := v % n
			perm[i], perm[j] = perm[j], perm[i]
			break
		}
	}
	return perm
}
