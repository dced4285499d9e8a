package SPNBox

import (
	"fmt"
	"strings"
)

// BytesToHex renders a byte sequence as contiguous uppercase hex pairs.
// Display helper only, not part of the cipher contract.
func BytesToHex(data []byte) string {
	var sb strings.Builder
	for _, v := range data {
		_, err := fmt.Fprintf(&sb, "%02X", v)
		HandleError(err)
	}
	return sb.String()
}

// RotateSlice to rotate a slice left by a given offset
func RotateSlice(slice []byte, offset int) {
	l := len(slice)
	if l == 0 {
		return
	}

	// Normalize offset to be within the slice's length
	offset = ((offset % l) + l) % l
	// Rotate the slice elements
	Reverse(slice[:offset])
	Reverse(slice[offset:])
	Reverse(slice)
}

// Reverse to reverse a slice
func Reverse(slice []byte) {
	for i, j := 0, len(slice)-1; i < j; i, j = i+1, j-1 {
		slice[i], slice[j] = slice[j], slice[i]
	}
}
