package SPNBox

type Key []byte
type Block []byte
type Word []byte
type Matrix [][]byte
type SBox []uint16
