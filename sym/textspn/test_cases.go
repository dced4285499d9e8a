package textspn

type TestContext struct {
	Name       string
	Params     Parameter
	Key        string
	Plaintext  string
	Ciphertext string
}

// Known-answer vectors pinned against the frozen bigram tables; a change
// to any shipped constant breaks these.
var testVector = []TestContext{
	{
		Name:       "Block-Hello",
		Params:     ParamsDefault,
		Key:        "MYSECRETAESKEYAB",
		Plaintext:  "HELLOXWORLDXTHIS",
		Ciphertext: "ACBAIKDYHZYLHAXF",
	},
	{
		Name:       "Block-Pangram",
		Params:     ParamsDefault,
		Key:        "PACKMYBOXWITHFIV",
		Plaintext:  "THEQUICKBROWNFOX",
		Ciphertext: "WWQQQOAXQYPIKRIL",
	},
}

// A three-block ECB vector: 48 letters are already block aligned, so no
// filler is appended and decryption returns the input verbatim.
var ecbVector = TestContext{
	Name:       "ECB-ThreeBlocks",
	Params:     ParamsDefault,
	Key:        "MYSECRETAESKEYAB",
	Plaintext:  "HELLOXWORLDXTHISXISXAXTESTXOFXMYXTEXTXAESXCIPHER",
	Ciphertext: "ACBAIKDYHZYLHAXFYTTSHXZBCFLHWTMUBYJJSPNEICTHEUVK",
}
