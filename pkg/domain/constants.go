package domain

// Mode selects the kind of arrangement being enumerated.
type Mode string

const (
	ModePermutation Mode = "permutation"
	ModeCombination Mode = "combination"
	ModeWord        Mode = "word"
	// ModeProduct enumerates sequences with repetition (N^k per length).
	ModeProduct Mode = "product"
)

// Stage names a step of the filter pipeline. It is reported for every rejection.
type Stage string

const (
	StageNone       Stage = ""
	StagePattern    Stage = "pattern"
	StageLength     Stage = "length"
	StageUnique     Stage = "unique"
	StageDictionary Stage = "dictionary"
)

// DefaultSearchAlphabet is used by Search when no letters are supplied.
const DefaultSearchAlphabet = "abcdefghijklmnopqrstuvwxyz"
