package generator

import (
	"svw.info/mutant/internal/ports"
	"svw.info/mutant/internal/validator"
)

// RandomGenerator creates matrices of a target kind over an alphabet, using a
// provided Classifier to confirm each result.
type RandomGenerator struct {
	Classifier ports.Classifier
	Alphabet   string
}

// NewRandomGenerator wires a generator over alphabet (DefaultAlphabet when
// empty).
func NewRandomGenerator(c ports.Classifier, alphabet string) *RandomGenerator {
	if alphabet == "" {
		alphabet = validator.DefaultAlphabet
	}
	return &RandomGenerator{Classifier: c, Alphabet: alphabet}
}

// Note: The Generate method is implemented in random.go.
