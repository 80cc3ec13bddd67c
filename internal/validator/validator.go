package validator

import (
	"context"
	"fmt"

	"svw.info/mutant/internal/classifier"
	"svw.info/mutant/internal/domain"
)

// DefaultAlphabet holds the four nitrogenous bases.
const DefaultAlphabet = "ATCG"

type FastValidator struct {
	allowed [256]bool
}

// New builds a validator accepting only the bytes of alphabet. An empty
// alphabet falls back to DefaultAlphabet.
func New(alphabet string) *FastValidator {
	if alphabet == "" {
		alphabet = DefaultAlphabet
	}
	v := &FastValidator{}
	for i := 0; i < len(alphabet); i++ {
		v.allowed[alphabet[i]] = true
	}
	return v
}

func (v *FastValidator) Validate(ctx context.Context, dna domain.DNA) error {
	if err := classifier.CheckShape(dna); err != nil {
		return err
	}
	for r, row := range dna {
		for c := 0; c < len(row); c++ {
			if !v.allowed[row[c]] {
				return fmt.Errorf("%w: %q at row %d col %d", domain.ErrInvalidBase, row[c], r, c)
			}
		}
	}
	return nil
}
