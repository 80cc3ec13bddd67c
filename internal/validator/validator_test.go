package validator

import (
	"context"
	"errors"
	"testing"

	"svw.info/mutant/internal/domain"
)

func TestValidate(t *testing.T) {
	ctx := context.Background()
	cases := []struct {
		name     string
		alphabet string
		dna      domain.DNA
		want     error
	}{
		{"valid", "", domain.DNA{"ATGC", "CAGT", "TTAT", "AGAA"}, nil},
		{"lowercase rejected", "", domain.DNA{"atgc", "CAGT", "TTAT", "AGAA"}, domain.ErrInvalidBase},
		{"foreign base", "", domain.DNA{"ATGX", "CAGT", "TTAT", "AGAA"}, domain.ErrInvalidBase},
		{"jagged", "", domain.DNA{"ATG", "CAGT", "TTAT", "AGAA"}, domain.ErrInvalidGridShape},
		{"not square", "", domain.DNA{"ATGC", "CAGT"}, domain.ErrInvalidGridShape},
		{"empty", "", domain.DNA{}, domain.ErrInvalidGridShape},
		{"custom alphabet", "XY", domain.DNA{"XY", "YX"}, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := New(tc.alphabet).Validate(ctx, tc.dna)
			if tc.want == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tc.want) {
				t.Fatalf("got %v, want %v", err, tc.want)
			}
		})
	}
}
