package ports

import (
	"context"
	"time"

	"svw.info/mutant/internal/domain"
)

// Report holds per-direction run counts for one matrix.
type Report struct {
	Horizontal   int           `json:"horizontal"`
	Vertical     int           `json:"vertical"`
	Diagonal     int           `json:"diagonal"`
	AntiDiagonal int           `json:"antiDiagonal"`
	Duration     time.Duration `json:"-"`
}

// Total sums the counts of every direction.
func (r Report) Total() int {
	return r.Horizontal + r.Vertical + r.Diagonal + r.AntiDiagonal
}

// Classifier decides whether a matrix is mutant.
type Classifier interface {
	Classify(ctx context.Context, dna domain.DNA) (bool, Report, error)
}

// Validator checks shape and alphabet before classification.
type Validator interface {
	Validate(ctx context.Context, dna domain.DNA) error
}

// Storage persists classification results keyed by canonical DNA.
type Storage interface {
	Find(ctx context.Context, key string) (*domain.Record, error)
	Save(ctx context.Context, r *domain.Record) error
	Stats(ctx context.Context) (domain.Stats, error)
}

// Stats captures the cost of a generation run.
type Stats struct {
	Attempts int
	Duration time.Duration
}

// Generator produces matrices of a requested kind.
type Generator interface {
	Generate(ctx context.Context, seed int64, n int, kind domain.Kind) (domain.DNA, Stats, error)
}
