package generator

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"svw.info/mutant/internal/classifier"
	"svw.info/mutant/internal/domain"
	"svw.info/mutant/internal/ports"
)

const maxAttempts = 64

var errGiveUp = errors.New("generator: no matrix found")

// Generate builds an n×n matrix of the requested kind from seed.
func (g *RandomGenerator) Generate(ctx context.Context, seed int64, n int, kind domain.Kind) (domain.DNA, ports.Stats, error) {
	start := time.Now()
	if n < 1 {
		return nil, ports.Stats{}, fmt.Errorf("%w: size %d", domain.ErrInvalidGridShape, n)
	}
	if kind == domain.Mutant && n < classifier.RunLength {
		return nil, ports.Stats{}, fmt.Errorf("%w: mutant needs size >= %d", domain.ErrInvalidGridShape, classifier.RunLength)
	}
	rng := rand.New(rand.NewSource(seed))
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, ports.Stats{Attempts: attempt, Duration: time.Since(start)}, err
		}
		var cells [][]byte
		if kind == domain.Mutant {
			cells = g.fillRandom(rng, n)
			plant(cells, g.Alphabet[0])
		} else {
			var ok bool
			if cells, ok = g.fillAvoiding(rng, n); !ok {
				continue
			}
		}
		dna := toDNA(cells)
		got, _, err := g.Classifier.Classify(ctx, dna)
		if err != nil {
			return nil, ports.Stats{Attempts: attempt, Duration: time.Since(start)}, err
		}
		if got == (kind == domain.Mutant) {
			return dna, ports.Stats{Attempts: attempt, Duration: time.Since(start)}, nil
		}
	}
	return nil, ports.Stats{Attempts: maxAttempts, Duration: time.Since(start)}, errGiveUp
}

func (g *RandomGenerator) fillRandom(rng *rand.Rand, n int) [][]byte {
	cells := make([][]byte, n)
	for r := range cells {
		cells[r] = make([]byte, n)
		for c := range cells[r] {
			cells[r][c] = g.Alphabet[rng.Intn(len(g.Alphabet))]
		}
	}
	return cells
}

// plant writes two horizontal runs so the matrix is mutant whatever else it
// holds.
func plant(cells [][]byte, base byte) {
	for r := 0; r < 2; r++ {
		for c := 0; c < classifier.RunLength; c++ {
			cells[r][c] = base
		}
	}
}

// fillAvoiding fills in raster order, never letting a cell close a run whose
// earlier cells lie left, above, above-left or above-right of it. Every run
// has such a last cell, so the result holds none.
func (g *RandomGenerator) fillAvoiding(rng *rand.Rand, n int) ([][]byte, bool) {
	back := []domain.Direction{{DX: 0, DY: -1}, {DX: -1, DY: 0}, {DX: -1, DY: -1}, {DX: -1, DY: 1}}
	cells := make([][]byte, n)
	for r := range cells {
		cells[r] = make([]byte, n)
		for c := range cells[r] {
			perm := rng.Perm(len(g.Alphabet))
			placed := false
			for _, p := range perm {
				b := g.Alphabet[p]
				if !closesRun(cells, r, c, b, back) {
					cells[r][c] = b
					placed = true
					break
				}
			}
			if !placed {
				return nil, false
			}
		}
	}
	return cells, true
}

func closesRun(cells [][]byte, r, c int, b byte, back []domain.Direction) bool {
	n := len(cells)
	for _, d := range back {
		run := true
		for k := 1; k < classifier.RunLength; k++ {
			x, y := r+k*d.DX, c+k*d.DY
			if x < 0 || y < 0 || y >= n || cells[x][y] != b {
				run = false
				break
			}
		}
		if run {
			return true
		}
	}
	return false
}

func toDNA(cells [][]byte) domain.DNA {
	out := make(domain.DNA, len(cells))
	for i, row := range cells {
		out[i] = string(row)
	}
	return out
}
