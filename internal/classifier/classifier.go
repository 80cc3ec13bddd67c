// Package classifier detects mutant DNA: a square matrix holding more than
// one run of RunLength identical bases horizontally, vertically or along
// either diagonal.
package classifier

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"svw.info/mutant/internal/domain"
	"svw.info/mutant/internal/ports"
)

// RunLength is the number of identical consecutive bases that form a run.
const RunLength = 4

// IsMutant reports whether dna holds more than one run across all four
// directions. It stops scanning as soon as the second run is found. dna must
// be square; see CheckShape.
func IsMutant(dna domain.DNA) bool {
	total := 0
	for _, d := range domain.Directions {
		total += countDirection(dna, d, 2-total)
		if total > 1 {
			return true
		}
	}
	return false
}

// Scan counts runs in every direction without stopping early.
func Scan(dna domain.DNA) ports.Report {
	start := time.Now()
	var r ports.Report
	for _, d := range domain.Directions {
		r = withCount(r, d, countDirection(dna, d, 0))
	}
	r.Duration = time.Since(start)
	return r
}

// ScanParallel is Scan with one goroutine per direction.
func ScanParallel(ctx context.Context, dna domain.DNA) (ports.Report, error) {
	start := time.Now()
	var counts [len(domain.Directions)]int
	g, gctx := errgroup.WithContext(ctx)
	for i, d := range domain.Directions {
		i, d := i, d
		g.Go(func() error {
			n, err := countDirectionCtx(gctx, dna, d)
			counts[i] = n
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return ports.Report{}, err
	}
	var r ports.Report
	for i, d := range domain.Directions {
		r = withCount(r, d, counts[i])
	}
	r.Duration = time.Since(start)
	return r, nil
}

// CheckShape rejects empty and non-square matrices.
func CheckShape(dna domain.DNA) error {
	n := len(dna)
	if n == 0 {
		return fmt.Errorf("%w: empty matrix", domain.ErrInvalidGridShape)
	}
	for i, row := range dna {
		if len(row) != n {
			return fmt.Errorf("%w: row %d has length %d, want %d", domain.ErrInvalidGridShape, i, len(row), n)
		}
	}
	return nil
}

// countDirection sums the runs found from every origin along d. A positive
// stop ends the scan once that many runs have been counted.
func countDirection(dna domain.DNA, d domain.Direction, stop int) int {
	n := len(dna)
	count := 0
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			count += countFrom(dna, n, i, j, d)
			if stop > 0 && count >= stop {
				return count
			}
		}
	}
	return count
}

func countDirectionCtx(ctx context.Context, dna domain.DNA, d domain.Direction) (int, error) {
	n := len(dna)
	count := 0
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return count, err
		}
		for j := 0; j < n; j++ {
			count += countFrom(dna, n, i, j, d)
		}
	}
	return count, nil
}

// countFrom walks from (x, y) along d. A matching window is counted and
// skipped whole; a mismatch advances one cell.
func countFrom(dna domain.DNA, n, x, y int, d domain.Direction) int {
	count := 0
	for fits(n, x, y, d) {
		if matches(dna, x, y, d) {
			count++
			x += RunLength * d.DX
			y += RunLength * d.DY
		} else {
			x += d.DX
			y += d.DY
		}
	}
	return count
}

// fits reports whether the window starting at (x, y) ends inside the matrix.
func fits(n, x, y int, d domain.Direction) bool {
	lx := x + (RunLength-1)*d.DX
	ly := y + (RunLength-1)*d.DY
	return lx < n && ly >= 0 && ly < n
}

func matches(dna domain.DNA, x, y int, d domain.Direction) bool {
	first := dna[x][y]
	for k := 1; k < RunLength; k++ {
		if dna[x+k*d.DX][y+k*d.DY] != first {
			return false
		}
	}
	return true
}

func withCount(r ports.Report, d domain.Direction, n int) ports.Report {
	switch d {
	case domain.Horizontal:
		r.Horizontal = n
	case domain.Vertical:
		r.Vertical = n
	case domain.Diagonal:
		r.Diagonal = n
	case domain.AntiDiagonal:
		r.AntiDiagonal = n
	}
	return r
}

// Classifier adapts the scanner to ports.Classifier.
type Classifier struct {
	// Parallel scans all directions concurrently and never stops early.
	Parallel bool
}

func New(parallel bool) *Classifier { return &Classifier{Parallel: parallel} }

// Classify checks the shape of dna then classifies it. On the sequential path
// the report only holds the counts seen before the early exit.
func (c *Classifier) Classify(ctx context.Context, dna domain.DNA) (bool, ports.Report, error) {
	if err := CheckShape(dna); err != nil {
		return false, ports.Report{}, err
	}
	if c.Parallel {
		r, err := ScanParallel(ctx, dna)
		if err != nil {
			return false, r, err
		}
		return r.Total() > 1, r, nil
	}
	start := time.Now()
	var r ports.Report
	total := 0
	for _, d := range domain.Directions {
		n := countDirection(dna, d, 2-total)
		r = withCount(r, d, n)
		total += n
		if total > 1 {
			break
		}
	}
	r.Duration = time.Since(start)
	return total > 1, r, nil
}
