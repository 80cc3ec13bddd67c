package domain

import "strings"

// DNA is a square matrix of bases, one string per row.
type DNA []string

// Key returns the canonical comma-joined form used for lookups.
func (d DNA) Key() string { return strings.Join(d, ",") }

// Size is the side length N of the matrix.
func (d DNA) Size() int { return len(d) }

// ParseKey splits a canonical key back into rows.
func ParseKey(key string) DNA {
	if key == "" {
		return nil
	}
	return DNA(strings.Split(key, ","))
}

// Record is a persisted classification result.
type Record struct {
	ID        string `json:"id"`
	DNA       string `json:"dna"`
	Mutant    bool   `json:"mutant"`
	CreatedAt int64  `json:"createdAt,omitempty"`
}

// Kind reports the classification label of the record.
func (r *Record) Kind() Kind {
	if r.Mutant {
		return Mutant
	}
	return Human
}

// Stats aggregates stored classifications.
type Stats struct {
	CountMutant int64   `json:"count_mutant_dna"`
	CountHuman  int64   `json:"count_human_dna"`
	Ratio       float64 `json:"ratio"`
}

// WithRatio fills Ratio as mutant/human. A store with no humans reports the
// mutant count itself.
func (s Stats) WithRatio() Stats {
	switch {
	case s.CountHuman > 0:
		s.Ratio = float64(s.CountMutant) / float64(s.CountHuman)
	default:
		s.Ratio = float64(s.CountMutant)
	}
	return s
}
