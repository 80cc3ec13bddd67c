package storage

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"svw.info/mutant/internal/domain"
)

// FS stores one JSON file per record under {dir}/{mutant,human}/.
type FS struct{ dir string }

func NewFS(dir string) *FS { return &FS{dir: dir} }

func kindDir(k domain.Kind) string { return k.String() }

func fileName(key string) string {
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:]) + ".json"
}

func (s *FS) pathFor(key string, k domain.Kind) string {
	return filepath.Join(s.dir, kindDir(k), fileName(key))
}

func (s *FS) Save(ctx context.Context, r *domain.Record) error {
	if r == nil || r.DNA == "" {
		return errors.New("invalid record: missing dna")
	}
	if _, err := s.Find(ctx, r.DNA); err == nil {
		return nil
	} else if !errors.Is(err, domain.ErrNotFound) {
		return err
	}
	// Ensure directory ./data/{kind} exists
	target := s.pathFor(r.DNA, r.Kind())
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	f, err := os.Create(target)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

func (s *FS) Find(ctx context.Context, key string) (*domain.Record, error) {
	candidates := []string{
		s.pathFor(key, domain.Mutant),
		s.pathFor(key, domain.Human),
	}
	for _, p := range candidates {
		data, err := os.ReadFile(p)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}
		var out domain.Record
		if err := json.Unmarshal(data, &out); err != nil {
			return nil, err
		}
		return &out, nil
	}
	return nil, domain.ErrNotFound
}

func (s *FS) Stats(ctx context.Context) (domain.Stats, error) {
	var st domain.Stats
	buckets := []struct {
		kind  domain.Kind
		count *int64
	}{
		{domain.Mutant, &st.CountMutant},
		{domain.Human, &st.CountHuman},
	}
	for _, b := range buckets {
		ents, err := os.ReadDir(filepath.Join(s.dir, kindDir(b.kind)))
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return domain.Stats{}, err
		}
		for _, e := range ents {
			if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
				continue
			}
			*b.count++
		}
	}
	return st.WithRatio(), nil
}

func (s *FS) Close() error { return nil }
