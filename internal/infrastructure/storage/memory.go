package storage

import (
	"context"
	"errors"
	"sync"

	"svw.info/mutant/internal/domain"
)

// Memory keeps records in a map; contents are lost on exit.
type Memory struct {
	mu      sync.RWMutex
	records map[string]domain.Record
}

func NewMemory() *Memory { return &Memory{records: make(map[string]domain.Record)} }

func (m *Memory) Find(ctx context.Context, key string) (*domain.Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.records[key]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &r, nil
}

func (m *Memory) Save(ctx context.Context, r *domain.Record) error {
	if r == nil || r.DNA == "" {
		return errors.New("invalid record: missing dna")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.records[r.DNA]; !ok {
		m.records[r.DNA] = *r
	}
	return nil
}

func (m *Memory) Stats(ctx context.Context) (domain.Stats, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var st domain.Stats
	for _, r := range m.records {
		if r.Mutant {
			st.CountMutant++
		} else {
			st.CountHuman++
		}
	}
	return st.WithRatio(), nil
}

func (m *Memory) Close() error { return nil }
