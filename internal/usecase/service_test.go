package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/mutant/internal/classifier"
	"svw.info/mutant/internal/domain"
	"svw.info/mutant/internal/infrastructure/storage"
	"svw.info/mutant/internal/ports"
	"svw.info/mutant/internal/validator"
)

// countingClassifier records how often the core is reached.
type countingClassifier struct {
	inner ports.Classifier
	calls int
}

func (c *countingClassifier) Classify(ctx context.Context, dna domain.DNA) (bool, ports.Report, error) {
	c.calls++
	return c.inner.Classify(ctx, dna)
}

type failingStorage struct{ storage.Memory }

func (*failingStorage) Find(context.Context, string) (*domain.Record, error) {
	return nil, errors.New("disk on fire")
}

var mutant = domain.DNA{"ATGCGA", "CAGTGC", "TTATGT", "AGAAGG", "CCCCTA", "TCACTG"}
var human = domain.DNA{"ATGCGA", "CAGTGC", "TTATTT", "AGACGG", "GCGTCA", "TCACTG"}

func TestAnalyzeMemoizes(t *testing.T) {
	ctx := context.Background()
	cc := &countingClassifier{inner: classifier.New(false)}
	st := storage.NewMemory()
	uc := NewService(cc, validator.New(""), st, nil)

	ok, err := uc.Analyze(ctx, mutant)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = uc.Analyze(ctx, mutant)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1, cc.calls, "second call should be served from storage")

	ok, err = uc.Analyze(ctx, human)
	require.NoError(t, err)
	assert.False(t, ok)

	rec, err := st.Find(ctx, mutant.Key())
	require.NoError(t, err)
	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, "ATGCGA,CAGTGC,TTATGT,AGAAGG,CCCCTA,TCACTG", rec.DNA)

	stats, err := uc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.Stats{CountMutant: 1, CountHuman: 1, Ratio: 1}, stats)
}

func TestAnalyzeRejectsInvalid(t *testing.T) {
	cc := &countingClassifier{inner: classifier.New(true)}
	uc := NewService(cc, validator.New(""), storage.NewMemory(), nil)
	_, err := uc.Analyze(context.Background(), domain.DNA{"ATG", "CA"})
	assert.ErrorIs(t, err, domain.ErrInvalidGridShape)
	_, err = uc.Analyze(context.Background(), domain.DNA{"AB", "CA"})
	assert.ErrorIs(t, err, domain.ErrInvalidBase)
	assert.Zero(t, cc.calls)
}

func TestAnalyzeStorageError(t *testing.T) {
	uc := NewService(classifier.New(false), validator.New(""), &failingStorage{}, nil)
	_, err := uc.Analyze(context.Background(), mutant)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk on fire")
}

func TestNotConfigured(t *testing.T) {
	uc := &Service{}
	_, err := uc.Analyze(context.Background(), mutant)
	assert.ErrorIs(t, err, errNotConfigured)
	_, err = uc.Stats(context.Background())
	assert.ErrorIs(t, err, errNotConfigured)
}
