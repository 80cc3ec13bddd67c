package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"svw.info/mutant/internal/domain"
	"svw.info/mutant/internal/ports"
)

type Service struct {
	Classifier ports.Classifier
	Validator  ports.Validator
	Storage    ports.Storage
	Logger     *zap.Logger

	now func() time.Time
}

func NewService(c ports.Classifier, v ports.Validator, st ports.Storage, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{Classifier: c, Validator: v, Storage: st, Logger: log, now: time.Now}
}

var errNotConfigured = errors.New("usecase dependency not configured")

// Analyze returns the stored verdict for dna when one exists, otherwise
// classifies it and records the result.
func (u *Service) Analyze(ctx context.Context, dna domain.DNA) (bool, error) {
	if u.Classifier == nil || u.Validator == nil || u.Storage == nil {
		return false, errNotConfigured
	}
	if err := u.Validator.Validate(ctx, dna); err != nil {
		return false, err
	}
	key := dna.Key()
	prev, err := u.Storage.Find(ctx, key)
	switch {
	case err == nil:
		u.Logger.Debug("dna already analyzed", zap.String("id", prev.ID), zap.Bool("mutant", prev.Mutant))
		return prev.Mutant, nil
	case !errors.Is(err, domain.ErrNotFound):
		return false, fmt.Errorf("lookup dna: %w", err)
	}

	mutant, rep, err := u.Classifier.Classify(ctx, dna)
	if err != nil {
		return false, err
	}
	rec := &domain.Record{
		ID:        uuid.NewString(),
		DNA:       key,
		Mutant:    mutant,
		CreatedAt: u.now().UnixNano(),
	}
	if err := u.Storage.Save(ctx, rec); err != nil {
		return false, fmt.Errorf("save dna: %w", err)
	}
	u.Logger.Debug("dna analyzed",
		zap.String("id", rec.ID),
		zap.Int("size", dna.Size()),
		zap.Bool("mutant", mutant),
		zap.Int("runs", rep.Total()),
		zap.Duration("dur", rep.Duration),
	)
	return mutant, nil
}

// Stats reports how many mutant and human matrices have been stored.
func (u *Service) Stats(ctx context.Context) (domain.Stats, error) {
	if u.Storage == nil {
		return domain.Stats{}, errNotConfigured
	}
	return u.Storage.Stats(ctx)
}
