package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/vbls/standconsole/internal/domain"
	"github.com/vbls/standconsole/internal/repository"
)

var (
	ErrStandLabelExists = repository.ErrStandLabelExists
	ErrStandNotFound    = repository.ErrStandNotFound
	ErrStandLocked      = errors.New("stand never supports the afternoon shift")
)

type StandRepository interface {
	Create(ctx context.Context, input domain.StandCreateInput) (domain.Stand, error)
	FindAll(ctx context.Context) ([]domain.Stand, error)
	FindByID(ctx context.Context, id uint) (domain.Stand, error)
	UpdateSupportsAS(ctx context.Context, id uint, supportsAS bool) (bool, error)
	UpdateDoubleStaffed(ctx context.Context, id uint, doubleStaffed bool) error
}

type StandService struct {
	repo StandRepository
}

func NewStandService(repo StandRepository) *StandService {
	return &StandService{
		repo: repo,
	}
}

// CreateStand normalizes the raw request before anything reaches storage.
// It returns a *domain.ValidationError for bad input and
// ErrStandLabelExists when the label is taken.
func (s *StandService) CreateStand(ctx context.Context, label, zone string, supportsAS any) (domain.Stand, error) {
	input, err := NormalizeStand(label, zone, supportsAS)
	if err != nil {
		return domain.Stand{}, err
	}

	created, err := s.repo.Create(ctx, input)
	if err != nil {
		return domain.Stand{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	zap.L().Info("stand created",
		zap.Uint("stand_id", created.ID),
		zap.String("label", created.Label),
		zap.String("zone", string(created.Zone)),
		zap.Bool("never_supports_as", created.NeverSupportsAS))

	return created, nil
}

func (s *StandService) ListStands(ctx context.Context) ([]domain.Stand, error) {
	stands, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return stands, nil
}

// SetSupportsAS toggles the afternoon flag. Locked stands are refused
// before and during the write.
func (s *StandService) SetSupportsAS(ctx context.Context, id uint, supportsAS any) (domain.Stand, error) {
	stand, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Stand{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if stand.NeverSupportsAS {
		return domain.Stand{}, ErrStandLocked
	}

	next := CoerceFlag(supportsAS)
	changed, err := s.repo.UpdateSupportsAS(ctx, id, next)
	if err != nil {
		return domain.Stand{}, fmt.Errorf("s.repo.UpdateSupportsAS -> %w", err)
	}
	if !changed {
		return domain.Stand{}, ErrStandLocked
	}

	updated, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Stand{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return updated, nil
}

func (s *StandService) SetDoubleStaffed(ctx context.Context, id uint, doubleStaffed any) (domain.Stand, error) {
	next := CoerceFlag(doubleStaffed)
	if err := s.repo.UpdateDoubleStaffed(ctx, id, next); err != nil {
		return domain.Stand{}, fmt.Errorf("s.repo.UpdateDoubleStaffed -> %w", err)
	}

	stand, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Stand{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return stand, nil
}
