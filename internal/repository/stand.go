package repository

import (
	"context"
	"fmt"

	"github.com/vbls/standconsole/internal/domain"
	"github.com/vbls/standconsole/internal/repository/dao"
)

var (
	ErrStandLabelExists = dao.ErrStandLabelExists
	ErrStandNotFound    = dao.ErrStandNotFound
)

type StandDAO interface {
	Insert(ctx context.Context, stand dao.Stand) (dao.Stand, error)
	UpsertByLabel(ctx context.Context, stand dao.Stand) (dao.Stand, error)
	FindAll(ctx context.Context) ([]dao.Stand, error)
	FindLocks(ctx context.Context) ([]dao.Stand, error)
	FindByID(ctx context.Context, id uint) (dao.Stand, error)
	UpdateSupportsAS(ctx context.Context, id uint, supportsAS bool) (bool, error)
	UpdateDoubleStaffed(ctx context.Context, id uint, doubleStaffed bool) error
}

type StandRepository struct {
	dao StandDAO
}

func NewStandRepository(dao StandDAO) *StandRepository {
	return &StandRepository{
		dao: dao,
	}
}

func (r *StandRepository) Create(ctx context.Context, input domain.StandCreateInput) (domain.Stand, error) {
	created, err := r.dao.Insert(ctx, dao.Stand{
		Label:           input.Label,
		Zone:            string(input.Zone),
		SupportsAS:      input.SupportsAS && !input.NeverSupportsAS,
		NeverSupportsAS: input.NeverSupportsAS,
	})
	if err != nil {
		return domain.Stand{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *StandRepository) Upsert(ctx context.Context, stand domain.Stand) (domain.Stand, error) {
	daoStand := r.domainToDao(stand)
	daoStand.SupportsAS = stand.SupportsAS && !stand.NeverSupportsAS

	saved, err := r.dao.UpsertByLabel(ctx, daoStand)
	if err != nil {
		return domain.Stand{}, fmt.Errorf("r.dao.UpsertByLabel -> %w", err)
	}

	return r.daoToDomain(saved), nil
}

// FindAll lists stands in zone catalog order, then by label.
func (r *StandRepository) FindAll(ctx context.Context) ([]domain.Stand, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	stands := r.daosToDomain(found)
	domain.SortStands(stands)

	return stands, nil
}

func (r *StandRepository) FindLocks(ctx context.Context) ([]domain.StandLock, error) {
	found, err := r.dao.FindLocks(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindLocks -> %w", err)
	}

	locks := make([]domain.StandLock, len(found))
	for i, s := range found {
		locks[i] = domain.StandLock{ID: s.ID, NeverSupportsAS: s.NeverSupportsAS}
	}

	return locks, nil
}

func (r *StandRepository) FindByID(ctx context.Context, id uint) (domain.Stand, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Stand{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *StandRepository) UpdateSupportsAS(ctx context.Context, id uint, supportsAS bool) (bool, error) {
	changed, err := r.dao.UpdateSupportsAS(ctx, id, supportsAS)
	if err != nil {
		return false, fmt.Errorf("r.dao.UpdateSupportsAS -> %w", err)
	}

	return changed, nil
}

func (r *StandRepository) UpdateDoubleStaffed(ctx context.Context, id uint, doubleStaffed bool) error {
	if err := r.dao.UpdateDoubleStaffed(ctx, id, doubleStaffed); err != nil {
		return fmt.Errorf("r.dao.UpdateDoubleStaffed -> %w", err)
	}

	return nil
}

func (r *StandRepository) domainToDao(s domain.Stand) dao.Stand {
	return dao.Stand{
		ID:              s.ID,
		Label:           s.Label,
		Zone:            string(s.Zone),
		SupportsAS:      s.SupportsAS,
		NeverSupportsAS: s.NeverSupportsAS,
		DoubleStaffed:   s.DoubleStaffed,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

func (r *StandRepository) daoToDomain(s dao.Stand) domain.Stand {
	return domain.Stand{
		ID:              s.ID,
		Label:           s.Label,
		Zone:            domain.Zone(s.Zone),
		SupportsAS:      s.SupportsAS,
		NeverSupportsAS: s.NeverSupportsAS,
		DoubleStaffed:   s.DoubleStaffed,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

func (r *StandRepository) daosToDomain(stands []dao.Stand) []domain.Stand {
	domainStands := make([]domain.Stand, len(stands))
	for i, s := range stands {
		domainStands[i] = r.daoToDomain(s)
	}
	return domainStands
}
