package repository

import (
	"context"
	"fmt"

	"github.com/vbls/standconsole/internal/domain"
	"github.com/vbls/standconsole/internal/repository/dao"
)

var ErrPresetNotFound = dao.ErrPresetNotFound

type PresetDAO interface {
	GetOrCreate(ctx context.Context, presetType string) (dao.AfternoonPreset, error)
	FindByType(ctx context.Context, presetType string) (dao.AfternoonPreset, error)
	UpsertEntries(ctx context.Context, entries []dao.AfternoonPresetEntry) error
	FindEntries(ctx context.Context, presetID uint) ([]dao.AfternoonPresetEntry, error)
}

type PresetRepository struct {
	dao PresetDAO
}

func NewPresetRepository(dao PresetDAO) *PresetRepository {
	return &PresetRepository{
		dao: dao,
	}
}

func (r *PresetRepository) GetOrCreate(ctx context.Context, presetType domain.PresetType) (domain.AfternoonPreset, error) {
	preset, err := r.dao.GetOrCreate(ctx, string(presetType))
	if err != nil {
		return domain.AfternoonPreset{}, fmt.Errorf("r.dao.GetOrCreate -> %w", err)
	}

	return r.presetDaoToDomain(preset), nil
}

func (r *PresetRepository) FindByType(ctx context.Context, presetType domain.PresetType) (domain.AfternoonPreset, error) {
	preset, err := r.dao.FindByType(ctx, string(presetType))
	if err != nil {
		return domain.AfternoonPreset{}, fmt.Errorf("r.dao.FindByType -> %w", err)
	}

	return r.presetDaoToDomain(preset), nil
}

func (r *PresetRepository) SaveEntries(ctx context.Context, entries []domain.AfternoonPresetEntry) error {
	daoEntries := make([]dao.AfternoonPresetEntry, len(entries))
	for i, e := range entries {
		daoEntries[i] = dao.AfternoonPresetEntry{
			StandID:  e.StandID,
			PresetID: e.PresetID,
			Enabled:  e.Enabled,
		}
	}

	if err := r.dao.UpsertEntries(ctx, daoEntries); err != nil {
		return fmt.Errorf("r.dao.UpsertEntries -> %w", err)
	}

	return nil
}

func (r *PresetRepository) FindEntries(ctx context.Context, presetID uint) ([]domain.AfternoonPresetEntry, error) {
	found, err := r.dao.FindEntries(ctx, presetID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindEntries -> %w", err)
	}

	entries := make([]domain.AfternoonPresetEntry, len(found))
	for i, e := range found {
		entries[i] = domain.AfternoonPresetEntry{
			ID:       e.ID,
			StandID:  e.StandID,
			PresetID: e.PresetID,
			Enabled:  e.Enabled,
		}
	}

	return entries, nil
}

func (r *PresetRepository) presetDaoToDomain(p dao.AfternoonPreset) domain.AfternoonPreset {
	return domain.AfternoonPreset{
		ID:         p.ID,
		PresetType: domain.PresetType(p.PresetType),
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}
