package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/vbls/standconsole/internal/domain"
	"github.com/vbls/standconsole/internal/repository"
)

var ErrPresetNotFound = repository.ErrPresetNotFound

const invalidPresetSelection = "Invalid preset selection."

type PresetStandRepository interface {
	FindAll(ctx context.Context) ([]domain.Stand, error)
	FindLocks(ctx context.Context) ([]domain.StandLock, error)
}

type PresetRepository interface {
	GetOrCreate(ctx context.Context, presetType domain.PresetType) (domain.AfternoonPreset, error)
	FindByType(ctx context.Context, presetType domain.PresetType) (domain.AfternoonPreset, error)
	SaveEntries(ctx context.Context, entries []domain.AfternoonPresetEntry) error
	FindEntries(ctx context.Context, presetID uint) ([]domain.AfternoonPresetEntry, error)
}

type PresetService struct {
	stands  PresetStandRepository
	presets PresetRepository
}

func NewPresetService(stands PresetStandRepository, presets PresetRepository) *PresetService {
	return &PresetService{
		stands:  stands,
		presets: presets,
	}
}

func (s *PresetService) ListPresetTypes() []domain.PresetType {
	return domain.ListPresetTypes()
}

// ApplyPresetSelection rewrites the entry of every current stand for one
// preset. Stands created after the stand list is read are left out until
// the next submission of that preset.
func (s *PresetService) ApplyPresetSelection(ctx context.Context, presetTag string, selectedStandIDs []uint) error {
	if !domain.IsValidPresetType(presetTag) {
		return domain.NewValidationError(invalidPresetSelection)
	}
	presetType := domain.PresetType(presetTag)

	var (
		stands []domain.StandLock
		preset domain.AfternoonPreset
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		stands, err = s.stands.FindLocks(gctx)
		if err != nil {
			return fmt.Errorf("s.stands.FindLocks -> %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		preset, err = s.presets.GetOrCreate(gctx, presetType)
		if err != nil {
			return fmt.Errorf("s.presets.GetOrCreate -> %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	selected := make(map[uint]struct{}, len(selectedStandIDs))
	for _, id := range selectedStandIDs {
		selected[id] = struct{}{}
	}

	entries := domain.BuildPresetEntries(preset.ID, stands, selected)
	if err := s.presets.SaveEntries(ctx, entries); err != nil {
		return fmt.Errorf("s.presets.SaveEntries -> %w", err)
	}

	zap.L().Info("afternoon preset updated",
		zap.String("preset_type", string(presetType)),
		zap.Uint("preset_id", preset.ID),
		zap.Int("entries", len(entries)),
		zap.Int("selected", len(selected)))

	return nil
}

// GetPresetView lists every current stand with the value an operator should
// see for the preset. Reading never creates the preset.
func (s *PresetService) GetPresetView(ctx context.Context, presetTag string) ([]domain.PresetStandState, error) {
	if !domain.IsValidPresetType(presetTag) {
		return nil, domain.NewValidationError(invalidPresetSelection)
	}
	presetType := domain.PresetType(presetTag)

	stands, err := s.stands.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.stands.FindAll -> %w", err)
	}

	recorded := map[uint]domain.AfternoonPresetEntry{}
	preset, err := s.presets.FindByType(ctx, presetType)
	switch {
	case errors.Is(err, ErrPresetNotFound):
	case err != nil:
		return nil, fmt.Errorf("s.presets.FindByType -> %w", err)
	default:
		entries, err := s.presets.FindEntries(ctx, preset.ID)
		if err != nil {
			return nil, fmt.Errorf("s.presets.FindEntries -> %w", err)
		}
		for _, e := range entries {
			recorded[e.StandID] = e
		}
	}

	states := make([]domain.PresetStandState, 0, len(stands))
	for _, stand := range stands {
		var entry *domain.AfternoonPresetEntry
		if e, ok := recorded[stand.ID]; ok {
			entry = &e
		}

		states = append(states, domain.PresetStandState{
			StandID:  stand.ID,
			Label:    stand.Label,
			Zone:     stand.Zone,
			Enabled:  domain.ResolvePresetEnabled(stand.Lock(), entry),
			Locked:   stand.NeverSupportsAS,
			Recorded: entry != nil,
		})
	}

	return states, nil
}
