// Package seed loads the baseline stands and afternoon presets.
package seed

import (
	"context"
	_ "embed"
	"fmt"
	"strconv"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/vbls/standconsole/internal/domain"
)

//go:embed stands.yml
var baselineYAML []byte

type labelRange struct {
	From int `yaml:"from"`
	To   int `yaml:"to"`
}

type zoneSeed struct {
	Zone          string      `yaml:"zone"`
	Labels        []string    `yaml:"labels"`
	Range         *labelRange `yaml:"range"`
	SupportsAS    bool        `yaml:"supportsAS"`
	DoubleStaffed bool        `yaml:"doubleStaffed"`
}

type baseline struct {
	Zones []zoneSeed `yaml:"zones"`
}

type StandRepository interface {
	Upsert(ctx context.Context, stand domain.Stand) (domain.Stand, error)
	FindLocks(ctx context.Context) ([]domain.StandLock, error)
}

type PresetRepository interface {
	GetOrCreate(ctx context.Context, presetType domain.PresetType) (domain.AfternoonPreset, error)
	SaveEntries(ctx context.Context, entries []domain.AfternoonPresetEntry) error
}

type Seeder struct {
	stands  StandRepository
	presets PresetRepository
}

func NewSeeder(stands StandRepository, presets PresetRepository) *Seeder {
	return &Seeder{
		stands:  stands,
		presets: presets,
	}
}

// BaselineStands expands the embedded stand list. The lock flag comes from
// the label, the same way it does for stands created by an operator.
func BaselineStands() ([]domain.Stand, error) {
	return parseStands(baselineYAML)
}

func parseStands(raw []byte) ([]domain.Stand, error) {
	var b baseline
	if err := yaml.Unmarshal(raw, &b); err != nil {
		return nil, fmt.Errorf("yaml.Unmarshal -> %w", err)
	}

	var stands []domain.Stand
	for _, z := range b.Zones {
		zone := domain.Zone(z.Zone)
		if !zone.IsValid() {
			return nil, fmt.Errorf("unknown zone %q in seed data", z.Zone)
		}

		labels := z.Labels
		if z.Range != nil {
			for n := z.Range.From; n <= z.Range.To; n++ {
				labels = append(labels, strconv.Itoa(n))
			}
		}

		for _, label := range labels {
			locked := domain.IsLockedLabel(label)
			stands = append(stands, domain.Stand{
				Label:           label,
				Zone:            zone,
				SupportsAS:      z.SupportsAS && !locked,
				NeverSupportsAS: locked,
				DoubleStaffed:   z.DoubleStaffed,
			})
		}
	}

	return stands, nil
}

// Run upserts the baseline stands, then writes every preset with all stands
// selected so each unlocked stand starts enabled.
func (s *Seeder) Run(ctx context.Context) error {
	stands, err := BaselineStands()
	if err != nil {
		return fmt.Errorf("BaselineStands -> %w", err)
	}

	for _, stand := range stands {
		if _, err := s.stands.Upsert(ctx, stand); err != nil {
			return fmt.Errorf("s.stands.Upsert(%s) -> %w", stand.Label, err)
		}
	}
	zap.L().Info("seeded stands", zap.Int("count", len(stands)))

	locks, err := s.stands.FindLocks(ctx)
	if err != nil {
		return fmt.Errorf("s.stands.FindLocks -> %w", err)
	}

	for _, presetType := range domain.ListPresetTypes() {
		preset, err := s.presets.GetOrCreate(ctx, presetType)
		if err != nil {
			return fmt.Errorf("s.presets.GetOrCreate(%s) -> %w", presetType, err)
		}

		entries := domain.BuildPresetEntries(preset.ID, locks, domain.SelectAll(locks))
		if err := s.presets.SaveEntries(ctx, entries); err != nil {
			return fmt.Errorf("s.presets.SaveEntries(%s) -> %w", presetType, err)
		}
		zap.L().Info("seeded afternoon preset",
			zap.String("preset_type", string(presetType)),
			zap.Int("entries", len(entries)))
	}

	return nil
}
