package dao

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrPresetNotFound = errors.New("afternoon preset not found")

type AfternoonPreset struct {
	ID         uint   `gorm:"primaryKey"`
	PresetType string `gorm:"size:32;uniqueIndex;not null"`

	Entries []AfternoonPresetEntry `gorm:"foreignKey:PresetID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type AfternoonPresetEntry struct {
	ID       uint  `gorm:"primaryKey"`
	StandID  uint  `gorm:"not null;uniqueIndex:stand_preset_unique,priority:1"`
	Stand    Stand `gorm:"foreignKey:StandID;constraint:OnDelete:CASCADE"`
	PresetID uint  `gorm:"not null;uniqueIndex:stand_preset_unique,priority:2;index"`
	Enabled  bool  `gorm:"not null"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type PresetDAO struct {
	db *gorm.DB
}

func NewPresetDAO(db *gorm.DB) *PresetDAO {
	return &PresetDAO{
		db: db,
	}
}

// GetOrCreate is an upsert with a no-op update so the row id comes back
// whether or not it already existed.
func (d *PresetDAO) GetOrCreate(ctx context.Context, presetType string) (AfternoonPreset, error) {
	preset := AfternoonPreset{PresetType: presetType}

	result := d.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "preset_type"}},
		DoUpdates: clause.AssignmentColumns([]string{"preset_type"}),
	}).Create(&preset)
	if result.Error != nil {
		return AfternoonPreset{}, result.Error
	}

	return preset, nil
}

func (d *PresetDAO) FindByType(ctx context.Context, presetType string) (AfternoonPreset, error) {
	var preset AfternoonPreset

	result := d.db.WithContext(ctx).Where("preset_type = ?", presetType).First(&preset)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return AfternoonPreset{}, ErrPresetNotFound
		}

		return AfternoonPreset{}, result.Error
	}

	return preset, nil
}

// UpsertEntries writes every entry keyed by (stand_id, preset_id) in one
// transaction. Either all of them are committed or none is.
func (d *PresetDAO) UpsertEntries(ctx context.Context, entries []AfternoonPresetEntry) error {
	if len(entries) == 0 {
		return nil
	}

	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range entries {
			result := tx.Omit(clause.Associations).Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "stand_id"}, {Name: "preset_id"}},
				DoUpdates: clause.AssignmentColumns([]string{"enabled", "updated_at"}),
			}).Create(&entries[i])
			if result.Error != nil {
				return fmt.Errorf("upsert entry stand=%d preset=%d -> %w", entries[i].StandID, entries[i].PresetID, result.Error)
			}
		}

		return nil
	})
}

func (d *PresetDAO) FindEntries(ctx context.Context, presetID uint) ([]AfternoonPresetEntry, error) {
	var entries []AfternoonPresetEntry

	result := d.db.WithContext(ctx).Where("preset_id = ?", presetID).Order("stand_id ASC").Find(&entries)
	if result.Error != nil {
		return nil, result.Error
	}

	return entries, nil
}
