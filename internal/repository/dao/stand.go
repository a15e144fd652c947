package dao

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrStandLabelExists = errors.New("stand label already exists")
	ErrStandNotFound    = errors.New("stand not found")
)

type Stand struct {
	ID uint `gorm:"primaryKey"`

	Label string `gorm:"size:32;unique;not null"`
	Zone  string `gorm:"size:32;not null;index"`

	SupportsAS      bool `gorm:"column:supports_as;not null"`
	NeverSupportsAS bool `gorm:"column:never_supports_as;not null"`
	DoubleStaffed   bool `gorm:"not null"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type StandDAO struct {
	db *gorm.DB
}

func NewStandDAO(db *gorm.DB) *StandDAO {
	return &StandDAO{
		db: db,
	}
}

func (d *StandDAO) Insert(ctx context.Context, stand Stand) (Stand, error) {
	result := d.db.WithContext(ctx).Create(&stand)
	if result.Error != nil {
		if isLabelConflict(result.Error) {
			return Stand{}, ErrStandLabelExists
		}

		return Stand{}, result.Error
	}

	return stand, nil
}

// UpsertByLabel inserts a stand or overwrites the stand carrying the same
// label. Used for baseline data only.
func (d *StandDAO) UpsertByLabel(ctx context.Context, stand Stand) (Stand, error) {
	result := d.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "label"}},
		DoUpdates: clause.AssignmentColumns([]string{"zone", "supports_as", "never_supports_as", "double_staffed", "updated_at"}),
	}).Create(&stand)
	if result.Error != nil {
		return Stand{}, result.Error
	}

	return stand, nil
}

// FindAll returns every stand ordered by label. Zone is a plain column, so
// catalog ordering of zones is left to the caller.
func (d *StandDAO) FindAll(ctx context.Context) ([]Stand, error) {
	var stands []Stand

	result := d.db.WithContext(ctx).Order("label ASC").Find(&stands)
	if result.Error != nil {
		return nil, result.Error
	}

	return stands, nil
}

// FindLocks loads the id and lock flag of every stand.
func (d *StandDAO) FindLocks(ctx context.Context) ([]Stand, error) {
	var stands []Stand

	result := d.db.WithContext(ctx).Select("id", "never_supports_as").Order("id ASC").Find(&stands)
	if result.Error != nil {
		return nil, result.Error
	}

	return stands, nil
}

func (d *StandDAO) FindByID(ctx context.Context, id uint) (Stand, error) {
	var stand Stand

	result := d.db.WithContext(ctx).First(&stand, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Stand{}, ErrStandNotFound
		}

		return Stand{}, result.Error
	}

	return stand, nil
}

// UpdateSupportsAS only touches unlocked stands; it reports whether a row
// was changed.
func (d *StandDAO) UpdateSupportsAS(ctx context.Context, id uint, supportsAS bool) (bool, error) {
	result := d.db.WithContext(ctx).
		Model(&Stand{}).
		Where("id = ? AND never_supports_as = ?", id, false).
		Update("supports_as", supportsAS)
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

func (d *StandDAO) UpdateDoubleStaffed(ctx context.Context, id uint, doubleStaffed bool) error {
	result := d.db.WithContext(ctx).
		Model(&Stand{}).
		Where("id = ?", id).
		Update("double_staffed", doubleStaffed)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrStandNotFound
	}

	return nil
}

func isLabelConflict(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) &&
		pgErr.Code == pgerrcode.UniqueViolation &&
		strings.Contains(pgErr.Message, `unique constraint "uni_stands_label"`)
}
