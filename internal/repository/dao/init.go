package dao

import "gorm.io/gorm"

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&Stand{},
		&AfternoonPreset{},
		&AfternoonPresetEntry{},
	)
}

// dropAllTables is only used by tests to reset a scratch database.
func dropAllTables(db *gorm.DB) error {
	return db.Migrator().DropTable(
		&AfternoonPresetEntry{},
		&AfternoonPreset{},
		&Stand{},
	)
}
