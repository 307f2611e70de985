package model

import "gorm.io/gorm"

// AutoMigrate runs GORM auto-migration for the state table.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&KVEntry{})
}
