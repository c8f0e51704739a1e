package database

import (
	"gorm.io/gorm"
)

// Newest orders rows of the given table by creation time, newest first.
// The id tiebreak keeps the order stable for rows created in the same instant.
func Newest(table string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Order(table + ".created_at DESC").Order(table + ".id DESC")
	}
}
