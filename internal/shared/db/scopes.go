package db

import (
	"gorm.io/gorm"
)

// Page is a GORM scope applying skip/limit pagination in primary key order,
// so consecutive pages never overlap or skip rows.
//
//	db.Scopes(db.Page(skip, limit)).Find(&rows)
func Page(skip, limit int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Order("id ASC").Offset(skip).Limit(limit)
	}
}
