package db

import (
	"gorm.io/gorm"
)

// Paginate limits a query to one page. A non-positive pageSize disables
// paging.
func Paginate(page, pageSize int) func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		if pageSize <= 0 {
			return tx
		}
		if page < 1 {
			page = 1
		}
		return tx.Offset((page - 1) * pageSize).Limit(pageSize)
	}
}

// WhereIfSet adds "column = value" only when value is non-empty.
func WhereIfSet(column, value string) func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		if value == "" {
			return tx
		}
		return tx.Where(column+" = ?", value)
	}
}
