package db

import "gorm.io/gorm"

// KVEntry persists one string value under a stable string key. All portfolio
// state (content overrides, session record, analytics snapshot, contact
// submissions) lives in this table, each owner writing a disjoint key set.
type KVEntry struct {
	gorm.Model
	Key   string `gorm:"size:100;uniqueIndex;not null"`
	Value string `gorm:"type:text"`
}

// TableName keeps the table name explicit.
func (KVEntry) TableName() string {
	return "kv_entries"
}
