package models

import "time"

// KVEntry is one namespaced collection in the SQL-backed keyspace.
type KVEntry struct {
	Key   string `gorm:"primaryKey;size:191"`
	Value string `gorm:"type:text;not null"`

	UpdatedAt time.Time
}

func (KVEntry) TableName() string {
	return "kv_entries"
}
