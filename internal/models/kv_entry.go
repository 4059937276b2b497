package models

// KVEntry is a single key/value pair of the persistent session store.
// Keys are unique; values are opaque strings (JSON for structured values).
type KVEntry struct {
	Base
	Key   string `gorm:"uniqueIndex;not null;size:191" json:"key"`
	Value string `gorm:"type:text;not null" json:"value"`
}

// TableName pins the table name used by migrations.
func (KVEntry) TableName() string { return "kv_entries" }
