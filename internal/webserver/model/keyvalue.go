package model

import "time"

// KeyValue backs small pieces of per-user state, like the recent-search
// history, behind the history.Store interface.
type KeyValue struct {
	Key       string `gorm:"primarykey"`
	Value     string
	UpdatedAt time.Time
}
