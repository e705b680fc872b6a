package models

import "time"

// Counter stores the last issued value for named monotonic counters.
// Serial allocation uses one row per calendar month ("appointment-YYYYMM").
type Counter struct {
	Name  string `gorm:"primaryKey;size:64" json:"name"`
	Value int64  `gorm:"not null" json:"value"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Counter) TableName() string { return "counters" }
