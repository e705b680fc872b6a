package models

import "time"

// BlacklistedTransaction is a payment transaction ID that must never be
// accepted again (reused screenshots, charge-backs, known fraud).
type BlacklistedTransaction struct {
	ID uint `gorm:"primaryKey" json:"id"`

	TransactionID string `gorm:"size:20;uniqueIndex;not null" json:"transaction_id"`
	Reason        string `gorm:"size:255" json:"reason"`

	CreatedAt time.Time `json:"created_at"`
}
