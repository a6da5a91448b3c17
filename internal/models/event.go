package models

import "time"

// Event records money spent on a school event. Events form an append-only
// ledger: the API exposes no update or delete route for them.
type Event struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Details   string    `gorm:"type:text;not null" json:"details"`
	AmountRs  float64   `gorm:"not null" json:"amountRs"`
	CreatedBy uint      `json:"createdBy"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
