package models

import "time"

// InfrastructureItem records infrastructure spend.
type InfrastructureItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Details   string    `gorm:"type:text;not null" json:"details"`
	AmountRs  float64   `gorm:"not null" json:"amountRs"`
	CreatedBy uint      `json:"createdBy"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
