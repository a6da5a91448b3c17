package models

import "time"

// Notice is a dated announcement shown to staff.
type Notice struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	Details   string    `gorm:"type:text" json:"details"`
	Venue     string    `gorm:"size:255" json:"venue"`
	DateTime  time.Time `gorm:"not null" json:"dateTime"`
	CreatedBy uint      `json:"createdBy"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
