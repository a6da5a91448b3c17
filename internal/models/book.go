package models

import "time"

// Book is a library catalogue entry.
type Book struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	Author    string    `gorm:"size:255;not null" json:"author"`
	Subject   string    `gorm:"size:255;not null" json:"subject"`
	Quantity  int       `gorm:"not null;default:0" json:"quantity"`
	CreatedBy uint      `json:"createdBy"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
