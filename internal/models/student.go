package models

import (
	"time"

	"gorm.io/datatypes"
)

// Student fee statuses.
const (
	FeeStatusPaid    = "Paid"
	FeeStatusPending = "Pending"
	FeeStatusNotPaid = "Not Paid"
)

// CGPA bounds. Values outside the range are clamped, never rejected.
const (
	CGPAMin = 0
	CGPAMax = 10
)

// Student represents an enrolled student with an embedded leave history.
type Student struct {
	ID        uint                       `gorm:"primaryKey" json:"id"`
	Name      string                     `gorm:"size:255;not null" json:"name"`
	RegNo     string                     `gorm:"size:64;uniqueIndex;not null" json:"regno"`
	Mobile    string                     `gorm:"size:32;not null" json:"mobile"`
	Division  string                     `gorm:"size:8" json:"division"`
	FeeStatus string                     `gorm:"size:32;default:Pending" json:"feeStatus"`
	Marks     float64                    `gorm:"not null;default:0" json:"marks"`
	CGPA      float64                    `gorm:"not null;default:0" json:"cgpa"`
	Leaves    datatypes.JSONSlice[Leave] `json:"leaves"`
	CreatedAt time.Time                  `json:"created_at"`
	UpdatedAt time.Time                  `json:"updated_at"`
}

// ValidDivision reports whether division is empty, A or B.
func ValidDivision(division string) bool {
	switch division {
	case "", "A", "B":
		return true
	}
	return false
}

// ValidFeeStatus reports whether status names a known fee status.
func ValidFeeStatus(status string) bool {
	switch status {
	case FeeStatusPaid, FeeStatusPending, FeeStatusNotPaid:
		return true
	}
	return false
}

// ClampCGPA bounds a grade to the [CGPAMin, CGPAMax] range.
func ClampCGPA(value float64) float64 {
	if value < CGPAMin {
		return CGPAMin
	}
	if value > CGPAMax {
		return CGPAMax
	}
	return value
}
