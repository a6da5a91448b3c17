package models

import (
	"time"

	"gorm.io/datatypes"
)

// User roles. Role is the only axis of authorization in the system.
const (
	RoleAdmin   = "admin"
	RoleTeacher = "teacher"
)

// User represents a staff account: either an admin or a teacher. Teacher
// accounts carry salary figures plus embedded leave and salary-record
// sub-collections.
type User struct {
	ID             uint                              `gorm:"primaryKey" json:"id"`
	Name           string                            `gorm:"size:255;not null" json:"name"`
	Email          string                            `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Password       string                            `gorm:"size:255;not null" json:"-"`
	Role           string                            `gorm:"size:32;not null" json:"role"`
	Department     string                            `gorm:"size:255" json:"department"`
	Phone          string                            `gorm:"size:64" json:"phone"`
	Designation    string                            `gorm:"size:255" json:"designation"`
	Specifications string                            `gorm:"type:text" json:"specifications"`
	TotalSalary    float64                           `gorm:"not null;default:0" json:"totalSalary"`
	PaidSalary     float64                           `gorm:"not null;default:0" json:"paidSalary"`
	Leaves         datatypes.JSONSlice[Leave]        `json:"leaves"`
	SalaryRecords  datatypes.JSONSlice[SalaryRecord] `json:"salaryRecords"`
	CreatedAt      time.Time                         `json:"created_at"`
	UpdatedAt      time.Time                         `json:"updated_at"`
}

// ValidRole reports whether role names a known user role.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleTeacher
}

// IsTeacher reports whether the account is a teacher.
func (u User) IsTeacher() bool {
	return u.Role == RoleTeacher
}

// ClampSalary floors both figures at zero and caps paid at total. Called
// after every salary mutation so the invariant holds on every write.
func (u *User) ClampSalary() {
	if u.TotalSalary < 0 {
		u.TotalSalary = 0
	}
	if u.PaidSalary < 0 {
		u.PaidSalary = 0
	}
	if u.PaidSalary > u.TotalSalary {
		u.PaidSalary = u.TotalSalary
	}
}

// RemainingSalary derives the outstanding amount. Never persisted.
func (u User) RemainingSalary() float64 {
	remaining := u.TotalSalary - u.PaidSalary
	if remaining < 0 {
		return 0
	}
	return remaining
}
