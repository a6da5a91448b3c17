package models

import "time"

// Leave approval statuses.
const (
	LeaveStatusPending  = "Pending"
	LeaveStatusApproved = "Approved"
	LeaveStatusRejected = "Rejected"
)

// Leave is a dated absence request embedded under a student or a teacher.
// The identifier is generated locally and is distinct from the parent's id.
type Leave struct {
	ID     string    `json:"id"`
	Date   time.Time `json:"date"`
	Reason string    `json:"reason"`
	Status string    `json:"status"`
}

// ValidLeaveStatus reports whether status is one of the accepted leave statuses.
func ValidLeaveStatus(status string) bool {
	switch status {
	case LeaveStatusPending, LeaveStatusApproved, LeaveStatusRejected:
		return true
	}
	return false
}

// CountLeavesInMonth returns how many leaves fall in the same calendar month
// as ref. A leave whose id equals excludeID is skipped, which lets a date
// change re-check the cap against the target month without counting the
// entry being moved.
func CountLeavesInMonth(leaves []Leave, ref time.Time, excludeID string) int {
	count := 0
	for _, leave := range leaves {
		if excludeID != "" && leave.ID == excludeID {
			continue
		}
		if leave.Date.Year() == ref.Year() && leave.Date.Month() == ref.Month() {
			count++
		}
	}
	return count
}
