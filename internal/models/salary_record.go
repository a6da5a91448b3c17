package models

// Salary record payment statuses.
const (
	SalaryStatusFullyPaid = "Fully Paid"
	SalaryStatusHalfPaid  = "Half Paid"
	SalaryStatusNotPaid   = "Not Paid"
)

// SalaryRecord is a per-month snapshot of a teacher's salary, embedded under
// the teacher. Month uses the YYYY-MM form and is unique within a teacher:
// posting a record for an existing month replaces it.
type SalaryRecord struct {
	ID     string  `json:"id"`
	Month  string  `json:"month"`
	Total  float64 `json:"total"`
	Paid   float64 `json:"paid"`
	Status string  `json:"status"`
}

// ValidSalaryStatus reports whether status is one of the accepted payment statuses.
func ValidSalaryStatus(status string) bool {
	switch status {
	case SalaryStatusFullyPaid, SalaryStatusHalfPaid, SalaryStatusNotPaid:
		return true
	}
	return false
}
