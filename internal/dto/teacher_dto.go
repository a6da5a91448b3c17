package dto

// TeacherLeaveCreateRequest is a teacher's own leave appeal. The status is
// not part of the payload: appeals always start Pending.
type TeacherLeaveCreateRequest struct {
	Date   string `json:"date" validate:"required"`
	Reason string `json:"reason"`
}

// TeacherLeaveDecisionRequest is the admin decision on an appeal. Only the
// status may change; date and reason are immutable once filed.
type TeacherLeaveDecisionRequest struct {
	Status *string `json:"status"`
}

// SalaryResponse reports a teacher's salary. Remaining is derived on every
// read and never persisted.
type SalaryResponse struct {
	TotalSalary float64 `json:"totalSalary"`
	PaidSalary  float64 `json:"paidSalary"`
	Remaining   float64 `json:"remaining"`
}

// SalaryUpdateRequest accepts absolute figures and/or a relative increment
// added to the paid amount.
type SalaryUpdateRequest struct {
	TotalSalary  *float64 `json:"totalSalary"`
	PaidSalary   *float64 `json:"paidSalary"`
	PayIncrement *float64 `json:"payIncrement"`
}

// SalaryRecordCreateRequest posts a per-month salary snapshot. Posting a
// month that already has a record replaces it.
type SalaryRecordCreateRequest struct {
	Month  string   `json:"month" validate:"required"`
	Total  *float64 `json:"total"`
	Paid   *float64 `json:"paid"`
	Status string   `json:"status"`
}

// SalaryRecordUpdateRequest partially updates an existing salary record.
type SalaryRecordUpdateRequest struct {
	Month  *string  `json:"month"`
	Total  *float64 `json:"total"`
	Paid   *float64 `json:"paid"`
	Status *string  `json:"status"`
}
