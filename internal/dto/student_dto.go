package dto

// StudentCreateRequest carries a new student payload.
type StudentCreateRequest struct {
	Name      string   `json:"name" validate:"required"`
	RegNo     string   `json:"regno" validate:"required"`
	Mobile    string   `json:"mobile" validate:"required"`
	Division  string   `json:"division"`
	FeeStatus string   `json:"feeStatus"`
	Marks     *float64 `json:"marks"`
}

// StudentUpdateRequest carries a partial student update. Only identity and
// fee fields are reachable through this path; marks and cgpa are not.
type StudentUpdateRequest struct {
	Name      *string `json:"name"`
	RegNo     *string `json:"regno"`
	Mobile    *string `json:"mobile"`
	Division  *string `json:"division"`
	FeeStatus *string `json:"feeStatus"`
}

// MarksUpdateRequest updates a student's cgpa.
type MarksUpdateRequest struct {
	CGPA *float64 `json:"cgpa"`
}

// LeaveCreateRequest adds a leave entry under a student.
type LeaveCreateRequest struct {
	Date   string `json:"date" validate:"required"`
	Reason string `json:"reason"`
	Status string `json:"status"`
}

// LeaveUpdateRequest partially updates a leave entry.
type LeaveUpdateRequest struct {
	Date   *string `json:"date"`
	Reason *string `json:"reason"`
	Status *string `json:"status"`
}
