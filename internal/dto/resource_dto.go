package dto

// BookCreateRequest carries a new library book.
type BookCreateRequest struct {
	Title    string `json:"title" validate:"required"`
	Author   string `json:"author" validate:"required"`
	Subject  string `json:"subject" validate:"required"`
	Quantity *int   `json:"quantity" validate:"required"`
}

// BookUpdateRequest partially updates a book.
type BookUpdateRequest struct {
	Title    *string `json:"title"`
	Author   *string `json:"author"`
	Subject  *string `json:"subject"`
	Quantity *int    `json:"quantity"`
}

// EventCreateRequest appends an entry to the event spend ledger.
type EventCreateRequest struct {
	Details  string   `json:"details" validate:"required"`
	AmountRs *float64 `json:"amountRs" validate:"required"`
}

// InfrastructureCreateRequest carries a new infrastructure spend entry.
type InfrastructureCreateRequest struct {
	Details  string   `json:"details" validate:"required"`
	AmountRs *float64 `json:"amountRs" validate:"required"`
}

// InfrastructureUpdateRequest partially updates an infrastructure entry.
type InfrastructureUpdateRequest struct {
	Details  *string  `json:"details"`
	AmountRs *float64 `json:"amountRs"`
}

// NoticeCreateRequest carries a new notice.
type NoticeCreateRequest struct {
	Title    string `json:"title" validate:"required"`
	Details  string `json:"details"`
	Venue    string `json:"venue"`
	DateTime string `json:"dateTime" validate:"required"`
}

// NoticeUpdateRequest partially updates a notice.
type NoticeUpdateRequest struct {
	Title    *string `json:"title"`
	Details  *string `json:"details"`
	Venue    *string `json:"venue"`
	DateTime *string `json:"dateTime"`
}
