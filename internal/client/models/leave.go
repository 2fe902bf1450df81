package models

// LeaveRequest is an absence request for mess or hostel days.
type LeaveRequest struct {
	ID          string `json:"id"`
	Type        string `json:"type"` // mess or hostel
	Reason      string `json:"reason"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Status      string `json:"status"` // approved, pending or rejected
	SubmittedAt string `json:"submittedAt,omitempty"`
}
