package models

import "time"

const (
	TxCredit = "credit"
	TxDebit  = "debit"
)

type Transaction struct {
	ID     string
	UserID string
	Amount float64
	Kind   string
	Note   string
	Date   time.Time
}

type Bill struct {
	ID          string
	UserID      string
	Amount      float64
	Status      string // paid, pending or overdue
	Description string
	Date        time.Time
}

type LeaveRequest struct {
	ID          string
	UserID      string
	Type        string // mess or hostel
	Reason      string
	StartDate   string
	EndDate     string
	Status      string // approved, pending or rejected
	SubmittedAt time.Time
}
