package models

// Bill is a periodic mess bill.
type Bill struct {
	ID          string  `json:"id"`
	Date        string  `json:"date"`
	Amount      float64 `json:"amount"`
	Status      string  `json:"status"` // paid, pending or overdue
	Description string  `json:"description"`
}

// Transaction is a wallet ledger entry.
type Transaction struct {
	ID     string  `json:"id"`
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
	Kind   string  `json:"type"` // credit or debit
	Note   string  `json:"note,omitempty"`
}
