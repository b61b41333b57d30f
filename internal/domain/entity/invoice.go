package entity

import "time"

// InvoiceStatus to'lov hisobi holati
type InvoiceStatus string

const (
	InvoiceStatusActive  InvoiceStatus = "active"
	InvoiceStatusPaid    InvoiceStatus = "paid"
	InvoiceStatusExpired InvoiceStatus = "expired"
)

// Invoice tashqi to'lov provayderidagi hisob
type Invoice struct {
	ID        int64 // provayder bergan ID
	Payload   string
	UserID    int64
	Amount    float64
	Currency  string
	PayURL    string
	Status    InvoiceStatus
	CreatedAt time.Time
	PaidAt    time.Time
}

// IsTerminal paid holati yakuniy hisoblanadi
func (i *Invoice) IsTerminal() bool {
	return i.Status == InvoiceStatusPaid
}
