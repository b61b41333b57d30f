package entity

import "time"

// AdminSession admin sessiya
type AdminSession struct {
	UserID       int64
	IsAdmin      bool
	LoginTime    time.Time
	LastActivity time.Time
}

// Admin harakat turlari
const (
	AdminActionLogin        = "login"
	AdminActionUploadPrices = "upload_prices"
	AdminActionTicketStatus = "ticket_status"
	AdminActionTicketReply  = "ticket_reply"
)

// AdminAction admin harakatlari (audit log)
type AdminAction struct {
	ID        string
	UserID    int64
	Action    string
	Details   string
	Timestamp time.Time
}

// SupportLogEntry admin ko'rishi uchun saqlanadigan oxirgi xabarlar yozuvi
type SupportLogEntry struct {
	ID        string
	UserID    int64
	Username  string
	Text      string
	Kind      string // "support", "wizard", "payment"
	Timestamp time.Time
}
