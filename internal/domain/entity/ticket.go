package entity

import "time"

// TicketCategory murojaat kategoriyasi
type TicketCategory string

const (
	CategoryPayment    TicketCategory = "payment"
	CategoryTechnical  TicketCategory = "technical"
	CategorySuggestion TicketCategory = "suggestion"
	CategoryGeneral    TicketCategory = "general"
	CategoryOther      TicketCategory = "other"
)

// TicketStatus murojaat holati
type TicketStatus string

const (
	TicketStatusNew      TicketStatus = "new"
	TicketStatusPending  TicketStatus = "pending"
	TicketStatusAnswered TicketStatus = "answered"
	TicketStatusSolved   TicketStatus = "solved"
	TicketStatusClosed   TicketStatus = "closed"
)

// Valid holat lug'atdagi qiymatlardan biri ekanligini tekshirish
func (s TicketStatus) Valid() bool {
	switch s {
	case TicketStatusNew, TicketStatusPending, TicketStatusAnswered, TicketStatusSolved, TicketStatusClosed:
		return true
	}
	return false
}

// TicketSender xabar muallifi turi
type TicketSender string

const (
	SenderUser   TicketSender = "user"
	SenderAdmin  TicketSender = "admin"
	SenderSystem TicketSender = "system"
)

// TicketMessage murojaat ichidagi bitta xabar (append-only)
type TicketMessage struct {
	Text      string
	Sender    TicketSender
	Timestamp time.Time
}

// Ticket qo'llab-quvvatlash murojaati
type Ticket struct {
	ID          string // TKT000123 ko'rinishida
	UserID      int64
	Username    string
	Category    TicketCategory
	Status      TicketStatus
	Messages    []TicketMessage
	DuplicateOf string // avvalgi ochiq murojaat ID si (bo'sh bo'lishi mumkin)
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// FirstMessage murojaatning birinchi xabari (duplicate tekshirish uchun)
func (t *Ticket) FirstMessage() string {
	if len(t.Messages) == 0 {
		return ""
	}
	return t.Messages[0].Text
}

// IsOpen murojaat hali yopilmaganligini tekshirish
func (t *Ticket) IsOpen() bool {
	return t.Status == TicketStatusNew || t.Status == TicketStatusPending
}

// IsFinished murojaat yakunlanganligini tekshirish (GC uchun)
func (t *Ticket) IsFinished() bool {
	return t.Status == TicketStatusSolved || t.Status == TicketStatusClosed
}

// StatusChange murojaat holati o'zgarishi (audit log yozuvi)
type StatusChange struct {
	TicketID  string
	From      TicketStatus
	To        TicketStatus
	ActorID   int64
	Timestamp time.Time
}
