package storage

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/yourusername/telegram-market-bot/internal/domain/entity"
	"github.com/yourusername/telegram-market-bot/internal/domain/repository"
)

type memoryTicketRepository struct {
	mu      sync.RWMutex
	tickets map[string]*entity.Ticket
	changes []entity.StatusChange
	nextSeq int64
}

// NewMemoryTicketRepository in-memory ticket repository yaratish
func NewMemoryTicketRepository() repository.TicketRepository {
	return &memoryTicketRepository{
		tickets: make(map[string]*entity.Ticket),
		nextSeq: 1,
	}
}

// Create yangi murojaat yaratish (ID ketma-ket beriladi)
func (m *memoryTicketRepository) Create(ctx context.Context, ticket *entity.Ticket) (*entity.Ticket, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ticket.ID = fmt.Sprintf("TKT%06d", m.nextSeq)
	m.nextSeq++

	copied := copyTicket(ticket)
	m.tickets[copied.ID] = copied

	return copyTicket(copied), nil
}

// Get ID bo'yicha murojaatni olish
func (m *memoryTicketRepository) Get(ctx context.Context, id string) (*entity.Ticket, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ticket, exists := m.tickets[id]
	if !exists {
		return nil, fmt.Errorf("ticket %s: %w", id, repository.ErrNotFound)
	}

	return copyTicket(ticket), nil
}

// Update murojaatni to'liq almashtirish
func (m *memoryTicketRepository) Update(ctx context.Context, ticket *entity.Ticket) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.tickets[ticket.ID]; !exists {
		return fmt.Errorf("ticket %s: %w", ticket.ID, repository.ErrNotFound)
	}

	ticket.UpdatedAt = time.Now()
	m.tickets[ticket.ID] = copyTicket(ticket)
	return nil
}

// OpenByUser foydalanuvchining ochiq murojaatlari (yangidan eskiga)
func (m *memoryTicketRepository) OpenByUser(ctx context.Context, userID int64, limit int) ([]entity.Ticket, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var result []entity.Ticket
	for _, t := range m.tickets {
		if t.UserID == userID && t.IsOpen() {
			result = append(result, *copyTicket(t))
		}
	}

	sortTicketsNewestFirst(result)
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}

	return result, nil
}

// ByUser foydalanuvchining barcha murojaatlari (yangidan eskiga)
func (m *memoryTicketRepository) ByUser(ctx context.Context, userID int64) ([]entity.Ticket, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var result []entity.Ticket
	for _, t := range m.tickets {
		if t.UserID == userID {
			result = append(result, *copyTicket(t))
		}
	}

	sortTicketsNewestFirst(result)
	return result, nil
}

// List holat bo'yicha murojaatlar ro'yxati
func (m *memoryTicketRepository) List(ctx context.Context, status entity.TicketStatus) ([]entity.Ticket, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var result []entity.Ticket
	for _, t := range m.tickets {
		if status == "" || t.Status == status {
			result = append(result, *copyTicket(t))
		}
	}

	sortTicketsNewestFirst(result)
	return result, nil
}

// LogStatusChange holat o'zgarishini audit logga yozish
func (m *memoryTicketRepository) LogStatusChange(ctx context.Context, change entity.StatusChange) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.changes = append(m.changes, change)
	return nil
}

// SweepFinished yopilgan/hal qilingan eski murojaatlarni tozalash
func (m *memoryTicketRepository) SweepFinished(ctx context.Context, olderThan time.Duration) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	deadline := time.Now().Add(-olderThan)
	removed := 0
	for id, t := range m.tickets {
		if t.IsFinished() && t.UpdatedAt.Before(deadline) {
			delete(m.tickets, id)
			removed++
		}
	}

	return removed, nil
}

func sortTicketsNewestFirst(tickets []entity.Ticket) {
	sort.Slice(tickets, func(i, j int) bool {
		return tickets[i].CreatedAt.After(tickets[j].CreatedAt)
	})
}

func copyTicket(t *entity.Ticket) *entity.Ticket {
	copied := *t
	copied.Messages = append([]entity.TicketMessage(nil), t.Messages...)
	return &copied
}
