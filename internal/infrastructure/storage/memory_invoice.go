package storage

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/yourusername/telegram-market-bot/internal/domain/entity"
	"github.com/yourusername/telegram-market-bot/internal/domain/repository"
)

type memoryInvoiceRepository struct {
	mu       sync.RWMutex
	invoices map[int64]*entity.Invoice
}

// NewMemoryInvoiceRepository in-memory invoice repository yaratish
func NewMemoryInvoiceRepository() repository.InvoiceRepository {
	return &memoryInvoiceRepository{
		invoices: make(map[int64]*entity.Invoice),
	}
}

// Put hisobni saqlash. Paid holati yakuniy: qaytadan active qilib bo'lmaydi.
func (m *memoryInvoiceRepository) Put(ctx context.Context, invoice *entity.Invoice) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if existing, ok := m.invoices[invoice.ID]; ok && existing.IsTerminal() && !invoice.IsTerminal() {
		return fmt.Errorf("invoice %d allaqachon paid holatida", invoice.ID)
	}

	copied := *invoice
	m.invoices[invoice.ID] = &copied
	return nil
}

// Get ID bo'yicha hisobni olish
func (m *memoryInvoiceRepository) Get(ctx context.Context, id int64) (*entity.Invoice, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	invoice, exists := m.invoices[id]
	if !exists {
		return nil, fmt.Errorf("invoice %d: %w", id, repository.ErrNotFound)
	}

	copied := *invoice
	return &copied, nil
}

// Active hali to'lanmagan hisoblar ro'yxati
func (m *memoryInvoiceRepository) Active(ctx context.Context) ([]entity.Invoice, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var result []entity.Invoice
	for _, invoice := range m.invoices {
		if invoice.Status == entity.InvoiceStatusActive {
			result = append(result, *invoice)
		}
	}

	return result, nil
}

// SweepExpired eskirgan hisoblarni tozalash
func (m *memoryInvoiceRepository) SweepExpired(ctx context.Context, olderThan time.Duration) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	deadline := time.Now().Add(-olderThan)
	removed := 0
	for id, invoice := range m.invoices {
		if invoice.Status != entity.InvoiceStatusPaid && invoice.CreatedAt.Before(deadline) {
			delete(m.invoices, id)
			removed++
		}
	}

	return removed, nil
}
