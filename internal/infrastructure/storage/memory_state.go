package storage

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/yourusername/telegram-market-bot/internal/domain/entity"
	"github.com/yourusername/telegram-market-bot/internal/domain/repository"
)

type memoryStateRepository struct {
	mu     sync.RWMutex
	states map[int64]*entity.DraftState
}

// NewMemoryStateRepository in-memory state repository yaratish
func NewMemoryStateRepository() repository.StateRepository {
	return &memoryStateRepository{
		states: make(map[int64]*entity.DraftState),
	}
}

// Get foydalanuvchi holatini olish
func (m *memoryStateRepository) Get(ctx context.Context, userID int64) (*entity.DraftState, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	state, exists := m.states[userID]
	if !exists {
		return nil, fmt.Errorf("draft state for user %d: %w", userID, repository.ErrNotFound)
	}

	copied := copyState(state)
	return copied, nil
}

// Put holatni saqlash
func (m *memoryStateRepository) Put(ctx context.Context, state *entity.DraftState) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.states[state.UserID] = copyState(state)
	return nil
}

// Delete holatni o'chirish
func (m *memoryStateRepository) Delete(ctx context.Context, userID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.states, userID)
	return nil
}

// SweepIdle uzoq vaqt faol bo'lmagan holatlarni tozalash
func (m *memoryStateRepository) SweepIdle(ctx context.Context, olderThan time.Duration) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	deadline := time.Now().Add(-olderThan)
	removed := 0
	for userID, state := range m.states {
		if state.LastActivity.Before(deadline) {
			delete(m.states, userID)
			removed++
		}
	}

	return removed, nil
}

// copyState handler va repository orasida umumiy map bo'lib qolmasligi uchun nusxa
func copyState(s *entity.DraftState) *entity.DraftState {
	copied := *s
	copied.Fields = make(map[entity.Step]string, len(s.Fields))
	for k, v := range s.Fields {
		copied.Fields[k] = v
	}
	copied.Photos = append([]string(nil), s.Photos...)
	copied.StepHistory = append([]entity.Step(nil), s.StepHistory...)
	return &copied
}
