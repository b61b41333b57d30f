package storage

import (
	"context"
	"sync"
	"time"

	"github.com/yourusername/telegram-market-bot/internal/domain/entity"
	"github.com/yourusername/telegram-market-bot/internal/domain/repository"
)

const (
	// sessionTTL admin sessiyasining harakatsizlik muddati
	sessionTTL = 24 * time.Hour

	// maxActions audit logdagi yozuvlar soni chegarasi
	maxActions = 200
)

type memoryAdminRepository struct {
	mu       sync.RWMutex
	sessions map[int64]entity.AdminSession
	actions  []entity.AdminAction
}

// NewMemoryAdminRepository in-memory admin repository yaratish
func NewMemoryAdminRepository() repository.AdminRepository {
	return &memoryAdminRepository{
		sessions: make(map[int64]entity.AdminSession),
	}
}

// CreateSession admin sessiyasini yaratish
func (m *memoryAdminRepository) CreateSession(ctx context.Context, session entity.AdminSession) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	session.LastActivity = time.Now()
	m.sessions[session.UserID] = session
	return nil
}

// DeleteSession sessiyani o'chirish (logout)
func (m *memoryAdminRepository) DeleteSession(ctx context.Context, userID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, userID)
	return nil
}

// IsAdmin foydalanuvchi admin ekanligini tekshirish.
// Faol sessiya muddati uzaytiriladi, eskirgani o'chiriladi.
func (m *memoryAdminRepository) IsAdmin(ctx context.Context, userID int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, exists := m.sessions[userID]
	if !exists {
		return false, nil
	}

	if time.Since(session.LastActivity) > sessionTTL {
		delete(m.sessions, userID)
		return false, nil
	}

	session.LastActivity = time.Now()
	m.sessions[userID] = session
	return session.IsAdmin, nil
}

// LogAction admin harakatini audit logga yozish
func (m *memoryAdminRepository) LogAction(ctx context.Context, action entity.AdminAction) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.actions = append(m.actions, action)
	if len(m.actions) > maxActions {
		m.actions = m.actions[len(m.actions)-maxActions:]
	}
	return nil
}

// Actions oxirgi limit ta admin harakati (yangidan eskiga)
func (m *memoryAdminRepository) Actions(ctx context.Context, limit int) ([]entity.AdminAction, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if limit <= 0 || limit > len(m.actions) {
		limit = len(m.actions)
	}

	result := make([]entity.AdminAction, 0, limit)
	for i := len(m.actions) - 1; i >= len(m.actions)-limit; i-- {
		result = append(result, m.actions[i])
	}
	return result, nil
}
