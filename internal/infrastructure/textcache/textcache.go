package textcache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/allegro/bigcache/v3"

	"github.com/yourusername/telegram-market-bot/internal/domain/repository"
)

// maxTexts bitta foydalanuvchi uchun saqlanadigan matnlar soni
const maxTexts = 5

// RecentTexts duplicate tekshirish uchun oxirgi matnlar keshi.
// TTL eviction bigcache zimmasida, alohida sweep kerak emas.
type RecentTexts struct {
	cache *bigcache.BigCache
}

// New yangi matnlar keshini yaratish
func New(lifeWindow time.Duration) (repository.RecentTextCache, error) {
	cache, err := bigcache.New(context.Background(), bigcache.DefaultConfig(lifeWindow))
	if err != nil {
		return nil, fmt.Errorf("failed to create text cache: %w", err)
	}

	return &RecentTexts{cache: cache}, nil
}

// Add foydalanuvchi matnini qo'shish (eng eskisi chiqib ketadi)
func (r *RecentTexts) Add(userID int64, text string) error {
	texts := r.Get(userID)

	texts = append([]string{text}, texts...)
	if len(texts) > maxTexts {
		texts = texts[:maxTexts]
	}

	data, err := json.Marshal(texts)
	if err != nil {
		return err
	}

	return r.cache.Set(cacheKey(userID), data)
}

// Get foydalanuvchining oxirgi matnlari (yangidan eskiga)
func (r *RecentTexts) Get(userID int64) []string {
	data, err := r.cache.Get(cacheKey(userID))
	if err != nil {
		// Topilmagani normal holat, boshqa xatolarni log qilamiz
		if err != bigcache.ErrEntryNotFound {
			log.Printf("Matn keshini o'qishda xatolik: %v", err)
		}
		return nil
	}

	var texts []string
	if err := json.Unmarshal(data, &texts); err != nil {
		log.Printf("Matn keshini parse qilishda xatolik: %v", err)
		return nil
	}

	return texts
}

func cacheKey(userID int64) string {
	return fmt.Sprintf("texts:%d", userID)
}
