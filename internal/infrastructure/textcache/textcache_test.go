package textcache

import (
	"fmt"
	"testing"
	"time"
)

func TestAddAndGet(t *testing.T) {
	cache, err := New(time.Hour)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if got := cache.Get(42); got != nil {
		t.Fatalf("bo'sh kesh uchun nil kutilgan edi, keldi %#v", got)
	}

	if err := cache.Add(42, "birinchi e'lon"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := cache.Add(42, "ikkinchi e'lon"); err != nil {
		t.Fatalf("Add: %v", err)
	}

	texts := cache.Get(42)
	if len(texts) != 2 {
		t.Fatalf("2 ta matn kutilgan edi, keldi %d", len(texts))
	}
	// Yangidan eskiga tartib
	if texts[0] != "ikkinchi e'lon" || texts[1] != "birinchi e'lon" {
		t.Fatalf("tartib noto'g'ri: %#v", texts)
	}
}

func TestCapAtMaxTexts(t *testing.T) {
	cache, err := New(time.Hour)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	for i := 0; i < maxTexts+3; i++ {
		if err := cache.Add(42, fmt.Sprintf("e'lon %d", i)); err != nil {
			t.Fatalf("Add %d: %v", i, err)
		}
	}

	texts := cache.Get(42)
	if len(texts) != maxTexts {
		t.Fatalf("%d ta matn kutilgan edi, keldi %d", maxTexts, len(texts))
	}
	// Eng yangisi boshida, eng eskilari chiqib ketgan
	if texts[0] != fmt.Sprintf("e'lon %d", maxTexts+2) {
		t.Fatalf("eng yangi matn boshida bo'lishi kerak: %#v", texts)
	}
}

func TestUsersIsolated(t *testing.T) {
	cache, err := New(time.Hour)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if err := cache.Add(1, "matn birinchi foydalanuvchidan"); err != nil {
		t.Fatalf("Add: %v", err)
	}

	if got := cache.Get(2); got != nil {
		t.Fatalf("boshqa foydalanuvchi matnlari ko'rinmasligi kerak: %#v", got)
	}
}
