package storage

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/yourusername/telegram-market-bot/internal/domain/entity"
	"github.com/yourusername/telegram-market-bot/internal/domain/repository"
)

func TestStateRepositoryRoundTrip(t *testing.T) {
	repo := NewMemoryStateRepository()
	ctx := context.Background()

	state := &entity.DraftState{
		UserID:       42,
		CurrentStep:  entity.StepModel,
		Fields:       map[entity.Step]string{entity.StepBrand: "Apple"},
		LastActivity: time.Now(),
	}
	if err := repo.Put(ctx, state); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, err := repo.Get(ctx, 42)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Field(entity.StepBrand) != "Apple" {
		t.Fatalf("maydon saqlanishi kerak edi")
	}

	// Qaytgan nusxani o'zgartirish repository ichiga ta'sir qilmaydi
	got.SetField(entity.StepBrand, "Samsung")
	again, _ := repo.Get(ctx, 42)
	if again.Field(entity.StepBrand) != "Apple" {
		t.Fatalf("repository tashqi o'zgarishdan himoyalanishi kerak")
	}
}

func TestStateRepositorySweepIdle(t *testing.T) {
	repo := NewMemoryStateRepository()
	ctx := context.Background()

	old := &entity.DraftState{UserID: 1, LastActivity: time.Now().Add(-7 * time.Hour)}
	fresh := &entity.DraftState{UserID: 2, LastActivity: time.Now()}
	if err := repo.Put(ctx, old); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := repo.Put(ctx, fresh); err != nil {
		t.Fatalf("Put: %v", err)
	}

	removed, err := repo.SweepIdle(ctx, 6*time.Hour)
	if err != nil {
		t.Fatalf("SweepIdle: %v", err)
	}
	if removed != 1 {
		t.Fatalf("1 ta draft tozalanishi kerak edi, keldi %d", removed)
	}

	if _, err := repo.Get(ctx, 1); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("eski draft o'chirilishi kerak edi")
	}
	if _, err := repo.Get(ctx, 2); err != nil {
		t.Fatalf("yangi draft qolishi kerak edi: %v", err)
	}
}

func TestTicketRepositorySequentialIDs(t *testing.T) {
	repo := NewMemoryTicketRepository()
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		ticket, err := repo.Create(ctx, &entity.Ticket{UserID: 1, Status: entity.TicketStatusNew})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		want := fmt.Sprintf("TKT%06d", i)
		if ticket.ID != want {
			t.Fatalf("ID = %q, kutilgan %q", ticket.ID, want)
		}
	}
}

func TestTicketRepositorySweepFinished(t *testing.T) {
	repo := NewMemoryTicketRepository()
	ctx := context.Background()

	closed, _ := repo.Create(ctx, &entity.Ticket{UserID: 1, Status: entity.TicketStatusClosed})
	open, _ := repo.Create(ctx, &entity.Ticket{UserID: 1, Status: entity.TicketStatusNew})

	// UpdatedAt ni orqaga surish uchun to'g'ridan to'g'ri yangilaymiz
	impl := repo.(*memoryTicketRepository)
	impl.mu.Lock()
	impl.tickets[closed.ID].UpdatedAt = time.Now().Add(-31 * 24 * time.Hour)
	impl.mu.Unlock()

	removed, err := repo.SweepFinished(ctx, 30*24*time.Hour)
	if err != nil {
		t.Fatalf("SweepFinished: %v", err)
	}
	if removed != 1 {
		t.Fatalf("1 ta murojaat tozalanishi kerak edi, keldi %d", removed)
	}

	if _, err := repo.Get(ctx, closed.ID); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("yopilgan murojaat o'chirilishi kerak edi")
	}
	if _, err := repo.Get(ctx, open.ID); err != nil {
		t.Fatalf("ochiq murojaat eski bo'lsa ham qolishi kerak: %v", err)
	}
}

func TestInvoiceRepositoryPaidIsTerminal(t *testing.T) {
	repo := NewMemoryInvoiceRepository()
	ctx := context.Background()

	invoice := &entity.Invoice{ID: 1, UserID: 42, Status: entity.InvoiceStatusPaid}
	if err := repo.Put(ctx, invoice); err != nil {
		t.Fatalf("Put: %v", err)
	}

	// Paid dan active ga qaytarib bo'lmaydi
	invoice.Status = entity.InvoiceStatusActive
	if err := repo.Put(ctx, invoice); err == nil {
		t.Fatalf("paid hisobni active ga qaytarish xato berishi kerak edi")
	}

	got, err := repo.Get(ctx, 1)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Status != entity.InvoiceStatusPaid {
		t.Fatalf("holat paid bo'lib qolishi kerak, keldi %q", got.Status)
	}
}

func TestInvoiceRepositorySweepExpiredKeepsPaid(t *testing.T) {
	repo := NewMemoryInvoiceRepository()
	ctx := context.Background()

	oldTime := time.Now().Add(-48 * time.Hour)
	if err := repo.Put(ctx, &entity.Invoice{ID: 1, Status: entity.InvoiceStatusActive, CreatedAt: oldTime}); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := repo.Put(ctx, &entity.Invoice{ID: 2, Status: entity.InvoiceStatusPaid, CreatedAt: oldTime}); err != nil {
		t.Fatalf("Put: %v", err)
	}

	removed, err := repo.SweepExpired(ctx, 24*time.Hour)
	if err != nil {
		t.Fatalf("SweepExpired: %v", err)
	}
	if removed != 1 {
		t.Fatalf("faqat to'lanmagan hisob tozalanishi kerak edi, keldi %d", removed)
	}

	if _, err := repo.Get(ctx, 2); err != nil {
		t.Fatalf("paid hisob saqlanib qolishi kerak: %v", err)
	}
}

func TestUserRepositorySetPremiumIdempotent(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()

	first, err := repo.SetPremium(ctx, 42)
	if err != nil {
		t.Fatalf("SetPremium: %v", err)
	}
	if !first {
		t.Fatalf("birinchi aktivatsiya true qaytarishi kerak")
	}

	second, err := repo.SetPremium(ctx, 42)
	if err != nil {
		t.Fatalf("SetPremium: %v", err)
	}
	if second {
		t.Fatalf("takroriy aktivatsiya false qaytarishi kerak")
	}

	count, err := repo.CountPremium(ctx)
	if err != nil || count != 1 {
		t.Fatalf("1 ta premium kutilgan edi, keldi %d (%v)", count, err)
	}
}

func TestSupportLogTrim(t *testing.T) {
	repo := NewMemorySupportLogRepository()
	ctx := context.Background()

	// Cap dan oshmagan holatda trim hech narsa qilmaydi
	for i := 0; i < supportLogCap; i++ {
		if err := repo.Append(ctx, entity.SupportLogEntry{UserID: int64(i)}); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}
	if removed, _ := repo.Trim(ctx); removed != 0 {
		t.Fatalf("cap ga yetmaganda trim 0 qaytarishi kerak, keldi %d", removed)
	}

	// Cap dan oshganda keep gacha qisqaradi
	if err := repo.Append(ctx, entity.SupportLogEntry{UserID: 9999}); err != nil {
		t.Fatalf("Append: %v", err)
	}
	removed, err := repo.Trim(ctx)
	if err != nil {
		t.Fatalf("Trim: %v", err)
	}
	if want := supportLogCap + 1 - supportLogKeep; removed != want {
		t.Fatalf("trim %d ta yozuvni o'chirishi kerak edi, keldi %d", want, removed)
	}

	// Eng yangi yozuv saqlanib qoladi
	recent, err := repo.Recent(ctx, 1)
	if err != nil || len(recent) != 1 {
		t.Fatalf("Recent: %v (%d)", err, len(recent))
	}
	if recent[0].UserID != 9999 {
		t.Fatalf("eng yangi yozuv qolishi kerak edi, keldi %d", recent[0].UserID)
	}
}

func TestPriceRepositoryLookupNormalized(t *testing.T) {
	repo := NewMemoryPriceRepository()
	ctx := context.Background()

	catalog := entity.PriceCatalog{
		Entries: []entity.PriceReference{
			{Model: "iPhone 13", MinUSD: 350, MaxUSD: 500},
		},
		UpdatedAt: time.Now(),
		Source:    "prices.xlsx",
	}
	if err := repo.UpdateCatalog(ctx, catalog); err != nil {
		t.Fatalf("UpdateCatalog: %v", err)
	}

	// Registr va ortiqcha probellar farqi ahamiyatsiz
	for _, query := range []string{"iPhone 13", "iphone 13", "  IPHONE   13  "} {
		ref, ok := repo.Lookup(ctx, query)
		if !ok {
			t.Errorf("Lookup(%q) topishi kerak edi", query)
			continue
		}
		if ref.MinUSD != 350 {
			t.Errorf("Lookup(%q): MinUSD = %v", query, ref.MinUSD)
		}
	}

	if _, ok := repo.Lookup(ctx, "Galaxy S23"); ok {
		t.Fatalf("yo'q model topilmasligi kerak")
	}
}

func TestAdminSessionExpiry(t *testing.T) {
	repo := NewMemoryAdminRepository()
	ctx := context.Background()

	session := entity.AdminSession{UserID: 42, IsAdmin: true, LoginTime: time.Now()}
	if err := repo.CreateSession(ctx, session); err != nil {
		t.Fatalf("CreateSession: %v", err)
	}

	ok, err := repo.IsAdmin(ctx, 42)
	if err != nil || !ok {
		t.Fatalf("yangi sessiya faol bo'lishi kerak: (%v, %v)", ok, err)
	}

	// LastActivity ni TTL dan orqaga suramiz
	impl := repo.(*memoryAdminRepository)
	impl.mu.Lock()
	s := impl.sessions[42]
	s.LastActivity = time.Now().Add(-sessionTTL - time.Minute)
	impl.sessions[42] = s
	impl.mu.Unlock()

	ok, _ = repo.IsAdmin(ctx, 42)
	if ok {
		t.Fatalf("eskirgan sessiya admin bermasligi kerak")
	}
}

func TestAdminActionsOrderAndCap(t *testing.T) {
	repo := NewMemoryAdminRepository()
	ctx := context.Background()

	for i := 0; i < maxActions+5; i++ {
		err := repo.LogAction(ctx, entity.AdminAction{
			ID:        fmt.Sprintf("a-%d", i),
			UserID:    42,
			Action:    entity.AdminActionLogin,
			Timestamp: time.Now(),
		})
		if err != nil {
			t.Fatalf("LogAction %d: %v", i, err)
		}
	}

	actions, err := repo.Actions(ctx, 3)
	if err != nil {
		t.Fatalf("Actions: %v", err)
	}
	if len(actions) != 3 {
		t.Fatalf("3 ta harakat kutilgan edi, keldi %d", len(actions))
	}
	if actions[0].ID != fmt.Sprintf("a-%d", maxActions+4) {
		t.Fatalf("eng yangi harakat boshida bo'lishi kerak: %q", actions[0].ID)
	}

	all, _ := repo.Actions(ctx, 0)
	if len(all) != maxActions {
		t.Fatalf("cap %d kutilgan edi, keldi %d", maxActions, len(all))
	}
}
