package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/yourusername/telegram-market-bot/internal/domain/entity"
	"github.com/yourusername/telegram-market-bot/internal/domain/repository"
)

// Stats admin paneli uchun umumiy ko'rsatkichlar
type Stats struct {
	Listings    int
	OpenTickets int
	Premium     int
}

// AdminUseCase admin bilan bog'liq business logic
type AdminUseCase interface {
	// Login parol orqali admin sessiyasini ochish
	Login(ctx context.Context, userID int64, password string) (bool, error)

	// Logout admin sessiyasini yopish
	Logout(ctx context.Context, userID int64) error

	// IsAdmin foydalanuvchi admin ekanligini tekshirish
	IsAdmin(ctx context.Context, userID int64) (bool, error)

	// UploadPrices Excel fayldan narx jadvalini yangilash
	UploadPrices(ctx context.Context, userID int64, data []byte, filename string) (int, error)

	// CatalogInfo joriy narx jadvali haqida ma'lumot
	CatalogInfo(ctx context.Context) (*entity.PriceCatalog, error)

	// Stats umumiy ko'rsatkichlar
	Stats(ctx context.Context) (*Stats, error)

	// RecentMessages oxirgi foydalanuvchi xabarlari (support log)
	RecentMessages(ctx context.Context, limit int) ([]entity.SupportLogEntry, error)

	// AuditLog oxirgi admin harakatlari (faqat adminlar uchun)
	AuditLog(ctx context.Context, userID int64, limit int) ([]entity.AdminAction, error)
}

type adminUseCase struct {
	adminRepo   repository.AdminRepository
	priceRepo   repository.PriceRepository
	parser      repository.PriceParser
	listingRepo repository.ListingRepository
	ticketRepo  repository.TicketRepository
	userRepo    repository.UserRepository
	logRepo     repository.SupportLogRepository
	password    string
}

// NewAdminUseCase yangi AdminUseCase yaratish
func NewAdminUseCase(
	adminRepo repository.AdminRepository,
	priceRepo repository.PriceRepository,
	parser repository.PriceParser,
	listingRepo repository.ListingRepository,
	ticketRepo repository.TicketRepository,
	userRepo repository.UserRepository,
	logRepo repository.SupportLogRepository,
	password string,
) AdminUseCase {
	return &adminUseCase{
		adminRepo:   adminRepo,
		priceRepo:   priceRepo,
		parser:      parser,
		listingRepo: listingRepo,
		ticketRepo:  ticketRepo,
		userRepo:    userRepo,
		logRepo:     logRepo,
		password:    password,
	}
}

// Login parol orqali admin sessiyasini ochish
func (u *adminUseCase) Login(ctx context.Context, userID int64, password string) (bool, error) {
	if password != u.password {
		return false, nil
	}

	now := time.Now()
	session := entity.AdminSession{
		UserID:       userID,
		IsAdmin:      true,
		LoginTime:    now,
		LastActivity: now,
	}

	if err := u.adminRepo.CreateSession(ctx, session); err != nil {
		return false, fmt.Errorf("failed to create session: %w", err)
	}

	if err := u.adminRepo.LogAction(ctx, entity.AdminAction{
		ID:        uuid.NewString(),
		UserID:    userID,
		Action:    entity.AdminActionLogin,
		Timestamp: now,
	}); err != nil {
		return false, fmt.Errorf("failed to log action: %w", err)
	}

	return true, nil
}

// Logout admin sessiyasini yopish
func (u *adminUseCase) Logout(ctx context.Context, userID int64) error {
	return u.adminRepo.DeleteSession(ctx, userID)
}

// IsAdmin foydalanuvchi admin ekanligini tekshirish
func (u *adminUseCase) IsAdmin(ctx context.Context, userID int64) (bool, error) {
	return u.adminRepo.IsAdmin(ctx, userID)
}

// UploadPrices Excel fayldan narx jadvalini yangilash.
// Qaytgan son — jadvalga tushgan yozuvlar soni.
func (u *adminUseCase) UploadPrices(ctx context.Context, userID int64, data []byte, filename string) (int, error) {
	ok, err := u.adminRepo.IsAdmin(ctx, userID)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, &ValidationError{Reason: "Недостаточно прав."}
	}

	entries, err := u.parser.ParsePricesFromBytes(ctx, data, filename)
	if err != nil {
		return 0, fmt.Errorf("failed to parse prices: %w", err)
	}
	if len(entries) == 0 {
		return 0, &ValidationError{Reason: "В файле не найдено ни одной строки с ценами."}
	}

	catalog := entity.PriceCatalog{
		Entries:   entries,
		UpdatedAt: time.Now(),
		Source:    filename,
	}
	if err := u.priceRepo.UpdateCatalog(ctx, catalog); err != nil {
		return 0, fmt.Errorf("failed to update catalog: %w", err)
	}

	if err := u.adminRepo.LogAction(ctx, entity.AdminAction{
		ID:        uuid.NewString(),
		UserID:    userID,
		Action:    entity.AdminActionUploadPrices,
		Details:   fmt.Sprintf("%s: %d yozuv", filename, len(entries)),
		Timestamp: time.Now(),
	}); err != nil {
		return 0, fmt.Errorf("failed to log action: %w", err)
	}

	return len(entries), nil
}

// CatalogInfo joriy narx jadvali haqida ma'lumot
func (u *adminUseCase) CatalogInfo(ctx context.Context) (*entity.PriceCatalog, error) {
	return u.priceRepo.GetCatalog(ctx)
}

// Stats umumiy ko'rsatkichlar
func (u *adminUseCase) Stats(ctx context.Context) (*Stats, error) {
	listings, err := u.listingRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count listings: %w", err)
	}

	open := 0
	for _, status := range []entity.TicketStatus{entity.TicketStatusNew, entity.TicketStatusPending} {
		tickets, err := u.ticketRepo.List(ctx, status)
		if err != nil {
			return nil, fmt.Errorf("failed to list tickets: %w", err)
		}
		open += len(tickets)
	}

	premium, err := u.userRepo.CountPremium(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count premium users: %w", err)
	}

	return &Stats{
		Listings:    listings,
		OpenTickets: open,
		Premium:     premium,
	}, nil
}

// RecentMessages oxirgi foydalanuvchi xabarlari
func (u *adminUseCase) RecentMessages(ctx context.Context, limit int) ([]entity.SupportLogEntry, error) {
	return u.logRepo.Recent(ctx, limit)
}

// AuditLog oxirgi admin harakatlari
func (u *adminUseCase) AuditLog(ctx context.Context, userID int64, limit int) ([]entity.AdminAction, error) {
	ok, err := u.adminRepo.IsAdmin(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &ValidationError{Reason: "Недостаточно прав."}
	}

	return u.adminRepo.Actions(ctx, limit)
}
