package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/yourusername/telegram-market-bot/internal/domain/entity"
	"github.com/yourusername/telegram-market-bot/internal/domain/repository"
)

// Activation bitta muvaffaqiyatli premium aktivatsiya natijasi
type Activation struct {
	UserID    int64
	InvoiceID int64
	First     bool // false bo'lsa foydalanuvchi allaqachon premium edi
}

// PaymentUseCase premium to'lovlari bilan bog'liq business logic
type PaymentUseCase interface {
	// CreatePremiumInvoice premium uchun yangi hisob yaratish
	CreatePremiumInvoice(ctx context.Context, userID int64) (*entity.Invoice, error)

	// CheckInvoice bitta hisob holatini tekshirish (tugma bosilganda).
	// Hisob to'langan bo'lsa premium darhol aktivlashtiriladi.
	CheckInvoice(ctx context.Context, invoiceID int64) (*entity.Invoice, *Activation, error)

	// PollOnce hamma faol hisobni bir marta tekshirish (davriy polling).
	// Qaytgan ro'yxat shu yurishda aktivlashtirilgan premiumlar.
	PollOnce(ctx context.Context) ([]Activation, error)
}

type paymentUseCase struct {
	invoiceRepo repository.InvoiceRepository
	userRepo    repository.UserRepository
	provider    repository.PaymentProvider
	amount      float64
	currency    string
}

// NewPaymentUseCase yangi PaymentUseCase yaratish
func NewPaymentUseCase(
	invoiceRepo repository.InvoiceRepository,
	userRepo repository.UserRepository,
	provider repository.PaymentProvider,
	amount float64,
) PaymentUseCase {
	return &paymentUseCase{
		invoiceRepo: invoiceRepo,
		userRepo:    userRepo,
		provider:    provider,
		amount:      amount,
		currency:    "USDT",
	}
}

// CreatePremiumInvoice premium uchun yangi hisob yaratish
func (u *paymentUseCase) CreatePremiumInvoice(ctx context.Context, userID int64) (*entity.Invoice, error) {
	payload := uuid.NewString()
	description := "Премиум-доступ к маркетплейсу"

	invoice, err := u.provider.CreateInvoice(ctx, u.amount, u.currency, description, payload)
	if err != nil {
		return nil, fmt.Errorf("failed to create invoice: %w", err)
	}

	invoice.UserID = userID
	invoice.Payload = payload
	invoice.Status = entity.InvoiceStatusActive
	invoice.CreatedAt = time.Now()

	if err := u.invoiceRepo.Put(ctx, invoice); err != nil {
		return nil, fmt.Errorf("failed to save invoice: %w", err)
	}

	return invoice, nil
}

// CheckInvoice bitta hisob holatini tekshirish
func (u *paymentUseCase) CheckInvoice(ctx context.Context, invoiceID int64) (*entity.Invoice, *Activation, error) {
	invoice, err := u.invoiceRepo.Get(ctx, invoiceID)
	if err != nil {
		return nil, nil, err
	}

	// Paid yakuniy holat: provayderga qayta murojaat shart emas
	if invoice.IsTerminal() {
		return invoice, nil, nil
	}

	status, err := u.provider.GetInvoiceStatus(ctx, invoiceID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to check invoice: %w", err)
	}

	activation, err := u.applyStatus(ctx, invoice, status)
	if err != nil {
		return nil, nil, err
	}

	return invoice, activation, nil
}

// PollOnce hamma faol hisobni bir marta tekshirish. Bitta hisobdagi
// xato qolganlarini to'xtatmaydi.
func (u *paymentUseCase) PollOnce(ctx context.Context) ([]Activation, error) {
	active, err := u.invoiceRepo.Active(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active invoices: %w", err)
	}

	var activations []Activation
	for i := range active {
		invoice := &active[i]

		status, err := u.provider.GetInvoiceStatus(ctx, invoice.ID)
		if err != nil {
			log.Printf("Hisob %d holatini tekshirishda xatolik: %v", invoice.ID, err)
			continue
		}

		activation, err := u.applyStatus(ctx, invoice, status)
		if err != nil {
			log.Printf("Hisob %d holatini qo'llashda xatolik: %v", invoice.ID, err)
			continue
		}
		if activation != nil {
			activations = append(activations, *activation)
		}
	}

	return activations, nil
}

// applyStatus provayder javobini hisobga qo'llash. paid holatiga o'tish
// premiumni aktivlashtiradi; aktivatsiya idempotent (SetPremium allaqachon
// premium bo'lsa false qaytaradi, takror xabar yuborilmaydi).
func (u *paymentUseCase) applyStatus(ctx context.Context, invoice *entity.Invoice, status entity.InvoiceStatus) (*Activation, error) {
	if status == invoice.Status {
		return nil, nil
	}

	invoice.Status = status
	if status == entity.InvoiceStatusPaid {
		invoice.PaidAt = time.Now()
	}

	if err := u.invoiceRepo.Put(ctx, invoice); err != nil {
		return nil, fmt.Errorf("failed to save invoice: %w", err)
	}

	if status != entity.InvoiceStatusPaid {
		return nil, nil
	}

	first, err := u.userRepo.SetPremium(ctx, invoice.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to activate premium: %w", err)
	}

	return &Activation{
		UserID:    invoice.UserID,
		InvoiceID: invoice.ID,
		First:     first,
	}, nil
}
