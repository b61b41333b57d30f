package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/yourusername/telegram-market-bot/internal/domain/entity"
	"github.com/yourusername/telegram-market-bot/internal/infrastructure/storage"
)

type fakeProvider struct {
	nextID   int64
	statuses map[int64]entity.InvoiceStatus
	failGet  bool
}

func newFakeProvider() *fakeProvider {
	return &fakeProvider{nextID: 1, statuses: make(map[int64]entity.InvoiceStatus)}
}

func (f *fakeProvider) CreateInvoice(ctx context.Context, amount float64, currency, description, payload string) (*entity.Invoice, error) {
	id := f.nextID
	f.nextID++
	f.statuses[id] = entity.InvoiceStatusActive
	return &entity.Invoice{
		ID:       id,
		Amount:   amount,
		Currency: currency,
		PayURL:   "https://t.me/CryptoBot?start=test",
		Status:   entity.InvoiceStatusActive,
	}, nil
}

func (f *fakeProvider) GetInvoiceStatus(ctx context.Context, invoiceID int64) (entity.InvoiceStatus, error) {
	if f.failGet {
		return "", errors.New("provider unavailable")
	}
	return f.statuses[invoiceID], nil
}

func newPaymentForTest(provider *fakeProvider) PaymentUseCase {
	return NewPaymentUseCase(
		storage.NewMemoryInvoiceRepository(),
		storage.NewMemoryUserRepository(),
		provider,
		3,
	)
}

func TestCreatePremiumInvoice(t *testing.T) {
	u := newPaymentForTest(newFakeProvider())

	invoice, err := u.CreatePremiumInvoice(context.Background(), 42)
	if err != nil {
		t.Fatalf("CreatePremiumInvoice: %v", err)
	}
	if invoice.UserID != 42 {
		t.Fatalf("hisob foydalanuvchiga bog'lanishi kerak, keldi %d", invoice.UserID)
	}
	if invoice.Payload == "" {
		t.Fatalf("payload bo'sh bo'lmasligi kerak")
	}
	if invoice.Status != entity.InvoiceStatusActive {
		t.Fatalf("yangi hisob active bo'lishi kerak, keldi %q", invoice.Status)
	}
}

func TestPollOnceActivatesPremium(t *testing.T) {
	provider := newFakeProvider()
	u := newPaymentForTest(provider)
	ctx := context.Background()

	invoice, err := u.CreatePremiumInvoice(ctx, 42)
	if err != nil {
		t.Fatalf("CreatePremiumInvoice: %v", err)
	}

	// Hali to'lanmagan
	activations, err := u.PollOnce(ctx)
	if err != nil {
		t.Fatalf("PollOnce: %v", err)
	}
	if len(activations) != 0 {
		t.Fatalf("to'lanmagan hisob aktivatsiya bermasligi kerak, keldi %d", len(activations))
	}

	provider.statuses[invoice.ID] = entity.InvoiceStatusPaid

	activations, err = u.PollOnce(ctx)
	if err != nil {
		t.Fatalf("PollOnce: %v", err)
	}
	if len(activations) != 1 {
		t.Fatalf("1 ta aktivatsiya kutilgan edi, keldi %d", len(activations))
	}
	if activations[0].UserID != 42 || !activations[0].First {
		t.Fatalf("birinchi aktivatsiya kutilgan edi: %#v", activations[0])
	}

	// Paid yakuniy holat: keyingi poll hech narsa qilmaydi
	activations, err = u.PollOnce(ctx)
	if err != nil {
		t.Fatalf("PollOnce: %v", err)
	}
	if len(activations) != 0 {
		t.Fatalf("takroriy aktivatsiya bo'lmasligi kerak, keldi %d", len(activations))
	}
}

func TestPremiumActivationIdempotent(t *testing.T) {
	provider := newFakeProvider()
	u := newPaymentForTest(provider)
	ctx := context.Background()

	// Bitta foydalanuvchi ikki marta to'lasa ham premium bitta
	first, err := u.CreatePremiumInvoice(ctx, 42)
	if err != nil {
		t.Fatalf("CreatePremiumInvoice: %v", err)
	}
	second, err := u.CreatePremiumInvoice(ctx, 42)
	if err != nil {
		t.Fatalf("CreatePremiumInvoice: %v", err)
	}

	provider.statuses[first.ID] = entity.InvoiceStatusPaid
	provider.statuses[second.ID] = entity.InvoiceStatusPaid

	activations, err := u.PollOnce(ctx)
	if err != nil {
		t.Fatalf("PollOnce: %v", err)
	}

	firstCount := 0
	for _, a := range activations {
		if a.First {
			firstCount++
		}
	}
	if firstCount != 1 {
		t.Fatalf("faqat bitta aktivatsiya First bo'lishi kerak, keldi %d", firstCount)
	}
}

func TestCheckInvoice(t *testing.T) {
	provider := newFakeProvider()
	u := newPaymentForTest(provider)
	ctx := context.Background()

	invoice, err := u.CreatePremiumInvoice(ctx, 42)
	if err != nil {
		t.Fatalf("CreatePremiumInvoice: %v", err)
	}

	got, activation, err := u.CheckInvoice(ctx, invoice.ID)
	if err != nil {
		t.Fatalf("CheckInvoice: %v", err)
	}
	if got.Status != entity.InvoiceStatusActive || activation != nil {
		t.Fatalf("to'lanmagan hisob: (%q, %#v)", got.Status, activation)
	}

	provider.statuses[invoice.ID] = entity.InvoiceStatusPaid

	got, activation, err = u.CheckInvoice(ctx, invoice.ID)
	if err != nil {
		t.Fatalf("CheckInvoice: %v", err)
	}
	if got.Status != entity.InvoiceStatusPaid {
		t.Fatalf("holat paid bo'lishi kerak, keldi %q", got.Status)
	}
	if activation == nil || !activation.First {
		t.Fatalf("birinchi aktivatsiya kutilgan edi: %#v", activation)
	}

	// Takroriy tekshirish provayderga bormaydi va aktivatsiya bermaydi
	provider.failGet = true
	got, activation, err = u.CheckInvoice(ctx, invoice.ID)
	if err != nil {
		t.Fatalf("paid hisob uchun provayder chaqirilmasligi kerak: %v", err)
	}
	if activation != nil {
		t.Fatalf("takroriy aktivatsiya bo'lmasligi kerak: %#v", activation)
	}
}

func TestPollOnceProviderErrorSkipsInvoice(t *testing.T) {
	provider := newFakeProvider()
	u := newPaymentForTest(provider)
	ctx := context.Background()

	if _, err := u.CreatePremiumInvoice(ctx, 42); err != nil {
		t.Fatalf("CreatePremiumInvoice: %v", err)
	}

	provider.failGet = true

	// Provayder xatosi poll ni yiqitmaydi
	activations, err := u.PollOnce(ctx)
	if err != nil {
		t.Fatalf("PollOnce provayder xatosida ham muvaffaqiyatli bo'lishi kerak: %v", err)
	}
	if len(activations) != 0 {
		t.Fatalf("aktivatsiya bo'lmasligi kerak")
	}
}
