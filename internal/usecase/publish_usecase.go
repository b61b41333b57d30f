package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/yourusername/telegram-market-bot/internal/domain/entity"
	"github.com/yourusername/telegram-market-bot/internal/domain/repository"
)

// Oxirgi e'lonlar bilan shu chegaradan yuqori o'xshashlik duplicate
// deb ogohlantiriladi
const duplicateSimilarity = 0.85

// missingValue to'ldirilmagan maydon o'rnida ko'rsatiladigan matn
const missingValue = "не указано"

// myListingsLimit /my ro'yxatida ko'rsatiladigan e'lonlar soni
const myListingsLimit = 5

// PreviewResult yig'ilgan e'lonning preview ko'rinishi
type PreviewResult struct {
	Text       string
	Photos     []string
	Contact    string
	DupWarning string // bo'sh bo'lmasa duplicate ogohlantirishi
}

// PublishUseCase e'lonni yakunlash va kanalga chiqarish
type PublishUseCase interface {
	// Preview tayyor e'lon matnini yig'ish (duplicate tekshiruvi bilan)
	Preview(ctx context.Context, userID int64) (*PreviewResult, error)

	// Publish e'lonni kanalga chiqarish. Muvaffaqiyatda draft o'chiriladi,
	// xatoda saqlanib qoladi (foydalanuvchi qayta urinishi mumkin).
	Publish(ctx context.Context, userID int64) (*entity.Listing, error)

	// UserListings foydalanuvchining oxirgi e'lonlari (yangidan eskiga)
	UserListings(ctx context.Context, userID int64) ([]entity.Listing, error)
}

type publishUseCase struct {
	stateRepo   repository.StateRepository
	listingRepo repository.ListingRepository
	channel     repository.ChannelSender
	textCache   repository.RecentTextCache
}

// NewPublishUseCase yangi PublishUseCase yaratish
func NewPublishUseCase(
	stateRepo repository.StateRepository,
	listingRepo repository.ListingRepository,
	channel repository.ChannelSender,
	textCache repository.RecentTextCache,
) PublishUseCase {
	return &publishUseCase{
		stateRepo:   stateRepo,
		listingRepo: listingRepo,
		channel:     channel,
		textCache:   textCache,
	}
}

// Preview tayyor e'lon matnini yig'ish
func (u *publishUseCase) Preview(ctx context.Context, userID int64) (*PreviewResult, error) {
	state, err := u.stateRepo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	text := Format(state)
	result := &PreviewResult{
		Text:    text,
		Photos:  append([]string(nil), state.Photos...),
		Contact: state.Field(entity.StepContact),
	}

	for _, prev := range u.textCache.Get(userID) {
		if Similarity(text, prev) >= duplicateSimilarity {
			result.DupWarning = "⚠️ Похоже, вы недавно публиковали очень похожее объявление. Убедитесь, что это не дубликат."
			break
		}
	}

	return result, nil
}

// Publish e'lonni kanalga chiqarish
func (u *publishUseCase) Publish(ctx context.Context, userID int64) (*entity.Listing, error) {
	state, err := u.stateRepo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	if _, done := NextStep(state.DeviceType, state.Fields, len(state.Photos)); !done {
		return nil, &ValidationError{Reason: "Объявление ещё не заполнено до конца."}
	}

	text := Format(state)
	contact := state.Field(entity.StepContact)

	if err := u.channel.SendListing(ctx, text, state.Photos, contact); err != nil {
		// Draft saqlanib qoladi: keyinroq qayta urinish mumkin
		return nil, fmt.Errorf("failed to publish listing: %w", err)
	}

	listing := &entity.Listing{
		ID:          uuid.NewString(),
		UserID:      userID,
		DeviceType:  state.DeviceType,
		Brand:       state.Field(entity.StepBrand),
		Model:       state.Field(entity.StepModel),
		Specs:       copyFields(state.Fields),
		PriceUSD:    state.Field(entity.StepPriceUSD),
		PriceKGS:    state.Field(entity.StepPriceKGS),
		Contact:     contact,
		Photos:      append([]string(nil), state.Photos...),
		Text:        text,
		PublishedAt: time.Now(),
	}

	if err := u.listingRepo.Save(ctx, listing); err != nil {
		return nil, fmt.Errorf("failed to save listing: %w", err)
	}

	if err := u.textCache.Add(userID, text); err != nil {
		// Kesh xatosi publikatsiyani bekor qilmaydi
		log.Printf("Matn keshiga yozishda xatolik: %v", err)
	}

	if err := u.stateRepo.Delete(ctx, userID); err != nil {
		return nil, fmt.Errorf("failed to clear draft: %w", err)
	}

	return listing, nil
}

// UserListings foydalanuvchining oxirgi e'lonlari
func (u *publishUseCase) UserListings(ctx context.Context, userID int64) ([]entity.Listing, error) {
	return u.listingRepo.ByUser(ctx, userID, myListingsLimit)
}

// Format draftdan kanal uchun e'lon matnini yig'ish. To'ldirilmagan
// maydonlar o'rnida "не указано" turadi (preview vaqtida ham chaqiriladi).
func Format(state *entity.DraftState) string {
	field := func(step entity.Step) string {
		if v := state.Field(step); v != "" {
			return v
		}
		return missingValue
	}

	var b strings.Builder

	brand := field(entity.StepBrand)
	model := field(entity.StepModel)
	fmt.Fprintf(&b, "📱 %s %s\n\n", brand, model)

	if state.DeviceType == entity.DeviceIPhone {
		fmt.Fprintf(&b, "💾 Память: %s\n", field(entity.StepMemory))
		fmt.Fprintf(&b, "📊 Состояние: %s\n", field(entity.StepCondition))
		battery := field(entity.StepBattery)
		if battery != missingValue {
			battery += "%"
		}
		fmt.Fprintf(&b, "🔋 Аккумулятор: %s\n", battery)
		fmt.Fprintf(&b, "🎨 Цвет: %s\n", field(entity.StepColor))
		fmt.Fprintf(&b, "📦 Комплектация: %s\n", field(entity.StepPackage))
	} else {
		fmt.Fprintf(&b, "💾 RAM: %s\n", field(entity.StepRAM))
		fmt.Fprintf(&b, "💾 ROM: %s\n", field(entity.StepROM))
		fmt.Fprintf(&b, "⚙️ Процессор: %s\n", field(entity.StepProcessor))
		fmt.Fprintf(&b, "📊 Состояние: %s\n", field(entity.StepCondition))
		fmt.Fprintf(&b, "🔋 Аккумулятор: %s\n", field(entity.StepBatteryState))
		fmt.Fprintf(&b, "🎨 Цвет: %s\n", field(entity.StepColor))
	}

	fmt.Fprintf(&b, "\n💵 Цена: $%s / %s сом\n", field(entity.StepPriceUSD), field(entity.StepPriceKGS))
	fmt.Fprintf(&b, "📞 Контакт: %s", field(entity.StepContact))

	return b.String()
}

func copyFields(fields map[entity.Step]string) map[entity.Step]string {
	specs := make(map[entity.Step]string, len(fields))
	for k, v := range fields {
		specs[k] = v
	}
	return specs
}
