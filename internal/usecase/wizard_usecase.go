package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/yourusername/telegram-market-bot/internal/content"
	"github.com/yourusername/telegram-market-bot/internal/domain/entity"
	"github.com/yourusername/telegram-market-bot/internal/domain/repository"
)

// ErrStaleStep eski klaviatura tugmasi joriy qadamga mos kelmaganda qaytadi
var ErrStaleStep = errors.New("answer targets a stale step")

// Narx chegaralari (USD va som bo'yicha alohida)
const (
	minPriceUSD = 10
	maxPriceUSD = 10000
	minPriceKGS = 1
	maxPriceKGS = 1000000
)

// StepView joriy qadamni ko'rsatish uchun kerak bo'lgan hamma narsa
type StepView struct {
	Step       entity.Step
	Text       string
	Choices    []string
	AllowText  bool
	Warn       string // soft warning (masalan bozor narxi haqida)
	Offer      string // profanity senzura taklifi
	Done       bool   // hamma maydon yig'ilgan, navbat preview da
	PhotoCount int
}

// WizardUseCase e'lon yaratish wizardi bilan bog'liq business logic
type WizardUseCase interface {
	// Start yangi e'lon yaratishni boshlash (eski draft almashtiriladi)
	Start(ctx context.Context, userID int64, username string) (*StepView, error)

	// Resume joriy qadamni qayta ko'rsatish (draft bo'lmasa ErrNotFound)
	Resume(ctx context.Context, userID int64) (*StepView, error)

	// Answer joriy qadamga javob berish
	Answer(ctx context.Context, userID int64, input string) (*StepView, error)

	// AnswerChoice klaviatura tanlovini qo'llash. Tugma bosilgan payt
	// qadam allaqachon o'zgargan bo'lsa ErrStaleStep qaytadi.
	AnswerChoice(ctx context.Context, userID int64, step entity.Step, index int) (*StepView, error)

	// AddPhoto rasm qo'shish (photos qadamida)
	AddPhoto(ctx context.Context, userID int64, fileID string) (*StepView, error)

	// FinishPhotos rasm yuklashni yakunlash
	FinishPhotos(ctx context.Context, userID int64) (*StepView, error)

	// Back bitta qadam ortga qaytish
	Back(ctx context.Context, userID int64) (*StepView, error)

	// Cancel butun draftni bekor qilish (har doim muvaffaqiyatli)
	Cancel(ctx context.Context, userID int64) error
}

type wizardUseCase struct {
	stateRepo repository.StateRepository
	priceRepo repository.PriceRepository
	content   *content.Content
	validator *Validator

	// Bitta foydalanuvchining get-modify-put sikllari ketma-ket bajariladi:
	// Telegram yangilanishlari parallel keladi (masalan albomdagi rasmlar),
	// ikkita nusxa bir-birining yozuvini yo'qotmasligi kerak
	locksMu   sync.Mutex
	userLocks map[int64]*sync.Mutex
}

// NewWizardUseCase yangi WizardUseCase yaratish
func NewWizardUseCase(
	stateRepo repository.StateRepository,
	priceRepo repository.PriceRepository,
	c *content.Content,
) WizardUseCase {
	return &wizardUseCase{
		stateRepo: stateRepo,
		priceRepo: priceRepo,
		content:   c,
		validator: NewValidator(c),
		userLocks: make(map[int64]*sync.Mutex),
	}
}

// lockUser foydalanuvchi bo'yicha mutatsiyalarni ketma-ketlashtirish;
// qaytgan funksiya qulfni bo'shatadi
func (u *wizardUseCase) lockUser(userID int64) func() {
	u.locksMu.Lock()
	lock, ok := u.userLocks[userID]
	if !ok {
		lock = &sync.Mutex{}
		u.userLocks[userID] = lock
	}
	u.locksMu.Unlock()

	lock.Lock()
	return lock.Unlock
}

// Start yangi e'lon yaratishni boshlash
func (u *wizardUseCase) Start(ctx context.Context, userID int64, username string) (*StepView, error) {
	defer u.lockUser(userID)()

	now := time.Now()
	state := &entity.DraftState{
		UserID:       userID,
		Username:     username,
		CurrentStep:  entity.StepBrand,
		Fields:       make(map[entity.Step]string),
		LastActivity: now,
		CreatedAt:    now,
	}

	if err := u.stateRepo.Put(ctx, state); err != nil {
		return nil, fmt.Errorf("failed to save draft: %w", err)
	}

	return u.viewFor(state, ""), nil
}

// Resume joriy qadamni qayta ko'rsatish
func (u *wizardUseCase) Resume(ctx context.Context, userID int64) (*StepView, error) {
	state, err := u.stateRepo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	return u.viewFor(state, ""), nil
}

// Answer joriy qadamga javob berish
func (u *wizardUseCase) Answer(ctx context.Context, userID int64, input string) (*StepView, error) {
	defer u.lockUser(userID)()

	state, err := u.stateRepo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	return u.answer(ctx, state, input)
}

// AnswerChoice klaviatura tanlovini qo'llash. Tanlov qadam nomi va
// variant indeksi bilan keladi: eski xabardagi tugma joriy qadamga
// mos kelmasa ErrStaleStep qaytadi va holat o'zgarmaydi.
func (u *wizardUseCase) AnswerChoice(ctx context.Context, userID int64, step entity.Step, index int) (*StepView, error) {
	defer u.lockUser(userID)()

	state, err := u.stateRepo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	if state.CurrentStep != step {
		return nil, ErrStaleStep
	}

	choices := u.viewFor(state, "").Choices
	if index < 0 || index >= len(choices) {
		return nil, ErrStaleStep
	}

	return u.answer(ctx, state, choices[index])
}

// answer javobni qo'llash; chaqiruvchi foydalanuvchi qulfini ushlab turadi
func (u *wizardUseCase) answer(ctx context.Context, state *entity.DraftState, input string) (*StepView, error) {
	step := state.CurrentStep
	warn := ""

	switch step {
	case entity.StepBrand:
		if err := u.applyBrand(state, input); err != nil {
			return nil, err
		}

	case entity.StepPhotos:
		return nil, &ValidationError{Reason: "Отправьте фото (от 2 до 4) или нажмите «Готово»."}

	case entity.StepPreview:
		return nil, &ValidationError{Reason: "Объявление уже собрано. Опубликуйте его или вернитесь назад."}

	default:
		value, fieldWarn, err := u.validateField(ctx, state, step, input)
		if err != nil {
			return nil, err
		}
		warn = fieldWarn
		state.SetField(step, value)
		state.StepHistory = append(state.StepHistory, step)
	}

	u.advance(state)
	state.Touch()

	if err := u.stateRepo.Put(ctx, state); err != nil {
		return nil, fmt.Errorf("failed to save draft: %w", err)
	}

	return u.viewFor(state, warn), nil
}

// AddPhoto rasm qo'shish
func (u *wizardUseCase) AddPhoto(ctx context.Context, userID int64, fileID string) (*StepView, error) {
	defer u.lockUser(userID)()

	state, err := u.stateRepo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	if state.CurrentStep != entity.StepPhotos {
		return nil, &ValidationError{Reason: "Сейчас фото не требуется. Ответьте на текущий вопрос."}
	}
	if len(state.Photos) >= entity.MaxPhotos {
		return nil, &ValidationError{Reason: fmt.Sprintf("Максимум %d фото. Нажмите «Готово».", entity.MaxPhotos)}
	}

	state.Photos = append(state.Photos, fileID)
	state.Touch()

	if err := u.stateRepo.Put(ctx, state); err != nil {
		return nil, fmt.Errorf("failed to save draft: %w", err)
	}

	view := u.viewFor(state, "")
	view.Text = fmt.Sprintf("Фото %d/%d добавлено. Отправьте ещё или нажмите «Готово».", len(state.Photos), entity.MaxPhotos)
	return view, nil
}

// FinishPhotos rasm yuklashni yakunlash
func (u *wizardUseCase) FinishPhotos(ctx context.Context, userID int64) (*StepView, error) {
	defer u.lockUser(userID)()

	state, err := u.stateRepo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	if state.CurrentStep != entity.StepPhotos {
		return nil, &ValidationError{Reason: "Сейчас не этап загрузки фото."}
	}
	if len(state.Photos) < entity.MinPhotos {
		return nil, &ValidationError{Reason: fmt.Sprintf("Нужно минимум %d фото. Загружено: %d.", entity.MinPhotos, len(state.Photos))}
	}

	state.StepHistory = append(state.StepHistory, entity.StepPhotos)
	u.advance(state)
	state.Touch()

	if err := u.stateRepo.Put(ctx, state); err != nil {
		return nil, fmt.Errorf("failed to save draft: %w", err)
	}

	return u.viewFor(state, ""), nil
}

// Back bitta qadam ortga qaytish
func (u *wizardUseCase) Back(ctx context.Context, userID int64) (*StepView, error) {
	defer u.lockUser(userID)()

	state, err := u.stateRepo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	var prev entity.Step
	if n := len(state.StepHistory); n > 0 {
		prev = state.StepHistory[n-1]
		state.StepHistory = state.StepHistory[:n-1]
	} else {
		structural, ok := PreviousStep(state.DeviceType, state.CurrentStep)
		if !ok {
			return nil, &ValidationError{Reason: "Назад некуда: это первый шаг."}
		}
		prev = structural
	}

	// Oldingi qadam javobini o'chiramiz: NextStep uni qayta so'raydi
	switch prev {
	case entity.StepBrand:
		state.ClearField(entity.StepBrand)
		state.DeviceType = ""
		clearBranchFields(state)
	case entity.StepPhotos:
		state.Photos = nil
	default:
		state.ClearField(prev)
	}

	u.advance(state)
	state.Touch()

	if err := u.stateRepo.Put(ctx, state); err != nil {
		return nil, fmt.Errorf("failed to save draft: %w", err)
	}

	return u.viewFor(state, ""), nil
}

// Cancel butun draftni bekor qilish
func (u *wizardUseCase) Cancel(ctx context.Context, userID int64) error {
	defer u.lockUser(userID)()

	return u.stateRepo.Delete(ctx, userID)
}

// applyBrand brend tanlovini qo'llash. Brendni qayta tanlash brand
// nuqtasidan keyin yig'ilgan HAMMA maydonni tozalaydi (device_type bilan
// birga), aks holda tarmoqqa bog'liq eski qiymatlar qolib ketadi.
func (u *wizardUseCase) applyBrand(state *entity.DraftState, input string) error {
	device, ok := u.content.DeviceFor(input)
	if !ok {
		return &ValidationError{Reason: "Выберите бренд из списка."}
	}

	if state.Field(entity.StepBrand) != "" {
		clearBranchFields(state)
		state.StepHistory = nil
	}

	state.SetField(entity.StepBrand, input)
	state.DeviceType = device
	state.StepHistory = append(state.StepHistory, entity.StepBrand)
	return nil
}

// validateField qadam bo'yicha qiymatni tekshirish; warn — soft warning
func (u *wizardUseCase) validateField(ctx context.Context, state *entity.DraftState, step entity.Step, input string) (string, string, error) {
	switch step {
	case entity.StepModel:
		value, err := u.validator.ValidateModel(input)
		return value, "", err

	case entity.StepBattery:
		value, err := ValidateIPhoneBattery(input)
		if err != nil {
			return "", "", err
		}
		return strconv.Itoa(value), "", nil

	case entity.StepBatteryState:
		value, err := u.validator.ValidateBatteryState(input)
		return value, "", err

	case entity.StepPriceUSD:
		price, err := ValidatePrice(input, minPriceUSD, maxPriceUSD)
		if err != nil {
			return "", "", err
		}
		return formatAmount(price), u.marketWarn(ctx, state, price), nil

	case entity.StepPriceKGS:
		price, err := ValidatePrice(input, minPriceKGS, maxPriceKGS)
		if err != nil {
			return "", "", err
		}
		return formatAmount(price), "", nil

	case entity.StepContact:
		value, err := ValidateContact(input)
		return value, "", err

	default:
		// memory, ram, rom, processor, condition, color, package
		value, err := u.validator.ValidateFreeText(input)
		return value, "", err
	}
}

// marketWarn bozor narxi bilan solishtirish (soft warning, rad etmaydi)
func (u *wizardUseCase) marketWarn(ctx context.Context, state *entity.DraftState, price float64) string {
	model := state.Field(entity.StepModel)
	if model == "" {
		return ""
	}

	ref, ok := u.priceRepo.Lookup(ctx, model)
	if !ok {
		return ""
	}

	if price < ref.MinUSD {
		return fmt.Sprintf("⚠️ Цена ниже типичной рыночной (от $%s). Проверьте, нет ли ошибки.", formatAmount(ref.MinUSD))
	}
	if price > ref.MaxUSD {
		return fmt.Sprintf("⚠️ Цена выше типичной рыночной (до $%s). Проверьте, нет ли ошибки.", formatAmount(ref.MaxUSD))
	}

	return ""
}

// advance joriy qadamni qayta hisoblash
func (u *wizardUseCase) advance(state *entity.DraftState) {
	next, _ := NextStep(state.DeviceType, state.Fields, len(state.Photos))
	state.CurrentStep = next
}

// viewFor joriy qadam uchun ko'rinishni yig'ish
func (u *wizardUseCase) viewFor(state *entity.DraftState, warn string) *StepView {
	view := &StepView{
		Step:       state.CurrentStep,
		Warn:       warn,
		PhotoCount: len(state.Photos),
	}

	brand := state.Field(entity.StepBrand)

	switch state.CurrentStep {
	case entity.StepBrand:
		view.Text = "Выберите бренд телефона:"
		view.Choices = u.content.BrandNames()

	case entity.StepModel:
		view.Text = "Укажите модель:"
		view.Choices = u.content.ModelsFor(brand, state.DeviceType)
		view.AllowText = true

	case entity.StepMemory:
		view.Text = "Объём памяти:"
		view.Choices = u.content.MemoryOptions

	case entity.StepRAM:
		view.Text = "Оперативная память (RAM):"
		view.Choices = u.content.RAMOptions

	case entity.StepROM:
		view.Text = "Встроенная память (ROM):"
		view.Choices = u.content.ROMOptions

	case entity.StepProcessor:
		view.Text = "Процессор (например: Snapdragon 8 Gen 2):"
		view.AllowText = true

	case entity.StepCondition:
		view.Text = "Состояние телефона:"
		view.Choices = u.content.Conditions

	case entity.StepBattery:
		view.Text = "Ёмкость аккумулятора в % (от 70 до 100):"
		view.AllowText = true

	case entity.StepBatteryState:
		view.Text = "Состояние аккумулятора (выберите или укажите %):"
		view.Choices = u.content.BatteryStates
		view.AllowText = true

	case entity.StepColor:
		view.Text = "Цвет:"
		view.Choices = u.content.Colors
		view.AllowText = true

	case entity.StepPackage:
		view.Text = "Комплектация:"
		view.Choices = u.content.Packages

	case entity.StepPriceUSD:
		view.Text = "Цена в долларах США:"
		view.AllowText = true

	case entity.StepPriceKGS:
		view.Text = "Цена в сомах:"
		view.AllowText = true

	case entity.StepContact:
		view.Text = "Контакт для связи (@username или номер телефона):"
		view.AllowText = true

	case entity.StepPhotos:
		view.Text = fmt.Sprintf("Отправьте фото телефона (от %d до %d). Загружено: %d.", entity.MinPhotos, entity.MaxPhotos, len(state.Photos))

	case entity.StepPreview:
		view.Text = "Объявление собрано. Проверьте и опубликуйте."
		view.Done = true
	}

	return view
}
