package usecase

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/yourusername/telegram-market-bot/internal/content"
)

// ValidationError foydalanuvchi tuzata oladigan xato; sababi o'sha
// xabarning o'zida ko'rsatiladi, holat o'zgarmaydi.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// ProfanityError matnda nomaqbul so'z topilganda senzuralangan variantni
// taklif qiladi. Avtomatik almashtirilmaydi: tanlov foydalanuvchida.
type ProfanityError struct {
	Censored string
}

func (e *ProfanityError) Error() string {
	return "в тексте найдены нежелательные слова"
}

var phonePattern = regexp.MustCompile(`^\+?[0-9]{9,15}$`)

// Validator maydon qiymatlarini tekshiruvchi
type Validator struct {
	content *content.Content
}

// NewValidator yangi validator yaratish
func NewValidator(c *content.Content) *Validator {
	return &Validator{content: c}
}

// ValidateModel model nomini tekshirish: uzunlik [2,100] + profanity filtri
func (v *Validator) ValidateModel(raw string) (string, error) {
	text := strings.TrimSpace(raw)
	length := utf8.RuneCountInString(text)

	if length < 2 {
		return "", &ValidationError{Reason: "Слишком короткое название. Минимум 2 символа."}
	}
	if length > 100 {
		return "", &ValidationError{Reason: "Слишком длинное название. Максимум 100 символов."}
	}

	if censored, found := v.censor(text); found {
		return "", &ProfanityError{Censored: censored}
	}

	return text, nil
}

// ValidatePrice narxni tekshirish: son bo'lishi, chegaralarga sig'ishi kerak
func ValidatePrice(raw string, min, max float64) (float64, error) {
	s := strings.TrimSpace(strings.ReplaceAll(raw, ",", "."))
	s = strings.TrimPrefix(s, "$")

	price, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &ValidationError{Reason: "Введите число, например: 450"}
	}

	if price <= 0 {
		return 0, &ValidationError{Reason: "Цена должна быть больше 0."}
	}
	if price < min {
		return 0, &ValidationError{Reason: fmt.Sprintf("Минимальная цена — %s.", formatAmount(min))}
	}
	if price > max {
		return 0, &ValidationError{Reason: fmt.Sprintf("Максимальная цена — %s.", formatAmount(max))}
	}

	return price, nil
}

// ValidateIPhoneBattery iPhone akkumulyator foizini tekshirish (70..100)
func ValidateIPhoneBattery(raw string) (int, error) {
	value, err := strconv.Atoi(strings.TrimSpace(strings.TrimSuffix(raw, "%")))
	if err != nil {
		return 0, &ValidationError{Reason: "Введите число — процент ёмкости аккумулятора."}
	}

	if value < 70 || value > 100 {
		return 0, &ValidationError{Reason: "Укажите значение от 70 до 100."}
	}

	return value, nil
}

// ValidateBatteryState umumiy akkumulyator maydoni: 0..100 son yoki
// ro'yxatdagi sifat belgisi
func (v *Validator) ValidateBatteryState(raw string) (string, error) {
	text := strings.TrimSpace(raw)

	if value, err := strconv.Atoi(strings.TrimSuffix(text, "%")); err == nil {
		if value < 0 || value > 100 {
			return "", &ValidationError{Reason: "Укажите значение от 0 до 100."}
		}
		return fmt.Sprintf("%d%%", value), nil
	}

	for _, label := range v.content.BatteryStates {
		if strings.EqualFold(label, text) {
			return label, nil
		}
	}

	return "", &ValidationError{Reason: "Выберите вариант из списка или укажите процент (0–100)."}
}

// ValidateContact kontaktni tekshirish: @username yoki telefon raqami
func ValidateContact(raw string) (string, error) {
	text := strings.TrimSpace(raw)

	if strings.HasPrefix(text, "@") && utf8.RuneCountInString(text) >= 2 {
		return text, nil
	}
	if phonePattern.MatchString(text) {
		return text, nil
	}

	return "", &ValidationError{Reason: "Укажите @username или номер телефона, например: +996700123456"}
}

// ValidateFreeText oddiy matn maydoni (processor, color va hokazo)
func (v *Validator) ValidateFreeText(raw string) (string, error) {
	text := strings.TrimSpace(raw)
	length := utf8.RuneCountInString(text)

	if length < 1 {
		return "", &ValidationError{Reason: "Сообщение пустое."}
	}
	if length > 100 {
		return "", &ValidationError{Reason: "Слишком длинный текст. Максимум 100 символов."}
	}

	return text, nil
}

// censor matndagi nomaqbul so'zlarni yulduzchalar bilan yopish.
// Qidiruv va almashtirish rune bo'yicha: ba'zi harflarning kichik
// varianti byte uzunligini o'zgartiradi, byte indekslariga ishonib
// bo'lmaydi.
func (v *Validator) censor(text string) (string, bool) {
	runes := []rune(text)
	lower := make([]rune, len(runes))
	for i, r := range runes {
		lower[i] = unicode.ToLower(r)
	}

	found := false
	for _, word := range v.content.Profanity {
		w := []rune(word)
		for i, r := range w {
			w[i] = unicode.ToLower(r)
		}
		if len(w) == 0 {
			continue
		}

		for i := 0; i+len(w) <= len(lower); i++ {
			match := true
			for j, r := range w {
				if lower[i+j] != r {
					match = false
					break
				}
			}
			if !match {
				continue
			}

			found = true
			for j := i; j < i+len(w); j++ {
				runes[j] = '*'
				lower[j] = '*'
			}
			i += len(w) - 1
		}
	}

	return string(runes), found
}

func formatAmount(v float64) string {
	if v == float64(int64(v)) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}
