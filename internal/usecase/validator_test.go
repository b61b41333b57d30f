package usecase

import (
	"errors"
	"strings"
	"testing"

	"github.com/yourusername/telegram-market-bot/internal/content"
)

func TestValidatePrice(t *testing.T) {
	tests := []struct {
		input   string
		want    float64
		wantErr bool
	}{
		{"450", 450, false},
		{"450.50", 450.5, false},
		{"450,50", 450.5, false},
		{"$450", 450, false},
		{"  300  ", 300, false},
		{"abc", 0, true},
		{"-5", 0, true},
		{"0", 0, true},
		{"5", 0, true},     // minimumdan past
		{"20000", 0, true}, // maksimumdan yuqori
	}

	for _, tt := range tests {
		got, err := ValidatePrice(tt.input, 10, 10000)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ValidatePrice(%q): xato kutilgan edi", tt.input)
			}
			var validation *ValidationError
			if err != nil && !errors.As(err, &validation) {
				t.Errorf("ValidatePrice(%q): ValidationError kutilgan edi, keldi %T", tt.input, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ValidatePrice(%q): kutilmagan xato %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ValidatePrice(%q) = %v, kutilgan %v", tt.input, got, tt.want)
		}
	}
}

func TestValidatePriceNegativeMessage(t *testing.T) {
	_, err := ValidatePrice("-5", 10, 10000)
	var validation *ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("ValidationError kutilgan edi, keldi %#v", err)
	}
	if !strings.Contains(validation.Reason, "больше 0") {
		t.Fatalf("manfiy narx uchun tushunarli xabar kutilgan edi, keldi %q", validation.Reason)
	}
}

func TestValidateIPhoneBattery(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"85", 85, false},
		{"85%", 85, false},
		{"70", 70, false},
		{"100", 100, false},
		{"69", 0, true},
		{"101", 0, true},
		{"отличная", 0, true},
	}

	for _, tt := range tests {
		got, err := ValidateIPhoneBattery(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateIPhoneBattery(%q): err=%v, wantErr=%v", tt.input, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ValidateIPhoneBattery(%q) = %d, kutilgan %d", tt.input, got, tt.want)
		}
	}
}

func TestValidateBatteryState(t *testing.T) {
	v := NewValidator(content.Default())

	if got, err := v.ValidateBatteryState("87"); err != nil || got != "87%" {
		t.Fatalf("ValidateBatteryState(\"87\") = (%q, %v), kutilgan (\"87%%\", nil)", got, err)
	}
	if got, err := v.ValidateBatteryState("Отличная"); err != nil || got != "Отличная" {
		t.Fatalf("ValidateBatteryState(\"Отличная\") = (%q, %v)", got, err)
	}
	if got, err := v.ValidateBatteryState("отличная"); err != nil || got != "Отличная" {
		t.Fatalf("registr farqi label tanlashga xalaqit bermasligi kerak, keldi (%q, %v)", got, err)
	}
	if _, err := v.ValidateBatteryState("120"); err == nil {
		t.Fatalf("120 uchun xato kutilgan edi")
	}
	if _, err := v.ValidateBatteryState("не знаю"); err == nil {
		t.Fatalf("ro'yxatda yo'q matn uchun xato kutilgan edi")
	}
}

func TestValidateContact(t *testing.T) {
	valid := []string{"@seller", "+996700123456", "0700123456"}
	for _, input := range valid {
		if _, err := ValidateContact(input); err != nil {
			t.Errorf("ValidateContact(%q): kutilmagan xato %v", input, err)
		}
	}

	invalid := []string{"@", "seller", "12345", "telefon yo'q"}
	for _, input := range invalid {
		if _, err := ValidateContact(input); err == nil {
			t.Errorf("ValidateContact(%q): xato kutilgan edi", input)
		}
	}
}

func TestValidateModelProfanity(t *testing.T) {
	v := NewValidator(content.Default())

	_, err := v.ValidateModel("iPhone дурак edition")
	var profanity *ProfanityError
	if !errors.As(err, &profanity) {
		t.Fatalf("ProfanityError kutilgan edi, keldi %#v", err)
	}
	if strings.Contains(strings.ToLower(profanity.Censored), "дурак") {
		t.Fatalf("senzuralangan variantda so'z qolib ketdi: %q", profanity.Censored)
	}
	if !strings.Contains(profanity.Censored, "*") {
		t.Fatalf("yulduzchalar kutilgan edi: %q", profanity.Censored)
	}
}

func TestCensorRuneAware(t *testing.T) {
	v := NewValidator(content.Default())

	// "ẞ" kichik variantda byte uzunligi o'zgaradi: almashtirish byte
	// emas, rune indekslari bo'yicha tushishi kerak
	_, err := v.ValidateModel("ẞ-phone ДУРАК pro")
	var profanity *ProfanityError
	if !errors.As(err, &profanity) {
		t.Fatalf("ProfanityError kutilgan edi, keldi %#v", err)
	}
	if profanity.Censored != "ẞ-phone ***** pro" {
		t.Fatalf("senzura noto'g'ri joyga tushdi: %q", profanity.Censored)
	}
}

func TestValidateModelLength(t *testing.T) {
	v := NewValidator(content.Default())

	if _, err := v.ValidateModel("a"); err == nil {
		t.Fatalf("1 belgili model uchun xato kutilgan edi")
	}
	if _, err := v.ValidateModel(strings.Repeat("ф", 101)); err == nil {
		t.Fatalf("101 belgili model uchun xato kutilgan edi")
	}
	// Kirill harflari rune hisobida sanaladi
	if _, err := v.ValidateModel(strings.Repeat("ф", 100)); err != nil {
		t.Fatalf("100 belgili model o'tishi kerak edi: %v", err)
	}
}
