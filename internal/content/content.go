package content

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/yourusername/telegram-market-bot/internal/domain/entity"
)

// Brand sotiladigan brend va unga mos qurilma turi
type Brand struct {
	Name   string `yaml:"name"`
	Device string `yaml:"device"` // iphone | android | other
}

// CategoryKeywords murojaat kategoriyasi uchun kalit so'zlar to'plami.
// Tartib muhim: birinchi mos kelgan kategoriya g'olib bo'ladi.
type CategoryKeywords struct {
	Category string   `yaml:"category"`
	Keywords []string `yaml:"keywords"`
}

// Content bot kontenti: brendlar, modellar, variantlar, kalit so'zlar
type Content struct {
	Brands        []Brand             `yaml:"brands"`
	IPhoneModels  []string            `yaml:"iphone_models"`
	AndroidModels map[string][]string `yaml:"android_models"` // brend -> modellar
	MemoryOptions []string            `yaml:"memory_options"`
	RAMOptions    []string            `yaml:"ram_options"`
	ROMOptions    []string            `yaml:"rom_options"`
	Conditions    []string            `yaml:"conditions"`
	BatteryStates []string            `yaml:"battery_states"`
	Colors        []string            `yaml:"colors"`
	Packages      []string            `yaml:"packages"`
	Categories    []CategoryKeywords  `yaml:"categories"`
	Profanity     []string            `yaml:"profanity"`
}

// Default standart kontent (fayl ko'rsatilmagan bo'lsa ishlatiladi)
func Default() *Content {
	return &Content{
		Brands: []Brand{
			{Name: "Apple", Device: "iphone"},
			{Name: "Samsung", Device: "android"},
			{Name: "Xiaomi", Device: "android"},
			{Name: "Redmi", Device: "android"},
			{Name: "Honor", Device: "android"},
			{Name: "Huawei", Device: "android"},
			{Name: "Realme", Device: "android"},
			{Name: "Vivo", Device: "android"},
			{Name: "Другое", Device: "other"},
		},
		IPhoneModels: []string{
			"iPhone 11", "iPhone 11 Pro", "iPhone 12", "iPhone 12 Pro",
			"iPhone 13", "iPhone 13 Pro", "iPhone 14", "iPhone 14 Pro",
			"iPhone 15", "iPhone 15 Pro", "iPhone 15 Pro Max", "iPhone 16",
		},
		AndroidModels: map[string][]string{
			"Samsung": {"Galaxy S21", "Galaxy S22", "Galaxy S23", "Galaxy A54", "Galaxy A34"},
			"Xiaomi":  {"Mi 11", "Mi 12", "13T", "14T"},
			"Redmi":   {"Note 11", "Note 12", "Note 13", "12C"},
			"Honor":   {"X8", "X9a", "90"},
		},
		MemoryOptions: []string{"64 ГБ", "128 ГБ", "256 ГБ", "512 ГБ", "1 ТБ"},
		RAMOptions:    []string{"4 ГБ", "6 ГБ", "8 ГБ", "12 ГБ", "16 ГБ"},
		ROMOptions:    []string{"64 ГБ", "128 ГБ", "256 ГБ", "512 ГБ"},
		Conditions: []string{
			"Новый", "Как новый", "Отличное", "Хорошее", "Есть нюансы",
		},
		BatteryStates: []string{
			"Отличная", "Хорошая", "Средняя", "Требует замены",
		},
		Colors: []string{
			"Чёрный", "Белый", "Синий", "Зелёный", "Золотой", "Серый", "Другой",
		},
		Packages: []string{
			"Полный комплект", "Коробка без аксессуаров", "Только телефон",
		},
		// Tartib hujjatlashtirilgan: payment, technical, suggestion, general.
		// Bir nechta kategoriyaga mos matn birinchisiga tushadi.
		Categories: []CategoryKeywords{
			{Category: "payment", Keywords: []string{
				"оплат", "плат", "деньг", "счет", "счёт", "премиум", "premium", "крипт", "invoice",
			}},
			{Category: "technical", Keywords: []string{
				"не работает", "ошибк", "баг", "глюк", "завис", "сбой", "вылет",
			}},
			{Category: "suggestion", Keywords: []string{
				"предложени", "идея", "добавьте", "улучш", "хотелось бы",
			}},
			{Category: "general", Keywords: []string{
				"вопрос", "подскаж", "помог", "как ",
			}},
		},
		Profanity: []string{
			"блин", "чёрт", "хрен", "дурак", "идиот",
		},
	}
}

// Load kontentni yuklash: standart qiymatlar + YAML fayl (bo'lsa)
func Load(path string) (*Content, error) {
	c := Default()
	if path == "" {
		return c, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("kontent faylini o'qib bo'lmadi: %w", err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("kontent faylini parse qilib bo'lmadi: %w", err)
	}

	return c, nil
}

// DeviceFor brend bo'yicha qurilma turini aniqlash
func (c *Content) DeviceFor(brand string) (entity.DeviceType, bool) {
	for _, b := range c.Brands {
		if b.Name == brand {
			return entity.DeviceType(b.Device), true
		}
	}
	return "", false
}

// BrandNames brendlar ro'yxati (tugmalar uchun)
func (c *Content) BrandNames() []string {
	names := make([]string, 0, len(c.Brands))
	for _, b := range c.Brands {
		names = append(names, b.Name)
	}
	return names
}

// ModelsFor brend bo'yicha model takliflari (bo'lmasa nil)
func (c *Content) ModelsFor(brand string, device entity.DeviceType) []string {
	if device == entity.DeviceIPhone {
		return c.IPhoneModels
	}
	return c.AndroidModels[brand]
}
