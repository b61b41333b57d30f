package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/yourusername/telegram-market-bot/internal/domain/entity"
)

func TestDeviceFor(t *testing.T) {
	c := Default()

	tests := []struct {
		brand string
		want  entity.DeviceType
		ok    bool
	}{
		{"Apple", entity.DeviceIPhone, true},
		{"Samsung", entity.DeviceAndroid, true},
		{"Другое", entity.DeviceOther, true},
		{"Nokia", "", false},
	}

	for _, tt := range tests {
		got, ok := c.DeviceFor(tt.brand)
		if ok != tt.ok || got != tt.want {
			t.Errorf("DeviceFor(%q) = (%q, %v), kutilgan (%q, %v)", tt.brand, got, ok, tt.want, tt.ok)
		}
	}
}

func TestModelsFor(t *testing.T) {
	c := Default()

	iphones := c.ModelsFor("Apple", entity.DeviceIPhone)
	if len(iphones) == 0 {
		t.Fatalf("iPhone modellari bo'sh bo'lmasligi kerak")
	}

	samsungs := c.ModelsFor("Samsung", entity.DeviceAndroid)
	if len(samsungs) == 0 {
		t.Fatalf("Samsung modellari bo'sh bo'lmasligi kerak")
	}

	// Noma'lum brend uchun taklif yo'q, lekin panic ham yo'q
	if models := c.ModelsFor("Vivo", entity.DeviceAndroid); models != nil {
		t.Fatalf("ro'yxatda yo'q brend uchun nil kutilgan edi, keldi %#v", models)
	}
}

func TestCategoriesOrder(t *testing.T) {
	c := Default()

	want := []string{"payment", "technical", "suggestion", "general"}
	if len(c.Categories) != len(want) {
		t.Fatalf("%d ta kategoriya kutilgan edi, keldi %d", len(want), len(c.Categories))
	}
	for i, cat := range c.Categories {
		if cat.Category != want[i] {
			t.Errorf("kategoriya %d: %q, kutilgan %q (tartib muhim)", i, cat.Category, want[i])
		}
	}
}

func TestLoadMissingPathUsesDefaults(t *testing.T) {
	c, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\"): %v", err)
	}
	if len(c.Brands) == 0 {
		t.Fatalf("standart brendlar yuklanishi kerak")
	}
}

func TestLoadOverridesFromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yaml")
	data := `brands:
  - name: TestBrand
    device: android
profanity:
  - testword
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if len(c.Brands) != 1 || c.Brands[0].Name != "TestBrand" {
		t.Fatalf("YAML brendlar standartlarni almashtirishi kerak: %#v", c.Brands)
	}
	// Faylda ko'rsatilmagan bo'limlar standart qiymatda qoladi
	if len(c.Conditions) == 0 {
		t.Fatalf("conditions standart qiymatda qolishi kerak")
	}
}

func TestLoadBadFile(t *testing.T) {
	if _, err := Load("/nonexistent/content.yaml"); err == nil {
		t.Fatalf("mavjud bo'lmagan fayl uchun xato kutilgan edi")
	}
}
