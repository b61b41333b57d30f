package usecase

import "testing"

func TestSharedWordCount(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"код оплаты премиум не приходит совсем", "премиум оплаты код снова не приходит", 3},
		{"бот завис на шаге фото", "как удалить объявление", 0},
		{"", "", 0},
		{"кот кот кот", "кот", 0}, // 3 harfli so'zlar sanalmaydi
		{"Оплата Прошла", "оплата прошла", 2},
	}

	for _, tt := range tests {
		if got := SharedWordCount(tt.a, tt.b); got != tt.want {
			t.Errorf("SharedWordCount(%q, %q) = %d, kutilgan %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestSharedWordCountSymmetric(t *testing.T) {
	a := "оплата премиум не проходит через бота"
	b := "премиум оплата зависла в боте"

	if SharedWordCount(a, b) != SharedWordCount(b, a) {
		t.Fatalf("SharedWordCount simmetrik bo'lishi kerak")
	}
}

func TestSimilarity(t *testing.T) {
	if got := Similarity("iPhone 13 128 ГБ отличное состояние", "iPhone 13 128 ГБ отличное состояние"); got != 1 {
		t.Fatalf("bir xil matnlar uchun 1 kutilgan edi, keldi %v", got)
	}
	if got := Similarity("продаю iphone", "куплю samsung galaxy"); got != 0 {
		t.Fatalf("umumiy so'zsiz matnlar uchun 0 kutilgan edi, keldi %v", got)
	}
	if got := Similarity("", ""); got != 1 {
		t.Fatalf("ikkala bo'sh matn uchun 1 kutilgan edi, keldi %v", got)
	}
	if got := Similarity("текст", ""); got != 0 {
		t.Fatalf("bittasi bo'sh bo'lsa 0 kutilgan edi, keldi %v", got)
	}

	partial := Similarity("продаю iphone 13 синий", "продаю iphone 14 чёрный")
	if partial <= 0 || partial >= 1 {
		t.Fatalf("qisman o'xshashlik (0,1) oralig'ida bo'lishi kerak, keldi %v", partial)
	}
}
