package usecase

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// tokenize matnni kichik harfli so'zlarga bo'lish (punktuatsiyasiz)
func tokenize(text string) []string {
	lower := strings.ToLower(text)
	return strings.FieldsFunc(lower, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// SignificantWords kamida 4 harfli so'zlar to'plami (rune hisobida,
// kirill alifbosi ham to'g'ri sanaladi)
func SignificantWords(text string) map[string]struct{} {
	words := make(map[string]struct{})
	for _, w := range tokenize(text) {
		if utf8.RuneCountInString(w) >= 4 {
			words[w] = struct{}{}
		}
	}
	return words
}

// SharedWordCount ikki matn orasidagi umumiy muhim so'zlar soni
func SharedWordCount(a, b string) int {
	wordsA := SignificantWords(a)
	wordsB := SignificantWords(b)

	shared := 0
	for w := range wordsA {
		if _, ok := wordsB[w]; ok {
			shared++
		}
	}
	return shared
}

// Similarity ikki matnning o'xshashlik bali [0,1] (Dice koeffitsienti
// so'z to'plamlari ustida). Duplicate e'lonlarni aniqlash uchun.
func Similarity(a, b string) float64 {
	setA := wordSet(a)
	setB := wordSet(b)

	if len(setA) == 0 && len(setB) == 0 {
		return 1
	}
	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}

	shared := 0
	for w := range setA {
		if _, ok := setB[w]; ok {
			shared++
		}
	}

	return 2 * float64(shared) / float64(len(setA)+len(setB))
}

func wordSet(text string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, w := range tokenize(text) {
		set[w] = struct{}{}
	}
	return set
}
