package parser

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/yourusername/telegram-market-bot/internal/domain/entity"
	"github.com/yourusername/telegram-market-bot/internal/domain/repository"
)

type excelPriceParser struct{}

// NewExcelPriceParser yangi Excel narx jadvali parserini yaratish
func NewExcelPriceParser() repository.PriceParser {
	return &excelPriceParser{}
}

// ParsePricesFromBytes byte array dan narx jadvalini o'qish.
// Kutilgan ustunlar: Модель/Model, Мин/Min, Макс/Max (sarlavha qatori bilan).
func (e *excelPriceParser) ParsePricesFromBytes(ctx context.Context, data []byte, filename string) ([]entity.PriceReference, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open excel from bytes: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("excel file has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to get rows: %w", err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("excel file is empty")
	}

	// Sarlavha qatoridan ustun indekslarini aniqlash
	modelCol, minCol, maxCol := -1, -1, -1
	for i, header := range rows[0] {
		h := strings.ToLower(strings.TrimSpace(header))
		switch {
		case strings.Contains(h, "модел") || strings.Contains(h, "model"):
			modelCol = i
		case strings.Contains(h, "мин") || strings.Contains(h, "min"):
			minCol = i
		case strings.Contains(h, "макс") || strings.Contains(h, "max"):
			maxCol = i
		}
	}
	if modelCol < 0 || minCol < 0 || maxCol < 0 {
		return nil, fmt.Errorf("kerakli ustunlar topilmadi (Модель/Мин/Макс)")
	}

	var entries []entity.PriceReference
	for _, row := range rows[1:] {
		if modelCol >= len(row) || minCol >= len(row) || maxCol >= len(row) {
			continue
		}

		model := strings.TrimSpace(row[modelCol])
		if model == "" {
			continue
		}

		minPrice, errMin := parsePrice(row[minCol])
		maxPrice, errMax := parsePrice(row[maxCol])
		if errMin != nil || errMax != nil || minPrice <= 0 || maxPrice < minPrice {
			// Yaroqsiz qatorlar o'tkazib yuboriladi, butun fayl yiqilmaydi
			continue
		}

		entries = append(entries, entity.PriceReference{
			Model:  model,
			MinUSD: minPrice,
			MaxUSD: maxPrice,
		})
	}

	if len(entries) == 0 {
		return nil, fmt.Errorf("faylda yaroqli narx qatorlari topilmadi")
	}

	return entries, nil
}

// parsePrice raqamni o'qish ("$", probel va vergullarni hisobga olib)
func parsePrice(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, ",", ".")
	return strconv.ParseFloat(s, 64)
}
