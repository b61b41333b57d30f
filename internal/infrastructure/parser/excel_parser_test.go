package parser

import (
	"bytes"
	"context"
	"testing"

	"github.com/xuri/excelize/v2"
)

func buildTestFile(t *testing.T, rows [][]interface{}) []byte {
	t.Helper()

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("CoordinatesToCellName: %v", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("SetSheetRow: %v", err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("Write: %v", err)
	}
	return buf.Bytes()
}

func TestParsePricesFromBytes(t *testing.T) {
	data := buildTestFile(t, [][]interface{}{
		{"Модель", "Мин. цена", "Макс. цена"},
		{"iPhone 13", "350", "500"},
		{"Galaxy S23", "$400", "600"},
		{"", "100", "200"},           // bo'sh model o'tkazib yuboriladi
		{"Broken", "abc", "200"},     // yaroqsiz narx o'tkazib yuboriladi
		{"Inverted", "500", "100"},   // max < min o'tkazib yuboriladi
		{"iPhone 14", "450,50", "700"},
	})

	p := NewExcelPriceParser()
	entries, err := p.ParsePricesFromBytes(context.Background(), data, "prices.xlsx")
	if err != nil {
		t.Fatalf("ParsePricesFromBytes: %v", err)
	}

	if len(entries) != 3 {
		t.Fatalf("3 ta yozuv kutilgan edi, keldi %d: %#v", len(entries), entries)
	}

	if entries[0].Model != "iPhone 13" || entries[0].MinUSD != 350 || entries[0].MaxUSD != 500 {
		t.Fatalf("birinchi yozuv noto'g'ri: %#v", entries[0])
	}
	if entries[1].MinUSD != 400 {
		t.Fatalf("$ prefiksli narx o'qilishi kerak: %#v", entries[1])
	}
	if entries[2].MinUSD != 450.5 {
		t.Fatalf("vergulli narx o'qilishi kerak: %#v", entries[2])
	}
}

func TestParsePricesEnglishHeaders(t *testing.T) {
	data := buildTestFile(t, [][]interface{}{
		{"Model", "Min", "Max"},
		{"iPhone 13", "350", "500"},
	})

	p := NewExcelPriceParser()
	entries, err := p.ParsePricesFromBytes(context.Background(), data, "prices.xlsx")
	if err != nil {
		t.Fatalf("ParsePricesFromBytes: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("1 ta yozuv kutilgan edi, keldi %d", len(entries))
	}
}

func TestParsePricesMissingColumns(t *testing.T) {
	data := buildTestFile(t, [][]interface{}{
		{"Название", "Цена"},
		{"iPhone 13", "350"},
	})

	p := NewExcelPriceParser()
	if _, err := p.ParsePricesFromBytes(context.Background(), data, "prices.xlsx"); err == nil {
		t.Fatalf("ustunlar topilmaganda xato kutilgan edi")
	}
}

func TestParsePricesNotExcel(t *testing.T) {
	p := NewExcelPriceParser()
	if _, err := p.ParsePricesFromBytes(context.Background(), []byte("not an excel file"), "prices.xlsx"); err == nil {
		t.Fatalf("yaroqsiz fayl uchun xato kutilgan edi")
	}
}
