package entity

import "time"

// PriceReference bitta model uchun tipik bozor narxi oralig'i (USD)
type PriceReference struct {
	Model  string
	MinUSD float64
	MaxUSD float64
}

// PriceCatalog admin yuklagan bozor narxlari jadvali
type PriceCatalog struct {
	Entries   []PriceReference
	UpdatedAt time.Time
	Source    string // Excel fayl nomi
}
