package entity

import "time"

// Step e'lon yaratish wizardidagi qadam identifikatori
type Step string

const (
	StepBrand        Step = "brand"
	StepModel        Step = "model"
	StepMemory       Step = "memory"
	StepRAM          Step = "ram"
	StepROM          Step = "rom"
	StepProcessor    Step = "processor"
	StepCondition    Step = "condition"
	StepBattery      Step = "battery"
	StepBatteryState Step = "battery_state"
	StepColor        Step = "color"
	StepPackage      Step = "package"
	StepPriceUSD     Step = "price_usd"
	StepPriceKGS     Step = "price_kgs"
	StepContact      Step = "contact"
	StepPhotos       Step = "photos"
	StepPreview      Step = "preview"
)

// DeviceType qurilma turi (step graph qaysi tarmoqda ekanligini belgilaydi)
type DeviceType string

const (
	DeviceIPhone  DeviceType = "iphone"
	DeviceAndroid DeviceType = "android"
	DeviceOther   DeviceType = "other"
)

const (
	// MinPhotos preview ga o'tish uchun minimal rasm soni
	MinPhotos = 2
	// MaxPhotos e'lon uchun maksimal rasm soni
	MaxPhotos = 4
)

// DraftState bitta foydalanuvchining e'lon yaratish holati
type DraftState struct {
	UserID       int64
	Username     string
	CurrentStep  Step
	DeviceType   DeviceType
	Fields       map[Step]string
	Photos       []string // Telegram file ID lar, 0..MaxPhotos
	StepHistory  []Step
	LastActivity time.Time
	CreatedAt    time.Time
}

// Field maydon qiymatini olish (bo'sh bo'lsa "")
func (d *DraftState) Field(step Step) string {
	if d.Fields == nil {
		return ""
	}
	return d.Fields[step]
}

// SetField maydon qiymatini yozish
func (d *DraftState) SetField(step Step, value string) {
	if d.Fields == nil {
		d.Fields = make(map[Step]string)
	}
	d.Fields[step] = value
}

// ClearField maydon qiymatini o'chirish
func (d *DraftState) ClearField(step Step) {
	delete(d.Fields, step)
}

// Touch oxirgi faollik vaqtini yangilash
func (d *DraftState) Touch() {
	d.LastActivity = time.Now()
}
