package usecase

import (
	"github.com/yourusername/telegram-market-bot/internal/domain/entity"
)

// iphoneSteps iPhone tarmog'i uchun tartiblangan qadamlar
var iphoneSteps = []entity.Step{
	entity.StepModel,
	entity.StepMemory,
	entity.StepCondition,
	entity.StepBattery,
	entity.StepColor,
	entity.StepPackage,
	entity.StepPriceUSD,
	entity.StepPriceKGS,
	entity.StepContact,
	entity.StepPhotos,
}

// androidSteps Android tarmog'i uchun tartiblangan qadamlar.
// "other" qurilmalar ham shu ro'yxatdan yuradi.
var androidSteps = []entity.Step{
	entity.StepModel,
	entity.StepRAM,
	entity.StepROM,
	entity.StepProcessor,
	entity.StepCondition,
	entity.StepBatteryState,
	entity.StepColor,
	entity.StepPriceUSD,
	entity.StepPriceKGS,
	entity.StepContact,
	entity.StepPhotos,
}

// BranchSteps qurilma turi bo'yicha qadamlar ro'yxati
func BranchSteps(device entity.DeviceType) []entity.Step {
	if device == entity.DeviceIPhone {
		return iphoneSteps
	}
	return androidSteps
}

// NextStep to'ldirilmagan birinchi maydonni aniqlash (pure funksiya).
// Ikkinchi qiymat true bo'lsa hamma maydon yig'ilgan va rasm soni yetarli:
// navbat preview da.
func NextStep(device entity.DeviceType, fields map[entity.Step]string, photoCount int) (entity.Step, bool) {
	if fields[entity.StepBrand] == "" {
		return entity.StepBrand, false
	}

	for _, step := range BranchSteps(device) {
		if step == entity.StepPhotos {
			if photoCount < entity.MinPhotos {
				return entity.StepPhotos, false
			}
			continue
		}
		if fields[step] == "" {
			return step, false
		}
	}

	return entity.StepPreview, true
}

// PreviousStep joriy qadamdan oldingi qadamni strukturaviy aniqlash
// (step history bo'lmaganda ishlatiladi). Brand dan oldin qadam yo'q.
func PreviousStep(device entity.DeviceType, current entity.Step) (entity.Step, bool) {
	if current == entity.StepBrand {
		return "", false
	}

	steps := BranchSteps(device)
	if current == entity.StepPreview {
		return steps[len(steps)-1], true
	}

	for i, step := range steps {
		if step == current {
			if i == 0 {
				return entity.StepBrand, true
			}
			return steps[i-1], true
		}
	}

	// Noma'lum qadam: boshiga qaytamiz
	return entity.StepBrand, true
}

// clearBranchFields brand tanlovidan keyin yig'ilgan hamma maydonni tozalash.
// Brandni qayta tanlash tarmoqqa bog'liq maydonlarni eskirtiradi, shuning
// uchun ikkala tarmoq ro'yxati ham tozalanadi (qisman tozalash xato bo'lardi).
func clearBranchFields(state *entity.DraftState) {
	for _, step := range iphoneSteps {
		state.ClearField(step)
	}
	for _, step := range androidSteps {
		state.ClearField(step)
	}
	state.Photos = nil
}
