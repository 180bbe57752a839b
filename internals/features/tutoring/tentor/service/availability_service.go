// file: internals/features/tutoring/tentor/service/availability_service.go
package service

import (
	"strings"

	"gorm.io/gorm"

	model "bimbelku_backend/internals/features/tutoring/tentor/model"
)

/* =========================================================
   Ledger ketersediaan tentor (operasi murni atas []TentorScheduleDay)
   ========================================================= */

// ValidateSlotAvailable true bila tentor punya slot pada hari+jam tsb dan
// slot itu belum diklaim. Nama hari dicocokkan case-insensitive.
func ValidateSlotAvailable(days []model.TentorScheduleDay, day, startTime string) bool {
	d, s := findSlot(days, day, startTime)
	if d < 0 || s < 0 {
		return false
	}
	return !days[d].Slots[s].Booked
}

// ClaimSlot menandai slot hari+jam sebagai booked. Hari/slot yang tidak
// ketemu sengaja jadi no-op, bukan error keras.
func ClaimSlot(days []model.TentorScheduleDay, day, startTime string) {
	d, s := findSlot(days, day, startTime)
	if d < 0 || s < 0 {
		return
	}
	days[d].Slots[s].Booked = true
}

// PairTimes memasangkan daftar hari dengan daftar jam urut-indeks; bila
// panjang tak sama, jam pertama dipakai untuk semua hari.
func PairTimes(meetingDays []string, times []string) []string {
	paired := make([]string, len(meetingDays))
	for i := range meetingDays {
		if i < len(times) {
			paired[i] = times[i]
		} else if len(times) > 0 {
			paired[i] = times[0]
		}
	}
	return paired
}

// ValidateSlots mengecek semua pasangan hari/jam sekaligus; false bila ada
// satu saja yang sudah diklaim atau tidak tersedia.
func ValidateSlots(days []model.TentorScheduleDay, meetingDays, times []string) bool {
	paired := PairTimes(meetingDays, times)
	for i, day := range meetingDays {
		if !ValidateSlotAvailable(days, day, paired[i]) {
			return false
		}
	}
	return true
}

func findSlot(days []model.TentorScheduleDay, day, startTime string) (int, int) {
	for di := range days {
		if !strings.EqualFold(strings.TrimSpace(days[di].Day), strings.TrimSpace(day)) {
			continue
		}
		for si := range days[di].Slots {
			if days[di].Slots[si].Time == startTime {
				return di, si
			}
		}
	}
	return -1, -1
}

/* =========================================================
   Mutasi persist (dipanggil dalam transaksi workflow)
   ========================================================= */

// ClaimTentorSlots mengklaim pasangan hari/jam pada row tentor dan
// menyimpan ledger kembali ke kolom JSONB.
func ClaimTentorSlots(tx *gorm.DB, tentor *model.Tentor, meetingDays, times []string) error {
	days, err := tentor.ScheduleDays()
	if err != nil {
		return err
	}
	paired := PairTimes(meetingDays, times)
	for i, day := range meetingDays {
		ClaimSlot(days, day, paired[i])
	}
	if err := tentor.SetScheduleDays(days); err != nil {
		return err
	}
	return tx.Model(tentor).
		Update("tentor_schedule", tentor.TentorSchedule).Error
}
