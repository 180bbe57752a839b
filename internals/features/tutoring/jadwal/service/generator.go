// file: internals/features/tutoring/jadwal/service/generator.go
package service

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	jadwalModel "bimbelku_backend/internals/features/tutoring/jadwal/model"
	orderModel "bimbelku_backend/internals/features/tutoring/order/model"
	paketModel "bimbelku_backend/internals/features/tutoring/paket/model"
)

// SchedulerService membuat deretan jadwal mingguan untuk satu siklus
// subscription. Now bisa disuntik di test; default time.Now.
type SchedulerService struct {
	Now func() time.Time
}

func NewSchedulerService() *SchedulerService {
	return &SchedulerService{Now: time.Now}
}

func (s *SchedulerService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// GenerateJadwal mempersist paket.TotalSession baris jadwal pada irama
// mingguan order. Selalu berjalan di dalam transaksi PEMANGGIL (approval
// order atau renewal absensi) — generator tidak pernah membuka transaksi
// sendiri.
//
// Hari yang sama dengan kursor hanya boleh dipakai pada iterasi pertama;
// setelahnya kursor maju ke tanggal hasil resolve sehingga tiap target hari
// terpakai round-robin. Nama hari yang disimpan diturunkan dari tanggal
// hasil resolve, bukan dari input (jaga-jaga beda locale).
func (s *SchedulerService) GenerateJadwal(
	tx *gorm.DB,
	ord *orderModel.Order,
	paket *paketModel.Paket,
	invoiceID uuid.UUID,
	subscriptionID uuid.UUID,
) error {
	days, err := ord.MeetingDays()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Kolom meetingDay kosong / tidak valid")
	}
	dayNums, err := ResolveDayNums(days)
	if err != nil {
		return err
	}
	if ord.OrderTentorID == nil {
		return fiber.NewError(fiber.StatusBadRequest, "Order belum memiliki tentor")
	}

	cursor := s.now()
	first := true

	for sessions := 0; sessions < paket.PaketTotalSession; sessions++ {
		date := NextMatchingDate(cursor, dayNums, first)

		j := jadwalModel.Jadwal{
			JadwalSiswaID:        ord.OrderSiswaID,
			JadwalTentorID:       *ord.OrderTentorID,
			JadwalInvoiceID:      invoiceID,
			JadwalSubscriptionID: subscriptionID,
			JadwalDate:           date,
			JadwalDayName:        WeekdayName(date.Weekday()),
			JadwalTime:           ord.OrderTime,
		}
		if err := tx.Create(&j).Error; err != nil {
			return err
		}

		cursor = date
		first = false
	}
	return nil
}
