// file: internals/features/tutoring/jadwal/service/reschedule_service.go
package service

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"bimbelku_backend/internals/constants"
	jadwalModel "bimbelku_backend/internals/features/tutoring/jadwal/model"
	tentorModel "bimbelku_backend/internals/features/tutoring/tentor/model"
)

// RescheduleService pindah tanggal/jam satu sesi dan protokol ganti tentor
// request → approve/reject. Semua operasi hanya boleh menyentuh sesi yang
// belum lewat.
type RescheduleService struct {
	DB  *gorm.DB
	Now func() time.Time
}

func NewRescheduleService(db *gorm.DB) *RescheduleService {
	return &RescheduleService{DB: db, Now: time.Now}
}

func (s *RescheduleService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *RescheduleService) loadFutureJadwal(jadwalID uuid.UUID) (*jadwalModel.Jadwal, error) {
	var jadwal jadwalModel.Jadwal
	if err := s.DB.First(&jadwal, "jadwal_id = ?", jadwalID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Jadwal tidak ditemukan")
		}
		return nil, err
	}
	if jadwal.StartAt().Before(s.now()) {
		return nil, fiber.NewError(fiber.StatusUnprocessableEntity, "Cannot reschedule a past jadwal")
	}
	return &jadwal, nil
}

/* =========================================================
   RESCHEDULE TANGGAL/JAM
   ========================================================= */

// RescheduleDateTime memindah tanggal+jam satu sesi; nama hari diturunkan
// ulang dari tanggal baru. Update single-row, tidak butuh transaksi.
func (s *RescheduleService) RescheduleDateTime(jadwalID uuid.UUID, newDate, newTime string) (*jadwalModel.Jadwal, error) {
	jadwal, err := s.loadFutureJadwal(jadwalID)
	if err != nil {
		return nil, err
	}

	date, err := time.ParseInLocation("2006-01-02", newDate, s.now().Location())
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Tanggal baru tidak valid: "+newDate)
	}
	if _, err := time.Parse("15:04:05", newTime); err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Jam baru tidak valid: "+newTime)
	}

	jadwal.JadwalDate = date
	jadwal.JadwalTime = newTime
	jadwal.JadwalDayName = WeekdayName(date.Weekday())

	if err := s.DB.Save(jadwal).Error; err != nil {
		return nil, err
	}
	return jadwal, nil
}

/* =========================================================
   RESCHEDULE TENTOR (request → approve / reject)
   ========================================================= */

func (s *RescheduleService) RequestTentorReschedule(jadwalID uuid.UUID) (*jadwalModel.Jadwal, error) {
	jadwal, err := s.loadFutureJadwal(jadwalID)
	if err != nil {
		return nil, err
	}
	jadwal.JadwalAttendanceStatus = constants.AttendanceRescheduleRequest
	if err := s.DB.Save(jadwal).Error; err != nil {
		return nil, err
	}
	return jadwal, nil
}

// ApproveTentorReschedule pasang tentor baru dan kembalikan sesi ke Absent.
func (s *RescheduleService) ApproveTentorReschedule(jadwalID, newTentorID uuid.UUID) (*jadwalModel.Jadwal, error) {
	jadwal, err := s.loadFutureJadwal(jadwalID)
	if err != nil {
		return nil, err
	}

	var tentor tentorModel.Tentor
	if err := s.DB.First(&tentor, "tentor_id = ?", newTentorID).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Tentor tidak ditemukan")
	}

	if jadwal.JadwalAttendanceStatus != constants.AttendanceRescheduleRequest {
		return nil, fiber.NewError(fiber.StatusConflict, "Jadwal not in reschedule request status")
	}

	jadwal.JadwalTentorID = newTentorID
	jadwal.JadwalAttendanceStatus = constants.AttendanceAbsent
	if err := s.DB.Save(jadwal).Error; err != nil {
		return nil, err
	}
	return jadwal, nil
}

// RejectTentorReschedule kembalikan sesi ke Absent tanpa ganti tentor.
func (s *RescheduleService) RejectTentorReschedule(jadwalID uuid.UUID) (*jadwalModel.Jadwal, error) {
	jadwal, err := s.loadFutureJadwal(jadwalID)
	if err != nil {
		return nil, err
	}
	if jadwal.JadwalAttendanceStatus != constants.AttendanceRescheduleRequest {
		return nil, fiber.NewError(fiber.StatusConflict, "Jadwal not in reschedule request status")
	}
	jadwal.JadwalAttendanceStatus = constants.AttendanceAbsent
	if err := s.DB.Save(jadwal).Error; err != nil {
		return nil, err
	}
	return jadwal, nil
}
