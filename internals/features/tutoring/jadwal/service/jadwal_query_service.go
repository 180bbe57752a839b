// file: internals/features/tutoring/jadwal/service/jadwal_query_service.go
package service

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"bimbelku_backend/internals/constants"
	"bimbelku_backend/internals/features/tutoring/jadwal/dto"
	jadwalModel "bimbelku_backend/internals/features/tutoring/jadwal/model"
	siswaModel "bimbelku_backend/internals/features/tutoring/siswa/model"
	tentorModel "bimbelku_backend/internals/features/tutoring/tentor/model"
)

/* =========================================================
   READS (diperkaya nama tentor/siswa)
   ========================================================= */

// GetAllJadwal daftar jadwal (filter status opsional), RescheduleRequest
// selalu di atas supaya admin langsung lihat antrean persetujuan.
func GetAllJadwal(db *gorm.DB, status string) ([]dto.JadwalWithNames, error) {
	q := db.Model(&jadwalModel.Jadwal{})
	if status != "" && status != "all" {
		q = q.Where("jadwal_attendance_status = ?", status)
	}
	var rows []jadwalModel.Jadwal
	if err := q.
		Order("CASE WHEN jadwal_attendance_status = '" + constants.AttendanceRescheduleRequest + "' THEN 0 ELSE 1 END").
		Order("jadwal_date ASC").
		Order("jadwal_time ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return enrichNames(db, rows, true, true)
}

func GetJadwalByInvoiceID(db *gorm.DB, invoiceID uuid.UUID) ([]dto.JadwalWithNames, error) {
	var rows []jadwalModel.Jadwal
	if err := db.Where("jadwal_invoice_id = ?", invoiceID).
		Order("jadwal_date ASC").Order("jadwal_time ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return enrichNames(db, rows, true, true)
}

func GetJadwalByTentorID(db *gorm.DB, tentorID uuid.UUID) ([]dto.JadwalWithNames, error) {
	var rows []jadwalModel.Jadwal
	if err := db.Where("jadwal_tentor_id = ?", tentorID).
		Order("jadwal_date ASC").Order("jadwal_time ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	// tentor sudah tahu dirinya; cukup nama siswa
	return enrichNames(db, rows, false, true)
}

func GetJadwalBySiswaID(db *gorm.DB, siswaID uuid.UUID) ([]dto.JadwalWithNames, error) {
	var rows []jadwalModel.Jadwal
	if err := db.Where("jadwal_siswa_id = ?", siswaID).
		Order("jadwal_date ASC").Order("jadwal_time ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return enrichNames(db, rows, true, false)
}

func GetJadwalByID(db *gorm.DB, jadwalID uuid.UUID) (*dto.JadwalWithNames, error) {
	var row jadwalModel.Jadwal
	if err := db.First(&row, "jadwal_id = ?", jadwalID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Jadwal tidak ditemukan")
		}
		return nil, err
	}
	enriched, err := enrichNames(db, []jadwalModel.Jadwal{row}, true, true)
	if err != nil {
		return nil, err
	}
	return &enriched[0], nil
}

// enrichNames menempelkan nama tentor/siswa lewat dua query lookup map.
func enrichNames(db *gorm.DB, rows []jadwalModel.Jadwal, withTentor, withSiswa bool) ([]dto.JadwalWithNames, error) {
	out := make([]dto.JadwalWithNames, 0, len(rows))
	if len(rows) == 0 {
		return out, nil
	}

	tentorNames := map[uuid.UUID]string{}
	siswaNames := map[uuid.UUID]string{}

	if withTentor {
		ids := make([]uuid.UUID, 0, len(rows))
		for _, r := range rows {
			ids = append(ids, r.JadwalTentorID)
		}
		var tentors []tentorModel.Tentor
		if err := db.Where("tentor_id IN ?", ids).Find(&tentors).Error; err != nil {
			return nil, err
		}
		for _, t := range tentors {
			tentorNames[t.TentorID] = t.TentorName
		}
	}
	if withSiswa {
		ids := make([]uuid.UUID, 0, len(rows))
		for _, r := range rows {
			ids = append(ids, r.JadwalSiswaID)
		}
		var siswas []siswaModel.Siswa
		if err := db.Where("siswa_id IN ?", ids).Find(&siswas).Error; err != nil {
			return nil, err
		}
		for _, s := range siswas {
			siswaNames[s.SiswaID] = s.SiswaName
		}
	}

	for _, r := range rows {
		item := dto.JadwalWithNames{Jadwal: r}
		if name, ok := tentorNames[r.JadwalTentorID]; ok {
			item.TentorName = &name
		}
		if name, ok := siswaNames[r.JadwalSiswaID]; ok {
			item.SiswaName = &name
		}
		out = append(out, item)
	}
	return out, nil
}
