// file: internals/features/tutoring/jadwal/model/jadwal_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"bimbelku_backend/internals/constants"
)

/* =========================
   Model: jadwal (satu pertemuan terjadwal)
   ========================= */

type Jadwal struct {
	JadwalID uuid.UUID `json:"jadwal_id" gorm:"column:jadwal_id;type:uuid;primaryKey"`

	JadwalSiswaID        uuid.UUID `json:"jadwal_siswa_id"        gorm:"column:jadwal_siswa_id;type:uuid;not null;index"`
	JadwalTentorID       uuid.UUID `json:"jadwal_tentor_id"       gorm:"column:jadwal_tentor_id;type:uuid;not null;index"`
	JadwalInvoiceID      uuid.UUID `json:"jadwal_invoice_id"      gorm:"column:jadwal_invoice_id;type:uuid;not null;index"`
	JadwalSubscriptionID uuid.UUID `json:"jadwal_subscription_id" gorm:"column:jadwal_subscription_id;type:uuid;not null;index"`

	JadwalDate time.Time `json:"jadwal_date" gorm:"column:jadwal_date;not null"`
	// nama hari disimpan redundan untuk tampilan; selalu diturunkan dari
	// jadwal_date, bukan dari input.
	JadwalDayName string `json:"jadwal_day_name" gorm:"column:jadwal_day_name;type:varchar(10);not null"`
	JadwalTime    string `json:"jadwal_time"     gorm:"column:jadwal_time;type:varchar(8);not null"` // "HH:mm:ss"

	JadwalAttendanceStatus string `json:"jadwal_attendance_status" gorm:"column:jadwal_attendance_status;type:varchar(20);not null;default:Absent"`

	JadwalCreatedAt time.Time `json:"jadwal_created_at" gorm:"column:jadwal_created_at;not null;autoCreateTime"`
	JadwalUpdatedAt time.Time `json:"jadwal_updated_at" gorm:"column:jadwal_updated_at;not null;autoUpdateTime"`
}

func (Jadwal) TableName() string { return "jadwal" }

func (j *Jadwal) BeforeCreate(tx *gorm.DB) error {
	if j.JadwalID == uuid.Nil {
		j.JadwalID = uuid.New()
	}
	if j.JadwalAttendanceStatus == "" {
		j.JadwalAttendanceStatus = constants.AttendanceAbsent
	}
	j.JadwalUpdatedAt = time.Now().UTC()
	return nil
}

func (j *Jadwal) BeforeUpdate(tx *gorm.DB) error {
	j.JadwalUpdatedAt = time.Now().UTC()
	return nil
}

// StartAt menggabungkan tanggal + jam mulai jadwal menjadi satu instant.
// Komponen waktu dari kolom date diabaikan.
func (j *Jadwal) StartAt() time.Time {
	clock, err := time.Parse("15:04:05", j.JadwalTime)
	if err != nil {
		// jam korup dianggap tengah malam; guard temporal tetap jalan
		clock = time.Time{}
	}
	d := j.JadwalDate
	return time.Date(d.Year(), d.Month(), d.Day(),
		clock.Hour(), clock.Minute(), clock.Second(), 0, d.Location())
}
