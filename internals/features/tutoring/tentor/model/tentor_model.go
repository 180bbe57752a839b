// file: internals/features/tutoring/tentor/model/tentor_model.go
package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* =========================
   Ledger ketersediaan (JSONB, bertipe di boundary)
   ========================= */

// TentorScheduleSlot satu jam mulai pada satu hari; booked berarti sudah
// diklaim oleh order yang di-approve.
type TentorScheduleSlot struct {
	Time   string `json:"time"` // "HH:mm:ss"
	Booked bool   `json:"booked"`
}

type TentorScheduleDay struct {
	Day   string               `json:"day"` // "Senin" dst.
	Slots []TentorScheduleSlot `json:"slots"`
}

/* =========================
   Model: tentor
   ========================= */

type Tentor struct {
	TentorID uuid.UUID `json:"tentor_id" gorm:"column:tentor_id;type:uuid;primaryKey"`

	TentorName     string `json:"tentor_name"     gorm:"column:tentor_name;type:text;not null"`
	TentorUsername string `json:"tentor_username" gorm:"column:tentor_username;type:varchar(60);not null;uniqueIndex"`
	TentorPassword string `json:"-"               gorm:"column:tentor_password;type:text;not null"`

	TentorNoHp       string `json:"tentor_no_hp"      gorm:"column:tentor_no_hp;type:varchar(20);not null"`
	TentorEmail      string `json:"tentor_email"      gorm:"column:tentor_email;type:text;not null"`
	TentorGender     string `json:"tentor_gender"     gorm:"column:tentor_gender;type:varchar(1);not null"`
	TentorAddress    string `json:"tentor_address"    gorm:"column:tentor_address;type:text"`
	TentorCity       string `json:"tentor_city"       gorm:"column:tentor_city;type:text"`
	TentorFaculty    string `json:"tentor_faculty"    gorm:"column:tentor_faculty;type:text"`
	TentorUniversity string `json:"tentor_university" gorm:"column:tentor_university;type:text"`

	// daftar level & mapel yang diajar (JSONB)
	TentorLevel datatypes.JSON `json:"tentor_level" gorm:"column:tentor_level;type:jsonb"`
	TentorMapel datatypes.JSON `json:"tentor_mapel" gorm:"column:tentor_mapel;type:jsonb"`

	// ledger slot mingguan (JSONB)
	TentorSchedule datatypes.JSON `json:"tentor_schedule" gorm:"column:tentor_schedule;type:jsonb"`

	TentorWallet int    `json:"tentor_wallet" gorm:"column:tentor_wallet;not null;default:0"`
	TentorStatus string `json:"tentor_status" gorm:"column:tentor_status;type:varchar(12);not null;default:active"`

	TentorBankName   string `json:"tentor_bank_name"   gorm:"column:tentor_bank_name;type:text"`
	TentorBankNumber string `json:"tentor_bank_number" gorm:"column:tentor_bank_number;type:varchar(40)"`

	TentorDateJoin  time.Time `json:"tentor_date_join"  gorm:"column:tentor_date_join;not null;autoCreateTime"`
	TentorCreatedAt time.Time `json:"tentor_created_at" gorm:"column:tentor_created_at;not null;autoCreateTime"`
	TentorUpdatedAt time.Time `json:"tentor_updated_at" gorm:"column:tentor_updated_at;not null;autoUpdateTime"`
}

func (Tentor) TableName() string { return "tentor" }

func (t *Tentor) BeforeCreate(tx *gorm.DB) error {
	if t.TentorID == uuid.Nil {
		t.TentorID = uuid.New()
	}
	if t.TentorDateJoin.IsZero() {
		t.TentorDateJoin = time.Now().UTC()
	}
	t.TentorUpdatedAt = time.Now().UTC()
	return nil
}

func (t *Tentor) BeforeUpdate(tx *gorm.DB) error {
	t.TentorUpdatedAt = time.Now().UTC()
	return nil
}

/* =========================
   Getter/setter ledger (serialize hanya di tepi persistence)
   ========================= */

func (t *Tentor) ScheduleDays() ([]TentorScheduleDay, error) {
	if len(t.TentorSchedule) == 0 {
		return []TentorScheduleDay{}, nil
	}
	var days []TentorScheduleDay
	if err := json.Unmarshal(t.TentorSchedule, &days); err != nil {
		return nil, err
	}
	return days, nil
}

func (t *Tentor) SetScheduleDays(days []TentorScheduleDay) error {
	b, err := json.Marshal(days)
	if err != nil {
		return err
	}
	t.TentorSchedule = datatypes.JSON(b)
	return nil
}

func (t *Tentor) MapelIDs() ([]uuid.UUID, error) {
	if len(t.TentorMapel) == 0 {
		return nil, nil
	}
	var ids []uuid.UUID
	if err := json.Unmarshal(t.TentorMapel, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}
