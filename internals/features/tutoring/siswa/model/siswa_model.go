// file: internals/features/tutoring/siswa/model/siswa_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================
   Model: siswa
   ========================= */

type Siswa struct {
	SiswaID uuid.UUID `json:"siswa_id" gorm:"column:siswa_id;type:uuid;primaryKey"`

	// mitra perujuk (nullable, ON DELETE SET NULL)
	SiswaMitraID *uuid.UUID `json:"siswa_mitra_id,omitempty" gorm:"column:siswa_mitra_id;type:uuid;constraint:OnDelete:SET NULL"`

	SiswaName     string `json:"siswa_name"     gorm:"column:siswa_name;type:text;not null"`
	SiswaUsername string `json:"siswa_username" gorm:"column:siswa_username;type:varchar(60);not null;uniqueIndex"`
	SiswaPassword string `json:"-"              gorm:"column:siswa_password;type:text;not null"`

	SiswaNoHp       string `json:"siswa_no_hp"       gorm:"column:siswa_no_hp;type:varchar(20);not null"`
	SiswaEmail      string `json:"siswa_email"       gorm:"column:siswa_email;type:text;not null"`
	SiswaGender     string `json:"siswa_gender"      gorm:"column:siswa_gender;type:varchar(1);not null"` // L / P
	SiswaParentName string `json:"siswa_parent_name" gorm:"column:siswa_parent_name;type:text"`
	SiswaParentJob  string `json:"siswa_parent_job"  gorm:"column:siswa_parent_job;type:text"`
	SiswaAddress    string `json:"siswa_address"     gorm:"column:siswa_address;type:text"`
	SiswaCity       string `json:"siswa_city"        gorm:"column:siswa_city;type:text"`
	SiswaPurpose    string `json:"siswa_purpose"     gorm:"column:siswa_purpose;type:text"`
	SiswaLevel      string `json:"siswa_level"       gorm:"column:siswa_level;type:varchar(10);not null"` // TK/SD/SMP/SMA

	SiswaWallet          int    `json:"siswa_wallet"            gorm:"column:siswa_wallet;not null;default:0"`
	SiswaStatus          string `json:"siswa_status"            gorm:"column:siswa_status;type:varchar(12);not null;default:active"`
	SiswaIsFirstPurchase bool   `json:"siswa_is_first_purchase" gorm:"column:siswa_is_first_purchase;not null;default:true"`

	SiswaDateJoin  time.Time `json:"siswa_date_join"  gorm:"column:siswa_date_join;not null;autoCreateTime"`
	SiswaCreatedAt time.Time `json:"siswa_created_at" gorm:"column:siswa_created_at;not null;autoCreateTime"`
	SiswaUpdatedAt time.Time `json:"siswa_updated_at" gorm:"column:siswa_updated_at;not null;autoUpdateTime"`
}

func (Siswa) TableName() string { return "siswa" }

func (s *Siswa) BeforeCreate(tx *gorm.DB) error {
	if s.SiswaID == uuid.Nil {
		s.SiswaID = uuid.New()
	}
	if s.SiswaDateJoin.IsZero() {
		s.SiswaDateJoin = time.Now().UTC()
	}
	s.SiswaUpdatedAt = time.Now().UTC()
	return nil
}

func (s *Siswa) BeforeUpdate(tx *gorm.DB) error {
	s.SiswaUpdatedAt = time.Now().UTC()
	return nil
}
