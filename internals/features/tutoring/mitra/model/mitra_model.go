// file: internals/features/tutoring/mitra/model/mitra_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================
   Model: mitra (partner/agen perujuk)
   ========================= */

type Mitra struct {
	MitraID uuid.UUID `json:"mitra_id" gorm:"column:mitra_id;type:uuid;primaryKey"`

	MitraName     string `json:"mitra_name"     gorm:"column:mitra_name;type:text;not null"`
	MitraUsername string `json:"mitra_username" gorm:"column:mitra_username;type:varchar(60);not null;uniqueIndex"`
	MitraPassword string `json:"-"              gorm:"column:mitra_password;type:text;not null"`
	MitraEmail    string `json:"mitra_email"    gorm:"column:mitra_email;type:text;not null"`
	MitraNoHp     string `json:"mitra_no_hp"    gorm:"column:mitra_no_hp;type:varchar(20);not null"`
	MitraBranch   string `json:"mitra_branch"   gorm:"column:mitra_branch;type:text"`
	MitraAddress  string `json:"mitra_address"  gorm:"column:mitra_address;type:text"`
	MitraCity     string `json:"mitra_city"     gorm:"column:mitra_city;type:text"`

	MitraWallet int    `json:"mitra_wallet" gorm:"column:mitra_wallet;not null;default:0"`
	MitraStatus string `json:"mitra_status" gorm:"column:mitra_status;type:varchar(12);not null;default:active"`

	MitraDateJoin  time.Time `json:"mitra_date_join"  gorm:"column:mitra_date_join;not null;autoCreateTime"`
	MitraCreatedAt time.Time `json:"mitra_created_at" gorm:"column:mitra_created_at;not null;autoCreateTime"`
	MitraUpdatedAt time.Time `json:"mitra_updated_at" gorm:"column:mitra_updated_at;not null;autoUpdateTime"`
}

func (Mitra) TableName() string { return "mitra" }

func (m *Mitra) BeforeCreate(tx *gorm.DB) error {
	if m.MitraID == uuid.Nil {
		m.MitraID = uuid.New()
	}
	if m.MitraDateJoin.IsZero() {
		m.MitraDateJoin = time.Now().UTC()
	}
	m.MitraUpdatedAt = time.Now().UTC()
	return nil
}

func (m *Mitra) BeforeUpdate(tx *gorm.DB) error {
	m.MitraUpdatedAt = time.Now().UTC()
	return nil
}
