// file: internals/features/tutoring/paket/model/paket_model.go
package model

import (
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"bimbelku_backend/internals/constants"
)

/* =========================
   Model: paket (bundel sesi)
   ========================= */

type Paket struct {
	PaketID uuid.UUID `json:"paket_id" gorm:"column:paket_id;type:uuid;primaryKey"`

	PaketName        string `json:"paket_name"        gorm:"column:paket_name;type:text;not null"`
	PaketDescription string `json:"paket_description" gorm:"column:paket_description;type:text"`
	PaketCategory    string `json:"paket_category"    gorm:"column:paket_category;type:text;not null"`
	PaketLevel       string `json:"paket_level"       gorm:"column:paket_level;type:varchar(10)"` // nullable: tidak semua paket butuh level

	PaketTotalSession int `json:"paket_total_session" gorm:"column:paket_total_session;not null"`
	PaketDuration     int `json:"paket_duration"      gorm:"column:paket_duration;not null"` // menit per sesi

	// harga dalam rupiah (minor unit tunggal)
	PaketPrice         int `json:"paket_price"          gorm:"column:paket_price;not null"`
	PaketHonorPrice    int `json:"paket_honor_price"    gorm:"column:paket_honor_price;not null"`
	PaketProsharePrice int `json:"paket_proshare_price" gorm:"column:paket_proshare_price;not null"`

	PaketStatus string `json:"paket_status" gorm:"column:paket_status;type:varchar(12);not null;default:Aktif"`

	PaketCreatedAt time.Time `json:"paket_created_at" gorm:"column:paket_created_at;not null;autoCreateTime"`
	PaketUpdatedAt time.Time `json:"paket_updated_at" gorm:"column:paket_updated_at;not null;autoUpdateTime"`
}

func (Paket) TableName() string { return "paket" }

// BeforeCreate menurunkan tarif honor (60% harga / sesi) dan proshare
// (10% harga / sesi) bila belum diisi eksplisit.
func (p *Paket) BeforeCreate(tx *gorm.DB) error {
	if p.PaketID == uuid.Nil {
		p.PaketID = uuid.New()
	}
	if p.PaketStatus == "" {
		p.PaketStatus = constants.PaketAktif
	}
	if p.PaketTotalSession > 0 {
		if p.PaketHonorPrice == 0 {
			p.PaketHonorPrice = int(math.Round(float64(p.PaketPrice) * 0.6 / float64(p.PaketTotalSession)))
		}
		if p.PaketProsharePrice == 0 {
			p.PaketProsharePrice = int(math.Round(float64(p.PaketPrice) * 0.1 / float64(p.PaketTotalSession)))
		}
	}
	p.PaketUpdatedAt = time.Now().UTC()
	return nil
}

func (p *Paket) BeforeUpdate(tx *gorm.DB) error {
	p.PaketUpdatedAt = time.Now().UTC()
	return nil
}

func (p *Paket) IsAktif() bool { return p.PaketStatus == constants.PaketAktif }
