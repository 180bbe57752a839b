// file: internals/features/finance/proshare/model/proshare_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"bimbelku_backend/internals/constants"
)

/* =========================
   Model: proshare (bagi hasil mitra per siklus)
   ========================= */

type Proshare struct {
	ProshareID uuid.UUID `json:"proshare_id" gorm:"column:proshare_id;type:uuid;primaryKey"`

	ProshareMitraID   uuid.UUID `json:"proshare_mitra_id"   gorm:"column:proshare_mitra_id;type:uuid;not null;index"`
	ProshareSiswaID   uuid.UUID `json:"proshare_siswa_id"   gorm:"column:proshare_siswa_id;type:uuid;not null"`
	ProshareInvoiceID uuid.UUID `json:"proshare_invoice_id" gorm:"column:proshare_invoice_id;type:uuid;not null;index"`

	ProshareTotal  int    `json:"proshare_total"  gorm:"column:proshare_total;not null"`
	ProshareStatus string `json:"proshare_status" gorm:"column:proshare_status;type:varchar(12);not null;default:Pending"`

	ProshareCreatedAt time.Time `json:"proshare_created_at" gorm:"column:proshare_created_at;not null;autoCreateTime"`
	ProshareUpdatedAt time.Time `json:"proshare_updated_at" gorm:"column:proshare_updated_at;not null;autoUpdateTime"`
}

func (Proshare) TableName() string { return "proshare" }

func (p *Proshare) BeforeCreate(tx *gorm.DB) error {
	if p.ProshareID == uuid.Nil {
		p.ProshareID = uuid.New()
	}
	if p.ProshareStatus == "" {
		p.ProshareStatus = constants.PayoutPending
	}
	p.ProshareUpdatedAt = time.Now().UTC()
	return nil
}

func (p *Proshare) BeforeUpdate(tx *gorm.DB) error {
	p.ProshareUpdatedAt = time.Now().UTC()
	return nil
}
