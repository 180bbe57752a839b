// file: internals/features/finance/honor/model/honor_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"bimbelku_backend/internals/constants"
)

/* =========================
   Model: honor (honorarium tentor per siklus)
   ========================= */

// Honor dibuat saat subscription habis: satu record per tentor yang
// mengajar pada invoice siklus itu, total = jumlah sesi Present × tarif
// honor paket.
type Honor struct {
	HonorID uuid.UUID `json:"honor_id" gorm:"column:honor_id;type:uuid;primaryKey"`

	HonorTentorID  uuid.UUID `json:"honor_tentor_id"  gorm:"column:honor_tentor_id;type:uuid;not null;index"`
	HonorSiswaID   uuid.UUID `json:"honor_siswa_id"   gorm:"column:honor_siswa_id;type:uuid;not null"`
	HonorInvoiceID uuid.UUID `json:"honor_invoice_id" gorm:"column:honor_invoice_id;type:uuid;not null;index"`

	HonorTotal  int    `json:"honor_total"  gorm:"column:honor_total;not null"`
	HonorStatus string `json:"honor_status" gorm:"column:honor_status;type:varchar(12);not null;default:Pending"`

	HonorCreatedAt time.Time `json:"honor_created_at" gorm:"column:honor_created_at;not null;autoCreateTime"`
	HonorUpdatedAt time.Time `json:"honor_updated_at" gorm:"column:honor_updated_at;not null;autoUpdateTime"`
}

func (Honor) TableName() string { return "honor" }

func (h *Honor) BeforeCreate(tx *gorm.DB) error {
	if h.HonorID == uuid.Nil {
		h.HonorID = uuid.New()
	}
	if h.HonorStatus == "" {
		h.HonorStatus = constants.PayoutPending
	}
	h.HonorUpdatedAt = time.Now().UTC()
	return nil
}

func (h *Honor) BeforeUpdate(tx *gorm.DB) error {
	h.HonorUpdatedAt = time.Now().UTC()
	return nil
}
