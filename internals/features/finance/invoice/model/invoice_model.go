// file: internals/features/finance/invoice/model/invoice_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"bimbelku_backend/internals/constants"
)

/* =========================
   Model: invoices (satu siklus tagihan subscription)
   ========================= */

type Invoice struct {
	InvoiceID uuid.UUID `json:"invoice_id" gorm:"column:invoice_id;type:uuid;primaryKey"`

	InvoiceOrderID        uuid.UUID `json:"invoice_order_id"        gorm:"column:invoice_order_id;type:uuid;not null"`
	InvoiceSubscriptionID uuid.UUID `json:"invoice_subscription_id" gorm:"column:invoice_subscription_id;type:uuid;not null;index"`
	InvoicePaketID        uuid.UUID `json:"invoice_paket_id"        gorm:"column:invoice_paket_id;type:uuid;not null"`
	InvoiceSiswaID        uuid.UUID `json:"invoice_siswa_id"        gorm:"column:invoice_siswa_id;type:uuid;not null;index"`

	// harga paket + biaya pendaftaran (hanya pembelian pertama siswa)
	InvoicePrice int `json:"invoice_price" gorm:"column:invoice_price;not null"`

	InvoicePaymentStatus string     `json:"invoice_payment_status"         gorm:"column:invoice_payment_status;type:varchar(12);not null;default:Unpaid"`
	InvoicePaymentDate   *time.Time `json:"invoice_payment_date,omitempty" gorm:"column:invoice_payment_date"`
	InvoiceSnapToken     *string    `json:"invoice_snap_token,omitempty"   gorm:"column:invoice_snap_token;type:text"`

	InvoiceCreatedAt time.Time `json:"invoice_created_at" gorm:"column:invoice_created_at;not null;autoCreateTime"`
	InvoiceUpdatedAt time.Time `json:"invoice_updated_at" gorm:"column:invoice_updated_at;not null;autoUpdateTime"`
}

func (Invoice) TableName() string { return "invoices" }

func (i *Invoice) BeforeCreate(tx *gorm.DB) error {
	if i.InvoiceID == uuid.Nil {
		i.InvoiceID = uuid.New()
	}
	if i.InvoicePaymentStatus == "" {
		i.InvoicePaymentStatus = constants.PaymentUnpaid
	}
	i.InvoiceUpdatedAt = time.Now().UTC()
	return nil
}

func (i *Invoice) BeforeUpdate(tx *gorm.DB) error {
	i.InvoiceUpdatedAt = time.Now().UTC()
	return nil
}
