// file: internals/features/finance/invoice/service/invoice_service.go
package service

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"bimbelku_backend/internals/configs"
	"bimbelku_backend/internals/constants"
	invoiceModel "bimbelku_backend/internals/features/finance/invoice/model"
	orderModel "bimbelku_backend/internals/features/tutoring/order/model"
	paketModel "bimbelku_backend/internals/features/tutoring/paket/model"
	siswaModel "bimbelku_backend/internals/features/tutoring/siswa/model"
	helper "bimbelku_backend/internals/helpers"
)

// ComputeInvoicePrice harga paket + biaya pendaftaran sekali bayar bila ini
// pembelian pertama siswa. Renewal tidak pernah kena biaya pendaftaran.
func ComputeInvoicePrice(paket *paketModel.Paket, firstPurchase bool) int {
	price := paket.PaketPrice
	if firstPurchase {
		price += configs.RegistrationFee
	}
	return price
}

// CreateInitialInvoice membuat invoice Unpaid untuk siklus pertama sebuah
// subscription; berjalan di transaksi pemanggil (approval order).
func CreateInitialInvoice(
	tx *gorm.DB,
	ord *orderModel.Order,
	paket *paketModel.Paket,
	siswa *siswaModel.Siswa,
	subscriptionID uuid.UUID,
) (*invoiceModel.Invoice, error) {
	inv := invoiceModel.Invoice{
		InvoiceOrderID:        ord.OrderID,
		InvoiceSubscriptionID: subscriptionID,
		InvoicePaketID:        paket.PaketID,
		InvoiceSiswaID:        ord.OrderSiswaID,
		InvoicePrice:          ComputeInvoicePrice(paket, siswa.SiswaIsFirstPurchase),
		InvoicePaymentStatus:  constants.PaymentUnpaid,
	}
	if err := tx.Create(&inv).Error; err != nil {
		return nil, err
	}
	return &inv, nil
}

// ProcessInvoicePayment menandai invoice Paid dan, bila ini pembelian
// pertama siswa, mematikan flag isFirstPurchase.
func ProcessInvoicePayment(db *gorm.DB, invoiceID uuid.UUID) (*invoiceModel.Invoice, error) {
	var inv invoiceModel.Invoice
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := helper.LockForUpdate(tx).
			First(&inv, "invoice_id = ?", invoiceID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return fiber.NewError(fiber.StatusNotFound, "Invoice tidak ditemukan")
			}
			return err
		}
		if inv.InvoicePaymentStatus == constants.PaymentPaid {
			return fiber.NewError(fiber.StatusConflict, "Invoice sudah dibayar")
		}

		var siswa siswaModel.Siswa
		if err := helper.LockForUpdate(tx).
			First(&siswa, "siswa_id = ?", inv.InvoiceSiswaID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Siswa tidak ditemukan")
		}
		if siswa.SiswaIsFirstPurchase {
			siswa.SiswaIsFirstPurchase = false
			if err := tx.Save(&siswa).Error; err != nil {
				return err
			}
		}

		now := time.Now()
		inv.InvoicePaymentStatus = constants.PaymentPaid
		inv.InvoicePaymentDate = &now
		return tx.Save(&inv).Error
	})
	if err != nil {
		return nil, err
	}
	return &inv, nil
}
