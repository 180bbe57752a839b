// file: internals/features/finance/invoice/service/invoice_service_test.go
package service

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"bimbelku_backend/internals/configs"
	"bimbelku_backend/internals/constants"
	invoiceModel "bimbelku_backend/internals/features/finance/invoice/model"
	paketModel "bimbelku_backend/internals/features/tutoring/paket/model"
	siswaModel "bimbelku_backend/internals/features/tutoring/siswa/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&siswaModel.Siswa{},
		&paketModel.Paket{},
		&invoiceModel.Invoice{},
	))
	return db
}

func TestComputeInvoicePrice(t *testing.T) {
	configs.RegistrationFee = 95000
	paket := &paketModel.Paket{PaketPrice: 600000}

	assert.Equal(t, 695000, ComputeInvoicePrice(paket, true), "pembelian pertama kena biaya pendaftaran")
	assert.Equal(t, 600000, ComputeInvoicePrice(paket, false), "renewal bebas biaya pendaftaran")
}

func TestProcessInvoicePayment(t *testing.T) {
	db := newTestDB(t)

	siswa := siswaModel.Siswa{
		SiswaName:            "Fitri Handayani",
		SiswaUsername:        "fitri-handayani",
		SiswaPassword:        "x",
		SiswaNoHp:            "0877777777",
		SiswaEmail:           "fitri@bimbelku.id",
		SiswaGender:          "P",
		SiswaLevel:           "SD",
		SiswaIsFirstPurchase: true,
	}
	require.NoError(t, db.Create(&siswa).Error)

	inv := invoiceModel.Invoice{
		InvoiceOrderID:        uuid.New(),
		InvoiceSubscriptionID: uuid.New(),
		InvoicePaketID:        uuid.New(),
		InvoiceSiswaID:        siswa.SiswaID,
		InvoicePrice:          695000,
	}
	require.NoError(t, db.Create(&inv).Error)

	paid, err := ProcessInvoicePayment(db, inv.InvoiceID)
	require.NoError(t, err)
	assert.Equal(t, constants.PaymentPaid, paid.InvoicePaymentStatus)
	require.NotNil(t, paid.InvoicePaymentDate)

	// flag pembelian pertama mati setelah pembayaran pertama
	var saved siswaModel.Siswa
	require.NoError(t, db.First(&saved, "siswa_id = ?", siswa.SiswaID).Error)
	assert.False(t, saved.SiswaIsFirstPurchase)

	// bayar dua kali ditolak
	_, err = ProcessInvoicePayment(db, inv.InvoiceID)
	require.Error(t, err)
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusConflict, fe.Code)
}

func TestInvoiceTimestampsScanBack(t *testing.T) {
	db := newTestDB(t)

	inv := invoiceModel.Invoice{
		InvoiceOrderID:        uuid.New(),
		InvoiceSubscriptionID: uuid.New(),
		InvoicePaketID:        uuid.New(),
		InvoiceSiswaID:        uuid.New(),
		InvoicePrice:          600000,
	}
	require.NoError(t, db.Create(&inv).Error)

	// created/updated diisi otomatis dan bisa di-scan kembali sebagai time.Time
	var saved invoiceModel.Invoice
	require.NoError(t, db.First(&saved, "invoice_id = ?", inv.InvoiceID).Error)
	assert.False(t, saved.InvoiceCreatedAt.IsZero())
	assert.False(t, saved.InvoiceUpdatedAt.IsZero())
	assert.Nil(t, saved.InvoicePaymentDate)
}

func TestProcessInvoicePaymentUnknownInvoice(t *testing.T) {
	db := newTestDB(t)

	_, err := ProcessInvoicePayment(db, uuid.New())
	require.Error(t, err)
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusNotFound, fe.Code)
}
