// file: internals/features/tutoring/jadwal/service/setup_test.go
package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	honorModel "bimbelku_backend/internals/features/finance/honor/model"
	invoiceModel "bimbelku_backend/internals/features/finance/invoice/model"
	proshareModel "bimbelku_backend/internals/features/finance/proshare/model"
	jadwalModel "bimbelku_backend/internals/features/tutoring/jadwal/model"
	mitraModel "bimbelku_backend/internals/features/tutoring/mitra/model"
	orderModel "bimbelku_backend/internals/features/tutoring/order/model"
	paketModel "bimbelku_backend/internals/features/tutoring/paket/model"
	siswaModel "bimbelku_backend/internals/features/tutoring/siswa/model"
	subscriptionModel "bimbelku_backend/internals/features/tutoring/subscription/model"
	tentorModel "bimbelku_backend/internals/features/tutoring/tentor/model"
)

// genesis Kamis; hari pertemuan fixture Senin+Rabu sehingga sesi pertama
// jatuh Senin berikutnya (6 Jan 2025).
var genesis = time.Date(2025, 1, 2, 9, 0, 0, 0, time.UTC)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&siswaModel.Siswa{},
		&mitraModel.Mitra{},
		&tentorModel.Tentor{},
		&paketModel.Paket{},
		&orderModel.Order{},
		&subscriptionModel.Subscription{},
		&invoiceModel.Invoice{},
		&jadwalModel.Jadwal{},
		&honorModel.Honor{},
		&proshareModel.Proshare{},
	))
	return db
}

// lifecycleFixture satu siklus subscription siap pakai: 4 sesi Senin+Rabu
// dengan jadwal sudah di-generate dari genesis.
type lifecycleFixture struct {
	Siswa   siswaModel.Siswa
	Mitra   mitraModel.Mitra
	Tentor  tentorModel.Tentor
	Paket   paketModel.Paket
	Order   orderModel.Order
	Sub     subscriptionModel.Subscription
	Invoice invoiceModel.Invoice
	Jadwal  []jadwalModel.Jadwal
}

func buildLifecycleFixture(t *testing.T, db *gorm.DB) *lifecycleFixture {
	t.Helper()

	mitra := mitraModel.Mitra{
		MitraName:     "Mitra Cemerlang",
		MitraUsername: "mitra-cemerlang",
		MitraPassword: "x",
		MitraEmail:    "mitra@bimbelku.id",
		MitraNoHp:     "0811111111",
	}
	require.NoError(t, db.Create(&mitra).Error)

	siswa := siswaModel.Siswa{
		SiswaMitraID:         &mitra.MitraID,
		SiswaName:            "Andi Pratama",
		SiswaUsername:        "andi-pratama",
		SiswaPassword:        "x",
		SiswaNoHp:            "0822222222",
		SiswaEmail:           "andi@bimbelku.id",
		SiswaGender:          "L",
		SiswaLevel:           "SMA",
		SiswaIsFirstPurchase: true,
	}
	require.NoError(t, db.Create(&siswa).Error)

	tentor := tentorModel.Tentor{
		TentorName:     "Budi Santoso",
		TentorUsername: "budi-santoso",
		TentorPassword: "x",
		TentorNoHp:     "0833333333",
		TentorEmail:    "budi@bimbelku.id",
		TentorGender:   "L",
		TentorStatus:   "active",
	}
	require.NoError(t, tentor.SetScheduleDays([]tentorModel.TentorScheduleDay{
		{Day: "Senin", Slots: []tentorModel.TentorScheduleSlot{{Time: "10:00:00"}}},
		{Day: "Rabu", Slots: []tentorModel.TentorScheduleSlot{{Time: "10:00:00"}}},
	}))
	require.NoError(t, db.Create(&tentor).Error)

	paket := paketModel.Paket{
		PaketName:          "Reguler SMA 4 Sesi",
		PaketCategory:      "Reguler",
		PaketLevel:         "SMA",
		PaketTotalSession:  4,
		PaketDuration:      90,
		PaketPrice:         600000,
		PaketHonorPrice:    50000,
		PaketProsharePrice: 10000,
	}
	require.NoError(t, db.Create(&paket).Error)

	ord := orderModel.Order{
		OrderSiswaID:  siswa.SiswaID,
		OrderPaketID:  paket.PaketID,
		OrderTentorID: &tentor.TentorID,
		OrderTime:     "10:00:00",
		OrderStatus:   "Approve",
	}
	require.NoError(t, ord.SetMeetingDays([]string{"Senin", "Rabu"}))
	require.NoError(t, ord.SetMapelIDs([]uuid.UUID{uuid.New()}))
	require.NoError(t, db.Create(&ord).Error)

	sub := subscriptionModel.Subscription{
		SubscriptionSiswaID:           siswa.SiswaID,
		SubscriptionPaketID:           paket.PaketID,
		SubscriptionTentorID:          &tentor.TentorID,
		SubscriptionCurrentOrderID:    ord.OrderID,
		SubscriptionRemainingSessions: paket.PaketTotalSession,
		SubscriptionStatus:            "Active",
	}
	require.NoError(t, db.Create(&sub).Error)

	inv := invoiceModel.Invoice{
		InvoiceOrderID:        ord.OrderID,
		InvoiceSubscriptionID: sub.SubscriptionID,
		InvoicePaketID:        paket.PaketID,
		InvoiceSiswaID:        siswa.SiswaID,
		InvoicePrice:          paket.PaketPrice,
	}
	require.NoError(t, db.Create(&inv).Error)

	scheduler := &SchedulerService{Now: func() time.Time { return genesis }}
	require.NoError(t, scheduler.GenerateJadwal(db, &ord, &paket, inv.InvoiceID, sub.SubscriptionID))

	var jadwal []jadwalModel.Jadwal
	require.NoError(t, db.Where("jadwal_invoice_id = ?", inv.InvoiceID).
		Order("jadwal_date ASC").Find(&jadwal).Error)
	require.Len(t, jadwal, paket.PaketTotalSession)

	return &lifecycleFixture{
		Siswa: siswa, Mitra: mitra, Tentor: tentor, Paket: paket,
		Order: ord, Sub: sub, Invoice: inv, Jadwal: jadwal,
	}
}

// afterAllSessions instant aman setelah seluruh jadwal fixture lewat.
func afterAllSessions() time.Time {
	return genesis.AddDate(0, 2, 0)
}
