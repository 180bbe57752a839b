// file: internals/features/tutoring/order/service/order_service_test.go
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
	honorModel "bimbelku_backend/internals/features/finance/honor/model"
	invoiceModel "bimbelku_backend/internals/features/finance/invoice/model"
	proshareModel "bimbelku_backend/internals/features/finance/proshare/model"
	jadwalModel "bimbelku_backend/internals/features/tutoring/jadwal/model"
	mitraModel "bimbelku_backend/internals/features/tutoring/mitra/model"
	"bimbelku_backend/internals/features/tutoring/order/dto"
	orderModel "bimbelku_backend/internals/features/tutoring/order/model"
	paketModel "bimbelku_backend/internals/features/tutoring/paket/model"
	siswaModel "bimbelku_backend/internals/features/tutoring/siswa/model"
	subscriptionModel "bimbelku_backend/internals/features/tutoring/subscription/model"
	tentorModel "bimbelku_backend/internals/features/tutoring/tentor/model"
)

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

type orderFixture struct {
	Siswa  siswaModel.Siswa
	Tentor tentorModel.Tentor
	Paket  paketModel.Paket
	Mapel  uuid.UUID
}

func buildOrderFixture(t *testing.T, db *gorm.DB) *orderFixture {
	t.Helper()

	siswa := siswaModel.Siswa{
		SiswaName:            "Dewi Anggraini",
		SiswaUsername:        "dewi-anggraini",
		SiswaPassword:        "x",
		SiswaNoHp:            "0855555555",
		SiswaEmail:           "dewi@bimbelku.id",
		SiswaGender:          "P",
		SiswaLevel:           "SMP",
		SiswaIsFirstPurchase: true,
	}
	require.NoError(t, db.Create(&siswa).Error)

	tentor := tentorModel.Tentor{
		TentorName:     "Eko Wibowo",
		TentorUsername: "eko-wibowo",
		TentorPassword: "x",
		TentorNoHp:     "0866666666",
		TentorEmail:    "eko@bimbelku.id",
		TentorGender:   "L",
		TentorStatus:   constants.TentorActive,
	}
	require.NoError(t, tentor.SetScheduleDays([]tentorModel.TentorScheduleDay{
		{Day: "Selasa", Slots: []tentorModel.TentorScheduleSlot{{Time: "15:00:00"}}},
		{Day: "Kamis", Slots: []tentorModel.TentorScheduleSlot{{Time: "15:00:00"}}},
	}))
	require.NoError(t, db.Create(&tentor).Error)

	paket := paketModel.Paket{
		PaketName:          "Reguler SMP 8 Sesi",
		PaketCategory:      "Reguler",
		PaketLevel:         "SMP",
		PaketTotalSession:  8,
		PaketDuration:      90,
		PaketPrice:         800000,
		PaketHonorPrice:    60000,
		PaketProsharePrice: 10000,
		PaketStatus:        constants.PaketAktif,
	}
	require.NoError(t, db.Create(&paket).Error)

	return &orderFixture{Siswa: siswa, Tentor: tentor, Paket: paket, Mapel: uuid.New()}
}

func (fx *orderFixture) createRequest() *dto.CreateOrderRequest {
	return &dto.CreateOrderRequest{
		OrderPaketID:    fx.Paket.PaketID,
		OrderTentorID:   &fx.Tentor.TentorID,
		OrderMeetingDay: []string{"Selasa", "Kamis"},
		OrderTime:       "15:00:00",
		OrderMapel:      []uuid.UUID{fx.Mapel},
	}
}

func TestCreateOrderPending(t *testing.T) {
	db := newTestDB(t)
	fx := buildOrderFixture(t, db)
	svc := NewOrderService(db)

	ord, err := svc.CreateOrder(fx.Siswa.SiswaID, fx.createRequest())
	require.NoError(t, err)
	assert.Equal(t, constants.OrderNonApprove, ord.OrderStatus)

	// belum ada provisioning apa pun
	var subCount, invCount, jadwalCount int64
	db.Model(&subscriptionModel.Subscription{}).Count(&subCount)
	db.Model(&invoiceModel.Invoice{}).Count(&invCount)
	db.Model(&jadwalModel.Jadwal{}).Count(&jadwalCount)
	assert.Zero(t, subCount)
	assert.Zero(t, invCount)
	assert.Zero(t, jadwalCount)
}

func TestCreateOrderRejectsUnknownDay(t *testing.T) {
	db := newTestDB(t)
	fx := buildOrderFixture(t, db)
	svc := NewOrderService(db)

	req := fx.createRequest()
	req.OrderMeetingDay = []string{"Lusa"}
	_, err := svc.CreateOrder(fx.Siswa.SiswaID, req)
	require.Error(t, err)
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusBadRequest, fe.Code)
}

func TestCreateOrderRejectsBookedSlot(t *testing.T) {
	db := newTestDB(t)
	fx := buildOrderFixture(t, db)
	svc := NewOrderService(db)

	// booked-kan slot Selasa
	days, err := fx.Tentor.ScheduleDays()
	require.NoError(t, err)
	days[0].Slots[0].Booked = true
	require.NoError(t, fx.Tentor.SetScheduleDays(days))
	require.NoError(t, db.Save(&fx.Tentor).Error)

	_, err = svc.CreateOrder(fx.Siswa.SiswaID, fx.createRequest())
	require.Error(t, err)
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusConflict, fe.Code)
}

func TestApproveOrderProvisionsCycle(t *testing.T) {
	db := newTestDB(t)
	fx := buildOrderFixture(t, db)
	svc := NewOrderService(db)

	configs.RegistrationFee = 95000

	ord, err := svc.CreateOrder(fx.Siswa.SiswaID, fx.createRequest())
	require.NoError(t, err)

	result, err := svc.ApproveOrder(ord.OrderID, &dto.ApproveOrderRequest{})
	require.NoError(t, err)

	assert.Equal(t, constants.OrderApprove, result.Order.OrderStatus)

	// subscription penuh satu siklus, menunjuk order pembuatnya
	assert.Equal(t, fx.Paket.PaketTotalSession, result.Subscription.SubscriptionRemainingSessions)
	assert.Equal(t, ord.OrderID, result.Subscription.SubscriptionCurrentOrderID)
	assert.Equal(t, constants.SubscriptionActive, result.Subscription.SubscriptionStatus)

	// pembelian pertama kena biaya pendaftaran
	assert.Equal(t, fx.Paket.PaketPrice+95000, result.Invoice.InvoicePrice)
	assert.Equal(t, constants.PaymentUnpaid, result.Invoice.InvoicePaymentStatus)

	// satu batch jadwal penuh
	var jadwalCount int64
	db.Model(&jadwalModel.Jadwal{}).
		Where("jadwal_invoice_id = ?", result.Invoice.InvoiceID).
		Count(&jadwalCount)
	assert.Equal(t, int64(fx.Paket.PaketTotalSession), jadwalCount)

	// slot tentor terklaim
	var tentor tentorModel.Tentor
	require.NoError(t, db.First(&tentor, "tentor_id = ?", fx.Tentor.TentorID).Error)
	days, err := tentor.ScheduleDays()
	require.NoError(t, err)
	assert.True(t, days[0].Slots[0].Booked)
	assert.True(t, days[1].Slots[0].Booked)
}

func TestApproveOrderIdempotenceGate(t *testing.T) {
	db := newTestDB(t)
	fx := buildOrderFixture(t, db)
	svc := NewOrderService(db)

	ord, err := svc.CreateOrder(fx.Siswa.SiswaID, fx.createRequest())
	require.NoError(t, err)

	_, err = svc.ApproveOrder(ord.OrderID, &dto.ApproveOrderRequest{})
	require.NoError(t, err)

	// approve kedua ditolak dan tidak menggandakan provisioning
	_, err = svc.ApproveOrder(ord.OrderID, &dto.ApproveOrderRequest{})
	require.Error(t, err)
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusConflict, fe.Code)

	var subCount, invCount, jadwalCount int64
	db.Model(&subscriptionModel.Subscription{}).Count(&subCount)
	db.Model(&invoiceModel.Invoice{}).Count(&invCount)
	db.Model(&jadwalModel.Jadwal{}).Count(&jadwalCount)
	assert.Equal(t, int64(1), subCount)
	assert.Equal(t, int64(1), invCount)
	assert.Equal(t, int64(fx.Paket.PaketTotalSession), jadwalCount)

	// reject setelah approve juga ditolak
	_, err = svc.RejectOrder(ord.OrderID)
	require.Error(t, err)
}

func TestApproveOrderWithAdminOverride(t *testing.T) {
	db := newTestDB(t)
	fx := buildOrderFixture(t, db)
	svc := NewOrderService(db)

	// order masuk tanpa tentor; admin memasang tentor saat approve
	req := fx.createRequest()
	req.OrderTentorID = nil
	ord, err := svc.CreateOrder(fx.Siswa.SiswaID, req)
	require.NoError(t, err)

	result, err := svc.ApproveOrder(ord.OrderID, &dto.ApproveOrderRequest{
		TentorID: &fx.Tentor.TentorID,
	})
	require.NoError(t, err)
	require.NotNil(t, result.Order.OrderTentorID)
	assert.Equal(t, fx.Tentor.TentorID, *result.Order.OrderTentorID)
}

func TestApproveOrderWithoutTentorFails(t *testing.T) {
	db := newTestDB(t)
	fx := buildOrderFixture(t, db)
	svc := NewOrderService(db)

	req := fx.createRequest()
	req.OrderTentorID = nil
	ord, err := svc.CreateOrder(fx.Siswa.SiswaID, req)
	require.NoError(t, err)

	_, err = svc.ApproveOrder(ord.OrderID, &dto.ApproveOrderRequest{})
	require.Error(t, err)
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusBadRequest, fe.Code)

	// rollback total: order tetap menggantung
	var saved orderModel.Order
	require.NoError(t, db.First(&saved, "order_id = ?", ord.OrderID).Error)
	assert.Equal(t, constants.OrderNonApprove, saved.OrderStatus)
}

func TestRejectOrder(t *testing.T) {
	db := newTestDB(t)
	fx := buildOrderFixture(t, db)
	svc := NewOrderService(db)

	ord, err := svc.CreateOrder(fx.Siswa.SiswaID, fx.createRequest())
	require.NoError(t, err)

	rejected, err := svc.RejectOrder(ord.OrderID)
	require.NoError(t, err)
	assert.Equal(t, constants.OrderReject, rejected.OrderStatus)

	// order terminal tidak bisa di-approve
	_, err = svc.ApproveOrder(ord.OrderID, &dto.ApproveOrderRequest{})
	require.Error(t, err)
}

func TestCreateOrderByAdminSingleTransaction(t *testing.T) {
	db := newTestDB(t)
	fx := buildOrderFixture(t, db)
	svc := NewOrderService(db)

	configs.RegistrationFee = 95000

	result, err := svc.CreateOrderByAdmin(&dto.CreateOrderByAdminRequest{
		OrderSiswaID:       fx.Siswa.SiswaID,
		CreateOrderRequest: *fx.createRequest(),
	})
	require.NoError(t, err)

	assert.Equal(t, constants.OrderApprove, result.Order.OrderStatus)
	assert.Equal(t, fx.Paket.PaketTotalSession, result.Subscription.SubscriptionRemainingSessions)

	var jadwalCount int64
	db.Model(&jadwalModel.Jadwal{}).Count(&jadwalCount)
	assert.Equal(t, int64(fx.Paket.PaketTotalSession), jadwalCount)
}

func TestGetAllOrderFilters(t *testing.T) {
	db := newTestDB(t)
	fx := buildOrderFixture(t, db)
	svc := NewOrderService(db)

	_, err := svc.CreateOrder(fx.Siswa.SiswaID, fx.createRequest())
	require.NoError(t, err)

	pending, err := svc.GetAllOrder(constants.OrderNonApprove)
	require.NoError(t, err)
	assert.Len(t, pending, 1)

	all, err := svc.GetAllOrder("all")
	require.NoError(t, err)
	assert.Len(t, all, 1)

	_, err = svc.GetAllOrder(constants.OrderReject)
	require.Error(t, err)
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusNotFound, fe.Code)
}
