// file: internals/features/tutoring/jadwal/service/attendance_service.go
package service

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"bimbelku_backend/internals/constants"
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
	helper "bimbelku_backend/internals/helpers"
)

// AttendanceService protokol absensi dua fase (request → confirm) plus rute
// single-phase lama. Confirm membawa seluruh side effect finansial: kredit
// wallet tentor, decrement sisa sesi, dan renewal saat habis.
type AttendanceService struct {
	DB        *gorm.DB
	Now       func() time.Time
	Scheduler *SchedulerService
}

func NewAttendanceService(db *gorm.DB) *AttendanceService {
	return &AttendanceService{DB: db, Now: time.Now, Scheduler: NewSchedulerService()}
}

func (s *AttendanceService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

/* =========================================================
   FASE 1: REQUEST PRESENT
   ========================================================= */

// RequestPresentResult data siswa dikembalikan untuk konfirmasi di frontend.
type RequestPresentResult struct {
	Jadwal *jadwalModel.Jadwal `json:"jadwal"`
	Siswa  fiber.Map           `json:"siswa"`
}

func (s *AttendanceService) RequestPresent(jadwalID uuid.UUID) (*RequestPresentResult, error) {
	var result *RequestPresentResult
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var jadwal jadwalModel.Jadwal
		if err := helper.LockForUpdate(tx).
			First(&jadwal, "jadwal_id = ?", jadwalID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Jadwal tidak ditemukan")
			}
			return err
		}

		var siswa siswaModel.Siswa
		if err := helper.LockForUpdate(tx).
			First(&siswa, "siswa_id = ?", jadwal.JadwalSiswaID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Siswa tidak ditemukan")
		}

		if jadwal.JadwalAttendanceStatus != constants.AttendanceAbsent {
			return fiber.NewError(fiber.StatusConflict, "Jadwal sudah dalam proses absen")
		}
		if jadwal.StartAt().After(s.now()) {
			return fiber.NewError(fiber.StatusUnprocessableEntity, "Tidak bisa request absen sebelum jadwal dimulai")
		}

		jadwal.JadwalAttendanceStatus = constants.AttendancePresentRequest
		if err := tx.Save(&jadwal).Error; err != nil {
			return err
		}

		result = &RequestPresentResult{
			Jadwal: &jadwal,
			Siswa: fiber.Map{
				"siswa_id":    siswa.SiswaID,
				"siswa_name":  siswa.SiswaName,
				"siswa_no_hp": siswa.SiswaNoHp,
				"siswa_level": siswa.SiswaLevel,
			},
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

/* =========================================================
   FASE 2: CONFIRM PRESENT (kanonik)
   ========================================================= */

func (s *AttendanceService) ConfirmPresent(jadwalID uuid.UUID) (*jadwalModel.Jadwal, error) {
	return s.settlePresent(jadwalID, false)
}

// PresentDirect rute single-phase lama (Absent → Present tanpa gerbang
// konfirmasi). Dibekukan sebagai legacy; jangan dikembangkan.
func (s *AttendanceService) PresentDirect(jadwalID uuid.UUID) (*jadwalModel.Jadwal, error) {
	return s.settlePresent(jadwalID, true)
}

// settlePresent menjalankan seluruh konfirmasi kehadiran dalam SATU
// transaksi: row lock semua entitas, set Present, kredit wallet tentor,
// decrement sisa sesi, dan — saat habis — bookkeeping renewal lengkap.
func (s *AttendanceService) settlePresent(jadwalID uuid.UUID, legacySinglePhase bool) (*jadwalModel.Jadwal, error) {
	var settled *jadwalModel.Jadwal

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		/* ---------- Ambil entitas utama & kunci row ---------- */
		var jadwal jadwalModel.Jadwal
		if err := helper.LockForUpdate(tx).
			First(&jadwal, "jadwal_id = ?", jadwalID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Jadwal tidak ditemukan")
			}
			return err
		}

		if legacySinglePhase {
			if jadwal.JadwalAttendanceStatus == constants.AttendancePresent {
				return fiber.NewError(fiber.StatusConflict, "Jadwal Sudah Diabsenkan")
			}
		} else if jadwal.JadwalAttendanceStatus != constants.AttendancePresentRequest {
			return fiber.NewError(fiber.StatusConflict, "Jadwal Tidak Valid untuk diabsenkan")
		}

		if jadwal.StartAt().After(s.now()) {
			return fiber.NewError(fiber.StatusUnprocessableEntity, "Tidak bisa absen sebelum jadwal dimulai")
		}

		var sub subscriptionModel.Subscription
		if err := helper.LockForUpdate(tx).
			First(&sub, "subscription_id = ?", jadwal.JadwalSubscriptionID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Subscription tidak ditemukan")
		}
		if sub.SubscriptionStatus != constants.SubscriptionActive {
			return fiber.NewError(fiber.StatusConflict, "Subscription not active")
		}

		var inv invoiceModel.Invoice
		if err := helper.LockForUpdate(tx).
			First(&inv, "invoice_id = ?", jadwal.JadwalInvoiceID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Invoice tidak ditemukan")
		}

		var paket paketModel.Paket
		if err := tx.First(&paket, "paket_id = ?", sub.SubscriptionPaketID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Paket tidak ditemukan")
		}

		var tentor tentorModel.Tentor
		if err := helper.LockForUpdate(tx).
			First(&tentor, "tentor_id = ?", jadwal.JadwalTentorID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Tentor tidak ditemukan")
		}

		var siswa siswaModel.Siswa
		if err := helper.LockForUpdate(tx).
			First(&siswa, "siswa_id = ?", jadwal.JadwalSiswaID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Siswa tidak ditemukan")
		}

		var mitra *mitraModel.Mitra
		if siswa.SiswaMitraID != nil {
			var m mitraModel.Mitra
			if err := helper.LockForUpdate(tx).
				First(&m, "mitra_id = ?", *siswa.SiswaMitraID).Error; err == nil {
				mitra = &m
			}
		}

		/* ---------- Settle sesi ini ---------- */
		jadwal.JadwalAttendanceStatus = constants.AttendancePresent
		if err := tx.Save(&jadwal).Error; err != nil {
			return err
		}

		// honor per sesi langsung masuk wallet tentor
		tentor.TentorWallet += paket.PaketHonorPrice
		if err := tx.Save(&tentor).Error; err != nil {
			return err
		}

		sub.SubscriptionRemainingSessions -= 1

		/* ---------- Renewal saat sisa sesi habis ---------- */
		if sub.SubscriptionRemainingSessions == 0 &&
			sub.SubscriptionStatus != constants.SubscriptionNonActive {
			if err := s.renewCycle(tx, &jadwal, &sub, &inv, &paket, &siswa, mitra); err != nil {
				return err
			}
		} else {
			if err := tx.Save(&sub).Error; err != nil {
				return err
			}
		}

		settled = &jadwal
		return nil
	})
	if err != nil {
		return nil, err
	}
	return settled, nil
}

// renewCycle bookkeeping saat satu siklus habis: reset subscription dari
// order berjalan (dukung ganti paket/tentor antar siklus), buat Honor per
// tentor yang mengajar di invoice lama, kredit + Proshare mitra, invoice
// baru (tanpa biaya pendaftaran), dan jadwal segar.
func (s *AttendanceService) renewCycle(
	tx *gorm.DB,
	jadwal *jadwalModel.Jadwal,
	sub *subscriptionModel.Subscription,
	inv *invoiceModel.Invoice,
	paket *paketModel.Paket,
	siswa *siswaModel.Siswa,
	mitra *mitraModel.Mitra,
) error {
	var ord orderModel.Order
	if err := tx.First(&ord, "order_id = ?", sub.SubscriptionCurrentOrderID).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Order tidak ditemukan")
	}

	var newPaket paketModel.Paket
	if err := tx.First(&newPaket, "paket_id = ?", ord.OrderPaketID).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Paket tidak ditemukan")
	}

	// reset subscription dengan data order berjalan
	sub.SubscriptionRemainingSessions = newPaket.PaketTotalSession
	sub.SubscriptionTentorID = ord.OrderTentorID
	sub.SubscriptionPaketID = ord.OrderPaketID
	if err := tx.Save(sub).Error; err != nil {
		return err
	}

	// honor untuk semua tentor yang pernah mengajar di invoice lama
	type tentorCount struct {
		JadwalTentorID uuid.UUID
		Sessions       int
	}
	var counts []tentorCount
	if err := tx.Model(&jadwalModel.Jadwal{}).
		Select("jadwal_tentor_id, COUNT(*) AS sessions").
		Where("jadwal_invoice_id = ? AND jadwal_attendance_status = ?",
			jadwal.JadwalInvoiceID, constants.AttendancePresent).
		Group("jadwal_tentor_id").
		Scan(&counts).Error; err != nil {
		return err
	}
	for _, cnt := range counts {
		honor := honorModel.Honor{
			HonorTentorID:  cnt.JadwalTentorID,
			HonorSiswaID:   siswa.SiswaID,
			HonorInvoiceID: inv.InvoiceID,
			HonorTotal:     cnt.Sessions * paket.PaketHonorPrice,
			HonorStatus:    constants.PayoutPending,
		}
		if err := tx.Create(&honor).Error; err != nil {
			return err
		}
	}

	// bagi hasil mitra: flat per siklus paket
	if mitra != nil {
		proshareTotal := paket.PaketProsharePrice * paket.PaketTotalSession
		mitra.MitraWallet += proshareTotal
		if err := tx.Save(mitra).Error; err != nil {
			return err
		}
		ps := proshareModel.Proshare{
			ProshareMitraID:   mitra.MitraID,
			ProshareSiswaID:   siswa.SiswaID,
			ProshareInvoiceID: inv.InvoiceID,
			ProshareTotal:     proshareTotal,
			ProshareStatus:    constants.PayoutPending,
		}
		if err := tx.Create(&ps).Error; err != nil {
			return err
		}
	}

	// invoice siklus baru: harga paket baru, tanpa biaya pendaftaran
	newInv := invoiceModel.Invoice{
		InvoiceOrderID:        ord.OrderID,
		InvoiceSubscriptionID: sub.SubscriptionID,
		InvoicePaketID:        newPaket.PaketID,
		InvoiceSiswaID:        ord.OrderSiswaID,
		InvoicePrice:          newPaket.PaketPrice,
		InvoicePaymentStatus:  constants.PaymentUnpaid,
	}
	if err := tx.Create(&newInv).Error; err != nil {
		return err
	}

	return s.Scheduler.GenerateJadwal(tx, &ord, &newPaket, newInv.InvoiceID, sub.SubscriptionID)
}
