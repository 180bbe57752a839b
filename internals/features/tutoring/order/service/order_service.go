// file: internals/features/tutoring/order/service/order_service.go
package service

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"bimbelku_backend/internals/constants"
	invoiceModel "bimbelku_backend/internals/features/finance/invoice/model"
	invoiceService "bimbelku_backend/internals/features/finance/invoice/service"
	jadwalService "bimbelku_backend/internals/features/tutoring/jadwal/service"
	"bimbelku_backend/internals/features/tutoring/order/dto"
	model "bimbelku_backend/internals/features/tutoring/order/model"
	paketModel "bimbelku_backend/internals/features/tutoring/paket/model"
	siswaModel "bimbelku_backend/internals/features/tutoring/siswa/model"
	subscriptionModel "bimbelku_backend/internals/features/tutoring/subscription/model"
	tentorModel "bimbelku_backend/internals/features/tutoring/tentor/model"
	tentorService "bimbelku_backend/internals/features/tutoring/tentor/service"
	helper "bimbelku_backend/internals/helpers"
)

// OrderService workflow order: create, approve (dengan override admin),
// reject, dan create-by-admin yang langsung provision.
type OrderService struct {
	DB        *gorm.DB
	Scheduler *jadwalService.SchedulerService
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{DB: db, Scheduler: jadwalService.NewSchedulerService()}
}

// ApproveResult entitas yang lahir dari satu approval.
type ApproveResult struct {
	Order        *model.Order                    `json:"order"`
	Subscription *subscriptionModel.Subscription `json:"subscription"`
	Invoice      *invoiceModel.Invoice           `json:"invoice"`
}

/* =========================================================
   CREATE (siswa, status menggantung NonApprove)
   ========================================================= */

func (s *OrderService) CreateOrder(siswaID uuid.UUID, req *dto.CreateOrderRequest) (*model.Order, error) {
	var ord *model.Order
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.validatePayload(tx, siswaID, req); err != nil {
			return err
		}
		o, err := req.ToModel(siswaID)
		if err != nil {
			return err
		}
		if err := tx.Create(o).Error; err != nil {
			return err
		}
		ord = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ord, nil
}

// validatePayload: siswa ada, paket ada & Aktif, tentor (bila dipilih) valid
// & aktif dengan slot masih kosong, meetingDay dikenal, mapel minimal satu.
func (s *OrderService) validatePayload(tx *gorm.DB, siswaID uuid.UUID, req *dto.CreateOrderRequest) error {
	var siswa siswaModel.Siswa
	if err := tx.First(&siswa, "siswa_id = ?", siswaID).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Siswa tidak ditemukan")
	}

	var paket paketModel.Paket
	if err := tx.First(&paket, "paket_id = ?", req.OrderPaketID).Error; err != nil || !paket.IsAktif() {
		return fiber.NewError(fiber.StatusBadRequest, "Paket tidak ditemukan / non-aktif")
	}

	if _, err := jadwalService.ResolveDayNums(req.OrderMeetingDay); err != nil {
		return err
	}
	if len(req.OrderMapel) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "mapel wajib diisi minimal satu mata pelajaran")
	}

	if req.OrderTentorID != nil {
		var tentor tentorModel.Tentor
		if err := tx.First(&tentor, "tentor_id = ?", *req.OrderTentorID).Error; err != nil ||
			tentor.TentorStatus != constants.TentorActive {
			return fiber.NewError(fiber.StatusBadRequest, "Tentor tidak valid / non-aktif")
		}
		days, err := tentor.ScheduleDays()
		if err != nil {
			return err
		}
		if !tentorService.ValidateSlots(days, req.OrderMeetingDay, []string{req.OrderTime}) {
			return fiber.NewError(fiber.StatusConflict, "Slot tentor sudah terisi / tidak tersedia")
		}
	}
	return nil
}

/* =========================================================
   APPROVE
   ========================================================= */

// ApproveOrder meng-approve satu order menggantung: klaim slot tentor,
// buat Subscription + Invoice, lalu generate jadwal — semua dalam satu
// transaksi, gagal di mana pun berarti rollback total.
func (s *OrderService) ApproveOrder(orderID uuid.UUID, edits *dto.ApproveOrderRequest) (*ApproveResult, error) {
	var result *ApproveResult
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var ord model.Order
		if err := helper.LockForUpdate(tx).
			First(&ord, "order_id = ?", orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Order tidak ditemukan")
			}
			return err
		}
		if ord.OrderStatus != constants.OrderNonApprove {
			return fiber.NewError(fiber.StatusConflict, "Order sudah di-approve / di-reject")
		}

		if err := applyAdminEdits(&ord, edits); err != nil {
			return err
		}

		res, err := s.provision(tx, &ord)
		if err != nil {
			return err
		}
		result = res
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// CreateOrderByAdmin membuat order lalu menjalankan jalur approve yang sama
// dalam satu transaksi (order admin tidak pernah menggantung).
func (s *OrderService) CreateOrderByAdmin(req *dto.CreateOrderByAdminRequest) (*ApproveResult, error) {
	var result *ApproveResult
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.validatePayload(tx, req.OrderSiswaID, &req.CreateOrderRequest); err != nil {
			return err
		}
		ord, err := req.ToModel(req.OrderSiswaID)
		if err != nil {
			return err
		}
		if err := tx.Create(ord).Error; err != nil {
			return err
		}

		res, err := s.provision(tx, ord)
		if err != nil {
			return err
		}
		result = res
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// provision inti jalur approve: validasi tentor+paket, klaim slot, set
// Approve, buat subscription & invoice, generate jadwal.
func (s *OrderService) provision(tx *gorm.DB, ord *model.Order) (*ApproveResult, error) {
	if ord.OrderTentorID == nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Tentor tidak valid / non-aktif")
	}

	var tentor tentorModel.Tentor
	if err := helper.LockForUpdate(tx).
		First(&tentor, "tentor_id = ?", *ord.OrderTentorID).Error; err != nil ||
		tentor.TentorStatus != constants.TentorActive {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Tentor tidak valid / non-aktif")
	}

	var paket paketModel.Paket
	if err := tx.First(&paket, "paket_id = ?", ord.OrderPaketID).Error; err != nil || !paket.IsAktif() {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Paket tidak ditemukan / non-aktif")
	}

	var siswa siswaModel.Siswa
	if err := helper.LockForUpdate(tx).
		First(&siswa, "siswa_id = ?", ord.OrderSiswaID).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Siswa tidak ditemukan")
	}

	meetingDays, err := ord.MeetingDays()
	if err != nil {
		return nil, err
	}
	if _, err := jadwalService.ResolveDayNums(meetingDays); err != nil {
		return nil, err
	}
	if err := tentorService.ClaimTentorSlots(tx, &tentor, meetingDays, []string{ord.OrderTime}); err != nil {
		return nil, err
	}

	ord.OrderStatus = constants.OrderApprove
	if err := tx.Save(ord).Error; err != nil {
		return nil, err
	}

	sub := subscriptionModel.Subscription{
		SubscriptionSiswaID:           ord.OrderSiswaID,
		SubscriptionPaketID:           paket.PaketID,
		SubscriptionTentorID:          ord.OrderTentorID,
		SubscriptionCurrentOrderID:    ord.OrderID,
		SubscriptionRemainingSessions: paket.PaketTotalSession,
		SubscriptionStatus:            constants.SubscriptionActive,
	}
	if err := tx.Create(&sub).Error; err != nil {
		return nil, err
	}

	inv, err := invoiceService.CreateInitialInvoice(tx, ord, &paket, &siswa, sub.SubscriptionID)
	if err != nil {
		return nil, err
	}

	if err := s.Scheduler.GenerateJadwal(tx, ord, &paket, inv.InvoiceID, sub.SubscriptionID); err != nil {
		return nil, err
	}

	return &ApproveResult{Order: ord, Subscription: &sub, Invoice: inv}, nil
}

func applyAdminEdits(ord *model.Order, edits *dto.ApproveOrderRequest) error {
	if edits.Empty() {
		return nil
	}
	if edits.TentorID != nil {
		ord.OrderTentorID = edits.TentorID
	}
	if len(edits.MeetingDay) > 0 {
		if err := ord.SetMeetingDays(edits.MeetingDay); err != nil {
			return err
		}
	}
	if edits.Time != nil {
		ord.OrderTime = *edits.Time
	}
	if len(edits.Mapel) > 0 {
		if err := ord.SetMapelIDs(edits.Mapel); err != nil {
			return err
		}
	}
	return nil
}

/* =========================================================
   REJECT
   ========================================================= */

func (s *OrderService) RejectOrder(orderID uuid.UUID) (*model.Order, error) {
	var ord model.Order
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := helper.LockForUpdate(tx).
			First(&ord, "order_id = ?", orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Order tidak ditemukan")
			}
			return err
		}
		if ord.OrderStatus != constants.OrderNonApprove {
			return fiber.NewError(fiber.StatusConflict, "Order sudah di-approve / di-reject")
		}
		ord.OrderStatus = constants.OrderReject
		return tx.Save(&ord).Error
	})
	if err != nil {
		return nil, err
	}
	return &ord, nil
}

/* =========================================================
   READS
   ========================================================= */

func (s *OrderService) GetAllOrder(status string) ([]model.Order, error) {
	q := s.DB.Order("order_created_at DESC")
	if status != "all" {
		q = q.Where("order_status = ?", status)
	}
	var orders []model.Order
	if err := q.Find(&orders).Error; err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, fiber.NewError(fiber.StatusNotFound, "Tidak ada order yang ditemukan")
	}
	return orders, nil
}

func (s *OrderService) GetOrderBySiswaID(siswaID uuid.UUID) ([]model.Order, error) {
	var orders []model.Order
	if err := s.DB.Where("order_siswa_id = ?", siswaID).
		Order("order_created_at DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *OrderService) GetOrderByID(orderID uuid.UUID) (*model.Order, error) {
	var ord model.Order
	if err := s.DB.First(&ord, "order_id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Order tidak ditemukan")
		}
		return nil, err
	}
	return &ord, nil
}
