// file: internals/features/finance/invoice/controller/invoice_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	model "bimbelku_backend/internals/features/finance/invoice/model"
	"bimbelku_backend/internals/features/finance/invoice/service"
	siswaModel "bimbelku_backend/internals/features/tutoring/siswa/model"
	helper "bimbelku_backend/internals/helpers"
)

type InvoiceController struct {
	DB *gorm.DB
}

func NewInvoiceController(db *gorm.DB) *InvoiceController {
	return &InvoiceController{DB: db}
}

/* =========================================================
   READS
   ========================================================= */

// GetAll GET /invoice — dipaginasi (?page= & ?per_page=).
func (ctrl *InvoiceController) GetAll(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.Model(&model.Invoice{}).Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal ambil data invoice")
	}

	var invoices []model.Invoice
	if err := ctrl.DB.Order("invoice_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&invoices).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal ambil data invoice")
	}
	return helper.Success(c, "Daftar invoice", fiber.Map{
		"items":      invoices,
		"pagination": helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage),
	})
}

// GetByID GET /invoice/id/:id
func (ctrl *InvoiceController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "id tidak valid")
	}
	var inv model.Invoice
	if err := ctrl.DB.First(&inv, "invoice_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Invoice tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal ambil data invoice")
	}
	return helper.Success(c, "Detail invoice", inv)
}

// GetBySiswaID GET /invoice/siswa/:id
func (ctrl *InvoiceController) GetBySiswaID(c *fiber.Ctx) error {
	siswaID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "id tidak valid")
	}
	var invoices []model.Invoice
	if err := ctrl.DB.Where("invoice_siswa_id = ?", siswaID).
		Order("invoice_created_at DESC").Find(&invoices).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal ambil data invoice")
	}
	return helper.Success(c, "Daftar invoice siswa", invoices)
}

/* =========================================================
   PEMBAYARAN
   ========================================================= */

// ProcessPayment PUT /invoice/payment/:id — tandai lunas manual (admin).
func (ctrl *InvoiceController) ProcessPayment(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "id tidak valid")
	}
	inv, err := service.ProcessInvoicePayment(ctrl.DB, id)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Invoice berhasil dibayar", inv)
}

// GenerateSnap POST /invoice/snap/:id — minta token Snap Midtrans.
func (ctrl *InvoiceController) GenerateSnap(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "id tidak valid")
	}

	var inv model.Invoice
	if err := ctrl.DB.First(&inv, "invoice_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Invoice tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal ambil data invoice")
	}
	var siswa siswaModel.Siswa
	if err := ctrl.DB.First(&siswa, "siswa_id = ?", inv.InvoiceSiswaID).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Siswa tidak ditemukan")
	}

	token, err := service.GenerateSnapToken(ctrl.DB, &inv, &siswa)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Snap token dibuat", fiber.Map{"snap_token": token})
}

// PaymentNotification POST /invoice/notification — webhook Midtrans.
func (ctrl *InvoiceController) PaymentNotification(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := service.HandlePaymentWebhook(ctrl.DB, body); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Notifikasi diproses", nil)
}
