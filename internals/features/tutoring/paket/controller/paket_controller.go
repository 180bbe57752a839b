// file: internals/features/tutoring/paket/controller/paket_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"bimbelku_backend/internals/constants"
	model "bimbelku_backend/internals/features/tutoring/paket/model"
	helper "bimbelku_backend/internals/helpers"
)

type PaketController struct {
	DB *gorm.DB
}

func NewPaketController(db *gorm.DB) *PaketController {
	return &PaketController{DB: db}
}

// Create POST /paket — tarif honor & proshare diturunkan otomatis di hook
// model bila tidak diisi.
func (ctrl *PaketController) Create(c *fiber.Ctx) error {
	var payload model.Paket
	if err := c.BodyParser(&payload); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if payload.PaketName == "" || payload.PaketTotalSession <= 0 || payload.PaketPrice <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Nama, total sesi, dan harga paket wajib diisi")
	}
	if err := ctrl.DB.Create(&payload).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat paket")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Paket berhasil dibuat", payload)
}

// GetAll GET /paket — default hanya paket Aktif; ?status=all untuk semua.
func (ctrl *PaketController) GetAll(c *fiber.Ctx) error {
	q := ctrl.DB.Order("paket_created_at DESC")
	if c.Query("status", constants.PaketAktif) != "all" {
		q = q.Where("paket_status = ?", c.Query("status", constants.PaketAktif))
	}
	var rows []model.Paket
	if err := q.Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal ambil data paket")
	}
	return helper.Success(c, "Daftar paket", rows)
}

// GetByID GET /paket/:id
func (ctrl *PaketController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "id tidak valid")
	}
	var row model.Paket
	if err := ctrl.DB.First(&row, "paket_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Paket tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal ambil data paket")
	}
	return helper.Success(c, "Detail paket", row)
}

// Update PUT /paket/:id
func (ctrl *PaketController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "id tidak valid")
	}
	var row model.Paket
	if err := ctrl.DB.First(&row, "paket_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Paket tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal ambil data paket")
	}
	if err := c.BodyParser(&row); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	row.PaketID = id

	if err := ctrl.DB.Save(&row).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal update paket")
	}
	return helper.Success(c, "Paket berhasil diupdate", row)
}
