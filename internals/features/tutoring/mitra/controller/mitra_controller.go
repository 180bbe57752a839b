// file: internals/features/tutoring/mitra/controller/mitra_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	model "bimbelku_backend/internals/features/tutoring/mitra/model"
	authService "bimbelku_backend/internals/features/users/auth/service"
	helper "bimbelku_backend/internals/helpers"
)

type MitraController struct {
	DB *gorm.DB
}

func NewMitraController(db *gorm.DB) *MitraController {
	return &MitraController{DB: db}
}

// Create POST /mitra
func (ctrl *MitraController) Create(c *fiber.Ctx) error {
	var payload model.Mitra
	if err := c.BodyParser(&payload); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	var cred struct {
		Password string `json:"password"`
	}
	if err := c.BodyParser(&cred); err != nil || cred.Password == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Password wajib diisi")
	}

	hash, err := authService.HashPassword(cred.Password)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal hash password")
	}
	payload.MitraPassword = hash

	if err := ctrl.DB.Create(&payload).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat mitra")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Mitra berhasil dibuat", payload)
}

// GetAll GET /mitra
func (ctrl *MitraController) GetAll(c *fiber.Ctx) error {
	var rows []model.Mitra
	if err := ctrl.DB.Order("mitra_created_at DESC").Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal ambil data mitra")
	}
	return helper.Success(c, "Daftar mitra", rows)
}

// GetByID GET /mitra/:id
func (ctrl *MitraController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "id tidak valid")
	}
	var row model.Mitra
	if err := ctrl.DB.First(&row, "mitra_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Mitra tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal ambil data mitra")
	}
	return helper.Success(c, "Detail mitra", row)
}

// Update PUT /mitra/:id
func (ctrl *MitraController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "id tidak valid")
	}
	var row model.Mitra
	if err := ctrl.DB.First(&row, "mitra_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Mitra tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal ambil data mitra")
	}
	if err := c.BodyParser(&row); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	row.MitraID = id

	if err := ctrl.DB.Save(&row).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal update mitra")
	}
	return helper.Success(c, "Mitra berhasil diupdate", row)
}
