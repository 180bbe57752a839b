// file: internals/features/tutoring/tentor/controller/tentor_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	model "bimbelku_backend/internals/features/tutoring/tentor/model"
	authService "bimbelku_backend/internals/features/users/auth/service"
	helper "bimbelku_backend/internals/helpers"
)

type TentorController struct {
	DB *gorm.DB
}

func NewTentorController(db *gorm.DB) *TentorController {
	return &TentorController{DB: db}
}

// Create POST /tentor
func (ctrl *TentorController) Create(c *fiber.Ctx) error {
	var payload model.Tentor
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
	payload.TentorPassword = hash

	if err := ctrl.DB.Create(&payload).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat tentor")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Tentor berhasil dibuat", payload)
}

// GetAll GET /tentor
func (ctrl *TentorController) GetAll(c *fiber.Ctx) error {
	var rows []model.Tentor
	if err := ctrl.DB.Order("tentor_created_at DESC").Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal ambil data tentor")
	}
	return helper.Success(c, "Daftar tentor", rows)
}

// GetByID GET /tentor/:id
func (ctrl *TentorController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "id tidak valid")
	}
	var row model.Tentor
	if err := ctrl.DB.First(&row, "tentor_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Tentor tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal ambil data tentor")
	}
	return helper.Success(c, "Detail tentor", row)
}

// Update PUT /tentor/:id — ledger schedule ikut tertimpa hanya bila dikirim.
func (ctrl *TentorController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "id tidak valid")
	}
	var row model.Tentor
	if err := ctrl.DB.First(&row, "tentor_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Tentor tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal ambil data tentor")
	}
	if err := c.BodyParser(&row); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	row.TentorID = id

	if err := ctrl.DB.Save(&row).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal update tentor")
	}
	return helper.Success(c, "Tentor berhasil diupdate", row)
}
