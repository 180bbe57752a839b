// file: internals/features/tutoring/siswa/controller/siswa_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	model "bimbelku_backend/internals/features/tutoring/siswa/model"
	authService "bimbelku_backend/internals/features/users/auth/service"
	helper "bimbelku_backend/internals/helpers"
)

type SiswaController struct {
	DB *gorm.DB
}

func NewSiswaController(db *gorm.DB) *SiswaController {
	return &SiswaController{DB: db}
}

// Create POST /siswa — password dikirim terpisah karena field model di-hide
// dari JSON.
func (ctrl *SiswaController) Create(c *fiber.Ctx) error {
	var payload model.Siswa
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
	payload.SiswaPassword = hash

	if err := ctrl.DB.Create(&payload).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat siswa")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Siswa berhasil dibuat", payload)
}

// GetAll GET /siswa
func (ctrl *SiswaController) GetAll(c *fiber.Ctx) error {
	var rows []model.Siswa
	if err := ctrl.DB.Order("siswa_created_at DESC").Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal ambil data siswa")
	}
	return helper.Success(c, "Daftar siswa", rows)
}

// GetByID GET /siswa/:id
func (ctrl *SiswaController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "id tidak valid")
	}
	var row model.Siswa
	if err := ctrl.DB.First(&row, "siswa_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Siswa tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal ambil data siswa")
	}
	return helper.Success(c, "Detail siswa", row)
}

// Update PUT /siswa/:id — field yang dikirim menimpa, sisanya tetap.
func (ctrl *SiswaController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "id tidak valid")
	}
	var row model.Siswa
	if err := ctrl.DB.First(&row, "siswa_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Siswa tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal ambil data siswa")
	}
	if err := c.BodyParser(&row); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	row.SiswaID = id

	if err := ctrl.DB.Save(&row).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal update siswa")
	}
	return helper.Success(c, "Siswa berhasil diupdate", row)
}
