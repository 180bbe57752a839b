// file: internals/features/tutoring/mapel/controller/mapel_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	model "bimbelku_backend/internals/features/tutoring/mapel/model"
	helper "bimbelku_backend/internals/helpers"
)

type MapelController struct {
	DB *gorm.DB
}

func NewMapelController(db *gorm.DB) *MapelController {
	return &MapelController{DB: db}
}

// Create POST /mapel
func (ctrl *MapelController) Create(c *fiber.Ctx) error {
	var payload model.Mapel
	if err := c.BodyParser(&payload); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if payload.MapelName == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Nama mapel wajib diisi")
	}
	if err := ctrl.DB.Create(&payload).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat mapel")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Mapel berhasil dibuat", payload)
}

// GetAll GET /mapel
func (ctrl *MapelController) GetAll(c *fiber.Ctx) error {
	var rows []model.Mapel
	if err := ctrl.DB.Order("mapel_name ASC").Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal ambil data mapel")
	}
	return helper.Success(c, "Daftar mapel", rows)
}

// GetByID GET /mapel/:id
func (ctrl *MapelController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "id tidak valid")
	}
	var row model.Mapel
	if err := ctrl.DB.First(&row, "mapel_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Mapel tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal ambil data mapel")
	}
	return helper.Success(c, "Detail mapel", row)
}

// Update PUT /mapel/:id
func (ctrl *MapelController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "id tidak valid")
	}
	var row model.Mapel
	if err := ctrl.DB.First(&row, "mapel_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Mapel tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal ambil data mapel")
	}
	if err := c.BodyParser(&row); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	row.MapelID = id

	if err := ctrl.DB.Save(&row).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal update mapel")
	}
	return helper.Success(c, "Mapel berhasil diupdate", row)
}
