// file: internals/features/tutoring/subscription/controller/subscription_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	model "bimbelku_backend/internals/features/tutoring/subscription/model"
	helper "bimbelku_backend/internals/helpers"
)

type SubscriptionController struct {
	DB *gorm.DB
}

func NewSubscriptionController(db *gorm.DB) *SubscriptionController {
	return &SubscriptionController{DB: db}
}

// GetAll GET /subscription
func (ctrl *SubscriptionController) GetAll(c *fiber.Ctx) error {
	var subs []model.Subscription
	if err := ctrl.DB.Order("subscription_created_at DESC").Find(&subs).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal ambil data subscription")
	}
	return helper.Success(c, "Daftar subscription", subs)
}

// GetByID GET /subscription/:id
func (ctrl *SubscriptionController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "id tidak valid")
	}
	var sub model.Subscription
	if err := ctrl.DB.First(&sub, "subscription_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Subscription tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal ambil data subscription")
	}
	return helper.Success(c, "Detail subscription", sub)
}

// GetBySiswaID GET /subscription/siswa/:id
func (ctrl *SubscriptionController) GetBySiswaID(c *fiber.Ctx) error {
	siswaID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "id tidak valid")
	}
	var subs []model.Subscription
	if err := ctrl.DB.Where("subscription_siswa_id = ?", siswaID).
		Order("subscription_created_at DESC").Find(&subs).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal ambil data subscription")
	}
	return helper.Success(c, "Daftar subscription siswa", subs)
}
