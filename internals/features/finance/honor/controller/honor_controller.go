// file: internals/features/finance/honor/controller/honor_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	model "bimbelku_backend/internals/features/finance/honor/model"
	"bimbelku_backend/internals/features/finance/honor/service"
	helper "bimbelku_backend/internals/helpers"
)

type HonorController struct {
	DB *gorm.DB
}

func NewHonorController(db *gorm.DB) *HonorController {
	return &HonorController{DB: db}
}

// GetAll GET /honor — dipaginasi (?page= & ?per_page=).
func (ctrl *HonorController) GetAll(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.Model(&model.Honor{}).Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal ambil data honor")
	}

	var honors []model.Honor
	if err := ctrl.DB.Order("honor_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&honors).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal ambil data honor")
	}
	return helper.Success(c, "Daftar honor", fiber.Map{
		"items":      honors,
		"pagination": helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage),
	})
}

// GetByID GET /honor/id/:id
func (ctrl *HonorController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "id tidak valid")
	}
	honor, err := service.GetHonorByID(ctrl.DB, id)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Detail honor", honor)
}

// GetByTentorID GET /honor/tentor/:id
func (ctrl *HonorController) GetByTentorID(c *fiber.Ctx) error {
	tentorID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "id tidak valid")
	}
	honors, err := service.GetHonorByTentorID(ctrl.DB, tentorID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Daftar honor tentor", honors)
}

// ProcessPayment PUT /honor/payment/:id — bayar honor, saldo wallet tentor
// dipotong sebesar total.
func (ctrl *HonorController) ProcessPayment(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "id tidak valid")
	}
	honor, err := service.ProcessHonorPayment(ctrl.DB, id)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Honor berhasil dibayar", honor)
}
