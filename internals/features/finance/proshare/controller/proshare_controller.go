// file: internals/features/finance/proshare/controller/proshare_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	model "bimbelku_backend/internals/features/finance/proshare/model"
	"bimbelku_backend/internals/features/finance/proshare/service"
	helper "bimbelku_backend/internals/helpers"
)

type ProshareController struct {
	DB *gorm.DB
}

func NewProshareController(db *gorm.DB) *ProshareController {
	return &ProshareController{DB: db}
}

// GetAll GET /proshare
func (ctrl *ProshareController) GetAll(c *fiber.Ctx) error {
	var proshares []model.Proshare
	if err := ctrl.DB.Order("proshare_created_at DESC").Find(&proshares).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal ambil data proshare")
	}
	return helper.Success(c, "Daftar proshare", proshares)
}

// GetByMitraID GET /proshare/mitra/:id
func (ctrl *ProshareController) GetByMitraID(c *fiber.Ctx) error {
	mitraID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "id tidak valid")
	}
	proshares, err := service.GetProshareByMitraID(ctrl.DB, mitraID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Daftar proshare mitra", proshares)
}

// ProcessPayment PUT /proshare/payment/:id — bayar proshare, saldo wallet
// mitra dipotong sebesar total.
func (ctrl *ProshareController) ProcessPayment(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "id tidak valid")
	}
	proshare, err := service.ProcessProsharePayment(ctrl.DB, id)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Proshare berhasil dibayar", proshare)
}
