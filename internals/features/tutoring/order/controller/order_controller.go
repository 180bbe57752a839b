// file: internals/features/tutoring/order/controller/order_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"bimbelku_backend/internals/features/tutoring/order/dto"
	"bimbelku_backend/internals/features/tutoring/order/service"
	helper "bimbelku_backend/internals/helpers"
)

type OrderController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Service   *service.OrderService
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{
		DB:        db,
		Validator: validator.New(),
		Service:   service.NewOrderService(db),
	}
}

/* =========================================================
   CREATE
   ========================================================= */

// CreateOrder POST /order/:siswaId — order masuk dengan status NonApprove.
func (ctrl *OrderController) CreateOrder(c *fiber.Ctx) error {
	siswaID, err := uuid.Parse(c.Params("siswaId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "siswaId tidak valid")
	}

	var req dto.CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	ord, err := ctrl.Service.CreateOrder(siswaID, &req)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Order berhasil dibuat", ord)
}

// CreateOrderByAdmin POST /order-by-admin — create + approve satu transaksi.
func (ctrl *OrderController) CreateOrderByAdmin(c *fiber.Ctx) error {
	var req dto.CreateOrderByAdminRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	result, err := ctrl.Service.CreateOrderByAdmin(&req)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Order berhasil dibuat & di-approve", result)
}

/* =========================================================
   APPROVE / REJECT
   ========================================================= */

// ApproveOrder PUT /order/approve/:id — body opsional untuk override admin.
func (ctrl *OrderController) ApproveOrder(c *fiber.Ctx) error {
	orderID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "id tidak valid")
	}

	var edits dto.ApproveOrderRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&edits); err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
		}
		if err := ctrl.Validator.Struct(&edits); err != nil {
			return helper.ValidationError(c, err)
		}
	}

	result, err := ctrl.Service.ApproveOrder(orderID, &edits)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Order berhasil di-approve", result)
}

// RejectOrder PUT /order/reject/:id
func (ctrl *OrderController) RejectOrder(c *fiber.Ctx) error {
	orderID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "id tidak valid")
	}
	ord, err := ctrl.Service.RejectOrder(orderID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Order berhasil di-reject", ord)
}

/* =========================================================
   READS
   ========================================================= */

// GetAllOrder GET /order/:status — NonApprove|Approve|Reject|all
func (ctrl *OrderController) GetAllOrder(c *fiber.Ctx) error {
	status := c.Params("status", "all")
	orders, err := ctrl.Service.GetAllOrder(status)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Daftar order", orders)
}

// GetOrderBySiswaID GET /order/siswa/:siswaId
func (ctrl *OrderController) GetOrderBySiswaID(c *fiber.Ctx) error {
	siswaID, err := uuid.Parse(c.Params("siswaId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "siswaId tidak valid")
	}
	orders, err := ctrl.Service.GetOrderBySiswaID(siswaID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Daftar order siswa", orders)
}

// GetOrderByID GET /order/id/:id
func (ctrl *OrderController) GetOrderByID(c *fiber.Ctx) error {
	orderID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "id tidak valid")
	}
	ord, err := ctrl.Service.GetOrderByID(orderID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Detail order", ord)
}
