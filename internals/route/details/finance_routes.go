// file: internals/route/details/finance_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"bimbelku_backend/internals/constants"
	honorController "bimbelku_backend/internals/features/finance/honor/controller"
	invoiceController "bimbelku_backend/internals/features/finance/invoice/controller"
	proshareController "bimbelku_backend/internals/features/finance/proshare/controller"
	authMiddleware "bimbelku_backend/internals/middlewares/auth"
)

func FinanceRoutes(app *fiber.App, db *gorm.DB) {
	authed := authMiddleware.AuthMiddleware()
	adminOnly := authMiddleware.RequireRoles(constants.RoleAdmin)

	/* ===================== INVOICE ===================== */
	invoiceCtrl := invoiceController.NewInvoiceController(db)

	// webhook Midtrans tanpa auth (diverifikasi via server key di service)
	app.Post("/invoice/notification", invoiceCtrl.PaymentNotification)

	app.Post("/invoice/snap/:id", authed, invoiceCtrl.GenerateSnap)
	app.Put("/invoice/payment/:id", authed, adminOnly, invoiceCtrl.ProcessPayment)
	app.Get("/invoice", authed, adminOnly, invoiceCtrl.GetAll)
	app.Get("/invoice/siswa/:id", authed, invoiceCtrl.GetBySiswaID)
	app.Get("/invoice/id/:id", authed, invoiceCtrl.GetByID)

	/* ===================== HONOR ===================== */
	honorCtrl := honorController.NewHonorController(db)

	app.Put("/honor/payment/:id", authed, adminOnly, honorCtrl.ProcessPayment)
	app.Get("/honor", authed, adminOnly, honorCtrl.GetAll)
	app.Get("/honor/tentor/:id", authed, honorCtrl.GetByTentorID)
	app.Get("/honor/id/:id", authed, honorCtrl.GetByID)

	/* ===================== PROSHARE ===================== */
	proshareCtrl := proshareController.NewProshareController(db)

	app.Put("/proshare/payment/:id", authed, adminOnly, proshareCtrl.ProcessPayment)
	app.Get("/proshare", authed, adminOnly, proshareCtrl.GetAll)
	app.Get("/proshare/mitra/:id", authed, proshareCtrl.GetByMitraID)
}
