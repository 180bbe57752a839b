// file: internals/route/details/tutoring_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"bimbelku_backend/internals/constants"
	jadwalController "bimbelku_backend/internals/features/tutoring/jadwal/controller"
	mapelController "bimbelku_backend/internals/features/tutoring/mapel/controller"
	mitraController "bimbelku_backend/internals/features/tutoring/mitra/controller"
	orderController "bimbelku_backend/internals/features/tutoring/order/controller"
	paketController "bimbelku_backend/internals/features/tutoring/paket/controller"
	siswaController "bimbelku_backend/internals/features/tutoring/siswa/controller"
	subscriptionController "bimbelku_backend/internals/features/tutoring/subscription/controller"
	tentorController "bimbelku_backend/internals/features/tutoring/tentor/controller"
	authMiddleware "bimbelku_backend/internals/middlewares/auth"
)

func TutoringRoutes(app *fiber.App, db *gorm.DB) {
	authed := authMiddleware.AuthMiddleware()
	adminOnly := authMiddleware.RequireRoles(constants.RoleAdmin)

	/* ===================== ORDER ===================== */
	orderCtrl := orderController.NewOrderController(db)

	app.Post("/order/:siswaId", authed, orderCtrl.CreateOrder)
	app.Post("/order-by-admin", authed, adminOnly, orderCtrl.CreateOrderByAdmin)
	app.Put("/order/approve/:id", authed, adminOnly, orderCtrl.ApproveOrder)
	app.Put("/order/reject/:id", authed, adminOnly, orderCtrl.RejectOrder)

	// spesifik dulu, baru wildcard :status
	app.Get("/order/siswa/:siswaId", authed, orderCtrl.GetOrderBySiswaID)
	app.Get("/order/id/:id", authed, orderCtrl.GetOrderByID)
	app.Get("/order/:status", authed, adminOnly, orderCtrl.GetAllOrder)

	/* ===================== JADWAL ===================== */
	jadwalCtrl := jadwalController.NewJadwalController(db)

	app.Put("/jadwal/present/request/:id", authed, jadwalCtrl.RequestPresent)
	app.Put("/jadwal/present/confirm/:id", authed, jadwalCtrl.ConfirmPresent)
	app.Put("/jadwal/present/:id", authed, jadwalCtrl.PresentDirect)

	app.Put("/jadwal/reschedule/date/:id", authed, jadwalCtrl.RescheduleDate)
	app.Put("/jadwal/reschedule/tentor/approve/:id", authed, adminOnly, jadwalCtrl.ApproveTentorReschedule)
	app.Put("/jadwal/reschedule/tentor/reject/:id", authed, adminOnly, jadwalCtrl.RejectTentorReschedule)
	app.Put("/jadwal/reschedule/tentor/:id", authed, jadwalCtrl.RequestTentorReschedule)

	app.Get("/jadwal/invoice/:id", authed, jadwalCtrl.GetJadwalByInvoiceID)
	app.Get("/jadwal/tentor/:id", authed, jadwalCtrl.GetJadwalByTentorID)
	app.Get("/jadwal/siswa/:id", authed, jadwalCtrl.GetJadwalBySiswaID)
	app.Get("/jadwal/id/:id", authed, jadwalCtrl.GetJadwalByID)
	app.Get("/jadwal/:status", authed, adminOnly, jadwalCtrl.GetAllJadwal)

	/* ===================== SUBSCRIPTION ===================== */
	subCtrl := subscriptionController.NewSubscriptionController(db)

	app.Get("/subscription", authed, adminOnly, subCtrl.GetAll)
	app.Get("/subscription/siswa/:id", authed, subCtrl.GetBySiswaID)
	app.Get("/subscription/:id", authed, subCtrl.GetByID)

	/* ===================== MASTER DATA ===================== */
	siswaCtrl := siswaController.NewSiswaController(db)
	app.Post("/siswa", authed, adminOnly, siswaCtrl.Create)
	app.Get("/siswa", authed, adminOnly, siswaCtrl.GetAll)
	app.Get("/siswa/:id", authed, siswaCtrl.GetByID)
	app.Put("/siswa/:id", authed, siswaCtrl.Update)

	tentorCtrl := tentorController.NewTentorController(db)
	app.Post("/tentor", authed, adminOnly, tentorCtrl.Create)
	app.Get("/tentor", authed, tentorCtrl.GetAll)
	app.Get("/tentor/:id", authed, tentorCtrl.GetByID)
	app.Put("/tentor/:id", authed, tentorCtrl.Update)

	mitraCtrl := mitraController.NewMitraController(db)
	app.Post("/mitra", authed, adminOnly, mitraCtrl.Create)
	app.Get("/mitra", authed, adminOnly, mitraCtrl.GetAll)
	app.Get("/mitra/:id", authed, mitraCtrl.GetByID)
	app.Put("/mitra/:id", authed, adminOnly, mitraCtrl.Update)

	mapelCtrl := mapelController.NewMapelController(db)
	app.Post("/mapel", authed, adminOnly, mapelCtrl.Create)
	app.Get("/mapel", mapelCtrl.GetAll)
	app.Get("/mapel/:id", mapelCtrl.GetByID)
	app.Put("/mapel/:id", authed, adminOnly, mapelCtrl.Update)

	paketCtrl := paketController.NewPaketController(db)
	app.Post("/paket", authed, adminOnly, paketCtrl.Create)
	app.Get("/paket", paketCtrl.GetAll)
	app.Get("/paket/:id", paketCtrl.GetByID)
	app.Put("/paket/:id", authed, adminOnly, paketCtrl.Update)
}
