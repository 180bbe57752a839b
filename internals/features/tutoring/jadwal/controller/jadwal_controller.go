// file: internals/features/tutoring/jadwal/controller/jadwal_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"bimbelku_backend/internals/features/tutoring/jadwal/dto"
	"bimbelku_backend/internals/features/tutoring/jadwal/service"
	helper "bimbelku_backend/internals/helpers"
)

type JadwalController struct {
	DB         *gorm.DB
	Validator  *validator.Validate
	Attendance *service.AttendanceService
	Reschedule *service.RescheduleService
}

func NewJadwalController(db *gorm.DB) *JadwalController {
	return &JadwalController{
		DB:         db,
		Validator:  validator.New(),
		Attendance: service.NewAttendanceService(db),
		Reschedule: service.NewRescheduleService(db),
	}
}

func parseJadwalID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "id tidak valid")
	}
	return id, nil
}

/* =========================================================
   ABSENSI
   ========================================================= */

// PresentDirect PUT /jadwal/present/:id — jalur lama satu langkah.
func (ctrl *JadwalController) PresentDirect(c *fiber.Ctx) error {
	id, err := parseJadwalID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	jadwal, err := ctrl.Attendance.PresentDirect(id)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Jadwal berhasil diabsenkan", jadwal)
}

// RequestPresent PUT /jadwal/present/request/:id — siswa/tentor minta absen.
func (ctrl *JadwalController) RequestPresent(c *fiber.Ctx) error {
	id, err := parseJadwalID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	result, err := ctrl.Attendance.RequestPresent(id)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Request absen terkirim", result)
}

// ConfirmPresent PUT /jadwal/present/confirm/:id — konfirmasi lawan pihak,
// di sinilah honor, sisa sesi, dan perpanjangan siklus diproses.
func (ctrl *JadwalController) ConfirmPresent(c *fiber.Ctx) error {
	id, err := parseJadwalID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	jadwal, err := ctrl.Attendance.ConfirmPresent(id)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Absen terkonfirmasi", jadwal)
}

/* =========================================================
   RESCHEDULE
   ========================================================= */

// RescheduleDate PUT /jadwal/reschedule/date/:id
func (ctrl *JadwalController) RescheduleDate(c *fiber.Ctx) error {
	id, err := parseJadwalID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.RescheduleDateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	jadwal, err := ctrl.Reschedule.RescheduleDateTime(id, req.NewDate, req.NewTime)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Jadwal berhasil dipindah", jadwal)
}

// RequestTentorReschedule PUT /jadwal/reschedule/tentor/:id
func (ctrl *JadwalController) RequestTentorReschedule(c *fiber.Ctx) error {
	id, err := parseJadwalID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	jadwal, err := ctrl.Reschedule.RequestTentorReschedule(id)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Request ganti tentor terkirim", jadwal)
}

// ApproveTentorReschedule PUT /jadwal/reschedule/tentor/approve/:id
func (ctrl *JadwalController) ApproveTentorReschedule(c *fiber.Ctx) error {
	id, err := parseJadwalID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.ApproveTentorRescheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	newTentorID, err := uuid.Parse(req.NewTentorID)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "newTentorId tidak valid")
	}

	jadwal, err := ctrl.Reschedule.ApproveTentorReschedule(id, newTentorID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Ganti tentor disetujui", jadwal)
}

// RejectTentorReschedule PUT /jadwal/reschedule/tentor/reject/:id
func (ctrl *JadwalController) RejectTentorReschedule(c *fiber.Ctx) error {
	id, err := parseJadwalID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	jadwal, err := ctrl.Reschedule.RejectTentorReschedule(id)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Ganti tentor ditolak", jadwal)
}

/* =========================================================
   READS
   ========================================================= */

// GetAllJadwal GET /jadwal/:status — Absent|Present|PresentRequest|RescheduleRequest|all
func (ctrl *JadwalController) GetAllJadwal(c *fiber.Ctx) error {
	rows, err := service.GetAllJadwal(ctrl.DB, c.Params("status", "all"))
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Daftar jadwal", rows)
}

// GetJadwalByInvoiceID GET /jadwal/invoice/:id
func (ctrl *JadwalController) GetJadwalByInvoiceID(c *fiber.Ctx) error {
	invoiceID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "id tidak valid")
	}
	rows, err := service.GetJadwalByInvoiceID(ctrl.DB, invoiceID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Daftar jadwal per invoice", rows)
}

// GetJadwalByTentorID GET /jadwal/tentor/:id
func (ctrl *JadwalController) GetJadwalByTentorID(c *fiber.Ctx) error {
	tentorID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "id tidak valid")
	}
	rows, err := service.GetJadwalByTentorID(ctrl.DB, tentorID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Daftar jadwal tentor", rows)
}

// GetJadwalBySiswaID GET /jadwal/siswa/:id
func (ctrl *JadwalController) GetJadwalBySiswaID(c *fiber.Ctx) error {
	siswaID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "id tidak valid")
	}
	rows, err := service.GetJadwalBySiswaID(ctrl.DB, siswaID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Daftar jadwal siswa", rows)
}

// GetJadwalByID GET /jadwal/id/:id
func (ctrl *JadwalController) GetJadwalByID(c *fiber.Ctx) error {
	id, err := parseJadwalID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	row, err := service.GetJadwalByID(ctrl.DB, id)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Detail jadwal", row)
}
