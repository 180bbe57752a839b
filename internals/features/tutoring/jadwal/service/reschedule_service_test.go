// file: internals/features/tutoring/jadwal/service/reschedule_service_test.go
package service

import (
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bimbelku_backend/internals/constants"
	jadwalModel "bimbelku_backend/internals/features/tutoring/jadwal/model"
	tentorModel "bimbelku_backend/internals/features/tutoring/tentor/model"
)

func rescheduleServiceAt(svc *RescheduleService, at time.Time) *RescheduleService {
	svc.Now = func() time.Time { return at }
	return svc
}

func TestRescheduleDateTime(t *testing.T) {
	db := newTestDB(t)
	fx := buildLifecycleFixture(t, db)
	svc := rescheduleServiceAt(NewRescheduleService(db), genesis)

	// pindah sesi pertama (Senin 6 Jan) ke Jumat 10 Jan jam 14:00
	j, err := svc.RescheduleDateTime(fx.Jadwal[0].JadwalID, "2025-01-10", "14:00:00")
	require.NoError(t, err)

	assert.True(t, time.Date(2025, 1, 10, 0, 0, 0, 0, genesis.Location()).Equal(j.JadwalDate))
	assert.Equal(t, "14:00:00", j.JadwalTime)
	assert.Equal(t, "Jumat", j.JadwalDayName) // diturunkan ulang dari tanggal

	var saved jadwalModel.Jadwal
	require.NoError(t, db.First(&saved, "jadwal_id = ?", j.JadwalID).Error)
	assert.Equal(t, "Jumat", saved.JadwalDayName)
}

func TestRescheduleRejectsPastSession(t *testing.T) {
	db := newTestDB(t)
	fx := buildLifecycleFixture(t, db)
	svc := rescheduleServiceAt(NewRescheduleService(db), afterAllSessions())

	_, err := svc.RescheduleDateTime(fx.Jadwal[0].JadwalID, "2025-03-10", "10:00:00")
	require.Error(t, err)
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusUnprocessableEntity, fe.Code)
}

func TestRescheduleDateTimeRejectsBadInput(t *testing.T) {
	db := newTestDB(t)
	fx := buildLifecycleFixture(t, db)
	svc := rescheduleServiceAt(NewRescheduleService(db), genesis)

	_, err := svc.RescheduleDateTime(fx.Jadwal[0].JadwalID, "10-01-2025", "14:00:00")
	require.Error(t, err)

	_, err = svc.RescheduleDateTime(fx.Jadwal[0].JadwalID, "2025-01-10", "2pm")
	require.Error(t, err)
}

func TestTentorRescheduleProtocol(t *testing.T) {
	db := newTestDB(t)
	fx := buildLifecycleFixture(t, db)
	svc := rescheduleServiceAt(NewRescheduleService(db), genesis)

	pengganti := tentorModel.Tentor{
		TentorName:     "Citra Lestari",
		TentorUsername: "citra-lestari",
		TentorPassword: "x",
		TentorNoHp:     "0844444444",
		TentorEmail:    "citra@bimbelku.id",
		TentorGender:   "P",
		TentorStatus:   "active",
	}
	require.NoError(t, db.Create(&pengganti).Error)

	// request
	j, err := svc.RequestTentorReschedule(fx.Jadwal[0].JadwalID)
	require.NoError(t, err)
	assert.Equal(t, constants.AttendanceRescheduleRequest, j.JadwalAttendanceStatus)

	// approve memasang tentor baru dan kembali Absent
	j, err = svc.ApproveTentorReschedule(fx.Jadwal[0].JadwalID, pengganti.TentorID)
	require.NoError(t, err)
	assert.Equal(t, pengganti.TentorID, j.JadwalTentorID)
	assert.Equal(t, constants.AttendanceAbsent, j.JadwalAttendanceStatus)

	// approve kedua tanpa request baru → 409
	_, err = svc.ApproveTentorReschedule(fx.Jadwal[0].JadwalID, pengganti.TentorID)
	require.Error(t, err)
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusConflict, fe.Code)
}

func TestRejectTentorReschedule(t *testing.T) {
	db := newTestDB(t)
	fx := buildLifecycleFixture(t, db)
	svc := rescheduleServiceAt(NewRescheduleService(db), genesis)

	_, err := svc.RequestTentorReschedule(fx.Jadwal[1].JadwalID)
	require.NoError(t, err)

	j, err := svc.RejectTentorReschedule(fx.Jadwal[1].JadwalID)
	require.NoError(t, err)
	assert.Equal(t, constants.AttendanceAbsent, j.JadwalAttendanceStatus)
	// tentor asli tidak berubah
	assert.Equal(t, fx.Tentor.TentorID, j.JadwalTentorID)
}

func TestApproveTentorRescheduleUnknownTentor(t *testing.T) {
	db := newTestDB(t)
	fx := buildLifecycleFixture(t, db)
	svc := rescheduleServiceAt(NewRescheduleService(db), genesis)

	_, err := svc.RequestTentorReschedule(fx.Jadwal[0].JadwalID)
	require.NoError(t, err)

	_, err = svc.ApproveTentorReschedule(fx.Jadwal[0].JadwalID, fx.Siswa.SiswaID)
	require.Error(t, err)
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusNotFound, fe.Code)
}
