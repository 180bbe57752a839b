// file: internals/features/tutoring/jadwal/dto/jadwal_dto.go
package dto

import (
	model "bimbelku_backend/internals/features/tutoring/jadwal/model"
)

/* =========================================================
   REQUEST
   ========================================================= */

type RescheduleDateRequest struct {
	NewDate string `json:"newDate" validate:"required,datetime=2006-01-02"`
	NewTime string `json:"newTime" validate:"required,datetime=15:04:05"`
}

type ApproveTentorRescheduleRequest struct {
	NewTentorID string `json:"newTentorId" validate:"required,uuid4"`
}

/* =========================================================
   RESPONSE: jadwal + nama lawan transaksi
   ========================================================= */

type JadwalWithNames struct {
	model.Jadwal
	TentorName *string `json:"tentor_name,omitempty"`
	SiswaName  *string `json:"siswa_name,omitempty"`
}
