// file: internals/features/tutoring/order/dto/order_dto.go
package dto

import (
	"github.com/google/uuid"

	model "bimbelku_backend/internals/features/tutoring/order/model"
)

/* =========================================================
   REQUEST: Create (siswa) / Create by admin
   ========================================================= */

type CreateOrderRequest struct {
	OrderPaketID  uuid.UUID  `json:"order_paket_id"  validate:"required"`
	OrderTentorID *uuid.UUID `json:"order_tentor_id"`

	// ["Senin","Rabu"] — divalidasi lagi terhadap peta hari di service
	OrderMeetingDay []string `json:"order_meeting_day" validate:"required,min=1,dive,required"`
	// "HH:mm:ss"
	OrderTime  string      `json:"order_time"  validate:"required,datetime=15:04:05"`
	OrderMapel []uuid.UUID `json:"order_mapel" validate:"required,min=1"`
}

func (r *CreateOrderRequest) ToModel(siswaID uuid.UUID) (*model.Order, error) {
	o := &model.Order{
		OrderSiswaID:  siswaID,
		OrderPaketID:  r.OrderPaketID,
		OrderTentorID: r.OrderTentorID,
		OrderTime:     r.OrderTime,
	}
	if err := o.SetMeetingDays(r.OrderMeetingDay); err != nil {
		return nil, err
	}
	if err := o.SetMapelIDs(r.OrderMapel); err != nil {
		return nil, err
	}
	return o, nil
}

// CreateOrderByAdminRequest sama dengan create biasa tapi membawa siswa
// eksplisit; order langsung di-approve dalam satu transaksi.
type CreateOrderByAdminRequest struct {
	OrderSiswaID uuid.UUID `json:"order_siswa_id" validate:"required"`
	CreateOrderRequest
}

/* =========================================================
   REQUEST: Approve (override opsional oleh admin)
   ========================================================= */

type ApproveOrderRequest struct {
	TentorID   *uuid.UUID  `json:"tentorId"`
	MeetingDay []string    `json:"meetingDay" validate:"omitempty,min=1,dive,required"`
	Time       *string     `json:"time"       validate:"omitempty,datetime=15:04:05"`
	Mapel      []uuid.UUID `json:"mapel"      validate:"omitempty,min=1"`
}

// Empty true bila admin tidak meng-override apa pun.
func (r *ApproveOrderRequest) Empty() bool {
	return r == nil ||
		(r.TentorID == nil && len(r.MeetingDay) == 0 && r.Time == nil && len(r.Mapel) == 0)
}
