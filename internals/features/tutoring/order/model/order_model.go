// file: internals/features/tutoring/order/model/order_model.go
package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"bimbelku_backend/internals/constants"
)

/* =========================
   Model: orders
   ========================= */

// Order permintaan siswa memulai satu siklus paket. Terminal begitu
// Approve/Reject; approval melahirkan Subscription.
type Order struct {
	OrderID uuid.UUID `json:"order_id" gorm:"column:order_id;type:uuid;primaryKey"`

	OrderSiswaID  uuid.UUID  `json:"order_siswa_id"            gorm:"column:order_siswa_id;type:uuid;not null;index"`
	OrderPaketID  uuid.UUID  `json:"order_paket_id"            gorm:"column:order_paket_id;type:uuid;not null"`
	OrderTentorID *uuid.UUID `json:"order_tentor_id,omitempty" gorm:"column:order_tentor_id;type:uuid"`

	// hari pertemuan (["Senin","Rabu"]) & mapel (uuid list) — JSONB
	OrderMeetingDay datatypes.JSON `json:"order_meeting_day" gorm:"column:order_meeting_day;type:jsonb;not null"`
	OrderMapel      datatypes.JSON `json:"order_mapel"       gorm:"column:order_mapel;type:jsonb;not null"`

	OrderTime string `json:"order_time" gorm:"column:order_time;type:varchar(8);not null"` // "HH:mm:ss"

	OrderStatus string `json:"order_status" gorm:"column:order_status;type:varchar(12);not null;default:NonApprove"`

	OrderCreatedAt time.Time `json:"order_created_at" gorm:"column:order_created_at;not null;autoCreateTime"`
	OrderUpdatedAt time.Time `json:"order_updated_at" gorm:"column:order_updated_at;not null;autoUpdateTime"`
}

func (Order) TableName() string { return "orders" }

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.OrderID == uuid.Nil {
		o.OrderID = uuid.New()
	}
	if o.OrderStatus == "" {
		o.OrderStatus = constants.OrderNonApprove
	}
	o.OrderUpdatedAt = time.Now().UTC()
	return nil
}

func (o *Order) BeforeUpdate(tx *gorm.DB) error {
	o.OrderUpdatedAt = time.Now().UTC()
	return nil
}

/* =========================
   JSONB boundary helpers
   ========================= */

func (o *Order) MeetingDays() ([]string, error) {
	var days []string
	if len(o.OrderMeetingDay) == 0 {
		return days, nil
	}
	if err := json.Unmarshal(o.OrderMeetingDay, &days); err != nil {
		return nil, err
	}
	return days, nil
}

func (o *Order) SetMeetingDays(days []string) error {
	b, err := json.Marshal(days)
	if err != nil {
		return err
	}
	o.OrderMeetingDay = datatypes.JSON(b)
	return nil
}

func (o *Order) MapelIDs() ([]uuid.UUID, error) {
	var ids []uuid.UUID
	if len(o.OrderMapel) == 0 {
		return ids, nil
	}
	if err := json.Unmarshal(o.OrderMapel, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

func (o *Order) SetMapelIDs(ids []uuid.UUID) error {
	b, err := json.Marshal(ids)
	if err != nil {
		return err
	}
	o.OrderMapel = datatypes.JSON(b)
	return nil
}
