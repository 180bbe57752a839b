// file: internals/features/tutoring/subscription/model/subscription_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"bimbelku_backend/internals/constants"
)

/* =========================
   Model: subscriptions
   ========================= */

// Subscription binding hidup siswa↔paket↔tentor dengan counter sisa sesi.
// currentOrderId menunjuk order yang (re)membuat siklus berjalan; saat sisa
// sesi habis, data order itulah yang dipakai mereset siklus berikutnya.
type Subscription struct {
	SubscriptionID uuid.UUID `json:"subscription_id" gorm:"column:subscription_id;type:uuid;primaryKey"`

	SubscriptionSiswaID        uuid.UUID  `json:"subscription_siswa_id"         gorm:"column:subscription_siswa_id;type:uuid;not null;index"`
	SubscriptionPaketID        uuid.UUID  `json:"subscription_paket_id"         gorm:"column:subscription_paket_id;type:uuid;not null"`
	SubscriptionTentorID       *uuid.UUID `json:"subscription_tentor_id"        gorm:"column:subscription_tentor_id;type:uuid"`
	SubscriptionCurrentOrderID uuid.UUID  `json:"subscription_current_order_id" gorm:"column:subscription_current_order_id;type:uuid;not null"`

	SubscriptionRemainingSessions int `json:"subscription_remaining_sessions" gorm:"column:subscription_remaining_sessions;not null;check:subscription_remaining_sessions >= 0"`

	SubscriptionStatus string `json:"subscription_status" gorm:"column:subscription_status;type:varchar(12);not null;default:Active"`

	SubscriptionCreatedAt time.Time `json:"subscription_created_at" gorm:"column:subscription_created_at;not null;autoCreateTime"`
	SubscriptionUpdatedAt time.Time `json:"subscription_updated_at" gorm:"column:subscription_updated_at;not null;autoUpdateTime"`
}

func (Subscription) TableName() string { return "subscriptions" }

func (s *Subscription) BeforeCreate(tx *gorm.DB) error {
	if s.SubscriptionID == uuid.Nil {
		s.SubscriptionID = uuid.New()
	}
	if s.SubscriptionStatus == "" {
		s.SubscriptionStatus = constants.SubscriptionActive
	}
	s.SubscriptionUpdatedAt = time.Now().UTC()
	return nil
}

func (s *Subscription) BeforeUpdate(tx *gorm.DB) error {
	s.SubscriptionUpdatedAt = time.Now().UTC()
	return nil
}
