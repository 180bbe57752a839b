// file: internals/features/users/auth/model/admin_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================
   Model: admins (akun back-office)
   ========================= */

type Admin struct {
	AdminID uuid.UUID `json:"admin_id" gorm:"column:admin_id;type:uuid;primaryKey"`

	AdminName     string `json:"admin_name"     gorm:"column:admin_name;type:text;not null"`
	AdminUsername string `json:"admin_username" gorm:"column:admin_username;type:varchar(60);not null;uniqueIndex"`
	AdminPassword string `json:"-"              gorm:"column:admin_password;type:text;not null"`
	AdminEmail    string `json:"admin_email"    gorm:"column:admin_email;type:text"`

	AdminCreatedAt time.Time `json:"admin_created_at" gorm:"column:admin_created_at;not null;autoCreateTime"`
	AdminUpdatedAt time.Time `json:"admin_updated_at" gorm:"column:admin_updated_at;not null;autoUpdateTime"`
}

func (Admin) TableName() string { return "admins" }

func (a *Admin) BeforeCreate(tx *gorm.DB) error {
	if a.AdminID == uuid.Nil {
		a.AdminID = uuid.New()
	}
	a.AdminUpdatedAt = time.Now().UTC()
	return nil
}

func (a *Admin) BeforeUpdate(tx *gorm.DB) error {
	a.AdminUpdatedAt = time.Now().UTC()
	return nil
}
