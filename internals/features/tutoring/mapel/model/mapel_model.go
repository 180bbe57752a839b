// file: internals/features/tutoring/mapel/model/mapel_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================
   Model: mapel (mata pelajaran)
   ========================= */

type Mapel struct {
	MapelID uuid.UUID `json:"mapel_id" gorm:"column:mapel_id;type:uuid;primaryKey"`

	MapelName  string `json:"mapel_name"  gorm:"column:mapel_name;type:text;not null"`
	MapelLevel string `json:"mapel_level" gorm:"column:mapel_level;type:varchar(10)"` // TK/SD/SMP/SMA/SNBT

	MapelCreatedAt time.Time `json:"mapel_created_at" gorm:"column:mapel_created_at;not null;autoCreateTime"`
	MapelUpdatedAt time.Time `json:"mapel_updated_at" gorm:"column:mapel_updated_at;not null;autoUpdateTime"`
}

func (Mapel) TableName() string { return "mapel" }

func (m *Mapel) BeforeCreate(tx *gorm.DB) error {
	if m.MapelID == uuid.Nil {
		m.MapelID = uuid.New()
	}
	m.MapelUpdatedAt = time.Now().UTC()
	return nil
}

func (m *Mapel) BeforeUpdate(tx *gorm.DB) error {
	m.MapelUpdatedAt = time.Now().UTC()
	return nil
}
