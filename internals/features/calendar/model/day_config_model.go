// file: internals/features/calendar/model/day_config_model.go
package model

import (
	"time"
)

/* ===================== Enums (Go-side) ===================== */

// DB: varchar(1) dengan CHECK ('A','B')
type DayType string

const (
	DayTypeA DayType = "A"
	DayTypeB DayType = "B"
)

/* ===================== Model ===================== */

// DayConfigModel: konfigurasi per tanggal (1:1 by date).
// Row dibuat lazy saat write pertama; tanggal tanpa row tidak muncul di response.
type DayConfigModel struct {
	// PK = tanggal (DATE, tanpa komponen waktu)
	DayConfigDate time.Time `gorm:"type:date;primaryKey;column:day_config_date" json:"day_config_date"`

	DayConfigColor    *string  `gorm:"type:varchar(32);column:day_config_color"           json:"day_config_color,omitempty"`
	DayConfigDayType  *DayType `gorm:"type:varchar(1);column:day_config_day_type"         json:"day_config_day_type,omitempty"`
	DayConfigIsAccess bool     `gorm:"not null;default:false;column:day_config_is_access" json:"day_config_is_access"`

	// Audit (tidak pernah keluar lewat API)
	DayConfigCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:day_config_created_at" json:"-"`
	DayConfigUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:day_config_updated_at" json:"-"`
}

func (DayConfigModel) TableName() string { return "day_configs" }
