// file: internals/features/calendar/model/material_model.go
package model

import (
	"time"
)

const MaterialTypeDefault = "lesson"

// MaterialModel: materi belajar per tanggal, dipartisi per grade.
type MaterialModel struct {
	MaterialID   int64     `gorm:"primaryKey;autoIncrement;column:material_id" json:"material_id"`
	MaterialDate time.Time `gorm:"type:date;not null;index;column:material_date" json:"material_date"`

	MaterialGrade string `gorm:"type:varchar(32);not null;column:material_grade" json:"material_grade"`
	MaterialTitle string `gorm:"type:varchar(160);not null;column:material_title" json:"material_title"`
	MaterialLink  string `gorm:"type:text;not null;column:material_link" json:"material_link"`
	MaterialType  string `gorm:"type:varchar(32);not null;default:'lesson';column:material_type" json:"material_type"`

	MaterialCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:material_created_at" json:"-"`
}

func (MaterialModel) TableName() string { return "materials" }
