// file: internals/features/calendar/model/description_model.go
package model

import (
	"time"
)

// DescriptionModel: catatan bebas per tanggal (1:1 by date).
type DescriptionModel struct {
	DescriptionDate time.Time `gorm:"type:date;primaryKey;column:description_date" json:"description_date"`
	DescriptionText *string   `gorm:"type:text;column:description_text" json:"description_text,omitempty"`

	DescriptionCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:description_created_at" json:"-"`
	DescriptionUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:description_updated_at" json:"-"`
}

func (DescriptionModel) TableName() string { return "day_descriptions" }
