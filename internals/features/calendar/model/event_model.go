// file: internals/features/calendar/model/event_model.go
package model

import (
	"time"
)

// EventModel: banyak event per tanggal. Insert & delete saja, tidak ada update.
type EventModel struct {
	EventID   int64     `gorm:"primaryKey;autoIncrement;column:event_id" json:"event_id"`
	EventDate time.Time `gorm:"type:date;not null;index;column:event_date" json:"event_date"`

	EventTitle string `gorm:"type:varchar(160);not null;column:event_title" json:"event_title"`

	// TIME tanpa tanggal; disimpan apa adanya ("HH:MM" / "HH:MM:SS"),
	// rendering HH:MM ada di dto.FormatClock.
	EventTime string `gorm:"type:time;not null;column:event_time" json:"event_time"`

	EventDepartment  string  `gorm:"type:varchar(120);not null;index;column:event_department" json:"event_department"`
	EventDescription *string `gorm:"type:text;column:event_description" json:"event_description,omitempty"`

	EventCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:event_created_at" json:"-"`
}

func (EventModel) TableName() string { return "events" }
