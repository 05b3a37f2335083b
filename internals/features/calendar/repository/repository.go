// file: internals/features/calendar/repository/repository.go
package repository

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	model "schoolcal_backend/internals/features/calendar/model"
)

/* ====================== DAY CONFIG ====================== */

func AllDayConfigs(db *gorm.DB) ([]model.DayConfigModel, error) {
	var rows []model.DayConfigModel
	if err := db.Order("day_config_date ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func FindDayConfigByDate(db *gorm.DB, date time.Time) (*model.DayConfigModel, error) {
	var row model.DayConfigModel
	if err := db.Where("day_config_date = ?", date).First(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// UpsertDayConfig: tulis row hasil merge secara atomik.
// Satu statement INSERT ... ON CONFLICT, tidak pernah setengah jadi.
func UpsertDayConfig(db *gorm.DB, row *model.DayConfigModel) error {
	return db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "day_config_date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"day_config_color",
			"day_config_day_type",
			"day_config_is_access",
			"day_config_updated_at",
		}),
	}).Create(row).Error
}

/* ====================== EVENT ====================== */

// EventsInRange: filter range inklusif; department kosong = tanpa filter
// (sentinel "See All" sudah dibuang di dto, tidak pernah sampai ke WHERE).
func EventsInRange(db *gorm.DB, start, end time.Time, department string) ([]model.EventModel, error) {
	tx := db.Where("event_date BETWEEN ? AND ?", start, end)
	if department != "" {
		tx = tx.Where("event_department = ?", department)
	}
	var rows []model.EventModel
	if err := tx.Order("event_date ASC, event_time ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func CreateEvent(db *gorm.DB, ev *model.EventModel) error {
	return db.Create(ev).Error
}

// DeleteEventByID: idempotent — id yang tidak ada bukan error.
func DeleteEventByID(db *gorm.DB, id int64) error {
	return db.Where("event_id = ?", id).Delete(&model.EventModel{}).Error
}

/* ====================== MATERIAL ====================== */

func MaterialsByDate(db *gorm.DB, date time.Time) ([]model.MaterialModel, error) {
	var rows []model.MaterialModel
	if err := db.Where("material_date = ?", date).
		Order("material_id ASC"). // urutan pembuatan per grade
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func CreateMaterial(db *gorm.DB, m *model.MaterialModel) error {
	return db.Create(m).Error
}

func DeleteMaterialByID(db *gorm.DB, id int64) error {
	return db.Where("material_id = ?", id).Delete(&model.MaterialModel{}).Error
}

/* ====================== DESCRIPTION ====================== */

func AllDescriptions(db *gorm.DB) ([]model.DescriptionModel, error) {
	var rows []model.DescriptionModel
	if err := db.Order("description_date ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// UpsertDescription: update eksplisit selalu mengganti teks tersimpan,
// termasuk dengan nilai kosong/null.
func UpsertDescription(db *gorm.DB, date time.Time, text *string) error {
	row := model.DescriptionModel{
		DescriptionDate: date,
		DescriptionText: text,
	}
	return db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "description_date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"description_text",
			"description_updated_at",
		}),
	}).Create(&row).Error
}
