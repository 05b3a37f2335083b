// file: internals/features/calendar/dto/day_config_dto.go
package dto

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	model "schoolcal_backend/internals/features/calendar/model"
)

/* =========================================================
   Requests: UPSERT (partial)
   ========================================================= */

// DayConfigPatch: partial update per field. Pointer nil = field absen,
// nilai tersimpan dipertahankan (coalesce-on-write, bukan overwrite).
type DayConfigPatch struct {
	Color    *string `json:"color" validate:"omitempty,max=32"`
	DayType  *string `json:"dayType" validate:"omitempty,oneof=A B"`
	IsAccess *bool   `json:"isAccess" validate:"omitempty"`
}

type UpsertDayConfigRequest struct {
	DateKey string         `json:"dateKey" validate:"required"`
	Config  DayConfigPatch `json:"config"`
}

func (r *UpsertDayConfigRequest) Normalize() {
	r.DateKey = strings.TrimSpace(r.DateKey)
	r.Config.Color = trimPtr(r.Config.Color)
	if r.Config.DayType != nil {
		v := strings.ToUpper(strings.TrimSpace(*r.Config.DayType))
		if v == "" {
			r.Config.DayType = nil
		} else {
			r.Config.DayType = &v
		}
	}
}

func (r *UpsertDayConfigRequest) Validate(v *validator.Validate) error {
	if err := v.Struct(r); err != nil {
		return err
	}
	if _, ok := ParseDateKey(r.DateKey); !ok {
		return errors.New("dateKey must be YYYY-MM-DD")
	}
	return nil
}

/* =========================================================
   Merge: apply partial onto existing-or-default row
   ========================================================= */

// ApplyDayConfigPatch: hitung row hasil dari row existing (boleh nil) + patch.
// Field yang hadir menggantikan nilai tersimpan; field absen dipertahankan.
// Tanpa row existing dipakai default: color/dayType null, isAccess false.
// Murni in-memory, tidak menyentuh storage.
func ApplyDayConfigPatch(existing *model.DayConfigModel, date time.Time, p DayConfigPatch) model.DayConfigModel {
	out := model.DayConfigModel{DayConfigDate: date}
	if existing != nil {
		out = *existing
		out.DayConfigDate = date
	}
	if p.Color != nil {
		out.DayConfigColor = p.Color
	}
	if p.DayType != nil {
		dt := model.DayType(*p.DayType)
		out.DayConfigDayType = &dt
	}
	if p.IsAccess != nil {
		out.DayConfigIsAccess = *p.IsAccess
	}
	return out
}

/* =========================================================
   Responses & aggregation
   ========================================================= */

type DayConfigResponse struct {
	Color    *string `json:"color"`
	DayType  *string `json:"dayType"`
	IsAccess bool    `json:"isAccess"`
}

func FromModelDayConfig(m model.DayConfigModel) DayConfigResponse {
	var dt *string
	if m.DayConfigDayType != nil {
		v := string(*m.DayConfigDayType)
		dt = &v
	}
	return DayConfigResponse{
		Color:    m.DayConfigColor,
		DayType:  dt,
		IsAccess: m.DayConfigIsAccess,
	}
}

// GroupDayConfigs: flat rows → sparse map "YYYY-MM-DD" → config.
// Tanggal tanpa row tidak muncul sama sekali.
func GroupDayConfigs(rows []model.DayConfigModel) map[string]DayConfigResponse {
	out := make(map[string]DayConfigResponse, len(rows))
	for _, m := range rows {
		out[DateKey(m.DayConfigDate)] = FromModelDayConfig(m)
	}
	return out
}
